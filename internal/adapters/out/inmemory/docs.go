// Package inmemory provides volatile storage adapters backed by process
// memory. The repositories honor the same contracts as the Postgres
// adapters, including paging, not-found semantics and optimistic concurrency
// on orders, but nothing survives a restart and the unit of work provides no
// cross-call atomicity.
//
// Intended for tests and for running the service without a database.
package inmemory

// Package services contains the application services that drive the domain.
//
// Every mutating operation follows the same shape: validate input, open a
// unit of work, mutate the aggregate, append the matching audit record and
// commit. Mutation and audit share the transaction, so on the durable
// backend neither lands without the other.
package services

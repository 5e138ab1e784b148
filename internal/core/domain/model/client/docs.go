// Package client contains the Client aggregate.
//
// A client is identified by an opaque id and carries a display name and a
// CPF. The CPF is stored in cleaned form (digits only) and is unique across
// all clients; the uniqueness rule itself is enforced by the client service
// against storage, not by the aggregate.
package client

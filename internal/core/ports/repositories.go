package ports

import (
	"context"

	"ordertrack/internal/core/domain/model/audit"
	"ordertrack/internal/core/domain/model/client"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/product"
)

// Repository is the persistence contract shared by all aggregate repositories.
// Implementations exist for Postgres and for an in-memory store; both honor
// the same error contract so callers never branch on the backend.
type Repository[T any] interface {
	// Add persists a new aggregate. The aggregate must not already exist.
	Add(ctx context.Context, aggregate T) error

	// Update persists changes to an existing aggregate.
	// Returns an ObjectNotFoundError when no aggregate with that id exists.
	Update(ctx context.Context, aggregate T) error

	// Get retrieves an aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (T, error)

	// GetAll retrieves every stored aggregate in insertion order.
	GetAll(ctx context.Context) ([]T, error)

	// GetPaged retrieves one page of aggregates in insertion order along with
	// the total count. Page and pageSize are clamped via NormalizePage.
	GetPaged(ctx context.Context, page, pageSize int) ([]T, int64, error)

	// Delete removes an aggregate by id. Deleting an absent id is a no-op.
	Delete(ctx context.Context, id kernel.UUID) error
}

// ClientRepository defines the persistence contract for client aggregates.
type ClientRepository interface {
	Repository[*client.Client]

	// ExistsByCPF reports whether any client other than excludeID holds the
	// given cleaned CPF. Pass a zero UUID to check against all clients.
	ExistsByCPF(ctx context.Context, cpf string, excludeID kernel.UUID) (bool, error)

	// GetByCPF retrieves the client holding the given cleaned CPF.
	// Returns an ObjectNotFoundError when absent.
	GetByCPF(ctx context.Context, cpf string) (*client.Client, error)
}

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	Repository[*product.Product]
}

// OrderRepository defines the persistence contract for order aggregates.
//
// Update additionally enforces optimistic concurrency: the stored row must
// still carry the version the aggregate was loaded with, otherwise the update
// is refused with a VersionConflictError and nothing is written.
type OrderRepository interface {
	Repository[*order.Order]

	// GetByStatus retrieves all orders currently in the given status,
	// in insertion order.
	GetByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}

// AuditRepository defines the persistence contract for the audit trail.
// The trail is append-only: records are never updated or deleted, and reads
// return newest entries first.
type AuditRepository interface {
	// Add appends a record to the trail.
	Add(ctx context.Context, record *audit.Record) error

	// GetAll retrieves every record, newest first.
	GetAll(ctx context.Context) ([]*audit.Record, error)

	// GetPaged retrieves one page of records, newest first, along with the
	// total count. Page and pageSize are clamped via NormalizePage.
	GetPaged(ctx context.Context, page, pageSize int) ([]*audit.Record, int64, error)
}

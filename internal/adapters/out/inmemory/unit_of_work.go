package inmemory

import (
	"context"

	"ordertrack/internal/core/domain/model/client"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/product"
	"ordertrack/internal/core/ports"
)

// Database aggregates the in-memory stores shared by every unit of work
// created from the same factory. One Database instance backs the whole
// process when the volatile backend is selected.
type Database struct {
	clients  *store[*client.Client]
	products *store[*product.Product]
	orders   *store[*order.Order]
	audit    *auditLog
}

// NewDatabase creates an empty in-memory database.
func NewDatabase() *Database {
	return &Database{
		clients:  newStore[*client.Client](),
		products: newStore[*product.Product](),
		orders:   newStore[*order.Order](),
		audit:    &auditLog{},
	}
}

// UnitOfWorkFactory creates units of work bound to a shared Database.
type UnitOfWorkFactory struct {
	db *Database
}

// NewUnitOfWorkFactory creates a factory over the given database.
func NewUnitOfWorkFactory(db *Database) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{db: db}
}

// Create returns a new UnitOfWork sharing the factory's database.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{db: f.db}
}

// UnitOfWork is the volatile implementation of ports.UnitOfWork.
//
// Begin, Commit and Rollback are accepted so callers can drive both backends
// through one code path, but each repository call takes effect immediately.
// The memory backend offers no cross-call atomicity.
type UnitOfWork struct {
	db *Database
}

// Begin starts the unit of work. No-op on the volatile backend.
func (u *UnitOfWork) Begin(_ context.Context) error {
	return nil
}

// Commit completes the unit of work. No-op on the volatile backend.
func (u *UnitOfWork) Commit(_ context.Context) error {
	return nil
}

// Rollback abandons the unit of work. Changes already applied stay applied;
// the volatile backend cannot undo them.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	return nil
}

// ClientRepository returns a ClientRepository over the shared database.
func (u *UnitOfWork) ClientRepository() ports.ClientRepository {
	return newClientRepository(u.db.clients)
}

// ProductRepository returns a ProductRepository over the shared database.
func (u *UnitOfWork) ProductRepository() ports.ProductRepository {
	return newProductRepository(u.db.products)
}

// OrderRepository returns an OrderRepository over the shared database.
func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return newOrderRepository(u.db.orders)
}

// AuditRepository returns an AuditRepository over the shared database.
func (u *UnitOfWork) AuditRepository() ports.AuditRepository {
	return newAuditRepository(u.db.audit)
}

package inmemory

import (
	"context"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"
)

// OrderRepository is the in-memory implementation of ports.OrderRepository.
type OrderRepository struct {
	repo[*order.Order]
}

func newOrderRepository(store *store[*order.Order]) *OrderRepository {
	return &OrderRepository{repo[*order.Order]{
		store:     store,
		paramName: "orderId",
		id:        func(o *order.Order) kernel.UUID { return o.ID() },
		validate:  func(o *order.Order) error { return o.Validate() },
		clone: func(o *order.Order) (*order.Order, error) {
			return order.RestoreOrder(o.ID(), o.ClientID(), o.ProductIDs(), o.CreatedAt(), o.Status(), o.Version())
		},
	}}
}

// Update persists changes to an existing order under optimistic concurrency:
// the stored version must still match the version the aggregate was loaded
// with, otherwise nothing is written and a VersionConflictError is returned.
// On success the stored version is advanced by one and the aggregate is
// updated to match.
func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	found, err := r.store.update(aggregate.ID(), func(current *order.Order) (*order.Order, error) {
		if current.Version() != aggregate.Version() {
			return nil, errs.NewVersionConflictError("orderId", aggregate.ID().String(), aggregate.Version())
		}
		return order.RestoreOrder(
			aggregate.ID(),
			aggregate.ClientID(),
			aggregate.ProductIDs(),
			aggregate.CreatedAt(),
			aggregate.Status(),
			aggregate.Version()+1,
		)
	})
	if err != nil {
		return err
	}
	if !found {
		return errs.NewObjectNotFoundError("orderId", aggregate.ID().String())
	}

	aggregate.AdvanceVersion()
	return nil
}

// GetByStatus retrieves all orders in the given status, in insertion order.
func (r *OrderRepository) GetByStatus(_ context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	return r.cloneAll(r.store.find(func(o *order.Order) bool { return o.Status() == status }))
}

package services

import (
	"context"
	"errors"
	"log/slog"

	"ordertrack/internal/core/domain/model/audit"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// OrderService implements the order use cases: creation, edits, the lifecycle
// transitions and total derivation. Lifecycle transitions persist only when
// the state actually changed, so re-paying a paid order is a cheap no-op with
// no audit entry.
type OrderService struct {
	uowFactory ports.UnitOfWorkFactory
	log        *slog.Logger
}

// NewOrderService creates an OrderService. A nil logger falls back to the
// default slog logger.
func NewOrderService(uowFactory ports.UnitOfWorkFactory, log *slog.Logger) *OrderService {
	if log == nil {
		log = slog.Default()
	}
	return &OrderService{uowFactory: uowFactory, log: log}
}

// Create persists a new order in Created status together with its audit
// record. The client reference is checked for shape only, never for existence
// in client storage.
func (s *OrderService) Create(ctx context.Context, clientID kernel.UUID, productIDs []kernel.UUID) (*order.Order, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := order.NewOrder(kernel.NewUUID(), clientID, productIDs)
	if err != nil {
		return nil, classifyOrderInput(err)
	}

	if err := uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}
	if err := appendAudit(ctx, uow, o, audit.ActionCreated); err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "order created", "orderId", o.ID().String())
	return o, nil
}

// Get retrieves an order by id.
func (s *OrderService) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return s.uowFactory.Create().OrderRepository().Get(ctx, id)
}

// GetAll retrieves every order in insertion order.
func (s *OrderService) GetAll(ctx context.Context) ([]*order.Order, error) {
	return s.uowFactory.Create().OrderRepository().GetAll(ctx)
}

// GetByStatus retrieves all orders currently in the given status.
func (s *OrderService) GetByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	return s.uowFactory.Create().OrderRepository().GetByStatus(ctx, status)
}

// GetPaged retrieves one page of orders plus the total count.
func (s *OrderService) GetPaged(ctx context.Context, page, pageSize int) ([]*order.Order, int64, error) {
	return s.uowFactory.Create().OrderRepository().GetPaged(ctx, page, pageSize)
}

// Update replaces the order's client and product references, leaving status
// and creation time untouched. Returns an ObjectNotFoundError when the order
// does not exist.
func (s *OrderService) Update(ctx context.Context, id, clientID kernel.UUID, productIDs []kernel.UUID) (*order.Order, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := o.Edit(clientID, productIDs); err != nil {
		return nil, classifyOrderInput(err)
	}

	if err := uow.OrderRepository().Update(ctx, o); err != nil {
		return nil, err
	}
	if err := appendAudit(ctx, uow, o, audit.ActionUpdated); err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "order updated", "orderId", o.ID().String())
	return o, nil
}

// Pay transitions the order to Paid. Paying an already paid order is an
// idempotent no-op: nothing is persisted and no audit entry is written.
// Paying a canceled order fails with an InvalidTransitionError.
func (s *OrderService) Pay(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return s.transition(ctx, id, (*order.Order).Pay)
}

// Cancel transitions the order to Canceled. Canceling an already canceled
// order is an idempotent no-op. Canceling a paid order fails with an
// InvalidTransitionError.
func (s *OrderService) Cancel(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return s.transition(ctx, id, (*order.Order).Cancel)
}

func (s *OrderService) transition(
	ctx context.Context,
	id kernel.UUID,
	apply func(*order.Order) (bool, error),
) (*order.Order, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	changed, err := apply(o)
	if err != nil {
		return nil, err
	}
	if !changed {
		return o, nil
	}

	if err := uow.OrderRepository().Update(ctx, o); err != nil {
		return nil, err
	}
	if err := appendAudit(ctx, uow, o, audit.StatusChangedAction(o.Status().String())); err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "order status changed",
		"orderId", o.ID().String(), "status", o.Status().String())
	return o, nil
}

// Delete removes an order and records the deletion. Deleting an absent id is
// a silent no-op with no audit entry.
func (s *OrderService) Delete(ctx context.Context, id kernel.UUID) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	if err := uow.OrderRepository().Delete(ctx, id); err != nil {
		return err
	}
	if err := appendAudit(ctx, uow, o, audit.ActionDeleted); err != nil {
		return err
	}
	if err := uow.Commit(ctx); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "order deleted", "orderId", id.String())
	return nil
}

// classifyOrderInput reports an empty product sequence the same way the field
// validators report their rule violations.
func classifyOrderInput(err error) error {
	if errors.Is(err, order.ErrOrderHasNoProducts) {
		return errs.NewValidationError("order", []string{order.ErrOrderHasNoProducts.Error()})
	}
	return err
}

// GetTotal derives the order total. When resolve is nil, prices are looked
// up in product storage and references to missing products contribute zero.
// The total is computed on demand and never stored.
func (s *OrderService) GetTotal(ctx context.Context, id kernel.UUID, resolve order.PriceResolver) (decimal.Decimal, error) {
	uow := s.uowFactory.Create()

	o, err := uow.OrderRepository().Get(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}

	if resolve == nil {
		products := uow.ProductRepository()
		resolve = func(productID kernel.UUID) decimal.Decimal {
			p, err := products.Get(ctx, productID)
			if err != nil {
				return decimal.Zero
			}
			return p.Price()
		}
	}

	return o.Total(resolve), nil
}

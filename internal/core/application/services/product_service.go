package services

import (
	"context"
	"errors"
	"log/slog"

	"ordertrack/internal/core/domain/model/audit"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/product"
	"ordertrack/internal/core/domain/validation"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ProductService implements the product use cases: CRUD guarded by input
// validation, with every successful mutation recorded in the audit trail.
type ProductService struct {
	uowFactory ports.UnitOfWorkFactory
	validator  validation.Validator[validation.ProductInput]
	log        *slog.Logger
}

// NewProductService creates a ProductService. A nil logger falls back to the
// default slog logger.
func NewProductService(
	uowFactory ports.UnitOfWorkFactory,
	validator validation.Validator[validation.ProductInput],
	log *slog.Logger,
) *ProductService {
	if log == nil {
		log = slog.Default()
	}
	return &ProductService{uowFactory: uowFactory, validator: validator, log: log}
}

// Create validates the input and persists a new product together with its
// audit record.
func (s *ProductService) Create(ctx context.Context, name string, price decimal.Decimal) (*product.Product, error) {
	if result := s.validator.Validate(validation.ProductInput{Name: name, Price: price}); !result.IsValid() {
		return nil, errs.NewValidationError("product", result.Errors())
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	p, err := product.NewProduct(kernel.NewUUID(), name, price)
	if err != nil {
		return nil, err
	}

	if err := uow.ProductRepository().Add(ctx, p); err != nil {
		return nil, err
	}
	if err := appendAudit(ctx, uow, p, audit.ActionCreated); err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "product created", "productId", p.ID().String())
	return p, nil
}

// Get retrieves a product by id.
func (s *ProductService) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	return s.uowFactory.Create().ProductRepository().Get(ctx, id)
}

// GetAll retrieves every product in insertion order.
func (s *ProductService) GetAll(ctx context.Context) ([]*product.Product, error) {
	return s.uowFactory.Create().ProductRepository().GetAll(ctx)
}

// GetPaged retrieves one page of products plus the total count.
func (s *ProductService) GetPaged(ctx context.Context, page, pageSize int) ([]*product.Product, int64, error) {
	return s.uowFactory.Create().ProductRepository().GetPaged(ctx, page, pageSize)
}

// Update validates the input and persists the change with its audit record.
// Returns an ObjectNotFoundError when the product does not exist.
func (s *ProductService) Update(ctx context.Context, id kernel.UUID, name string, price decimal.Decimal) (*product.Product, error) {
	if result := s.validator.Validate(validation.ProductInput{Name: name, Price: price}); !result.IsValid() {
		return nil, errs.NewValidationError("product", result.Errors())
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	p, err := uow.ProductRepository().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := p.Edit(name, price); err != nil {
		return nil, err
	}

	if err := uow.ProductRepository().Update(ctx, p); err != nil {
		return nil, err
	}
	if err := appendAudit(ctx, uow, p, audit.ActionUpdated); err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "product updated", "productId", p.ID().String())
	return p, nil
}

// Delete removes a product and records the deletion. Deleting an absent id is
// a silent no-op with no audit entry.
func (s *ProductService) Delete(ctx context.Context, id kernel.UUID) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	p, err := uow.ProductRepository().Get(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	if err := uow.ProductRepository().Delete(ctx, id); err != nil {
		return err
	}
	if err := appendAudit(ctx, uow, p, audit.ActionDeleted); err != nil {
		return err
	}
	if err := uow.Commit(ctx); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "product deleted", "productId", id.String())
	return nil
}

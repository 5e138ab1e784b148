package orderrepo

import (
	"context"
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsNotUniqueErrorWithCause("order", aggregate.ID().String(), err)
		}
		return errs.NewStorageError("add order", err)
	}
	return nil
}

// Update saves an existing order under optimistic concurrency. The row must
// still carry the version the aggregate was loaded with; the write advances
// the stored version by one and the aggregate is updated to match. A stale
// version yields a VersionConflictError, an unknown id an ObjectNotFoundError.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("client_id", "product_ids", "status", "version").
		Updates(&dto)
	if result.Error != nil {
		return errs.NewStorageError("update order", result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ?", dto.ID).
			Count(&count).Error; err != nil {
			return errs.NewStorageError("update order", err)
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("orderId", aggregate.ID().String())
		}
		return errs.NewVersionConflictError("orderId", aggregate.ID().String(), aggregate.Version())
	}

	aggregate.AdvanceVersion()
	return nil
}

// Get retrieves an order by id.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, errs.NewStorageError("get order", err)
	}

	return toDomain(dto)
}

// GetAll retrieves every order in insertion order.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("seq").Find(&dtos).Error; err != nil {
		return nil, errs.NewStorageError("list orders", err)
	}

	return toDomainAll(dtos)
}

// GetPaged retrieves one page of orders in insertion order plus the total count.
func (r *GormOrderRepository) GetPaged(ctx context.Context, page, pageSize int) ([]*order.Order, int64, error) {
	page, pageSize = ports.NormalizePage(page, pageSize)

	var total int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Count(&total).Error; err != nil {
		return nil, 0, errs.NewStorageError("count orders", err)
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Order("seq").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&dtos).Error
	if err != nil {
		return nil, 0, errs.NewStorageError("list orders", err)
	}

	orders, err := toDomainAll(dtos)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// Delete removes an order by id. Deleting an absent id is a no-op.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes()).Error; err != nil {
		return errs.NewStorageError("delete order", err)
	}
	return nil
}

// GetByStatus retrieves all orders in the given status, in insertion order.
func (r *GormOrderRepository) GetByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("seq").Find(&dtos, "status = ?", int(status)).Error; err != nil {
		return nil, errs.NewStorageError("list orders by status", err)
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

package productrepo

import (
	"context"
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/product"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Add saves a new product to the database.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsNotUniqueErrorWithCause("product", aggregate.ID().String(), err)
		}
		return errs.NewStorageError("add product", err)
	}
	return nil
}

// Update saves an existing product to the database.
// Returns an ObjectNotFoundError when no product with that id exists.
func (r *GormProductRepository) Update(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "price").
		Updates(&dto)
	if result.Error != nil {
		return errs.NewStorageError("update product", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("productId", aggregate.ID().String())
	}
	return nil
}

// Get retrieves a product by id.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("productId", id.String())
		}
		return nil, errs.NewStorageError("get product", err)
	}

	return toDomain(dto)
}

// GetAll retrieves every product in insertion order.
func (r *GormProductRepository) GetAll(ctx context.Context) ([]*product.Product, error) {
	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Order("seq").Find(&dtos).Error; err != nil {
		return nil, errs.NewStorageError("list products", err)
	}

	return toDomainAll(dtos)
}

// GetPaged retrieves one page of products in insertion order plus the total count.
func (r *GormProductRepository) GetPaged(ctx context.Context, page, pageSize int) ([]*product.Product, int64, error) {
	page, pageSize = ports.NormalizePage(page, pageSize)

	var total int64
	if err := r.db.WithContext(ctx).Model(&ProductDTO{}).Count(&total).Error; err != nil {
		return nil, 0, errs.NewStorageError("count products", err)
	}

	var dtos []ProductDTO
	err := r.db.WithContext(ctx).
		Order("seq").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&dtos).Error
	if err != nil {
		return nil, 0, errs.NewStorageError("list products", err)
	}

	products, err := toDomainAll(dtos)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// Delete removes a product by id. Deleting an absent id is a no-op.
func (r *GormProductRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Delete(&ProductDTO{}, "id = ?", id.Bytes()).Error; err != nil {
		return errs.NewStorageError("delete product", err)
	}
	return nil
}

func toDomainAll(dtos []ProductDTO) ([]*product.Product, error) {
	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

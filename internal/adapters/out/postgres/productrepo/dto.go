// Package productrepo persists product aggregates in Postgres, handling the
// conversion between the domain model and its relational representation.
package productrepo

import (
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting product
// aggregates. Prices are stored as numeric to keep exact decimal values.
type ProductDTO struct {
	ID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name  string
	Price decimal.Decimal `gorm:"type:numeric(12,2)"`
	Seq   int64           `gorm:"autoIncrement;<-:false;index"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:    p.ID().Bytes(),
		Name:  p.Name(),
		Price: p.Price(),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.Price)
}

package product

import (
	"errors"
	"strings"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct or RestoreProduct factory methods.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// Product is the aggregate root for a sellable item.
//
// The aggregate keeps structural invariants only: a valid id, a non-empty
// trimmed name and a positive price. Length and upper-bound rules run in the
// validation framework before construction.
type Product struct {
	id    kernel.UUID
	name  string
	price decimal.Decimal

	isConstructed bool
}

// NewProduct creates a new Product. The name is trimmed before being stored.
func NewProduct(id kernel.UUID, name string, price decimal.Decimal) (*Product, error) {
	product := &Product{isConstructed: true}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setPrice(price),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// RestoreProduct reconstructs a Product from persistence.
func RestoreProduct(id kernel.UUID, name string, price decimal.Decimal) (*Product, error) {
	return NewProduct(id, name, price)
}

// Validate ensures the Product instance was properly constructed through a
// factory method.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's trimmed display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the product's current price.
func (p *Product) Price() decimal.Decimal {
	return p.price
}

// Edit replaces the product's name and price. The identity is untouched.
// The product is unchanged if any new value is invalid.
func (p *Product) Edit(name string, price decimal.Decimal) error {
	edited := *p
	if err := errors.Join(
		edited.setName(name),
		edited.setPrice(price),
	); err != nil {
		return err
	}

	*p = edited
	return nil
}

// AuditID returns the identity recorded in audit entries for this product.
func (p *Product) AuditID() kernel.UUID {
	return p.id
}

// AuditEntityType returns the entity type name recorded in audit entries.
func (p *Product) AuditEntityType() string {
	return "Product"
}

// AuditSnapshot returns a serializable point-in-time view of the product.
func (p *Product) AuditSnapshot() any {
	return productSnapshot{
		ID:    p.id.String(),
		Name:  p.name,
		Price: p.price.String(),
	}
}

// productSnapshot is the JSON shape stored in audit records.
type productSnapshot struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = trimmed
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if price.LessThanOrEqual(decimal.Zero) {
		return errs.NewValueIsInvalidError("price")
	}
	p.price = price
	return nil
}

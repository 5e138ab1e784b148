package validation

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultMaxPrice is the upper bound enforced by the default price validator
// configuration.
var DefaultMaxPrice = decimal.RequireFromString("999999.99")

// PriceValidator checks that a price is a positive decimal. Bounded
// configurations additionally enforce a maximum.
type PriceValidator struct {
	maxPrice decimal.Decimal
	bounded  bool
}

// NewPriceValidator creates the default configuration: positive and at most
// DefaultMaxPrice.
func NewPriceValidator() PriceValidator {
	return PriceValidator{maxPrice: DefaultMaxPrice, bounded: true}
}

// NewUnboundedPriceValidator creates a configuration that only requires the
// price to be positive.
func NewUnboundedPriceValidator() PriceValidator {
	return PriceValidator{}
}

// Validate reports every price rule the value violates.
func (v PriceValidator) Validate(price decimal.Decimal) Result {
	var errors []string
	if price.LessThanOrEqual(decimal.Zero) {
		errors = append(errors, "price must be greater than zero")
	}
	if v.bounded && price.GreaterThan(v.maxPrice) {
		errors = append(errors, fmt.Sprintf("price must be at most %s", v.maxPrice.String()))
	}

	if len(errors) > 0 {
		return Failure(errors...)
	}
	return Success()
}

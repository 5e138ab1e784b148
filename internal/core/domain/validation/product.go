package validation

import "github.com/shopspring/decimal"

// ProductInput is the cross-field input shape checked before a product is
// created or updated.
type ProductInput struct {
	Name  string
	Price decimal.Decimal
}

// ProductValidator composes the name and price validators into the
// entity-level product check. All violations from both validators are
// reported together.
type ProductValidator struct {
	nameValidator  Validator[string]
	priceValidator Validator[decimal.Decimal]
}

// NewProductValidator creates a ProductValidator from its primitive validators.
func NewProductValidator(nameValidator Validator[string], priceValidator Validator[decimal.Decimal]) ProductValidator {
	return ProductValidator{
		nameValidator:  nameValidator,
		priceValidator: priceValidator,
	}
}

// NewDefaultProductValidator creates the standard configuration: product name
// length bounds and the bounded price validator.
func NewDefaultProductValidator() ProductValidator {
	return NewProductValidator(NewNameValidator(ProductNameMaxLength), NewPriceValidator())
}

// Validate runs every primitive validator and concatenates all errors.
func (v ProductValidator) Validate(input ProductInput) Result {
	var allErrors []string

	if result := v.nameValidator.Validate(input.Name); !result.IsValid() {
		allErrors = append(allErrors, result.Errors()...)
	}
	if result := v.priceValidator.Validate(input.Price); !result.IsValid() {
		allErrors = append(allErrors, result.Errors()...)
	}

	if len(allErrors) > 0 {
		return Failure(allErrors...)
	}
	return Success()
}

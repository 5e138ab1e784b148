package validation_test

import (
	"testing"

	"ordertrack/internal/core/domain/validation"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientValidator(t *testing.T) {
	validator := validation.NewDefaultClientValidator()

	t.Run("should accept valid client input", func(t *testing.T) {
		result := validator.Validate(validation.ClientInput{
			Name: "Maria Silva",
			CPF:  "529.982.247-25",
		})

		assert.True(t, result.IsValid())
	})

	t.Run("should report violations from every field at once", func(t *testing.T) {
		result := validator.Validate(validation.ClientInput{
			Name: "J",
			CPF:  "123",
		})

		require.False(t, result.IsValid())
		assert.Equal(t, []string{
			"name must have at least 2 characters",
			"cpf must contain exactly 11 digits",
		}, result.Errors())
	})

	t.Run("should report only the failing field", func(t *testing.T) {
		result := validator.Validate(validation.ClientInput{
			Name: "Maria Silva",
			CPF:  "52998224726",
		})

		require.False(t, result.IsValid())
		assert.Equal(t, []string{"cpf has invalid check digits"}, result.Errors())
	})
}

func TestProductValidator(t *testing.T) {
	validator := validation.NewDefaultProductValidator()

	t.Run("should accept valid product input", func(t *testing.T) {
		result := validator.Validate(validation.ProductInput{
			Name:  "Espresso Machine",
			Price: decimal.RequireFromString("399.90"),
		})

		assert.True(t, result.IsValid())
	})

	t.Run("should report violations from every field at once", func(t *testing.T) {
		result := validator.Validate(validation.ProductInput{
			Name:  "",
			Price: decimal.Zero,
		})

		require.False(t, result.IsValid())
		assert.Equal(t, []string{
			"name is required",
			"price must be greater than zero",
		}, result.Errors())
	})
}

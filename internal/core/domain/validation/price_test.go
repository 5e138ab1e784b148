package validation_test

import (
	"testing"

	"ordertrack/internal/core/domain/validation"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceValidator(t *testing.T) {
	validator := validation.NewPriceValidator()

	t.Run("should accept positive price", func(t *testing.T) {
		result := validator.Validate(decimal.RequireFromString("10.50"))

		assert.True(t, result.IsValid())
		assert.Empty(t, result.Errors())
	})

	t.Run("should accept price at upper bound", func(t *testing.T) {
		result := validator.Validate(validation.DefaultMaxPrice)

		assert.True(t, result.IsValid())
	})

	t.Run("should reject zero price", func(t *testing.T) {
		result := validator.Validate(decimal.Zero)

		require.False(t, result.IsValid())
		assert.Equal(t, []string{"price must be greater than zero"}, result.Errors())
	})

	t.Run("should reject negative price", func(t *testing.T) {
		result := validator.Validate(decimal.RequireFromString("-0.01"))

		require.False(t, result.IsValid())
		assert.Equal(t, []string{"price must be greater than zero"}, result.Errors())
	})

	t.Run("should reject price above upper bound", func(t *testing.T) {
		result := validator.Validate(decimal.RequireFromString("1000000.00"))

		require.False(t, result.IsValid())
		assert.Equal(t, []string{"price must be at most 999999.99"}, result.Errors())
	})

	t.Run("unbounded configuration should accept any positive price", func(t *testing.T) {
		unbounded := validation.NewUnboundedPriceValidator()
		result := unbounded.Validate(decimal.RequireFromString("123456789.99"))

		assert.True(t, result.IsValid())
	})
}

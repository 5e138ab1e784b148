package validation_test

import (
	"strings"
	"testing"

	"ordertrack/internal/core/domain/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanCPF(t *testing.T) {
	t.Run("should strip punctuation", func(t *testing.T) {
		assert.Equal(t, "52998224725", validation.CleanCPF("529.982.247-25"))
	})

	t.Run("should strip spaces and letters", func(t *testing.T) {
		assert.Equal(t, "52998224725", validation.CleanCPF(" 529 982 247 25 cpf"))
	})

	t.Run("should leave digits untouched", func(t *testing.T) {
		assert.Equal(t, "52998224725", validation.CleanCPF("52998224725"))
	})
}

func TestCPFValidator(t *testing.T) {
	validator := validation.NewCPFValidator()

	t.Run("should accept valid CPF", func(t *testing.T) {
		result := validator.Validate("52998224725")

		assert.True(t, result.IsValid())
		assert.Empty(t, result.Errors())
	})

	t.Run("should accept valid formatted CPF", func(t *testing.T) {
		result := validator.Validate("529.982.247-25")

		assert.True(t, result.IsValid())
	})

	t.Run("should accept another known valid CPF", func(t *testing.T) {
		result := validator.Validate("111.444.777-35")

		assert.True(t, result.IsValid())
	})

	t.Run("should reject empty CPF", func(t *testing.T) {
		result := validator.Validate("   ")

		require.False(t, result.IsValid())
		assert.Equal(t, []string{"cpf is required"}, result.Errors())
	})

	t.Run("should reject wrong length", func(t *testing.T) {
		result := validator.Validate("5299822472")

		require.False(t, result.IsValid())
		assert.Contains(t, result.Errors(), "cpf must contain exactly 11 digits")
	})

	t.Run("should reject all identical digits", func(t *testing.T) {
		result := validator.Validate("111.111.111-11")

		require.False(t, result.IsValid())
		assert.Contains(t, result.Errors(), "cpf cannot have all digits identical")
	})

	t.Run("should reject every repeated digit sequence", func(t *testing.T) {
		// Repeated digit sequences satisfy the checksum, so the identical
		// digit rule is the only thing rejecting them.
		for d := byte('0'); d <= '9'; d++ {
			cpf := strings.Repeat(string(d), 11)
			result := validator.Validate(cpf)
			require.False(t, result.IsValid(), cpf)
			assert.Contains(t, result.Errors(), "cpf cannot have all digits identical")
		}
	})

	t.Run("should reject invalid check digits", func(t *testing.T) {
		result := validator.Validate("52998224726")

		require.False(t, result.IsValid())
		assert.Equal(t, []string{"cpf has invalid check digits"}, result.Errors())
	})

	t.Run("should reject any single digit perturbation of a valid CPF", func(t *testing.T) {
		valid := "52998224725"
		for pos := 0; pos < len(valid); pos++ {
			for d := byte('0'); d <= '9'; d++ {
				if valid[pos] == d {
					continue
				}
				perturbed := valid[:pos] + string(d) + valid[pos+1:]
				result := validator.Validate(perturbed)
				assert.False(t, result.IsValid(), "perturbed CPF %s should be invalid", perturbed)
			}
		}
	})

	t.Run("should report every violated rule", func(t *testing.T) {
		// Ten identical digits: wrong length, all identical once padded is
		// not reported, but length violation must be.
		result := validator.Validate("123")

		require.False(t, result.IsValid())
		assert.Equal(t, []string{"cpf must contain exactly 11 digits"}, result.Errors())
	})

	t.Run("should validate CPFs generated by the checksum algorithm", func(t *testing.T) {
		for _, base := range []string{"123456789", "987654321", "529982247", "000000019"} {
			cpf := withCheckDigits(base)
			result := validator.Validate(cpf)
			assert.True(t, result.IsValid(), "generated CPF %s should be valid", cpf)
		}
	})
}

// withCheckDigits appends the two check digits to a nine-digit base using the
// reference weighted-sum mod 11 algorithm.
func withCheckDigits(base string) string {
	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(base[i]-'0') * (10 - i)
	}
	first := (sum * 10) % 11
	if first == 10 {
		first = 0
	}

	withFirst := base + string(rune('0'+first))
	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(withFirst[i]-'0') * (11 - i)
	}
	second := (sum * 10) % 11
	if second == 10 {
		second = 0
	}

	return withFirst + string(rune('0'+second))
}

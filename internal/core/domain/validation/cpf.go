package validation

import (
	"regexp"
	"strings"
)

var nonDigits = regexp.MustCompile(`\D`)

// cpfLength is the number of digits in a CPF: nine base digits plus two
// check digits.
const cpfLength = 11

// CleanCPF strips every non-digit character from a CPF, so that formatted
// input like "529.982.247-25" normalizes to "52998224725". Uniqueness checks
// and persistence always operate on the cleaned form.
func CleanCPF(cpf string) string {
	return nonDigits.ReplaceAllString(cpf, "")
}

// CPFValidator checks a Brazilian CPF number: exactly eleven digits after
// cleaning, not all identical, and both check digits consistent with the
// weighted-sum mod 11 algorithm. Every violated rule is reported.
type CPFValidator struct{}

// NewCPFValidator creates a CPFValidator.
func NewCPFValidator() CPFValidator {
	return CPFValidator{}
}

// Validate reports every CPF rule the value violates.
func (v CPFValidator) Validate(cpf string) Result {
	if strings.TrimSpace(cpf) == "" {
		return Failure("cpf is required")
	}

	clean := CleanCPF(cpf)

	var errors []string
	if len(clean) != cpfLength {
		errors = append(errors, "cpf must contain exactly 11 digits")
	}
	if len(clean) == cpfLength && allDigitsIdentical(clean) {
		errors = append(errors, "cpf cannot have all digits identical")
	}
	if len(clean) == cpfLength && !hasValidCheckDigits(clean) {
		errors = append(errors, "cpf has invalid check digits")
	}

	if len(errors) > 0 {
		return Failure(errors...)
	}
	return Success()
}

// allDigitsIdentical reports whether every digit of a cleaned CPF equals the
// first one. Sequences like "11111111111" satisfy the checksum but are not
// valid CPFs.
func allDigitsIdentical(cpf string) bool {
	for i := 1; i < len(cpf); i++ {
		if cpf[i] != cpf[0] {
			return false
		}
	}
	return true
}

// hasValidCheckDigits verifies positions 10 and 11 of a cleaned CPF.
//
// The first check digit weighs digits 1-9 with 10 down to 2; the second weighs
// digits 1-10 with 11 down to 2. In both cases the digit is (sum*10) mod 11,
// with a result of 10 mapped to 0.
func hasValidCheckDigits(cpf string) bool {
	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(cpf[i]-'0') * (10 - i)
	}
	first := (sum * 10) % 11
	if first == 10 {
		first = 0
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(cpf[i]-'0') * (11 - i)
	}
	second := (sum * 10) % 11
	if second == 10 {
		second = 0
	}

	return int(cpf[9]-'0') == first && int(cpf[10]-'0') == second
}

package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// NameMinLength is the minimum length of any entity name after trimming.
	NameMinLength = 2
	// ClientNameMaxLength is the maximum length of a client name.
	ClientNameMaxLength = 100
	// ProductNameMaxLength is the maximum length of a product name.
	ProductNameMaxLength = 200
)

// NameValidator checks that a name is present and within length bounds after
// trimming surrounding whitespace. Length is counted in runes.
type NameValidator struct {
	maxLength int
}

// NewNameValidator creates a NameValidator with the given maximum length.
func NewNameValidator(maxLength int) NameValidator {
	return NameValidator{maxLength: maxLength}
}

// Validate reports every length rule the name violates.
func (v NameValidator) Validate(name string) Result {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Failure("name is required")
	}

	var errors []string
	length := utf8.RuneCountInString(trimmed)
	if length < NameMinLength {
		errors = append(errors, fmt.Sprintf("name must have at least %d characters", NameMinLength))
	}
	if length > v.maxLength {
		errors = append(errors, fmt.Sprintf("name must have at most %d characters", v.maxLength))
	}

	if len(errors) > 0 {
		return Failure(errors...)
	}
	return Success()
}

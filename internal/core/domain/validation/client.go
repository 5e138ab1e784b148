package validation

// ClientInput is the cross-field input shape checked before a client is
// created or updated.
type ClientInput struct {
	Name string
	CPF  string
}

// ClientValidator composes the name and CPF validators into the entity-level
// client check. All violations from both validators are reported together.
type ClientValidator struct {
	nameValidator Validator[string]
	cpfValidator  Validator[string]
}

// NewClientValidator creates a ClientValidator from its primitive validators.
func NewClientValidator(nameValidator, cpfValidator Validator[string]) ClientValidator {
	return ClientValidator{
		nameValidator: nameValidator,
		cpfValidator:  cpfValidator,
	}
}

// NewDefaultClientValidator creates the standard configuration: client name
// length bounds and full CPF checksum validation.
func NewDefaultClientValidator() ClientValidator {
	return NewClientValidator(NewNameValidator(ClientNameMaxLength), NewCPFValidator())
}

// Validate runs every primitive validator and concatenates all errors.
func (v ClientValidator) Validate(input ClientInput) Result {
	var allErrors []string

	if result := v.nameValidator.Validate(input.Name); !result.IsValid() {
		allErrors = append(allErrors, result.Errors()...)
	}
	if result := v.cpfValidator.Validate(input.CPF); !result.IsValid() {
		allErrors = append(allErrors, result.Errors()...)
	}

	if len(allErrors) > 0 {
		return Failure(allErrors...)
	}
	return Success()
}

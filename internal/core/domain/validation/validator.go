package validation

// Result is the outcome of running a validator. It is never partially valid:
// either the error list is empty and the result is valid, or it is non-empty
// and the result is invalid.
type Result struct {
	errors []string
}

// Success returns a valid Result with no errors.
func Success() Result {
	return Result{}
}

// Failure returns an invalid Result carrying the given error messages
// in order.
func Failure(errors ...string) Result {
	return Result{errors: errors}
}

// IsValid reports whether the validated value passed every rule.
func (r Result) IsValid() bool {
	return len(r.errors) == 0
}

// Errors returns the ordered list of violated rules. The returned slice is a
// copy; mutating it does not affect the Result.
func (r Result) Errors() []string {
	out := make([]string, len(r.errors))
	copy(out, r.errors)
	return out
}

// Validator checks a single value and reports every rule it violates.
// Implementations must be pure: no side effects, no storage access.
type Validator[T any] interface {
	Validate(value T) Result
}

// CompositeValidator runs an ordered set of validators over the same input and
// unions their errors in registration order. It never short-circuits, so the
// result lists every violation, not just the first.
type CompositeValidator[T any] struct {
	validators []Validator[T]
}

// NewCompositeValidator creates a CompositeValidator from the given validators.
func NewCompositeValidator[T any](validators ...Validator[T]) *CompositeValidator[T] {
	return &CompositeValidator[T]{validators: validators}
}

// Add appends a validator and returns the composite for chaining.
func (c *CompositeValidator[T]) Add(validator Validator[T]) *CompositeValidator[T] {
	c.validators = append(c.validators, validator)
	return c
}

// Validate runs every registered validator and concatenates all errors.
func (c *CompositeValidator[T]) Validate(value T) Result {
	var allErrors []string
	for _, v := range c.validators {
		if result := v.Validate(value); !result.IsValid() {
			allErrors = append(allErrors, result.Errors()...)
		}
	}
	if len(allErrors) > 0 {
		return Failure(allErrors...)
	}
	return Success()
}

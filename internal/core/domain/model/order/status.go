package order

import (
	"errors"
	"fmt"

	"ordertrack/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Created ──┬──> Paid
//	          │
//	          └──> Canceled
//
// Paid and Canceled are terminal and mutually exclusive. Re-entering the
// current terminal state is an idempotent no-op.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first created.
	Created

	// Paid indicates the order has been paid. Terminal.
	Paid

	// Canceled indicates the order has been canceled. Terminal.
	Canceled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Created:  "Created",
		Paid:     "Paid",
		Canceled: "Canceled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:  "Created",
		Paid:     "Paid",
		Canceled: "Canceled",
	}
}

// StatusFromString parses a status name, case-sensitively, into a valid Status.
// Used when reconstructing statuses from external input such as route parameters.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Created, Paid, Canceled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == Paid || s == Canceled
}

// Pay transitions the status to Paid.
//
// Valid transitions:
//   - Created -> Paid
//   - Paid -> Paid (idempotent no-op)
//
// Invalid transitions:
//   - Canceled -> Paid (terminal states are mutually exclusive)
//   - Unknown -> Paid (invalid initial state)
//
// Returns:
//   - (Paid, nil) on valid transition, including the idempotent case
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Pay() (Status, error) {
	switch s {
	case Created, Paid:
		return Paid, nil
	case Canceled:
		return 0, errs.NewInvalidTransitionErrorWithCause(
			Canceled.String(),
			Paid.String(),
			errors.New("a canceled order cannot be paid"),
		)
	default:
		return 0, s.Validate()
	}
}

// Cancel transitions the status to Canceled.
//
// Valid transitions:
//   - Created -> Canceled
//   - Canceled -> Canceled (idempotent no-op)
//
// Invalid transitions:
//   - Paid -> Canceled (terminal states are mutually exclusive)
//   - Unknown -> Canceled (invalid initial state)
//
// Returns:
//   - (Canceled, nil) on valid transition, including the idempotent case
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Cancel() (Status, error) {
	switch s {
	case Created, Canceled:
		return Canceled, nil
	case Paid:
		return 0, errs.NewInvalidTransitionErrorWithCause(
			Paid.String(),
			Canceled.String(),
			errors.New("a paid order cannot be canceled"),
		)
	default:
		return 0, s.Validate()
	}
}

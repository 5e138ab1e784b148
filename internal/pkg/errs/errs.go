package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for error classification via errors.Is.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsRequired   = errors.New("value is required")
	ErrValidationFailed  = errors.New("validation failed")
	ErrValueIsNotUnique  = errors.New("value is not unique")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrVersionConflict   = errors.New("version conflict")
	ErrStorageFailure    = errors.New("storage failure")
)

// sanitize collapses newlines so error messages stay on a single log line.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}

// ObjectNotFoundError indicates that an object with the given ID does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value is malformed or out of bounds.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValidationError indicates that input failed one or more validation rules.
// Violations holds every violated rule in validator-registration order,
// not only the first one.
type ValidationError struct {
	ParamName  string
	Violations []string
	Cause      error
}

// NewValidationError creates a ValidationError carrying the full list of violations.
func NewValidationError(paramName string, violations []string) *ValidationError {
	return &ValidationError{ParamName: paramName, Violations: violations}
}

// NewValidationErrorWithCause creates a ValidationError wrapping an underlying cause.
func NewValidationErrorWithCause(paramName string, violations []string, cause error) *ValidationError {
	return &ValidationError{ParamName: paramName, Violations: violations, Cause: cause}
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s: %s (cause: %s)",
			ErrValidationFailed, e.ParamName, strings.Join(e.Violations, "; "), e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s: %s",
		ErrValidationFailed, e.ParamName, strings.Join(e.Violations, "; ")))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// ValueIsNotUniqueError indicates a uniqueness constraint violation,
// e.g. a CPF that already belongs to another client.
type ValueIsNotUniqueError struct {
	ParamName string
	Value     any
	Cause     error
}

// NewValueIsNotUniqueError creates a ValueIsNotUniqueError without a cause.
func NewValueIsNotUniqueError(paramName string, value any) *ValueIsNotUniqueError {
	return &ValueIsNotUniqueError{ParamName: paramName, Value: value}
}

// NewValueIsNotUniqueErrorWithCause creates a ValueIsNotUniqueError wrapping an underlying cause.
func NewValueIsNotUniqueErrorWithCause(paramName string, value any, cause error) *ValueIsNotUniqueError {
	return &ValueIsNotUniqueError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *ValueIsNotUniqueError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, value is: %s (cause: %s)",
			ErrValueIsNotUnique, e.ParamName, e.Value, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s %s", ErrValueIsNotUnique, e.ParamName, e.Value))
}

func (e *ValueIsNotUniqueError) Unwrap() error {
	return ErrValueIsNotUnique
}

// InvalidTransitionError indicates an illegal state machine transition,
// e.g. paying an order that was already canceled.
type InvalidTransitionError struct {
	From  string
	To    string
	Cause error
}

// NewInvalidTransitionError creates an InvalidTransitionError without a cause.
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

// NewInvalidTransitionErrorWithCause creates an InvalidTransitionError wrapping an underlying cause.
func NewInvalidTransitionErrorWithCause(from, to string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s -> %s (cause: %s)",
			ErrInvalidTransition, e.From, e.To, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// VersionConflictError indicates a lost optimistic concurrency race:
// the entity was modified by a concurrent writer since it was read.
type VersionConflictError struct {
	ParamName string
	ID        any
	Version   int
	Cause     error
}

// NewVersionConflictError creates a VersionConflictError without a cause.
func NewVersionConflictError(paramName string, id any, version int) *VersionConflictError {
	return &VersionConflictError{ParamName: paramName, ID: id, Version: version}
}

// NewVersionConflictErrorWithCause creates a VersionConflictError wrapping an underlying cause.
func NewVersionConflictErrorWithCause(paramName string, id any, version int, cause error) *VersionConflictError {
	return &VersionConflictError{ParamName: paramName, ID: id, Version: version, Cause: cause}
}

func (e *VersionConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s, version is: %d (cause: %s)",
			ErrVersionConflict, e.ParamName, e.ID, e.Version, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s %s at version %d", ErrVersionConflict, e.ParamName, e.ID, e.Version))
}

func (e *VersionConflictError) Unwrap() error {
	return ErrVersionConflict
}

// StorageError indicates an infrastructure failure in the storage layer.
// It is never swallowed and never retried inside the core.
type StorageError struct {
	Op    string
	Cause error
}

// NewStorageError creates a StorageError for the given storage operation.
func NewStorageError(op string, cause error) *StorageError {
	return &StorageError{Op: op, Cause: cause}
}

func (e *StorageError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrStorageFailure, e.Op, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrStorageFailure, e.Op))
}

func (e *StorageError) Unwrap() error {
	return ErrStorageFailure
}

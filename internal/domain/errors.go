package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Weapon errors
	ErrMsgWeaponNotFound = "weapon configuration not found"

	// Validation errors
	ErrMsgValidation = "validation failed"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgCorruptedSlot = "corrupted storage slot"
	ErrMsgUnknownDriver = "unknown database driver"

	// Auth errors
	ErrMsgUnauthorized = "unauthorized"
	ErrMsgForbidden    = "forbidden"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrWeaponNotFound = errors.New(ErrMsgWeaponNotFound)

	// ErrValidation is matched by every *ValidationError through errors.Is
	ErrValidation = errors.New(ErrMsgValidation)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
	ErrCorruptedSlot = errors.New(ErrMsgCorruptedSlot)
	ErrUnknownDriver = errors.New(ErrMsgUnknownDriver)

	ErrUnauthorized = errors.New(ErrMsgUnauthorized)
	ErrForbidden    = errors.New(ErrMsgForbidden)
)

// ValidationError reports a field outside its documented range or shape.
// It is always client-caused and its message is safe to return to the caller.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a ValidationError for the given field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is makes errors.Is(err, ErrValidation) true for any ValidationError
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Package error defines domain-specific errors for the SmartSpend application.
package error

import "errors"

// Ledger entry domain errors.
var (
	// ErrEntryNotFound is returned when an entry is not found in the system.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrNotAuthorizedToAccessEntry is returned when a user tries to access an entry they don't own.
	ErrNotAuthorizedToAccessEntry = errors.New("not authorized to access this entry")

	// ErrInvalidEntryDirection is returned when the direction is not income or expense.
	ErrInvalidEntryDirection = errors.New("invalid entry direction")

	// ErrInvalidEntryAmount is returned when the amount is zero or negative.
	ErrInvalidEntryAmount = errors.New("entry amount must be positive")

	// ErrDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description exceeds maximum length")

	// ErrNotesTooLong is returned when the notes exceed the maximum length.
	ErrNotesTooLong = errors.New("notes exceed maximum length")

	// ErrBudgetApplyFailed is returned when the budget spend could not be
	// applied after the configured number of retries.
	ErrBudgetApplyFailed = errors.New("failed to apply entry to budget")
)

// EntryErrorCode defines error codes for ledger entry errors.
// Format: LEDG-XXYYYY where XX is category and YYYY is specific error.
type EntryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDirection   EntryErrorCode = "LEDG-010001"
	ErrCodeInvalidAmount      EntryErrorCode = "LEDG-010002"
	ErrCodeDescriptionTooLong EntryErrorCode = "LEDG-010003"
	ErrCodeNotesTooLong       EntryErrorCode = "LEDG-010004"
	ErrCodeEntryMissingFields EntryErrorCode = "LEDG-010005"

	// Access errors (02XXXX)
	ErrCodeEntryNotFound     EntryErrorCode = "LEDG-020001"
	ErrCodeEntryAccessDenied EntryErrorCode = "LEDG-020002"

	// Pipeline errors (03XXXX)
	ErrCodeBudgetApplyFailed EntryErrorCode = "LEDG-030001"
)

// EntryError represents a ledger entry error with code and message.
type EntryError struct {
	Code    EntryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EntryError) Unwrap() error {
	return e.Err
}

// NewEntryError creates a new EntryError with the given code and message.
func NewEntryError(code EntryErrorCode, message string, err error) *EntryError {
	return &EntryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

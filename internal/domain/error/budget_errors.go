// Package error defines domain-specific errors for the SmartSpend application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrBudgetAlreadyExists is returned when a budget for the same
	// category and period already exists for the user.
	ErrBudgetAlreadyExists = errors.New("budget already exists for this category and period")

	// ErrNotAuthorizedToAccessBudget is returned when a user tries to access a budget they don't own.
	ErrNotAuthorizedToAccessBudget = errors.New("not authorized to access this budget")

	// ErrInvalidBudgetLimit is returned when the monthly limit is zero or negative.
	ErrInvalidBudgetLimit = errors.New("monthly limit must be positive")

	// ErrInvalidBudgetPeriod is returned when the month or year is out of range.
	ErrInvalidBudgetPeriod = errors.New("invalid budget period")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BDG-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidLimit        BudgetErrorCode = "BDG-010001"
	ErrCodeInvalidPeriod       BudgetErrorCode = "BDG-010002"
	ErrCodeBudgetMissingFields BudgetErrorCode = "BDG-010003"

	// Access errors (02XXXX)
	ErrCodeBudgetNotFound     BudgetErrorCode = "BDG-020001"
	ErrCodeBudgetAccessDenied BudgetErrorCode = "BDG-020002"

	// Conflict errors (03XXXX)
	ErrCodeBudgetExists BudgetErrorCode = "BDG-030001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Package error defines domain-specific errors for the SmartSpend application.
package error

import "errors"

// Field encryption domain errors.
var (
	// ErrDataIntegrity is returned when an encrypted payload fails
	// authentication during decryption. It must never be swallowed:
	// corrupted data is surfaced, not returned as empty.
	ErrDataIntegrity = errors.New("encrypted data failed integrity check")

	// ErrMalformedCiphertext is returned when a stored payload is not a
	// well-formed encrypted value (bad encoding or truncated).
	ErrMalformedCiphertext = errors.New("malformed encrypted payload")
)

// SecurityErrorCode defines error codes for field encryption errors.
// Format: SEC-XXYYYY where XX is category and YYYY is specific error.
type SecurityErrorCode string

const (
	ErrCodeDataIntegrity       SecurityErrorCode = "SEC-010001"
	ErrCodeMalformedCiphertext SecurityErrorCode = "SEC-010002"
	ErrCodeEncryptionFailed    SecurityErrorCode = "SEC-010003"
)

// SecurityError represents a field encryption error with code and message.
type SecurityError struct {
	Code    SecurityErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SecurityError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SecurityError) Unwrap() error {
	return e.Err
}

// NewSecurityError creates a new SecurityError with the given code and message.
func NewSecurityError(code SecurityErrorCode, message string, err error) *SecurityError {
	return &SecurityError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

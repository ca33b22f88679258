package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a rejected theme action
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Retryable interface for errors that can be retried
type Retryable interface {
	IsRetryable() bool
}

const (
	ErrCodeMissingRequiredField = "MISSING_REQUIRED_FIELD"
	ErrCodeInvalidField         = "INVALID_FIELD"
)

func NewMissingRequiredFieldError(field string) *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingRequiredField,
		Message: fmt.Sprintf("%s is required", field),
	}
}

func NewInvalidFieldError(field string, value any, rule string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidField,
		Message: fmt.Sprintf("%s %v does not satisfy %s", field, value, rule),
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// IsDomainError returns the DomainError in err's chain, if any.
func IsDomainError(err error) (*DomainError, bool) {
	var domainErr *DomainError
	ok := errors.As(err, &domainErr)
	return domainErr, ok
}

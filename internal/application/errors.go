package application

import (
	"errors"
	"fmt"
	"net/http"
)

// APPLICATION-LEVEL ERRORS (Orchestration)

type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeTimeout         = "TIMEOUT"
	ErrCodeInternal        = "INTERNAL_ERROR"
	ErrCodeInvalidInput    = "INVALID_INPUT"
	ErrCodeInvalidTemplate = "INVALID_TEMPLATE"
	ErrCodeUnavailable     = "STOREFRONT_UNAVAILABLE"
)

func NewTimeoutError() *ServiceError {
	return &ServiceError{
		Code:       ErrCodeTimeout,
		Message:    "Request timed out",
		HTTPStatus: http.StatusGatewayTimeout,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "An internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewInvalidInputError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInvalidInput,
		Message:    "Invalid input",
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

func NewInvalidTemplateError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInvalidTemplate,
		Message:    "Invalid money format",
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

func NewUnavailableError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeUnavailable,
		Message:    "Storefront is unavailable",
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}

package application

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/DanielPopoola/mdamascus-theme/internal/domain"
	"github.com/DanielPopoola/mdamascus-theme/internal/infrastructure/storefront"
	"github.com/DanielPopoola/mdamascus-theme/internal/money"
)

// ErrorCategory represents the nature of an error for logging and responses
type ErrorCategory string

const (
	CategoryTransient      ErrorCategory = "TRANSIENT"
	CategoryPermanent      ErrorCategory = "PERMANENT"
	CategoryBusinessRule   ErrorCategory = "BUSINESS_RULE"
	CategoryClientError    ErrorCategory = "CLIENT_ERROR"
	CategoryInfrastructure ErrorCategory = "INFRASTRUCTURE"
)

// CategorizeError determines the error category
func CategorizeError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return CategoryTransient
	}

	if errors.Is(err, money.ErrNoPlaceholder) || errors.Is(err, money.ErrUnknownKeyword) {
		return CategoryClientError
	}

	if _, ok := domain.IsDomainError(err); ok {
		return CategoryClientError
	}

	if svcErr, ok := IsServiceError(err); ok {
		switch svcErr.Code {
		case ErrCodeInvalidInput, ErrCodeInvalidTemplate:
			return CategoryClientError
		case ErrCodeInternal:
			return CategoryInfrastructure
		case ErrCodeTimeout, ErrCodeUnavailable:
			return CategoryTransient
		}
	}

	// Cart rejections (stock limits, unavailable variants) are the shopper's to fix
	if _, ok := storefront.IsCartError(err); ok {
		return CategoryBusinessRule
	}

	if sfErr, ok := storefront.IsStorefrontError(err); ok {
		if sfErr.IsRetryable() {
			return CategoryTransient
		}
		switch sfErr.StatusCode {
		case http.StatusBadRequest, http.StatusNotFound:
			return CategoryClientError
		default:
			return CategoryPermanent
		}
	}

	return CategoryTransient
}

// IsRetryable returns true if the error category suggests retry
func IsRetryable(err error) bool {
	category := CategorizeError(err)
	return category == CategoryTransient || category == CategoryInfrastructure
}

// ToHTTPStatus maps error to the status the theme backend answers with
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}

	switch {
	case errors.Is(err, money.ErrNoPlaceholder),
		errors.Is(err, money.ErrUnknownKeyword):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	}

	if _, ok := domain.IsDomainError(err); ok {
		return http.StatusBadRequest
	}

	if _, ok := storefront.IsCartError(err); ok {
		return http.StatusUnprocessableEntity
	}

	if _, ok := storefront.IsStorefrontError(err); ok {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}

// ToErrorCode clear error code for API responses
func ToErrorCode(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Code
	}

	if errors.Is(err, money.ErrNoPlaceholder) {
		return "NO_PLACEHOLDER"
	}
	if errors.Is(err, money.ErrUnknownKeyword) {
		return "UNKNOWN_KEYWORD"
	}

	if domainErr, ok := domain.IsDomainError(err); ok {
		return domainErr.Code
	}

	if _, ok := storefront.IsCartError(err); ok {
		return "CART_ERROR"
	}

	if sfErr, ok := storefront.IsStorefrontError(err); ok {
		return strings.ToUpper(sfErr.Code)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return "TIMEOUT"
	}

	return "INTERNAL_ERROR"
}

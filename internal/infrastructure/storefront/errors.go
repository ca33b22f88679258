package storefront

import (
	"errors"
	"fmt"
	"net/http"
)

// StorefrontError is a non-2xx answer from the platform.
type StorefrontError struct {
	Code        string
	Message     string
	Description string
	StatusCode  int
}

func (e *StorefrontError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("storefront error [%s]: %s: %s (status: %d)", e.Code, e.Message, e.Description, e.StatusCode)
	}
	return fmt.Sprintf("storefront error [%s]: %s (status: %d)", e.Code, e.Message, e.StatusCode)
}

func (e *StorefrontError) IsRetryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

// CartError is an application-level cart rejection: a response body whose
// status field is 422, such as adding more units than are in stock.
type CartError struct {
	Status      int
	Message     string
	Description string
}

func (e *CartError) Error() string {
	return fmt.Sprintf("cart error (%d): %s", e.Status, e.Description)
}

func (e *CartError) IsRetryable() bool {
	return false
}

func IsStorefrontError(err error) (*StorefrontError, bool) {
	var sfErr *StorefrontError
	ok := errors.As(err, &sfErr)
	return sfErr, ok
}

func IsCartError(err error) (*CartError, bool) {
	var cartErr *CartError
	ok := errors.As(err, &cartErr)
	return cartErr, ok
}

package storefront_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DanielPopoola/mdamascus-theme/internal/config"
	"github.com/DanielPopoola/mdamascus-theme/internal/infrastructure/storefront"
	"github.com/DanielPopoola/mdamascus-theme/internal/infrastructure/storefront/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRetryClient(t *testing.T, maxRetries int) (*mocks.MockClient, storefront.Client) {
	mockClient := mocks.NewMockClient(t)
	retryClient := storefront.NewRetryClient(mockClient, config.RetryConfig{
		BaseDelay:  time.Millisecond,
		MaxRetries: maxRetries,
	})
	return mockClient, retryClient
}

func TestRetryClient_GetCart_Success(t *testing.T) {
	mockClient, retryClient := newRetryClient(t, 3)

	expected := &storefront.Cart{ItemCount: 2}
	mockClient.EXPECT().
		GetCart(mock.Anything).
		Return(expected, nil).
		Once()

	cart, err := retryClient.GetCart(context.Background())

	require.NoError(t, err)
	assert.Equal(t, expected, cart)
}

func TestRetryClient_GetCart_RetriesOn5xx(t *testing.T) {
	mockClient, retryClient := newRetryClient(t, 3)

	// First two calls fail with 503
	mockClient.EXPECT().
		GetCart(mock.Anything).
		Return(nil, &storefront.StorefrontError{
			Code:       "service_unavailable",
			Message:    "Service unavailable",
			StatusCode: 503,
		}).
		Twice()

	mockClient.EXPECT().
		GetCart(mock.Anything).
		Return(&storefront.Cart{ItemCount: 1}, nil).
		Once()

	cart, err := retryClient.GetCart(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, cart.ItemCount)
}

func TestRetryClient_GetCart_DoesNotRetryOn4xx(t *testing.T) {
	mockClient, retryClient := newRetryClient(t, 3)

	expectedErr := &storefront.StorefrontError{
		Code:       "not_found",
		Message:    "Not Found",
		StatusCode: 404,
	}

	mockClient.EXPECT().
		GetCart(mock.Anything).
		Return(nil, expectedErr).
		Once()

	cart, err := retryClient.GetCart(context.Background())

	require.Error(t, err)
	assert.Nil(t, cart)

	var sfErr *storefront.StorefrontError
	assert.True(t, errors.As(err, &sfErr))
	assert.Equal(t, "not_found", sfErr.Code)
}

func TestRetryClient_GetCart_ExhaustsRetries(t *testing.T) {
	mockClient, retryClient := newRetryClient(t, 3)

	mockClient.EXPECT().
		GetCart(mock.Anything).
		Return(nil, errors.New("connection reset")).
		Times(3)

	cart, err := retryClient.GetCart(context.Background())

	require.Error(t, err)
	assert.Nil(t, cart)
	assert.Contains(t, err.Error(), "maximum retries exceeded")
}

func TestRetryClient_AddItems_NotRetried(t *testing.T) {
	mockClient, retryClient := newRetryClient(t, 3)

	req := storefront.AddItemsRequest{Items: []storefront.LineItemRequest{{ID: "1", Quantity: 1}}}

	mockClient.EXPECT().
		AddItems(mock.Anything, req).
		Return(nil, &storefront.StorefrontError{Code: "internal_error", StatusCode: 500}).
		Once()

	_, err := retryClient.AddItems(context.Background(), req)

	require.Error(t, err)
	assert.NotContains(t, err.Error(), "maximum retries exceeded")
}

func TestRetryClient_ChangeLine_PassesThrough(t *testing.T) {
	mockClient, retryClient := newRetryClient(t, 3)

	req := storefront.ChangeLineRequest{Line: 1, Quantity: 0}
	mockClient.EXPECT().
		ChangeLine(mock.Anything, req).
		Return(&storefront.Cart{ItemCount: 0}, nil).
		Once()

	cart, err := retryClient.ChangeLine(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 0, cart.ItemCount)
}

func TestRetryClient_Subscribe_NotRetried(t *testing.T) {
	mockClient, retryClient := newRetryClient(t, 3)

	req := storefront.SubscribeRequest{Action: "/contact"}
	mockClient.EXPECT().
		Subscribe(mock.Anything, req).
		Return(&storefront.StorefrontError{StatusCode: 503}).
		Once()

	err := retryClient.Subscribe(context.Background(), req)

	require.Error(t, err)
}

func TestRetryClient_RespectsContextCancellation(t *testing.T) {
	mockClient := mocks.NewMockClient(t)
	retryClient := storefront.NewRetryClient(mockClient, config.RetryConfig{
		BaseDelay:  time.Second,
		MaxRetries: 10,
	})

	mockClient.EXPECT().
		GetCart(mock.Anything).
		Return(nil, &storefront.StorefrontError{
			Code:       "internal_error",
			StatusCode: 500,
		}).
		Once()

	ctx, cancel := context.WithCancel(context.Background())

	// Cancel while waiting out the first backoff
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	cart, err := retryClient.GetCart(ctx)

	require.Error(t, err)
	assert.Nil(t, cart)
	assert.Equal(t, context.Canceled, err)
}

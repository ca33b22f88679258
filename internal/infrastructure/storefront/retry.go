package storefront

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/DanielPopoola/mdamascus-theme/internal/config"
	"github.com/DanielPopoola/mdamascus-theme/internal/domain"
)

// RetryClient retries idempotent cart reads. Cart writes and newsletter
// submissions are user actions and go through exactly once.
type RetryClient struct {
	inner      Client
	baseDelay  time.Duration
	maxRetries int
}

func NewRetryClient(inner Client, cfg config.RetryConfig) Client {
	maxRetries := cfg.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &RetryClient{
		inner:      inner,
		baseDelay:  cfg.BaseDelay,
		maxRetries: maxRetries,
	}
}

func (r *RetryClient) AddItems(ctx context.Context, req AddItemsRequest) (*AddItemsResponse, error) {
	return r.inner.AddItems(ctx, req)
}

func (r *RetryClient) ChangeLine(ctx context.Context, req ChangeLineRequest) (*Cart, error) {
	return r.inner.ChangeLine(ctx, req)
}

func (r *RetryClient) Subscribe(ctx context.Context, req SubscribeRequest) error {
	return r.inner.Subscribe(ctx, req)
}

// GetCart with retry logic
func (r *RetryClient) GetCart(ctx context.Context) (*Cart, error) {
	return retry(ctx, r, r.inner.GetCart)
}

func retry[T any](ctx context.Context, r *RetryClient, operation func(ctx context.Context) (*T, error)) (*T, error) {
	var lastErr error

	for attempt := 0; attempt < r.maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		resp, err := operation(ctx)
		if err == nil {
			return resp, nil
		}

		lastErr = err

		if !isRetryable(err) {
			return nil, err
		}

		if attempt < r.maxRetries-1 {
			timer := time.NewTimer(r.backoff(attempt))
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			case <-timer.C:
			}
		}
	}

	return nil, fmt.Errorf("maximum retries exceeded: %w", lastErr)
}

func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}

	var retryable domain.Retryable
	if errors.As(err, &retryable) {
		return retryable.IsRetryable()
	}

	return true
}

// Backoff calculation with exponential delay and jitter
func (r *RetryClient) backoff(attempt int) time.Duration {
	base := r.baseDelay * time.Duration(1<<attempt)
	if r.baseDelay <= 0 {
		return 0
	}

	jitter := time.Duration(rand.Int64N(int64(r.baseDelay)/2 + 1))

	return base + jitter
}

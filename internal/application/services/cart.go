package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DanielPopoola/mdamascus-theme/internal/application"
	"github.com/DanielPopoola/mdamascus-theme/internal/domain"
	"github.com/DanielPopoola/mdamascus-theme/internal/infrastructure/storefront"
	"github.com/go-playground/validator"
	"golang.org/x/sync/singleflight"
)

// AddToCartResult is what the product form shows after a submission.
type AddToCartResult struct {
	Notification domain.Notification
	ItemCount    int
	// CountKnown is false when the cart could not be re-read after adding.
	CountKnown bool
}

type CartService struct {
	client   storefront.Client
	notifier application.Notifier
	validate *validator.Validate
	group    singleflight.Group
	logger   *slog.Logger
}

func NewCartService(client storefront.Client, notifier application.Notifier, logger *slog.Logger) *CartService {
	return &CartService{
		client:   client,
		notifier: notifier,
		validate: newValidator(),
		logger:   logger,
	}
}

// AddToCart adds one line to the cart. The returned result always carries the
// notification to show; err is set when the add did not happen.
func (s *CartService) AddToCart(ctx context.Context, cmd AddToCartCommand) (*AddToCartResult, error) {
	if err := validateCommand(s.validate, cmd); err != nil {
		s.logger.Warn("add to cart rejected", "error", err)
		return s.failed(ctx, err)
	}

	req := storefront.AddItemsRequest{
		Items: []storefront.LineItemRequest{{
			ID:       cmd.VariantID,
			Quantity: ParseQuantity(cmd.Quantity),
		}},
	}

	if _, err := s.client.AddItems(ctx, req); err != nil {
		s.logger.Error("error adding to cart",
			"variant_id", cmd.VariantID,
			"error", err,
		)
		return s.failed(ctx, fmt.Errorf("add to cart: %w", err))
	}

	result := &AddToCartResult{
		Notification: s.notifier.Push(ctx, domain.MsgAddedToCart, domain.LevelSuccess),
	}

	count, err := s.ItemCount(ctx)
	if err != nil {
		s.logger.Warn("cart count refresh failed", "error", err)
		return result, nil
	}
	result.ItemCount = count
	result.CountKnown = true

	return result, nil
}

func (s *CartService) failed(ctx context.Context, err error) (*AddToCartResult, error) {
	return &AddToCartResult{
		Notification: s.notifier.Push(ctx, domain.MsgAddToCartFailed, domain.LevelError),
	}, err
}

func (s *CartService) UpdateLine(ctx context.Context, cmd UpdateLineCommand) (*storefront.Cart, error) {
	if err := validateCommand(s.validate, cmd); err != nil {
		return nil, err
	}

	cart, err := s.client.ChangeLine(ctx, storefront.ChangeLineRequest{
		Line:     cmd.Line,
		Quantity: cmd.Quantity,
	})
	if err != nil {
		s.logger.Error("error updating cart line", "line", cmd.Line, "error", err)
		return nil, fmt.Errorf("update cart line %d: %w", cmd.Line, err)
	}
	return cart, nil
}

// ItemCount reads the cart's item count. Concurrent callers for the same
// platform cart share one request.
func (s *CartService) ItemCount(ctx context.Context) (int, error) {
	key := "item_count:" + storefront.SessionFrom(ctx).Key()
	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		cart, err := s.client.GetCart(ctx)
		if err != nil {
			return 0, err
		}
		return cart.ItemCount, nil
	})
	if err != nil {
		return 0, fmt.Errorf("get cart: %w", err)
	}
	return v.(int), nil
}

// RefreshCount writes the current item count into sink. A nil sink is the
// page without a cart badge and is not an error.
func (s *CartService) RefreshCount(ctx context.Context, sink application.CountSink) error {
	count, err := s.ItemCount(ctx)
	if err != nil {
		s.logger.Warn("cart count refresh failed", "error", err)
		return err
	}
	if sink != nil {
		sink.SetCount(count)
	}
	return nil
}

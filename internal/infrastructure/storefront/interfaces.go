package storefront

import "context"

// Client is the port to the storefront platform's cart and newsletter endpoints.
type Client interface {
	AddItems(ctx context.Context, req AddItemsRequest) (*AddItemsResponse, error)
	ChangeLine(ctx context.Context, req ChangeLineRequest) (*Cart, error)
	GetCart(ctx context.Context) (*Cart, error)
	Subscribe(ctx context.Context, req SubscribeRequest) error
}

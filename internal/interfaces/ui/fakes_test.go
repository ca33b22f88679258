package ui_test

import (
	"context"

	"github.com/DanielPopoola/mdamascus-theme/internal/application"
	"github.com/DanielPopoola/mdamascus-theme/internal/application/services"
	"github.com/stretchr/testify/mock"
)

type fakeDocument map[string]bool

func (d fakeDocument) Exists(selector string) bool { return d[selector] }

type mockCart struct {
	mock.Mock
}

func (m *mockCart) AddToCart(ctx context.Context, cmd services.AddToCartCommand) (*services.AddToCartResult, error) {
	args := m.Called(ctx, cmd)
	res, _ := args.Get(0).(*services.AddToCartResult)
	return res, args.Error(1)
}

func (m *mockCart) RefreshCount(ctx context.Context, sink application.CountSink) error {
	args := m.Called(ctx, sink)
	return args.Error(0)
}

type mockSubscriber struct {
	mock.Mock
}

func (m *mockSubscriber) Subscribe(ctx context.Context, cmd services.SubscribeCommand) (*services.SubscribeResult, error) {
	args := m.Called(ctx, cmd)
	res, _ := args.Get(0).(*services.SubscribeResult)
	return res, args.Error(1)
}

type badge struct {
	count int
	set   bool
}

func (b *badge) SetCount(n int) {
	b.count = n
	b.set = true
}

package application

import (
	"context"

	"github.com/DanielPopoola/mdamascus-theme/internal/domain"
)

// Notifier surfaces transient, user-visible messages to the shopper on ctx.
type Notifier interface {
	Push(ctx context.Context, message string, level domain.Level) domain.Notification
}

// CountSink receives the refreshed cart item count, typically the header badge.
type CountSink interface {
	SetCount(n int)
}

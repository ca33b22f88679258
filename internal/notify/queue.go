// Package notify holds the toast banners shown after theme actions.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/DanielPopoola/mdamascus-theme/internal/domain"
)

type Option func(*Queue)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(q *Queue) {
		q.now = now
	}
}

type ownerKey struct{}

// WithOwner scopes the notifications pushed and read under ctx to one
// shopper session.
func WithOwner(ctx context.Context, owner string) context.Context {
	return context.WithValue(ctx, ownerKey{}, owner)
}

// OwnerFrom returns the session owner on ctx. Without one, notifications go
// to the shared "" owner.
func OwnerFrom(ctx context.Context) string {
	owner, _ := ctx.Value(ownerKey{}).(string)
	return owner
}

type entry struct {
	owner string
	n     domain.Notification
}

// Queue is a concurrency-safe list of notifications, oldest first. Each
// notification belongs to the session that pushed it.
type Queue struct {
	mu    sync.Mutex
	items []entry
	ttl   time.Duration
	now   func() time.Time
}

func NewQueue(ttl time.Duration, opts ...Option) *Queue {
	if ttl <= 0 {
		ttl = domain.DefaultNotificationTTL
	}
	q := &Queue{ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

func (q *Queue) Push(ctx context.Context, message string, level domain.Level) domain.Notification {
	n := domain.NewNotification(message, level, q.now(), q.ttl)

	q.mu.Lock()
	q.items = append(q.items, entry{owner: OwnerFrom(ctx), n: n})
	q.mu.Unlock()

	return n
}

// Active returns a copy of the ctx owner's notifications still on screen at now.
func (q *Queue) Active(ctx context.Context, now time.Time) []domain.Notification {
	owner := OwnerFrom(ctx)

	q.mu.Lock()
	defer q.mu.Unlock()

	active := make([]domain.Notification, 0)
	for _, e := range q.items {
		if e.owner == owner && !e.n.Expired(now) {
			active = append(active, e.n)
		}
	}
	return active
}

// Expire drops notifications dismissed by now and reports how many were removed.
func (q *Queue) Expire(now time.Time) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	kept := q.items[:0]
	for _, e := range q.items {
		if !e.n.Expired(now) {
			kept = append(kept, e)
		}
	}
	removed := len(q.items) - len(kept)
	clear(q.items[len(kept):])
	q.items = kept
	return removed
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

package timing

import (
	"sync"
	"time"
)

// Throttler runs fn at most once per limit. The first Call in a window runs
// immediately; the rest of the window's calls are dropped.
type Throttler[T any] struct {
	mu    sync.Mutex
	fn    func(T)
	limit time.Duration
	until time.Time
	now   func() time.Time
}

func Throttle[T any](fn func(T), limit time.Duration) *Throttler[T] {
	return &Throttler[T]{fn: fn, limit: limit, now: time.Now}
}

// Call reports whether fn ran.
func (t *Throttler[T]) Call(arg T) bool {
	t.mu.Lock()
	now := t.now()
	if now.Before(t.until) {
		t.mu.Unlock()
		return false
	}
	t.until = now.Add(t.limit)
	t.mu.Unlock()

	t.fn(arg)
	return true
}

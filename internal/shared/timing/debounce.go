// Package timing rate-limits event handlers.
package timing

import (
	"sync"
	"time"
)

// Debouncer delays fn until wait has passed without another Call. Only the
// argument of the last Call is delivered.
type Debouncer[T any] struct {
	mu      sync.Mutex
	fn      func(T)
	wait    time.Duration
	timer   *time.Timer
	gen     uint64
	stopped bool
}

func Debounce[T any](fn func(T), wait time.Duration) *Debouncer[T] {
	return &Debouncer[T]{fn: fn, wait: wait}
}

func (d *Debouncer[T]) Call(arg T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.wait, func() {
		d.fire(gen, arg)
	})
}

func (d *Debouncer[T]) fire(gen uint64, arg T) {
	d.mu.Lock()
	// a newer Call or Stop superseded this timer
	if gen != d.gen || d.stopped {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()

	d.fn(arg)
}

// Stop cancels a pending call; later Calls are ignored.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

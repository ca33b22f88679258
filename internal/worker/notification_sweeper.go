package worker

import (
	"context"
	"log/slog"
	"time"
)

// Expirer drops notifications whose display time has passed.
type Expirer interface {
	Expire(now time.Time) int
}

type NotificationSweeper struct {
	queue    Expirer
	interval time.Duration
	now      func() time.Time
	logger   *slog.Logger
}

func NewNotificationSweeper(queue Expirer, interval time.Duration, logger *slog.Logger) *NotificationSweeper {
	return &NotificationSweeper{
		queue:    queue,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

// Start sweeps on every tick until ctx is done.
func (w *NotificationSweeper) Start(ctx context.Context) {
	w.logger.Info("notification sweeper started", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.sweep()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("notification sweeper stopping")
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *NotificationSweeper) sweep() {
	if removed := w.queue.Expire(w.now()); removed > 0 {
		w.logger.Debug("dismissed notifications", "count", removed)
	}
}

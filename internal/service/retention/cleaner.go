// Package retention periodically prunes the usage log.
package retention

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Pruner deletes usage rows created before a cutoff.
type Pruner interface {
	DeleteUsageBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Config holds configuration for the cleaner.
type Config struct {
	MaxAge   time.Duration
	Interval time.Duration
}

// Cleaner removes usage rows older than MaxAge every Interval.
type Cleaner struct {
	pruner   Pruner
	maxAge   time.Duration
	interval time.Duration
	now      func() time.Time

	stopCh   chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// NewCleaner creates a new Cleaner.
func NewCleaner(pruner Pruner, cfg *Config) *Cleaner {
	return &Cleaner{
		pruner:   pruner,
		maxAge:   cfg.MaxAge,
		interval: cfg.Interval,
		now:      time.Now,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start runs the cleanup loop in a goroutine. A non-positive interval or
// max age disables it.
func (c *Cleaner) Start(ctx context.Context) {
	if c.interval <= 0 || c.maxAge <= 0 {
		close(c.done)
		slog.Info("Usage retention disabled")
		return
	}
	go c.run(ctx)
}

// Stop stops the cleanup loop and waits for it to exit. Call it only after Start.
func (c *Cleaner) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
	<-c.done
}

func (c *Cleaner) run(ctx context.Context) {
	defer close(c.done)

	slog.Info("Starting usage retention",
		"max_age", c.maxAge,
		"interval", c.interval,
	)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.CleanupNow(ctx)

	for {
		select {
		case <-ticker.C:
			c.CleanupNow(ctx)
		case <-ctx.Done():
			return
		case <-c.stopCh:
			return
		}
	}
}

// CleanupNow prunes once and returns the number of removed rows.
func (c *Cleaner) CleanupNow(ctx context.Context) int64 {
	deleted, err := c.pruner.DeleteUsageBefore(ctx, c.now().Add(-c.maxAge))
	if err != nil {
		slog.Error("Usage retention error", "error", err)
		return 0
	}

	if deleted > 0 {
		slog.Info("Usage retention completed",
			"deleted", deleted,
			"max_age", c.maxAge,
		)
	}
	return deleted
}

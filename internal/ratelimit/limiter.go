// Package ratelimit provides fixed-window request admission per client key.
package ratelimit

import (
	"context"
	"time"
)

// Store counts requests per key inside fixed windows.
type Store interface {
	// Admit reports whether one more request for key fits in the current
	// window. A rejected request does not change the count.
	Admit(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// Limiter applies one limit and window to a Store under its own key prefix,
// so several endpoints can share a store without sharing buckets.
type Limiter struct {
	name   string
	limit  int
	window time.Duration
	store  Store
}

// New creates a Limiter. name namespaces keys in the store.
func New(name string, limit int, window time.Duration, store Store) *Limiter {
	return &Limiter{
		name:   name,
		limit:  limit,
		window: window,
		store:  store,
	}
}

// Admit reports whether a request from clientKey is allowed now.
func (l *Limiter) Admit(ctx context.Context, clientKey string) (bool, error) {
	return l.store.Admit(ctx, l.name+":"+clientKey, l.limit, l.window)
}

// Limit returns the number of requests allowed per window.
func (l *Limiter) Limit() int {
	return l.limit
}

// Window returns the window length.
func (l *Limiter) Window() time.Duration {
	return l.window
}

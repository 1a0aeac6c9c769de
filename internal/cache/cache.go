// Package cache keeps per-tab store results so switching tabs does not reload them.
package cache

import (
	"context"
	"errors"
)

var ErrMiss = errors.New("cache miss")

type Cache interface {
	Has(ctx context.Context, key string) (bool, error)
	// Get returns ErrMiss when key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Clear drops every key owned by this cache.
	Clear(ctx context.Context) error
}

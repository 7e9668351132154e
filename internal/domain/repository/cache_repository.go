package repository

import (
	"context"
	"time"
)

// CacheRepository is a byte cache for rendered reference data.
type CacheRepository interface {
	// Get returns the cached value or (nil, nil) on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	Delete(ctx context.Context, key string) error
}

package service

import (
	"context"
	"time"
)

// Cache stores JSON-serialisable values by key.
type Cache interface {
	// Get loads key into dest and reports whether it was present.
	Get(ctx context.Context, key string, dest any) (bool, error)

	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	Delete(ctx context.Context, key string) error
}

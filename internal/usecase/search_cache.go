package usecase

import (
	"context"
	"time"
)

// SearchCache decouples the search usecase from the concrete Redis client.
// Implementations must treat an unavailable backend as a miss, never an
// error.
type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

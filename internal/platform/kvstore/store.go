package kvstore

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a key does not exist.
var ErrNotFound = errors.New("kvstore: key not found")

// Store is a minimal key-value abstraction for state that must survive
// process restarts and be shared across instances: batch-job status and
// rate-limit counters. Production uses redis; tests use the memory impl.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// Incr increments the counter at key and applies ttl when the counter
	// is created. Returns the new value.
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

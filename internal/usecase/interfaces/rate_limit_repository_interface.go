package interfaces

import (
	"context"
	"time"
)

// IRateLimitRepository is the attempt-counter store behind the sliding-window
// limiter: prune entries older than the window, count what remains for a key,
// record a new attempt.

type IRateLimitRepository interface {
	PruneBefore(ctx context.Context, key string, cutoff time.Time) error
	Count(ctx context.Context, key string) (int, error)
	Add(ctx context.Context, key string, at time.Time) error
}

package usecase

import (
	"context"
	"log"
	"time"

	"cobranca_campo/internal/usecase/interfaces"
)

type RateLimitResult struct {
	Allowed   bool
	Remaining int
	// Store is degraded when the counting store was unreachable and the
	// limiter failed open.
	Store StepOutcome
}

// IRateLimiter is a sliding-window attempt counter for sensitive entry
// points. Fail-open is the contract, not an accident: when the store is down,
// availability of the protected endpoint wins over strict enforcement.

type IRateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) RateLimitResult
}

type RateLimitUseCase struct {
	repo interfaces.IRateLimitRepository
}

var _ IRateLimiter = (*RateLimitUseCase)(nil)

func NewRateLimitUseCase(repo interfaces.IRateLimitRepository) *RateLimitUseCase {
	return &RateLimitUseCase{repo: repo}
}

// Allow prunes entries older than the window, counts what remains for the
// key, and records the new attempt when under the limit.
func (u *RateLimitUseCase) Allow(ctx context.Context, key string, limit int, window time.Duration) RateLimitResult {
	now := time.Now().UTC()

	if err := u.repo.PruneBefore(ctx, key, now.Add(-window)); err != nil {
		return failOpen(key, err)
	}

	count, err := u.repo.Count(ctx, key)
	if err != nil {
		return failOpen(key, err)
	}
	if count >= limit {
		return RateLimitResult{Allowed: false, Remaining: 0, Store: OutcomeOK()}
	}

	if err := u.repo.Add(ctx, key, now); err != nil {
		return failOpen(key, err)
	}
	return RateLimitResult{Allowed: true, Remaining: limit - count - 1, Store: OutcomeOK()}
}

func failOpen(key string, err error) RateLimitResult {
	log.Printf("[ratelimit][usecase] store unavailable, failing open key=%s err=%v", key, err)
	return RateLimitResult{Allowed: true, Remaining: 1, Store: OutcomeDegraded(err.Error())}
}

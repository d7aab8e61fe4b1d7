package guard

//go:generate go run go.uber.org/mock/mockgen -source=./guard.go -destination=./mocks/guard_mock.go -package=mocks

import (
	"context"
	"errors"
	"strconv"

	"github.com/rs/zerolog/log"

	"homestay/shared/cache"
)

// Guard is a short-lived per-key counter gating repeated sensitive actions
// (failed logins, verification-code sends). It is advisory: when the counter
// store is unreachable it fails open so an infrastructure fault never locks
// users out.
type Guard interface {
	Allow(ctx context.Context, key string) bool
	RecordFailure(ctx context.Context, key string)
}

type guardImpl struct {
	cache         cache.RedisCache
	maxCount      int
	windowSeconds int
}

func New(cacheStore cache.RedisCache, maxCount, windowSeconds int) Guard {
	return &guardImpl{
		cache:         cacheStore,
		maxCount:      maxCount,
		windowSeconds: windowSeconds,
	}
}

// Allow reports whether the key is still below its configured maximum.
func (g *guardImpl) Allow(ctx context.Context, key string) bool {
	var raw string

	err := g.cache.Get(ctx, key, &raw)
	if err != nil {
		if !errors.Is(err, cache.Nil) {
			log.Warn().Err(err).Str("key", key).Msg("guard counter unavailable, failing open")
		}

		return true
	}

	count, err := strconv.Atoi(raw)
	if err != nil {
		log.Warn().Str("key", key).Str("value", raw).Msg("guard counter corrupted, failing open")

		return true
	}

	return count < g.maxCount
}

// RecordFailure increments the counter and restarts the expiry window.
func (g *guardImpl) RecordFailure(ctx context.Context, key string) {
	if _, err := g.cache.Increment(ctx, key, g.windowSeconds); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to record guard failure")
	}
}

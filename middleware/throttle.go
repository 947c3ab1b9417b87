package middleware

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/billymaulana/hookable"
)

// Throttle returns middleware that gates hook execution through the
// given rate limiter. The hook blocks in limiter.Wait until a token is
// available or the context is cancelled. Useful when a hook fronts an
// external API with strict rate limits.
func Throttle(limiter *rate.Limiter) Middleware {
	return func(next hookable.HookFunc) hookable.HookFunc {
		if limiter == nil {
			return next
		}
		return func(ctx context.Context, args ...any) (any, error) {
			if err := limiter.Wait(ctx); err != nil {
				return nil, err
			}
			return next(ctx, args...)
		}
	}
}

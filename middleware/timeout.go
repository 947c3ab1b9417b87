package middleware

import (
	"context"
	"time"

	"github.com/billymaulana/hookable"
)

// Timeout returns middleware that enforces a per-invocation deadline.
// When the deadline is exceeded the hook's context is cancelled; the
// hook should return context.DeadlineExceeded. A non-positive duration
// makes the middleware a pass-through.
func Timeout(d time.Duration) Middleware {
	return func(next hookable.HookFunc) hookable.HookFunc {
		if d <= 0 {
			return next
		}
		return func(ctx context.Context, args ...any) (any, error) {
			ctx, cancel := context.WithTimeout(ctx, d)
			defer cancel()
			return next(ctx, args...)
		}
	}
}

package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/billymaulana/hookable"
)

// Logging returns middleware that logs hook start and completion. The
// hook name is captured at wrap time since the type-erased hook
// function does not carry it.
func Logging(logger *slog.Logger, hookName string) Middleware {
	return func(next hookable.HookFunc) hookable.HookFunc {
		return func(ctx context.Context, args ...any) (any, error) {
			logger.Debug("hook started",
				slog.String("hook", hookName),
				slog.Int("args", len(args)),
			)

			start := time.Now()
			result, err := next(ctx, args...)
			elapsed := time.Since(start)

			if err != nil {
				logger.Error("hook failed",
					slog.String("hook", hookName),
					slog.Duration("elapsed", elapsed),
					slog.String("error", err.Error()),
				)
			} else {
				logger.Debug("hook completed",
					slog.String("hook", hookName),
					slog.Duration("elapsed", elapsed),
				)
			}

			return result, err
		}
	}
}

package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/billymaulana/hookable"
)

// Recover returns middleware that recovers from panics in the hook.
// Panics are converted to errors and logged with a stack trace, so a
// misbehaving hook fails its dispatch instead of crashing the host.
func Recover(logger *slog.Logger, hookName string) Middleware {
	return func(next hookable.HookFunc) hookable.HookFunc {
		return func(ctx context.Context, args ...any) (result any, retErr error) {
			defer func() {
				if r := recover(); r != nil {
					stack := string(debug.Stack())
					logger.Error("hook panicked",
						slog.String("hook", hookName),
						slog.Any("panic", r),
						slog.String("stack", stack),
					)
					retErr = fmt.Errorf("panic in hook %s: %v", hookName, r)
				}
			}()
			return next(ctx, args...)
		}
	}
}

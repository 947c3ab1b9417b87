package observability

import (
	"log/slog"
	"time"

	"github.com/billymaulana/hookable"
)

// logStartKey is the event Context key for the logging pair's start time.
const logStartKey = "observability.log_start"

// Logging returns an interceptor pair that logs every dispatch through
// the given structured logger: a debug line when the dispatch starts
// and a debug or error line with the elapsed time once it settles.
func Logging(logger *slog.Logger) Pair {
	return Pair{
		Before: func(ev *hookable.Event) {
			ev.Context[logStartKey] = time.Now()
			logger.Debug("dispatch started",
				slog.String("hook", ev.Name),
				slog.Int("args", len(ev.Args)),
			)
		},
		After: func(ev *hookable.Event) {
			var elapsed time.Duration
			if start, ok := ev.Context[logStartKey].(time.Time); ok {
				elapsed = time.Since(start)
			}
			if ev.Err != nil {
				logger.Error("dispatch failed",
					slog.String("hook", ev.Name),
					slog.Duration("elapsed", elapsed),
					slog.String("error", ev.Err.Error()),
				)
				return
			}
			logger.Debug("dispatch completed",
				slog.String("hook", ev.Name),
				slog.Duration("elapsed", elapsed),
			)
		},
	}
}

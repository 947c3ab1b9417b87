package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/billymaulana/hookable"
)

// meterName is the instrumentation scope name for hookable metrics.
const meterName = "github.com/billymaulana/hookable"

// startKey is the event Context key under which the before interceptor
// stores the dispatch start time.
const startKey = "observability.start"

// Metrics returns an interceptor pair that records per-dispatch metrics
// using the global OTel MeterProvider. If no MeterProvider is
// configured, noop instruments are used and the pair is a pass-through.
//
// Instruments:
//   - hookable.dispatch.duration (Float64Histogram): dispatch time in
//     seconds, with attributes: hook_name, status ("ok" or "error")
//   - hookable.dispatch.calls (Int64Counter): total dispatches, with
//     attributes: hook_name, status ("ok" or "error")
func Metrics() Pair {
	return MetricsWithMeter(otel.Meter(meterName))
}

// MetricsWithMeter returns a metrics pair using the provided meter.
// This variant allows injecting a specific MeterProvider for testing.
func MetricsWithMeter(meter metric.Meter) Pair {
	// Instruments are created once at construction time. On error the
	// OTel API returns noop instruments, so the pair degrades
	// gracefully.
	duration, dErr := meter.Float64Histogram(
		"hookable.dispatch.duration",
		metric.WithDescription("Duration of hook dispatch in seconds"),
		metric.WithUnit("s"),
	)
	_ = dErr // noop fallback guaranteed by OTel API contract

	calls, cErr := meter.Int64Counter(
		"hookable.dispatch.calls",
		metric.WithDescription("Total number of hook dispatches"),
		metric.WithUnit("{dispatch}"),
	)
	_ = cErr // noop fallback guaranteed by OTel API contract

	return Pair{
		Before: func(ev *hookable.Event) {
			ev.Context[startKey] = time.Now()
		},
		After: func(ev *hookable.Event) {
			start, ok := ev.Context[startKey].(time.Time)
			if !ok {
				return
			}

			status := "ok"
			if ev.Err != nil {
				status = "error"
			}
			attrs := metric.WithAttributes(
				attribute.String("hook_name", ev.Name),
				attribute.String("status", status),
			)

			ctx := context.Background()
			duration.Record(ctx, time.Since(start).Seconds(), attrs)
			calls.Add(ctx, 1, attrs)
		},
	}
}

package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/billymaulana/hookable"
)

// tracerName is the instrumentation scope name for hookable tracing.
const tracerName = "github.com/billymaulana/hookable"

// spanKey is the event Context key under which the before interceptor
// stores the active span for the after interceptor.
const spanKey = "observability.span"

// Tracing returns an interceptor pair that wraps each dispatch in an
// OpenTelemetry span. If no TracerProvider is configured globally, the
// default noop tracer is used and the pair is a pass-through.
//
// Span attributes: hook.name, hook.args_count. On a failed dispatch the
// span records the error and sets status codes.Error.
//
// Interceptors do not receive the dispatch context, so spans are roots
// under the registry's instrumentation scope rather than children of
// the caller's trace.
func Tracing() Pair {
	return TracingWithTracer(otel.Tracer(tracerName))
}

// TracingWithTracer returns a tracing pair using the provided tracer.
// This variant allows injecting a specific TracerProvider for testing
// or when multiple providers are in use.
func TracingWithTracer(tracer trace.Tracer) Pair {
	return Pair{
		Before: func(ev *hookable.Event) {
			_, span := tracer.Start(context.Background(), "hookable.dispatch",
				trace.WithAttributes(
					attribute.String("hook.name", ev.Name),
					attribute.Int("hook.args_count", len(ev.Args)),
				),
				trace.WithSpanKind(trace.SpanKindInternal),
			)
			ev.Context[spanKey] = span
		},
		After: func(ev *hookable.Event) {
			span, ok := ev.Context[spanKey].(trace.Span)
			if !ok {
				return
			}
			if ev.Err != nil {
				span.RecordError(ev.Err)
				span.SetStatus(codes.Error, ev.Err.Error())
			} else {
				span.SetStatus(codes.Ok, "")
			}
			span.End()
		},
	}
}

// Package observability provides before/after interceptor pairs that
// instrument every dispatch of a hookable registry.
//
// Each constructor returns a matched pair. The before interceptor
// stashes correlation state (a span, a start time) in the dispatch
// event's Context map; the after interceptor picks it up once the
// dispatch settles. Attach a pair with [Register]:
//
//	remove := observability.Register(h, observability.Tracing())
//	defer remove()
//
// # Instrumentation
//
//   - [Tracing] — wraps each dispatch in an OpenTelemetry span
//   - [Metrics] — records per-dispatch duration and outcome counters
//   - [Logging] — logs each dispatch with name, duration, and outcome
//
// Tracing and Metrics use the global OTel providers by default; if none
// is configured, the OTel API falls back to noop instruments and the
// interceptors become pass-throughs.
package observability

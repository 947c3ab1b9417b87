// Package middleware provides composable wrappers for individual hook
// functions.
//
// A [Middleware] wraps a [hookable.HookFunc] with cross-cutting logic
// before it is registered. Middleware are composed with [Chain] and are
// applied right-to-left: the first middleware in the slice is the
// outermost wrapper.
//
//	fn := middleware.Wrap(handler,
//	    middleware.Logging(logger, "build:done"),
//	    middleware.Recover(logger, "build:done"),
//	    middleware.Timeout(5*time.Second),
//	)
//	h.Hook("build:done", fn)
//
// # Built-in Middleware
//
//   - [Logging] — logs hook start, duration, and outcome
//   - [Recover] — catches panics and converts them to errors
//   - [Timeout] — cancels the hook context after a configured duration
//   - [Throttle] — gates hook execution through a rate limiter
//
// Middleware MUST call next to continue the chain unless intentionally
// short-circuiting.
package middleware

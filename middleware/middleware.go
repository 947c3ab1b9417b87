package middleware

import (
	"github.com/billymaulana/hookable"
)

// Middleware wraps a hook function with cross-cutting logic.
type Middleware func(next hookable.HookFunc) hookable.HookFunc

// Chain composes multiple middleware into a single Middleware.
// Middleware are applied right-to-left: the first middleware in the
// list is the outermost wrapper.
//
// Example: Chain(logging, recover, throttle) executes as:
//
//	logging → recover → throttle → hook
func Chain(mws ...Middleware) Middleware {
	return func(next hookable.HookFunc) hookable.HookFunc {
		h := next
		for i := len(mws) - 1; i >= 0; i-- {
			h = mws[i](h)
		}
		return h
	}
}

// Wrap applies the middleware chain to fn. Convenience for the common
// wrap-then-register flow.
func Wrap(fn hookable.HookFunc, mws ...Middleware) hookable.HookFunc {
	return Chain(mws...)(fn)
}

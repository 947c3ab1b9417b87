package hookable

import (
	"context"
	"fmt"
)

// Definition binds a hook name to a payload type at compile time.
// Registry storage stays type-erased: the typed handler is wrapped
// into a HookFunc at registration time and the payload assertion
// happens at the edges, so callers of a definition get static argument
// checking while the dispatch layer keeps its homogeneous view.
//
//	var BuildDone = hookable.NewDefinition[BuildResult]("build:done")
//
//	remove := BuildDone.Hook(h, func(ctx context.Context, r BuildResult) error {
//	    return notify(ctx, r)
//	})
//	err := BuildDone.Call(ctx, h, result)
type Definition[T any] struct {
	// Name is the hook name this definition dispatches on.
	Name string
}

// NewDefinition creates a typed hook definition.
func NewDefinition[T any](name string) Definition[T] {
	return Definition[T]{Name: name}
}

// Hook registers a typed handler under the definition's name. The
// handler receives the first dispatch argument asserted to T; a
// mismatched payload fails the dispatch with an error rather than
// panicking. A nil fn is silently absorbed.
func (d Definition[T]) Hook(h *Hookable, fn func(ctx context.Context, payload T) error) RemoveFunc {
	return h.Hook(d.Name, d.erase(fn))
}

// HookOnce registers a typed handler that fires at most once.
func (d Definition[T]) HookOnce(h *Hookable, fn func(ctx context.Context, payload T) error) RemoveFunc {
	return h.HookOnce(d.Name, d.erase(fn))
}

// Call dispatches the payload serially to every hook under the
// definition's name.
func (d Definition[T]) Call(ctx context.Context, h *Hookable, payload T) error {
	_, err := h.CallHook(ctx, d.Name, payload)
	return err
}

// CallParallel dispatches the payload to every hook under the
// definition's name concurrently.
func (d Definition[T]) CallParallel(ctx context.Context, h *Hookable, payload T) error {
	_, err := h.CallHookParallel(ctx, d.Name, payload)
	return err
}

func (d Definition[T]) erase(fn func(ctx context.Context, payload T) error) HookFunc {
	if fn == nil {
		return nil
	}
	return func(ctx context.Context, args ...any) (any, error) {
		var payload T
		if len(args) > 0 {
			p, ok := args[0].(T)
			if !ok {
				return nil, fmt.Errorf("hookable: hook %q: payload is %T, want %T", d.Name, args[0], payload)
			}
			payload = p
		}
		return nil, fn(ctx, payload)
	}
}

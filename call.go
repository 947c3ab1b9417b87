package hookable

import (
	"context"
	"fmt"
	"slices"
)

// CallHook invokes every hook registered under name serially, in
// registration order, forwarding args to each. If any hook returns an
// error, dispatch stops and the error is returned. On success the
// result of the last hook is returned. A name with no registrations
// dispatches an empty list and returns (nil, nil).
func (h *Hookable) CallHook(ctx context.Context, name string, args ...any) (any, error) {
	results, err := h.CallHookWith(ctx, SerialCaller{}, name, args...)
	if err != nil || len(results) == 0 {
		return nil, err
	}
	return results[len(results)-1], nil
}

// CallHookParallel invokes every hook registered under name
// concurrently with the same args and waits for all of them. Results
// are in registration order regardless of completion order. See
// ParallelCaller for the failure semantics.
func (h *Hookable) CallHookParallel(ctx context.Context, name string, args ...any) ([]any, error) {
	return h.CallHookWith(ctx, ParallelCaller{}, name, args...)
}

// CallHookWith is the shared dispatch entry point underlying CallHook
// and CallHookParallel. The calling strategy is pluggable, so
// alternative strategies substitute without touching the interception
// logic.
//
// The hook list is snapshotted under the registry lock before dispatch:
// registering or removing hooks for name while the call is in flight
// affects subsequent calls only.
//
// When interceptors are registered, one Event is built per dispatch and
// shared between the before and after phases. Before-interceptors run
// synchronously in registration order ahead of the hooks; after-
// interceptors run once the dispatch settles, on success and failure
// alike, with Event.Err carrying the outcome. A hook that panics on
// the dispatching goroutine still triggers the after phase before the
// panic propagates.
func (h *Hookable) CallHookWith(ctx context.Context, caller Caller, name string, args ...any) ([]any, error) {
	h.mu.Lock()
	entries := h.hooks[name]
	hooks := make([]HookFunc, len(entries))
	for i, e := range entries {
		hooks[i] = e.fn
	}
	before := slices.Clone(h.before)
	after := slices.Clone(h.after)
	h.mu.Unlock()

	var ev *Event
	if len(before) > 0 || len(after) > 0 {
		ev = &Event{
			Name:    name,
			Args:    args,
			Context: make(map[string]any),
		}
	}
	for _, it := range before {
		it.fn(ev)
	}

	// After-interceptors have "finally" semantics: a panicking hook
	// still runs them, with the panic surfaced as Event.Err, before
	// the panic propagates to the caller.
	if ev != nil {
		defer func() {
			if r := recover(); r != nil {
				ev.Err = fmt.Errorf("hookable: panic dispatching %q: %v", name, r)
				for _, it := range after {
					it.fn(ev)
				}
				panic(r)
			}
		}()
	}

	results, err := caller.Call(ctx, hooks, args)

	if ev != nil {
		ev.Err = err
		for _, it := range after {
			it.fn(ev)
		}
	}
	return results, err
}

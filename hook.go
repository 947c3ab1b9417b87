package hookable

import (
	"context"
	"reflect"
	"sync"
)

// HookFunc is the type-erased callback stored in the registry. Args are
// forwarded verbatim from the dispatch call; the result feeds into the
// dispatch strategy's aggregation (serial dispatch returns the last
// hook's result, parallel dispatch collects all of them).
type HookFunc func(ctx context.Context, args ...any) (any, error)

// RemoveFunc unregisters exactly the registration that produced it.
// It is idempotent: the first call removes the registration, later
// calls are no-ops and can never remove a different hook registered
// under the same name afterwards.
type RemoveFunc func()

// noopRemove is returned for registrations that were silently absorbed
// (empty name or nil callback).
func noopRemove() {}

// hookEntry is an identity node for one registration. Removal is keyed
// on the entry pointer, so two registrations of the same function are
// distinct.
type hookEntry struct {
	fn HookFunc

	// fnPtr is the callback's code pointer, used by RemoveHook to
	// remove by function reference.
	fnPtr uintptr
}

// HookOption configures a single Hook registration.
type HookOption func(*hookConfig)

type hookConfig struct {
	allowDeprecated bool
}

// AllowDeprecated suppresses the one-time deprecation warning for this
// registration. Name resolution still forwards to the final target.
func AllowDeprecated() HookOption {
	return func(c *hookConfig) { c.allowDeprecated = true }
}

// Hook registers fn under name and returns an idempotent RemoveFunc.
//
// An empty name or nil fn is silently absorbed: plugin systems register
// hooks conditionally, so the registry returns a harmless no-op handle
// instead of failing. The name is resolved through the deprecation
// chain before the hook is stored, emitting the one-time warning unless
// AllowDeprecated is given.
func (h *Hookable) Hook(name string, fn HookFunc, opts ...HookOption) RemoveFunc {
	if name == "" || fn == nil {
		return noopRemove
	}
	var cfg hookConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &hookEntry{fn: fn, fnPtr: reflect.ValueOf(fn).Pointer()}

	h.mu.Lock()
	resolved, warnMsg := h.resolveLocked(name, cfg.allowDeprecated)
	h.hooks[resolved] = append(h.hooks[resolved], e)
	h.mu.Unlock()

	if warnMsg != "" {
		h.warn(warnMsg)
	}

	var once sync.Once
	return func() {
		once.Do(func() { h.removeEntry(resolved, e) })
	}
}

// onceHook fires its wrapped hook at most once. It unregisters itself
// before forwarding, so a re-entrant dispatch of the same name cannot
// trigger it a second time. An explicit state object rather than
// closure mutation: the cleared fields mark "already fired".
type onceHook struct {
	mu     sync.Mutex
	fn     HookFunc
	remove RemoveFunc
}

func (o *onceHook) invoke(ctx context.Context, args ...any) (any, error) {
	o.mu.Lock()
	fn, remove := o.fn, o.remove
	o.fn, o.remove = nil, nil
	o.mu.Unlock()

	if fn == nil {
		return nil, nil
	}
	if remove != nil {
		remove()
	}
	return fn(ctx, args...)
}

// HookOnce registers fn so that only its first invocation fires. The
// wrapper removes itself from the registry before forwarding the call,
// then discards its reference to fn, guaranteeing at most one
// invocation even when the dispatch that triggers it dispatches the
// same name again.
func (h *Hookable) HookOnce(name string, fn HookFunc) RemoveFunc {
	if name == "" || fn == nil {
		return noopRemove
	}
	o := &onceHook{fn: fn}
	remove := h.Hook(name, o.invoke)
	o.mu.Lock()
	o.remove = remove
	o.mu.Unlock()
	return remove
}

// RemoveHook removes the first hook registered under the literal name
// whose function matches fn. No deprecation resolution is applied:
// removal is keyed on the stored name as passed. Removing an unknown
// name or function is a no-op.
//
// Matching is by the function's code pointer, since func values are
// not comparable in Go. Distinct closures created from the same
// function literal share a code pointer, so with several such closures
// registered under one name the first one is removed regardless of
// which instance was passed. Use the RemoveFunc returned by Hook to
// remove one specific registration.
func (h *Hookable) RemoveHook(name string, fn HookFunc) {
	if name == "" || fn == nil {
		return
	}
	ptr := reflect.ValueOf(fn).Pointer()

	h.mu.Lock()
	defer h.mu.Unlock()
	for i, e := range h.hooks[name] {
		if e.fnPtr == ptr {
			h.dropLocked(name, i)
			return
		}
	}
}

// removeEntry removes the exact entry from name's list, deleting the
// key once the list empties.
func (h *Hookable) removeEntry(name string, e *hookEntry) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, cur := range h.hooks[name] {
		if cur == e {
			h.dropLocked(name, i)
			return
		}
	}
}

// dropLocked removes index i from name's list. The three-index slice
// forces a copy so snapshots held by in-flight dispatches keep their
// original backing array. A name key exists iff its list is non-empty.
func (h *Hookable) dropLocked(name string, i int) {
	list := h.hooks[name]
	if len(list) == 1 {
		delete(h.hooks, name)
		return
	}
	h.hooks[name] = append(list[:i:i], list[i+1:]...)
}

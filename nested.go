package hookable

import (
	"context"
	"sync"
)

// NestedHooks is a nested hook configuration. Keys may themselves be
// dot-separated segments; values are HookFuncs or nested maps. The
// shape flattens into fully-qualified dotted hook names:
//
//	hookable.NestedHooks{
//	    "build": hookable.NestedHooks{
//	        "before": beforeFn, // registered as "build.before"
//	        "done":   doneFn,   // registered as "build.done"
//	    },
//	}
type NestedHooks map[string]any

// AddHooks flattens cfg and registers every entry. The returned
// RemoveFunc unregisters all of them exactly once: the internal handle
// list is drained on first use, so later calls perform no operations.
func (h *Hookable) AddHooks(cfg NestedHooks) RemoveFunc {
	flat := flattenHooks(cfg)
	removers := make([]RemoveFunc, 0, len(flat))
	for name, fn := range flat {
		removers = append(removers, h.Hook(name, fn))
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			for _, remove := range removers {
				remove()
			}
			removers = nil
		})
	}
}

// RemoveHooks flattens cfg and removes each entry by literal name.
func (h *Hookable) RemoveHooks(cfg NestedHooks) {
	for name, fn := range flattenHooks(cfg) {
		h.RemoveHook(name, fn)
	}
}

// flattenHooks is a pure data-shape transform: keys are joined with
// "." recursively until a callable value is reached. Non-callable,
// non-map leaves are dropped, matching the registry's silent handling
// of malformed registrations.
func flattenHooks(cfg NestedHooks) map[string]HookFunc {
	out := make(map[string]HookFunc)
	flattenInto("", cfg, out)
	return out
}

func flattenInto(prefix string, cfg NestedHooks, out map[string]HookFunc) {
	for key, value := range cfg {
		name := key
		if prefix != "" {
			name = prefix + "." + key
		}
		switch v := value.(type) {
		case HookFunc:
			out[name] = v
		case func(ctx context.Context, args ...any) (any, error):
			out[name] = v
		case NestedHooks:
			flattenInto(name, v, out)
		case map[string]any:
			flattenInto(name, NestedHooks(v), out)
		}
	}
}

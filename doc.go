// Package hookable provides an in-process, extensible hook registry.
// Independent pieces of code register named callbacks ("hooks"); other
// code dispatches every callback registered under a name, either
// serially (each hook finishes before the next starts) or in parallel
// (all hooks start, results are collected in registration order).
//
// Hookable is designed as a library building block for plugin and
// lifecycle-event systems. Create a registry, register hooks as
// ordinary Go functions, and dispatch by name.
//
// # Quick Start
//
//	h := hookable.New()
//
//	remove := h.Hook("build:done", func(ctx context.Context, args ...any) (any, error) {
//	    fmt.Println("build finished")
//	    return nil, nil
//	})
//	defer remove()
//
//	_, err := h.CallHook(ctx, "build:done")
//
// # Features
//
//   - Idempotent unregistration handles returned from every registration.
//   - One-shot hooks via [Hookable.HookOnce].
//   - Nested bulk registration with dotted-name flattening via
//     [Hookable.AddHooks].
//   - Hook-name deprecation aliasing with one-time warnings via
//     [Hookable.Deprecate].
//   - Global before/after interception for cross-cutting observability
//     via [Hookable.BeforeEach] and [Hookable.AfterEach].
//   - Pluggable dispatch strategies via [Hookable.CallHookWith]
//     ([SerialCaller], [ParallelCaller], [RetryCaller], or your own).
//
// Typed hook definitions ([Definition]) bind a hook name to a payload
// type at compile time while the registry storage stays type-erased.
package hookable

package hookable

import "sync"

// Event describes one dispatch call. The same instance is passed to
// every before and after interceptor of that dispatch.
type Event struct {
	// Name is the hook name being dispatched.
	Name string

	// Args is the argument list forwarded to every hook.
	Args []any

	// Context is a fresh, empty scratch map created per dispatch. The
	// registry never populates it; interceptors use it to hand data
	// from the before phase to the after phase (timing, spans, ...).
	Context map[string]any

	// Err is the dispatch outcome. It is nil during the before phase
	// and set (possibly to nil) before after-interceptors run.
	Err error
}

// InterceptorFunc observes dispatch calls. Before-interceptors run
// synchronously ahead of the hooks; after-interceptors run once the
// dispatch settles, success and failure alike.
type InterceptorFunc func(ev *Event)

// interceptorEntry is an identity node so removal detaches exactly one
// registration.
type interceptorEntry struct {
	fn InterceptorFunc
}

// BeforeEach registers an interceptor invoked before every dispatch,
// regardless of hook name. Interceptors fire in registration order.
// A nil fn is silently absorbed.
func (h *Hookable) BeforeEach(fn InterceptorFunc) RemoveFunc {
	return h.addInterceptor(&h.before, fn)
}

// AfterEach registers an interceptor invoked after every dispatch
// settles, regardless of hook name and outcome. Interceptors fire in
// registration order. A nil fn is silently absorbed.
func (h *Hookable) AfterEach(fn InterceptorFunc) RemoveFunc {
	return h.addInterceptor(&h.after, fn)
}

func (h *Hookable) addInterceptor(list *[]*interceptorEntry, fn InterceptorFunc) RemoveFunc {
	if fn == nil {
		return noopRemove
	}
	e := &interceptorEntry{fn: fn}

	h.mu.Lock()
	*list = append(*list, e)
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { h.removeInterceptor(list, e) })
	}
}

func (h *Hookable) removeInterceptor(list *[]*interceptorEntry, e *interceptorEntry) {
	h.mu.Lock()
	defer h.mu.Unlock()
	cur := *list
	for i, it := range cur {
		if it == e {
			// Copy-on-remove keeps dispatch snapshots intact.
			*list = append(cur[:i:i], cur[i+1:]...)
			return
		}
	}
}

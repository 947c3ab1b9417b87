package observability

import (
	"sync"

	"github.com/billymaulana/hookable"
)

// Pair is a matched before/after interceptor pair sharing correlation
// state through the dispatch event's Context map.
type Pair struct {
	Before hookable.InterceptorFunc
	After  hookable.InterceptorFunc
}

// Register attaches the pair to a registry. The returned RemoveFunc
// detaches both interceptors; like all hookable handles it is
// idempotent.
func Register(h *hookable.Hookable, p Pair) hookable.RemoveFunc {
	removeBefore := h.BeforeEach(p.Before)
	removeAfter := h.AfterEach(p.After)

	var once sync.Once
	return func() {
		once.Do(func() {
			removeBefore()
			removeAfter()
		})
	}
}

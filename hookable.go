package hookable

import (
	"log/slog"
	"sync"
)

// WarnFunc receives deprecation warnings. The registry calls it at most
// once per distinct message over its lifetime, outside its internal
// lock, so handlers may safely call back into the registry.
type WarnFunc func(message string)

// Hookable is a registry of named hooks. It owns the name→callback
// mapping, the deprecation alias table, and the global before/after
// interceptor lists.
//
// A Hookable is an ordinary instance: multiple independent registries
// coexist without shared state. All methods are safe for concurrent
// use; dispatch operates on a snapshot of the callback list taken at
// call start, so mutating the registry while a dispatch is in flight
// affects subsequent calls only.
type Hookable struct {
	mu           sync.Mutex
	hooks        map[string][]*hookEntry
	deprecations map[string]Deprecation
	before       []*interceptorEntry
	after        []*interceptorEntry

	// warned dedupes deprecation warnings: each distinct message is
	// surfaced at most once per registry lifetime.
	warned map[string]struct{}

	warn          WarnFunc
	logger        *slog.Logger
	maxAliasDepth int
}

// Option configures a Hookable.
type Option func(*Hookable)

// New creates an empty hook registry.
func New(opts ...Option) *Hookable {
	h := &Hookable{
		hooks:         make(map[string][]*hookEntry),
		deprecations:  make(map[string]Deprecation),
		warned:        make(map[string]struct{}),
		logger:        slog.Default(),
		maxAliasDepth: 32,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.warn == nil {
		logger := h.logger
		h.warn = func(message string) { logger.Warn(message) }
	}
	return h
}

// Logger returns the registry's logger.
func (h *Hookable) Logger() *slog.Logger { return h.logger }

// WithLogger sets the structured logger used for the default warn
// handler and internal diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(h *Hookable) { h.logger = l }
}

// WithWarnHandler sets the sink for deprecation warnings. The default
// handler logs at warn level through the registry's logger.
func WithWarnHandler(fn WarnFunc) Option {
	return func(h *Hookable) { h.warn = fn }
}

// WithMaxAliasDepth bounds how many deprecation hops name resolution
// follows before giving up. Deprecate rejects cycles outright, so the
// bound is a backstop, not the primary guard. Default 32.
func WithMaxAliasDepth(n int) Option {
	return func(h *Hookable) {
		if n > 0 {
			h.maxAliasDepth = n
		}
	}
}

package hookable

import (
	"fmt"
	"log/slog"
)

// Deprecation redirects registrations on an old hook name to a
// replacement name. Message, when set, replaces the synthesized
// warning text. An empty To marks the name deprecated with no
// replacement.
type Deprecation struct {
	To      string
	Message string
}

// Deprecate marks name as deprecated. Target is either the replacement
// name (string) or a Deprecation with an explicit warning message.
//
// Hooks already registered directly under name are re-registered
// through the same resolution chain future callers will use, and the
// old bucket is cleared. Aliases may chain (a→b→c); an alias that
// would close a cycle is rejected with ErrAliasCycle so resolution can
// never loop.
func (h *Hookable) Deprecate(name string, target any) error {
	if name == "" {
		return nil
	}

	var dep Deprecation
	switch t := target.(type) {
	case string:
		dep = Deprecation{To: t}
	case Deprecation:
		dep = t
	default:
		return fmt.Errorf("%w: %T", ErrInvalidTarget, target)
	}

	warnMsg, err := h.applyDeprecation(name, dep)
	if err != nil {
		return err
	}
	if warnMsg != "" {
		h.warn(warnMsg)
	}
	return nil
}

func (h *Hookable) applyDeprecation(name string, dep Deprecation) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// Walk from the new target through the existing table. Every
	// Deprecate call runs this check, so the table is always acyclic
	// and the walk terminates.
	for cur := dep.To; ; {
		if cur == name {
			return "", fmt.Errorf("%w: %q", ErrAliasCycle, name)
		}
		d, ok := h.deprecations[cur]
		if !ok {
			break
		}
		cur = d.To
	}

	h.deprecations[name] = dep

	// Migrate existing registrations through the chain. This goes via
	// normal resolution, so it surfaces the deprecation warning the
	// same way a fresh registration would.
	var warnMsg string
	if existing := h.hooks[name]; len(existing) > 0 {
		delete(h.hooks, name)
		var resolved string
		resolved, warnMsg = h.resolveLocked(name, false)
		h.hooks[resolved] = append(h.hooks[resolved], existing...)
	}
	return warnMsg, nil
}

// DeprecateMany applies Deprecate for every entry. Values are the same
// shapes Deprecate accepts. The first error stops the iteration.
func (h *Hookable) DeprecateMany(deprecations map[string]any) error {
	for name, target := range deprecations {
		if err := h.Deprecate(name, target); err != nil {
			return err
		}
	}
	return nil
}

// resolveLocked follows the deprecation chain from name to its terminal
// target. When any hop occurred and the caller has not opted out, the
// deprecation warning is returned so the caller can emit it once the
// lock is released; dedupe is recorded here, so each distinct message
// is handed out at most once per registry lifetime. Callers must hold
// h.mu.
func (h *Hookable) resolveLocked(name string, allowDeprecated bool) (resolved, warnMsg string) {
	original := name
	var last *Deprecation
	for hops := 0; ; hops++ {
		dep, ok := h.deprecations[name]
		if !ok {
			break
		}
		if hops >= h.maxAliasDepth {
			h.logger.Warn("deprecation chain exceeds depth bound",
				slog.String("hook", original),
				slog.Int("max_depth", h.maxAliasDepth),
			)
			break
		}
		last = &dep
		name = dep.To
	}
	if last == nil || allowDeprecated {
		return name, ""
	}

	message := last.Message
	if message == "" {
		message = original + " hook has been deprecated"
		if name != "" {
			message += ", please use " + name
		}
	}
	if _, seen := h.warned[message]; seen {
		return name, ""
	}
	h.warned[message] = struct{}{}
	return name, message
}

package hookable

import "errors"

var (
	// ErrAliasCycle is returned by Deprecate when the requested alias
	// would close a cycle in the deprecation chain (for example A→B
	// followed by B→A, or A→A).
	ErrAliasCycle = errors.New("hookable: deprecation alias cycle")

	// ErrInvalidTarget is returned by Deprecate when the target is
	// neither a string nor a Deprecation.
	ErrInvalidTarget = errors.New("hookable: invalid deprecation target")
)

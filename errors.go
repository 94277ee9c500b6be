package ostree

import "errors"

// Sentinel errors for the operations in spec.md §7. Wrapped with
// fmt.Errorf("...: %w", ...) at the call site so errors.Is(err,
// ErrKeyMissing) works regardless of which value or index was involved.
var (
	// ErrKeyMissing is returned by Remove, IndexOf, or a keyed Map lookup
	// when the requested value or key isn't present.
	ErrKeyMissing = errors.New("ostree: key missing")

	// ErrIndexOutOfRange is returned by Get, Pop, or At when an index falls
	// outside [-n, n). Slice clamps its bounds instead of returning it.
	ErrIndexOutOfRange = errors.New("ostree: index out of range")

	// ErrInvalidArgumentKind is returned when a Slice step is zero.
	ErrInvalidArgumentKind = errors.New("ostree: invalid argument kind")

	// ErrInvariantViolated is returned by Check when a red-black or
	// subtree-size invariant doesn't hold.
	ErrInvariantViolated = errors.New("ostree: invariant violated")

	// ErrInternalCorruption names the error kind for a tree descent that
	// reaches a branch the red-black invariants make unreachable. No
	// operation in this package returns it: descents do not test for such
	// branches.
	ErrInternalCorruption = errors.New("ostree: internal corruption")
)

package ostree

import "fmt"

// Shared facade methods for Set, Multiset, and Map (spec.md §4.6, §6). Set
// and Multiset embed *tree[T] and get these promoted automatically; Map holds
// a *tree[entry[K, V]] field and forwards to them from its own key/value
// methods. Constructors and anything specific to one
// view (Insert's multiset flag, Map's key/value split, set algebra) live in
// set.go, multiset.go, and map.go instead.

// Len reports the number of elements in the container.
func (t *tree[T]) Len() int {
	return t.length()
}

// Clear removes every element.
func (t *tree[T]) Clear() {
	t.clear()
}

// Remove deletes v and returns it, or ErrKeyMissing if v isn't present.
func (t *tree[T]) Remove(v T) (T, error) {
	n := t.findNode(v)
	if n == t.nilN {
		var zero T
		return zero, fmt.Errorf("%w: %v", ErrKeyMissing, v)
	}
	return t.deleteNode(n), nil
}

// Pop removes and returns the element at rank i (negative indices count
// from the end), or ErrIndexOutOfRange.
func (t *tree[T]) Pop(i int) (T, error) {
	idx, ok := normalizeIndex(i, t.length())
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, t.length())
	}
	return t.deleteNode(t.getNode(idx)), nil
}

// Find returns v's stored copy and true if present, else the zero value and
// false.
func (t *tree[T]) Find(v T) (T, bool) {
	n := t.findNode(v)
	if n == t.nilN {
		var zero T
		return zero, false
	}
	return n.value, true
}

// Contains reports whether v is present.
func (t *tree[T]) Contains(v T) bool {
	return t.findNode(v) != t.nilN
}

// Get returns the element at rank i (negative indices count from the end),
// or ErrIndexOutOfRange.
func (t *tree[T]) Get(i int) (T, error) {
	idx, ok := normalizeIndex(i, t.length())
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, t.length())
	}
	return t.getNode(idx).value, nil
}

// IndexOf returns the leftmost rank of v, or ErrKeyMissing if v isn't
// present.
func (t *tree[T]) IndexOf(v T) (int, error) {
	idx, ok := t.indexOf(v)
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrKeyMissing, v)
	}
	return idx, nil
}

// Slice materializes elements [i:j) stepping by step (which may be
// negative, for a reversed slice), following Python slice semantics for
// out-of-range and negative i/j. A zero step is ErrInvalidArgumentKind.
func (t *tree[T]) Slice(i, j, step int) ([]T, error) {
	if step == 0 {
		return nil, fmt.Errorf("%w: step must not be zero", ErrInvalidArgumentKind)
	}
	n := t.length()
	i = clampSliceIndex(i, n, step)
	j = clampSliceIndex(j, n, step)

	var out []T
	if step > 0 {
		for ; i < j; i += step {
			out = append(out, t.getNode(i).value)
		}
	} else {
		for ; i > j; i += step {
			out = append(out, t.getNode(i).value)
		}
	}
	return out, nil
}

func clampSliceIndex(i, n, step int) int {
	if i < 0 {
		i += n
		if i < 0 {
			if step > 0 {
				return 0
			}
			return -1
		}
	}
	if i >= n {
		if step > 0 {
			return n
		}
		return n - 1
	}
	return i
}

// Check walks the tree verifying every red-black and subtree-size
// invariant (spec.md §3), for debugging and tests. It never mutates the
// tree.
func (t *tree[T]) Check() error {
	return t.check()
}

// String renders the tree as "(L,value:COLOR,R)" with leaves as ".".
func (t *tree[T]) String() string {
	return t.treeString(t.root)
}

// Dump renders the tree as an indented diagram for humans (node value,
// color, subtree size per line). Not a stable format.
func (t *tree[T]) Dump() string {
	return t.dump()
}

// Hash computes a DJB2-style rolling hash over the in-order values
// (spec.md §4.6). Equal containers (by Compare) always hash equal.
func (t *tree[T]) Hash() uint64 {
	return t.djb2Hash()
}

// Iter returns a forward in-order iterator.
func (t *tree[T]) Iter() *Iterator[T] {
	return &Iterator[T]{c: newCursor(t, true)}
}

// ReverseIter returns a reverse in-order iterator.
func (t *tree[T]) ReverseIter() *Iterator[T] {
	return &Iterator[T]{c: newCursor(t, false)}
}

// NodeIter returns a forward in-order iterator positioned to support
// Delete from the very first element — it is identical to Iter; there is
// no separate node-handle type exposed to callers.
func (t *tree[T]) NodeIter() *Iterator[T] {
	return t.Iter()
}

package ostree

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// djb2Hash folds the in-order values of the whole tree into a
// single 64-bit hash, matching original_source/pyrbt.py's __hash__ exactly:
// h starts at 5381, and each value is mixed in as h = (h*33) ^ hash(v),
// masked to 64 bits (implicit in Go's uint64 arithmetic, which wraps rather
// than widens). Two trees that compare equal (spec.md §4.6) always produce
// the same hash, since the mix only depends on the in-order value sequence.
//
// hash(v) itself — left unspecified by the spec beyond "a hash of value v"
// — is computed via xxhash over the value's fmt.Sprint form, rather than
// hand-rolled, per DESIGN.md.
func (t *tree[T]) djb2Hash() uint64 {
	if t.isEmpty() {
		return 0
	}
	h := uint64(5381)
	c := newCursor(t, true)
	for n, ok := c.advance(); ok; n, ok = c.advance() {
		h = (h * 33) ^ valueHash(n.value)
	}
	return h
}

func valueHash[T any](v T) uint64 {
	return xxhash.Sum64String(fmt.Sprint(v))
}

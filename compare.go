package ostree

// compareTrees implements the lexicographic ordering from spec.md §4.6:
// shorter tree sorts first; otherwise the first differing pair of in-order
// values (compared with a's comparator) decides.
//
// Example ordering: [1] < [2] < [1,1] < [1,2] < [1,2,0].
func compareTrees[T any](a, b *tree[T]) int {
	if a.length() != b.length() {
		return a.length() - b.length()
	}
	ca := newCursor(a, true)
	cb := newCursor(b, true)
	for {
		na, aok := ca.advance()
		nb, bok := cb.advance()
		if !aok || !bok {
			return 0
		}
		if c := a.less(na.value, nb.value); c != 0 {
			return c
		}
	}
}

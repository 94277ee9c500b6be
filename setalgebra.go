package ostree

// Set algebra (spec.md §4.6): Union, Diff, Intersect, and SymmetricDiff all
// build a fresh Set in one in-order pass over each operand. Union walks one
// operand and then the other, inserting everything; the other three merge
// the two in-order streams side by side. Grounded on spec.md's own description ("classic merge-two-sorted-
// streams") — no example repo in the pack implements this over a red-black
// tree, so the merge logic here is composed from the Iterator this module
// already has, not reimplemented from scratch.

// Union returns a fresh set containing every value in s or other.
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	result := NewSet[T]()
	it := s.Iter()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		result.Insert(v)
	}
	it = other.Iter()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		result.Insert(v)
	}
	return result
}

// Diff returns a fresh set containing the values in s that are not in
// other.
func (s *Set[T]) Diff(other *Set[T]) *Set[T] {
	result := NewSet[T]()
	ai, bi := s.Iter(), other.Iter()
	av, aok := ai.Next()
	bv, bok := bi.Next()
	for aok {
		if !bok {
			result.Insert(av)
			av, aok = ai.Next()
			continue
		}
		switch c := s.less(av, bv); {
		case c < 0:
			result.Insert(av)
			av, aok = ai.Next()
		case c > 0:
			bv, bok = bi.Next()
		default:
			av, aok = ai.Next()
			bv, bok = bi.Next()
		}
	}
	return result
}

// Intersect returns a fresh set containing the values present in both s and
// other.
func (s *Set[T]) Intersect(other *Set[T]) *Set[T] {
	result := NewSet[T]()
	ai, bi := s.Iter(), other.Iter()
	av, aok := ai.Next()
	bv, bok := bi.Next()
	for aok && bok {
		switch c := s.less(av, bv); {
		case c < 0:
			av, aok = ai.Next()
		case c > 0:
			bv, bok = bi.Next()
		default:
			result.Insert(av)
			av, aok = ai.Next()
			bv, bok = bi.Next()
		}
	}
	return result
}

// SymmetricDiff returns a fresh set containing the values present in
// exactly one of s or other.
func (s *Set[T]) SymmetricDiff(other *Set[T]) *Set[T] {
	result := NewSet[T]()
	ai, bi := s.Iter(), other.Iter()
	av, aok := ai.Next()
	bv, bok := bi.Next()
	for aok || bok {
		switch {
		case !bok || (aok && s.less(av, bv) < 0):
			result.Insert(av)
			av, aok = ai.Next()
		case !aok || (bok && s.less(av, bv) > 0):
			result.Insert(bv)
			bv, bok = bi.Next()
		default:
			av, aok = ai.Next()
			bv, bok = bi.Next()
		}
	}
	return result
}

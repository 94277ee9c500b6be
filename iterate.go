package ostree

// cursor is the shared in-order traversal engine behind every public
// iterator (Iter, ReverseIter, NodeIter). It holds the current node (nil
// once iteration has started but hasn't reached a node yet — it is seeded
// via nxt instead) and a pending next node, nxt, used both to seed the
// first step and to let Delete re-seed the cursor after splicing its
// current node out from under it.
//
// Grounded on original_source/pyrbt.py's RBIterator/next_node/delete: the
// node-swap version of the source is the one with a delete() method at all.
type cursor[T any] struct {
	t       *tree[T]
	forward bool
	cur     *node[T]
	nxt     *node[T]
	done    bool
}

func newCursor[T any](t *tree[T], forward bool) *cursor[T] {
	c := &cursor[T]{t: t, forward: forward}
	if !t.isEmpty() {
		if forward {
			c.nxt = t.minimum(t.root)
		} else {
			c.nxt = t.maximum(t.root)
		}
	}
	return c
}

// nextNode computes the node that follows from, given the cursor's cached
// seed nxt for when from is nil (either because iteration hasn't started,
// or because a Delete just cleared the current node).
func (c *cursor[T]) nextNode(from *node[T]) *node[T] {
	nilN := c.t.nilN
	if from == nil {
		return c.nxt
	}
	if c.forward {
		if from.right != nilN {
			n := from.right
			for n.left != nilN {
				n = n.left
			}
			return n
		}
		n := from
		for n.parent != nilN && n == n.parent.right {
			n = n.parent
		}
		if n.parent == nilN {
			return nil
		}
		return n.parent
	}
	if from.left != nilN {
		n := from.left
		for n.right != nilN {
			n = n.right
		}
		return n
	}
	n := from
	for n.parent != nilN && n == n.parent.left {
		n = n.parent
	}
	if n.parent == nilN {
		return nil
	}
	return n.parent
}

// advance moves the cursor to the next node in traversal order, or reports
// that iteration is finished. A finished cursor stays finished.
func (c *cursor[T]) advance() (*node[T], bool) {
	if c.done {
		return nil, false
	}
	next := c.nextNode(c.cur)
	if next == nil {
		c.done = true
		c.cur = nil
		return nil, false
	}
	c.cur = next
	return c.cur, true
}

// deleteCurrent removes the cursor's current node from the tree and
// advances the cursor past it, computing the next node to visit *before*
// the structural change (per spec.md §4.5) so that continued iteration
// still visits every node that was present at iterator creation time,
// except the one just deleted.
func (c *cursor[T]) deleteCurrent() bool {
	if c.cur == nil {
		return false
	}
	c.nxt = c.nextNode(c.cur)
	c.t.deleteNode(c.cur)
	c.cur = nil
	return true
}

// Iterator is an in-order cursor over a Set, Multiset, or Map: forward from
// Iter, reverse from ReverseIter. Mutating the underlying container through
// any path other than this iterator's own Delete is undefined behavior
// (spec.md §5) — only one iterator may safely drive deletions at a time.
type Iterator[T any] struct {
	c *cursor[T]
}

// Next advances the iterator and reports whether it produced a value. Once
// Next returns false, it keeps returning false.
func (it *Iterator[T]) Next() (T, bool) {
	n, ok := it.c.advance()
	if !ok {
		var zero T
		return zero, false
	}
	return n.value, true
}

// Delete removes the value the iterator is currently positioned on and
// advances past it. It panics if called before the first Next or after
// iteration has finished — mirroring the precondition in spec.md §4.5 that
// delete is only meaningful mid-traversal.
func (it *Iterator[T]) Delete() {
	if !it.c.deleteCurrent() {
		panic("ostree: Iterator.Delete called with no current element")
	}
}

package ostree

// findNode returns the node holding item, or the sentinel if absent.
func (t *tree[T]) findNode(item T) *node[T] {
	cur := t.root
	for cur != t.nilN {
		cmp := t.less(item, cur.value)
		if cmp == 0 {
			return cur
		} else if cmp < 0 {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return cur
}

// deleteNode removes target from the tree and returns its value.
//
// Uses the node-swap strategy (original_source/pyrbt.py's _swap_nodes, not
// the value-swap used by pyRBT.py): when target has any child, its
// structural fields (color, size, left, right, parent) are physically
// exchanged with its in-order neighbor's, so target itself ends up at the
// position with at most one child and is the node actually spliced out.
// Node identity is preserved, which is what lets Iterator.Delete splice the
// exact node its cursor points at without invalidating the cursor.
//
// Values are never swapped (spec.md §9 warns against the double-swap found
// in one version of the source, where a value-swap inside the structural
// swap is undone again by the caller — a no-op that's an easy source of
// bugs). Here the value stays with its node throughout; only the node's
// place in the tree moves.
func (t *tree[T]) deleteNode(target *node[T]) T {
	val := target.value

	victim := target
	if victim.right != t.nilN {
		victim = t.minimum(victim.right)
	} else if victim.left != t.nilN {
		victim = t.maximum(victim.left)
	}

	if victim != target {
		t.swapNodes(target, victim)
	}

	// target now occupies the position with at most one non-sentinel
	// child (its own original position, if victim == target; otherwise
	// the position victim used to hold).
	for p := target.parent; p != t.nilN; p = p.parent {
		p.size--
	}

	var child *node[T]
	if target.left != t.nilN {
		child = target.left
	} else {
		child = target.right
	}

	spliceColor := target.color
	t.replace(target.parent, target, child)

	if spliceColor == black {
		if t.isRed(child) {
			child.color = black
		} else {
			t.deleteFixup(child)
		}
	}

	return val
}

// swapNodes physically exchanges the tree positions of a and b: afterwards
// a sits where b used to sit (and vice versa), with color, size and
// children swapped between them. Node identity (the pointer) and value are
// untouched. b is always a's in-order successor or predecessor, so b is
// always a descendant of a, either directly (a's immediate child) or
// several levels down.
func (t *tree[T]) swapNodes(a, b *node[T]) {
	a.color, b.color = b.color, a.color
	a.size, b.size = b.size, a.size

	aL, aR, aP := a.left, a.right, a.parent
	bL, bR, bP := b.left, b.right, b.parent

	switch {
	case aR == b: // b is a's right child (b has no left child: bL == nilN)
		t.replace(aP, a, b)
		b.left, b.right = aL, a
		a.left, a.right = bL, bR
		a.parent = b
		if aL != t.nilN {
			aL.parent = b
		}
		if bR != t.nilN {
			bR.parent = a
		}
	case aL == b: // b is a's left child (b has no right child: bR == nilN)
		t.replace(aP, a, b)
		b.left, b.right = a, aR
		a.left, a.right = bL, bR
		a.parent = b
		if aR != t.nilN {
			aR.parent = b
		}
		if bL != t.nilN {
			bL.parent = a
		}
	default: // b is not a direct child of a
		t.replace(aP, a, b)
		b.left, b.right = aL, aR
		if aL != t.nilN {
			aL.parent = b
		}
		if aR != t.nilN {
			aR.parent = b
		}

		t.replace(bP, b, a)
		a.left, a.right = bL, bR
		if bL != t.nilN {
			bL.parent = a
		}
		if bR != t.nilN {
			bR.parent = a
		}
	}
}

// deleteFixup restores red-black invariants after a black node was spliced
// out and replaced by n (possibly the sentinel), following the standard
// CLRS case numbering (case 2, a red sibling, rotates toward n and falls
// through to one of cases 3-6 with a black sibling; case 4, black sibling
// with a red parent and black nephews, terminates without reaching 5/6).
func (t *tree[T]) deleteFixup(n *node[T]) {
	for n != t.root && t.isBlack(n) {
		if n == n.parent.left {
			sib := n.parent.right
			if t.isRed(sib) {
				sib.color = black
				n.parent.color = red
				t.rotateLeft(n.parent)
				sib = n.parent.right
			}
			if t.isBlack(sib.left) && t.isBlack(sib.right) {
				sib.color = red
				n = n.parent
			} else {
				if t.isBlack(sib.right) {
					sib.left.color = black
					sib.color = red
					t.rotateRight(sib)
					sib = n.parent.right
				}
				sib.color = n.parent.color
				n.parent.color = black
				sib.right.color = black
				t.rotateLeft(n.parent)
				n = t.root
			}
		} else {
			sib := n.parent.left
			if t.isRed(sib) {
				sib.color = black
				n.parent.color = red
				t.rotateRight(n.parent)
				sib = n.parent.left
			}
			if t.isBlack(sib.right) && t.isBlack(sib.left) {
				sib.color = red
				n = n.parent
			} else {
				if t.isBlack(sib.left) {
					sib.right.color = black
					sib.color = red
					t.rotateLeft(sib)
					sib = n.parent.left
				}
				sib.color = n.parent.color
				n.parent.color = black
				sib.left.color = black
				t.rotateRight(n.parent)
				n = t.root
			}
		}
	}
	n.color = black
}

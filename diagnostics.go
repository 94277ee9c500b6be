package ostree

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"
)

// check walks the tree verifying invariants 1–8 from spec.md §3, returning
// ErrInvariantViolated wrapped with a description of the first violation
// found. For debugging and tests only.
func (t *tree[T]) check() error {
	if t.isEmpty() {
		return nil
	}
	if t.root.color != black {
		return fmt.Errorf("%w: root is not black", ErrInvariantViolated)
	}
	if t.root.parent != t.nilN {
		return fmt.Errorf("%w: root has a non-sentinel parent", ErrInvariantViolated)
	}

	blackHeight := -1
	var prev *node[T]
	var walk func(n *node[T], blackCount int) error
	walk = func(n *node[T], blackCount int) error {
		if n == t.nilN {
			return nil
		}
		if n.color == black {
			blackCount++
		}
		if n.left != t.nilN && n.left.parent != n {
			return fmt.Errorf("%w: left child's parent back-pointer is wrong at %v", ErrInvariantViolated, n.value)
		}
		if n.right != t.nilN && n.right.parent != n {
			return fmt.Errorf("%w: right child's parent back-pointer is wrong at %v", ErrInvariantViolated, n.value)
		}
		if got, want := n.size, n.left.size+n.right.size+1; got != want {
			return fmt.Errorf("%w: size %d at %v, want %d", ErrInvariantViolated, got, n.value, want)
		}
		if n.color == red {
			if n.left.color == red || n.right.color == red {
				return fmt.Errorf("%w: red node %v has a red child", ErrInvariantViolated, n.value)
			}
		}
		if n.left != t.nilN && t.less(n.left.value, n.value) >= 0 {
			return fmt.Errorf("%w: left child %v not less than %v", ErrInvariantViolated, n.left.value, n.value)
		}
		if n.right != t.nilN && t.less(n.right.value, n.value) < 0 {
			return fmt.Errorf("%w: right child %v less than %v", ErrInvariantViolated, n.right.value, n.value)
		}
		if n.left == t.nilN || n.right == t.nilN {
			leafBlack := blackCount + 1 // sentinel itself is black
			if blackHeight == -1 {
				blackHeight = leafBlack
			} else if blackHeight != leafBlack {
				return fmt.Errorf("%w: black-height %d at %v, want %d", ErrInvariantViolated, leafBlack, n.value, blackHeight)
			}
		}
		if err := walk(n.left, blackCount); err != nil {
			return err
		}
		if prev != nil && t.less(prev.value, n.value) > 0 {
			return fmt.Errorf("%w: %v precedes %v in order", ErrInvariantViolated, prev.value, n.value)
		}
		prev = n
		return walk(n.right, blackCount)
	}
	if err := walk(t.root, 0); err != nil {
		return err
	}
	if t.nilN.color != black || t.nilN.size != 0 {
		return fmt.Errorf("%w: sentinel corrupted", ErrInvariantViolated)
	}
	return nil
}

// treeString renders the subtree rooted at n as "(L,value:COLOR,R)", with
// leaves rendered as ".". Grounded on original_source/pyRBT.py's
// RBNode.treestr/RBLeaf.treestr.
func (t *tree[T]) treeString(n *node[T]) string {
	if n == t.nilN {
		return "."
	}
	col := "R"
	if n.color == black {
		col = "B"
	}
	return "(" + t.treeString(n.left) + "," + fmt.Sprint(n.value) + ":" + col + "," + t.treeString(n.right) + ")"
}

// dump renders the tree as an indented diagram via xlab/treeprint, showing
// each node's value, color and subtree size. Unlike treeString this is not
// a stable wire-ish format — it exists purely for humans reading test
// failures or debugging output.
func (t *tree[T]) dump() string {
	root := treeprint.New()
	if t.isEmpty() {
		root.SetValue("(empty)")
		return root.String()
	}
	var add func(p treeprint.Tree, n *node[T])
	add = func(p treeprint.Tree, n *node[T]) {
		if n == t.nilN {
			return
		}
		col := "R"
		if n.color == black {
			col = "B"
		}
		label := fmt.Sprintf("%v [%s size=%d]", n.value, col, n.size)
		if n.left == t.nilN && n.right == t.nilN {
			p.AddNode(label)
			return
		}
		branch := p.AddBranch(label)
		add(branch, n.left)
		add(branch, n.right)
	}
	add(root, t.root)
	return strings.TrimSuffix(root.String(), "\n")
}

package ostree

// color is a red-black node color.
type color bool

const (
	red   color = false
	black color = true
)

// node is an internal tree node, or the shared sentinel leaf when size == 0.
//
// A single sentinel is shared by every leaf position in a tree (it is
// always black, has size 0, and its parent field names whichever internal
// node it was most recently spliced under). This avoids
// allocating a fresh sentinel per position.
type node[T any] struct {
	value  T
	color  color
	size   int
	left   *node[T]
	right  *node[T]
	parent *node[T]
}

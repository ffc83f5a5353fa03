// internal/obtree/cursor.go
package obtree

// maxCursorDepth bounds a Cursor's path/positions arrays. 64 levels is
// sufficient for any legal order (>=3) and up to 2^63 keys - even the
// narrowest tree (order=3, min_keys=1 per non-root node) cannot exceed this
// depth before running out of representable keys.
const maxCursorDepth = 64

// Cursor is an external iterator over a Tree, holding an explicit
// root-to-leaf path and a per-level position instead of parent
// back-pointers on the nodes themselves. A Cursor is a non-owning borrower
// of its Tree: it does not keep the Tree alive on its own, and structural
// mutation of the Tree while a Cursor exists is undefined - Go has no
// compile-time aliasing checks to enforce this, so it is the caller's
// responsibility not to mutate a Tree with outstanding cursors.
//
// positions[d] carries two meanings depending on whether d is the
// cursor's current depth or an ancestor of it. For an ancestor (d <
// depth), it is the index of the child of path[d] that was followed to
// reach path[d+1]. At the current depth (d == depth), it is either a key
// index into a leaf, or - when path[depth] is internal - the index of the
// promoted separator key the cursor is resting on. A proper in-order
// traversal visits both: a leaf's keys, and each internal node's
// separators in between its children's subtrees.
type Cursor struct {
	tree      *Tree
	path      []*node
	positions []int
	depth     int
	valid     bool
}

// NewCursor creates a Cursor against t. The cursor is unpositioned (Valid
// reports false) until First, Last, or Seek is called.
func NewCursor(t *Tree) (*Cursor, error) {
	if t == nil {
		return nil, newError("NewCursor", StatusInvalidArgument, nil)
	}
	return &Cursor{
		tree:      t,
		path:      make([]*node, maxCursorDepth),
		positions: make([]int, maxCursorDepth),
		depth:     -1,
		valid:     false,
	}, nil
}

// Valid reports whether the cursor currently points at an entry.
func (c *Cursor) Valid() bool { return c.valid }

// First positions the cursor at the smallest key in the tree, by descending
// the children[0] chain from the root. Valid reports false afterward iff
// the tree is empty.
func (c *Cursor) First() error {
	if c.tree == nil || c.tree.root == nil {
		return newError("Cursor.First", StatusInvalidArgument, nil)
	}

	c.depth = 0
	c.path[0] = c.tree.root

	for !c.path[c.depth].isLeaf {
		n := c.path[c.depth]
		c.positions[c.depth] = 0 // child 0 followed
		c.depth++
		c.path[c.depth] = n.children[0]
	}

	c.positions[c.depth] = 0
	c.valid = c.path[c.depth].numKeys() > 0
	if !c.valid {
		return newError("Cursor.First", StatusNotFound, nil)
	}
	return nil
}

// Last positions the cursor at the largest key in the tree, by descending
// the rightmost-child chain from the root. Valid reports false afterward
// iff the tree is empty.
func (c *Cursor) Last() error {
	if c.tree == nil || c.tree.root == nil {
		return newError("Cursor.Last", StatusInvalidArgument, nil)
	}

	c.depth = 0
	c.path[0] = c.tree.root

	for !c.path[c.depth].isLeaf {
		n := c.path[c.depth]
		c.positions[c.depth] = n.numKeys() // rightmost child followed
		c.depth++
		c.path[c.depth] = n.children[n.numKeys()]
	}

	c.positions[c.depth] = c.path[c.depth].numKeys() - 1
	c.valid = c.positions[c.depth] >= 0
	if !c.valid {
		return newError("Cursor.Last", StatusNotFound, nil)
	}
	return nil
}

// Next advances the cursor to the next key in ascending in-order sequence.
// Within a leaf this is a local step. Resting on an internal separator, the
// successor is the smallest key of the subtree just to its right, found by
// descending that child's children[0] chain. Once a leaf is exhausted, the
// cursor pops up the path; each internal ancestor it lands on is itself a
// key in the sequence (the promoted separator between the subtree just
// finished and the one still to come) and is visited before any further
// descent. If no successor exists, Valid becomes false and Next reports
// not-found.
func (c *Cursor) Next() error {
	if !c.valid {
		return newError("Cursor.Next", StatusInvalidArgument, nil)
	}

	n := c.path[c.depth]
	if n.isLeaf {
		c.positions[c.depth]++
		if c.positions[c.depth] < n.numKeys() {
			return nil
		}
		return c.ascendToSuccessor()
	}

	childIdx := c.positions[c.depth] + 1
	c.positions[c.depth] = childIdx // now recorded as the child followed
	return c.descendLeftmost(n.children[childIdx])
}

// descendLeftmost pushes cur, and its leftmost descendants down to a leaf,
// onto the path, landing the cursor on the smallest key of the subtree
// rooted at cur.
func (c *Cursor) descendLeftmost(cur *node) error {
	c.depth++
	c.path[c.depth] = cur
	for !cur.isLeaf {
		c.positions[c.depth] = 0
		c.depth++
		cur = cur.children[0]
		c.path[c.depth] = cur
	}
	c.positions[c.depth] = 0
	c.valid = true
	return nil
}

// ascendToSuccessor pops the path looking for the next in-order key: the
// first ancestor that was reached by following a child index less than its
// own key count is itself that key (a promoted separator); if every
// ancestor was reached via its last child, the tree is exhausted. Also used
// by Seek when a miss at a leaf lands past its last key.
func (c *Cursor) ascendToSuccessor() error {
	for c.depth > 0 {
		childIdx := c.positions[c.depth-1]
		c.depth--
		if childIdx < c.path[c.depth].numKeys() {
			c.valid = true
			return nil
		}
	}

	c.valid = false
	return newError("Cursor.Next", StatusNotFound, nil)
}

// Prev moves the cursor to the previous key in ascending in-order sequence,
// symmetric to Next: a local step within the leaf if possible; resting on
// an internal separator, the predecessor is the largest key of the subtree
// just to its left; once a leaf is exhausted backward, the cursor pops up
// looking for the first ancestor reached via a nonzero child index, which
// is itself the predecessor (the separator just before that child). Prev
// has no declared body in the design this package implements (see
// SPEC_FULL.md §9) and is realized here by structural symmetry with Next.
func (c *Cursor) Prev() error {
	if !c.valid {
		return newError("Cursor.Prev", StatusInvalidArgument, nil)
	}

	n := c.path[c.depth]
	if n.isLeaf {
		if c.positions[c.depth] > 0 {
			c.positions[c.depth]--
			return nil
		}
		return c.ascendToPredecessor()
	}

	childIdx := c.positions[c.depth]
	return c.descendRightmost(n.children[childIdx])
}

// descendRightmost pushes cur, and its rightmost descendants down to a
// leaf, onto the path, landing the cursor on the largest key of the
// subtree rooted at cur.
func (c *Cursor) descendRightmost(cur *node) error {
	c.depth++
	c.path[c.depth] = cur
	for !cur.isLeaf {
		c.positions[c.depth] = cur.numKeys()
		c.depth++
		cur = cur.children[cur.numKeys()]
		c.path[c.depth] = cur
	}
	c.positions[c.depth] = cur.numKeys() - 1
	c.valid = true
	return nil
}

func (c *Cursor) ascendToPredecessor() error {
	for c.depth > 0 {
		childIdx := c.positions[c.depth-1]
		c.depth--
		if childIdx > 0 {
			c.positions[c.depth] = childIdx - 1
			c.valid = true
			return nil
		}
	}

	c.valid = false
	return newError("Cursor.Prev", StatusNotFound, nil)
}

// Seek positions the cursor at the smallest key >= key, descending the tree
// by binary search and recording the child index taken at each level. An
// exact match positions the cursor at that key directly, even if it lives
// on an internal node as a separator (in which case Get will report a nil
// value, per the promoted-separator limitation). A miss that lands past the
// last key of a leaf falls through to the same successor search Next uses.
// If no key >= key exists, Valid becomes false.
func (c *Cursor) Seek(key Key) error {
	if c.tree == nil || c.tree.root == nil {
		return newError("Cursor.Seek", StatusInvalidArgument, nil)
	}

	c.depth = 0
	c.path[0] = c.tree.root
	n := c.tree.root

	for {
		if c.tree.collectStats {
			c.tree.stats.NodeVisits++
		}
		res := searchNode(n, key, &c.tree.stats, c.tree.collectStats)
		c.positions[c.depth] = res.pos

		if res.found {
			c.valid = true
			return nil
		}

		if n.isLeaf {
			if res.pos == n.numKeys() {
				return c.ascendToSuccessor()
			}
			c.valid = true
			return nil
		}

		child := n.children[res.pos]
		c.depth++
		c.path[c.depth] = child
		n = child
	}
}

// Get reads the (key, value) pair at the cursor's current position. The
// key is always written; the value is written only if the current node is
// a leaf (an internal-node match has no associated value, per the
// promoted-separator limitation). Get fails on an unpositioned cursor.
func (c *Cursor) Get() (Key, Value, error) {
	if !c.valid {
		return 0, nil, newError("Cursor.Get", StatusInvalidArgument, nil)
	}

	n := c.path[c.depth]
	pos := c.positions[c.depth]
	if pos < 0 || pos >= n.numKeys() {
		return 0, nil, newError("Cursor.Get", StatusInvalidArgument, nil)
	}

	key := n.keys[pos]
	if n.isLeaf {
		return key, n.values[pos], nil
	}
	return key, nil, nil
}

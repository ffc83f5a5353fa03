// internal/obtree/node.go
package obtree

// Key is the signed 64-bit ordering key for every entry in a Tree. Ordering
// is the natural signed comparison.
type Key int64

// Value is an opaque caller-supplied handle. The tree never inspects,
// compares, or copies the contents of a Value beyond storing and returning
// it; it exists only in leaves.
type Value any

// node is one node of the B-tree: up to order-1 sorted keys, plus either
// per-key values (a leaf) or order child links (internal). values and
// children are mutually exclusive - exactly one is populated, per the
// value-locality invariant.
type node struct {
	keys     []Key
	values   []Value
	children []*node
	isLeaf   bool
}

// newNode allocates an empty node with capacity for order-1 keys (and order
// children, if internal), matching node_create's up-front sizing.
func newNode(order int, isLeaf bool) *node {
	n := &node{
		keys:   make([]Key, 0, order-1),
		isLeaf: isLeaf,
	}
	if isLeaf {
		n.values = make([]Value, 0, order-1)
	} else {
		n.children = make([]*node, 0, order)
	}
	return n
}

func (n *node) numKeys() int { return len(n.keys) }

// insertKeyValueAt shifts keys[at:] and values[at:] right by one and stores
// (key, value) at at. Caller guarantees at is a valid insertion position and
// the node is a leaf with spare capacity.
func (n *node) insertKeyValueAt(at int, key Key, value Value) {
	n.keys = append(n.keys, 0)
	copy(n.keys[at+1:], n.keys[at:])
	n.keys[at] = key

	n.values = append(n.values, nil)
	copy(n.values[at+1:], n.values[at:])
	n.values[at] = value
}

// insertSeparatorAt shifts keys[at:] right by one and installs key as a
// parent separator. Used by split to promote a key into an internal node.
func (n *node) insertSeparatorAt(at int, key Key) {
	n.keys = append(n.keys, 0)
	copy(n.keys[at+1:], n.keys[at:])
	n.keys[at] = key
}

// insertChildAt shifts children[at:] right by one and installs child at at.
func (n *node) insertChildAt(at int, child *node) {
	n.children = append(n.children, nil)
	copy(n.children[at+1:], n.children[at:])
	n.children[at] = child
}

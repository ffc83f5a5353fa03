// internal/obtree/tree.go
package obtree

// DefaultOrder is the recommended fanout: high enough to keep height <= 3
// for realistic data sizes, while still small enough that in-node binary
// search stays cheap. SQLite uses a similar high-fanout B-tree for the same
// reason.
const DefaultOrder = 128

const (
	minOrder = 3
	maxOrder = 1024
)

// Tree is an in-memory ordered index keyed by Key, implemented as a B-tree
// of the configured order (maximum children per node). It is not safe for
// concurrent use: a Tree is exclusively owned by its creator, and a Cursor
// created against it borrows it read-only (see Cursor).
type Tree struct {
	root         *node
	order        int
	minKeys      int
	stats        Stats
	collectStats bool
}

// New creates an empty Tree with the given order (maximum children per
// node). order must satisfy 3 <= order <= 1024; outside that range New
// returns an invalid-argument error. Statistics collection is enabled by
// default.
func New(order int) (*Tree, error) {
	if order < minOrder || order > maxOrder {
		return nil, newError("New", StatusInvalidArgument, nil)
	}

	t := &Tree{
		order:        order,
		minKeys:      (order - 1) / 2,
		collectStats: true,
	}
	t.root = newNode(order, true)
	t.stats.NodeCount = 1
	t.stats.Height = 1
	return t, nil
}

// Order reports the tree's configured fanout.
func (t *Tree) Order() int { return t.order }

// SetCollectStats toggles collection of the hot-path counters (Comparisons,
// NodeVisits). The coarser operation counters and structural counters are
// always updated regardless of this setting.
func (t *Tree) SetCollectStats(enabled bool) { t.collectStats = enabled }

// Clear discards every node and reinstalls a fresh empty leaf root,
// resetting all statistics except NodeCount (reset to 1) and Height (reset
// to 1).
func (t *Tree) Clear() {
	t.root = newNode(t.order, true)
	t.stats = Stats{NodeCount: 1, Height: 1}
}

// Destroy releases the tree's root. Provided for symmetry with the
// create/destroy lifecycle this core's design is modeled on; in Go this
// is just dropping the last reference to the node graph for the garbage
// collector; it is safe to call on a Tree that is about to go out of scope
// on its own, and safe to call more than once.
func (t *Tree) Destroy() {
	t.root = nil
}

// Insert stores value under key, or overwrites the existing value if key is
// already present (upsert semantics; never an error for a duplicate key).
// It uses proactive top-down splitting: any full node encountered on the
// way down is split before being descended into, so a child is never split
// from below.
func (t *Tree) Insert(key Key, value Value) error {
	if t.root == nil {
		return newError("Insert", StatusInvalidArgument, nil)
	}
	t.stats.InsertOps++

	if t.root.numKeys() == t.order-1 {
		newRoot := newNode(t.order, false)
		newRoot.children = append(newRoot.children, t.root)
		t.root = newRoot
		t.stats.NodeCount++
		t.stats.Height++
		t.splitChild(newRoot, 0)
	}

	t.insertNonFull(t.root, key, value)
	return nil
}

// insertNonFull inserts (key, value) into the subtree rooted at n, where n
// is guaranteed to have spare capacity (the proactive splitting in Insert
// and here ensures this holds at every level descended into).
func (t *Tree) insertNonFull(n *node, key Key, value Value) {
	if t.collectStats {
		t.stats.NodeVisits++
	}

	res := searchNode(n, key, &t.stats, t.collectStats)

	if n.isLeaf {
		if res.found {
			n.values[res.pos] = value
			return
		}
		n.insertKeyValueAt(res.pos, key, value)
		t.stats.KeyCount++
		return
	}

	pos := res.pos
	if res.found {
		pos++ // exact match on a separator: continue into the right subtree
	}

	if n.children[pos].numKeys() == t.order-1 {
		t.splitChild(n, pos)
		if key > n.keys[pos] {
			pos++
		}
	}

	t.insertNonFull(n.children[pos], key, value)
}

// splitChild splits the full node at parent.children[i] about its median
// key, promoting that key into parent and installing the new right sibling
// as parent.children[i+1].
func (t *Tree) splitChild(parent *node, i int) {
	child := parent.children[i]
	mid := (t.order - 1) / 2

	right := newNode(t.order, child.isLeaf)
	right.keys = append(right.keys, child.keys[mid+1:]...)
	if child.isLeaf {
		right.values = append(right.values, child.values[mid+1:]...)
	} else {
		right.children = append(right.children, child.children[mid+1:]...)
		child.children = child.children[:mid+1]
	}

	promoted := child.keys[mid]
	child.keys = child.keys[:mid]

	parent.insertChildAt(i+1, right)
	parent.insertSeparatorAt(i, promoted)

	t.stats.NodeCount++
	t.stats.Splits++
}

// Search looks up key and reports whether it is present. If found and the
// match is at a leaf, the stored value is returned; per the known
// value-loss-at-promoted-separators limitation (see SPEC_FULL.md §9), a key that exists only as an internal separator
// (because its originating leaf value was not preserved across a split)
// reports found=true with a nil value.
func (t *Tree) Search(key Key) (value Value, found bool) {
	if t.root == nil {
		return nil, false
	}
	t.stats.SearchOps++

	n := t.root
	for {
		if t.collectStats {
			t.stats.NodeVisits++
		}
		res := searchNode(n, key, &t.stats, t.collectStats)

		if res.found {
			if n.isLeaf {
				return n.values[res.pos], true
			}
			return nil, true
		}
		if n.isLeaf {
			return nil, false
		}
		n = n.children[res.pos]
	}
}

// Contains reports whether key is present; a thin wrapper over Search.
func (t *Tree) Contains(key Key) bool {
	_, found := t.Search(key)
	return found
}

// Delete performs the core's degenerate tombstone-style delete: on a hit it
// decrements KeyCount and reports success, without removing the key from
// its node. This intentionally does not rebalance and the key remains
// visible to cursor traversal and Search/Contains afterward - see
// SPEC_FULL.md §9's "Degenerate delete" decision. Full rebalancing delete
// is an open question, not implemented here.
func (t *Tree) Delete(key Key) error {
	if t.root == nil {
		return newError("Delete", StatusInvalidArgument, nil)
	}
	t.stats.DeleteOps++

	if _, found := t.Search(key); !found {
		return newError("Delete", StatusNotFound, nil)
	}
	t.stats.KeyCount--
	return nil
}

// internal/bench/linear.go
package bench

import "github.com/lattice-tree/obtree/internal/obtree"

// linearArray is the O(N) baseline from the original benchmark's
// linear_array_t: a flat slice scanned on every search, used only to
// quantify how much faster the B-tree is - never exposed as an alternative
// index implementation.
type linearArray struct {
	keys   []obtree.Key
	values []obtree.Value
}

func newLinearArray(capacity int) *linearArray {
	return &linearArray{
		keys:   make([]obtree.Key, 0, capacity),
		values: make([]obtree.Value, 0, capacity),
	}
}

func (a *linearArray) Insert(key obtree.Key, value obtree.Value) {
	a.keys = append(a.keys, key)
	a.values = append(a.values, value)
}

// Search scans linearly for key, counting every comparison performed into
// *comparisons - the same quantity Stats.Comparisons measures for the
// B-tree, so the two are directly comparable.
func (a *linearArray) Search(key obtree.Key, comparisons *uint64) bool {
	for _, k := range a.keys {
		*comparisons++
		if k == key {
			return true
		}
	}
	return false
}

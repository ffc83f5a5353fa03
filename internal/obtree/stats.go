// internal/obtree/stats.go
package obtree

// Stats is a snapshot of a Tree's instrumentation counters. NodeCount,
// KeyCount and Height reflect structural state and are always kept current;
// the rest record operation attempts and are gated by CollectStats for the
// hot-path counters (Comparisons, NodeVisits) as noted on each field.
type Stats struct {
	NodeCount     uint64
	KeyCount      uint64
	Height        uint32
	Comparisons   uint64 // gated by collectStats
	NodeVisits    uint64 // gated by collectStats
	Splits        uint64
	Merges        uint64 // always zero: this core never merges nodes (§4.1 degenerate delete)
	SearchOps     uint64
	InsertOps     uint64
	DeleteOps     uint64
	AvgFillFactor float64
}

// reset zeroes every counter except the structural ones (NodeCount,
// KeyCount, Height), which describe the tree's current shape rather than a
// count of operations performed.
func (s *Stats) reset() {
	nodeCount, keyCount, height := s.NodeCount, s.KeyCount, s.Height
	*s = Stats{}
	s.NodeCount, s.KeyCount, s.Height = nodeCount, keyCount, height
}

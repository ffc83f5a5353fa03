// Package obtree implements an in-memory ordered index keyed by signed
// 64-bit integers, structured as a B-tree with configurable fanout.
//
// It supports point insert/update (upsert), point search, ordered
// traversal via Cursor, and per-operation instrumentation (comparisons,
// node visits, splits, height, fill factor) exposed through Stats. The
// design follows SQLite's high-fanout B-tree approach: a large order keeps
// tree height small while binary search within each node keeps per-level
// cost low.
//
// A Tree is not safe for concurrent use and is exclusively owned by its
// creator; a Cursor borrows a Tree read-only and is invalidated by any
// structural mutation of that Tree while it exists.
package obtree

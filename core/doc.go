// Package core provides the dense-graph container: a deduplicating node arena
// with index-stable slot reuse, a square adjacency matrix with power-of-two
// capacity growth, and the Graph type that composes the two.
//
// What
//
//   - NodeArena[N] owns node values, guarantees uniqueness, and hands out
//     stable integer indices. Freed indices are reused last-removed-first, so
//     the arena stays compact under steady churn without a compaction pass.
//   - AdjacencyStore[W] owns a resizable square matrix of optional edge
//     payloads keyed by (row, column). Capacity only grows, never shrinks.
//   - Graph[N, W] composes the two and exposes node/edge CRUD, O(1) edge
//     lookup, and lazy neighbor enumeration.
//
// Why
//
//   - Dense graphs want O(1) edge access by index pair; an adjacency matrix
//     delivers that at the cost of O(n²) space, which is the deliberate trade.
//   - Index-stable handles let callers hold node indices across removals of
//     unrelated nodes.
//
// Iterator invalidation
//
//	Iterators returned by Graph.Nodes and Graph.Neighbors (and NodeArena.Iter)
//	borrow the container for their lifetime. Every successful structural
//	mutation bumps an internal generation counter; an outstanding iterator
//	detects the bump on its next step, stops, and reports
//	ErrConcurrentMutation via Err(). Silent stale reads never happen.
//
// Errors
//
//   - ErrDuplicateNode       on adding a node value that is already live.
//   - ErrDuplicateEdge       on adding an edge over a populated cell.
//   - ErrIndexOutOfRange     on edge or neighbor operations naming no live node.
//   - ErrConcurrentMutation  reported by iterators invalidated by mutation.
//
// The unchecked accessor NodeArena.Get panics on an invalid or empty slot;
// that is a documented programmer-error precondition, not a recoverable
// condition. Every other surface returns errors or explicit "not found".
//
// Concurrency
//
//	None. The container is single-threaded by design; wrap it behind your own
//	mutex if you need cross-goroutine access.
package core

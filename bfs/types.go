// File: types.go
// Role: capability interfaces, result types, and error definitions for
// breadth-first traversal over an index-addressed graph source.

package bfs

import "errors"

// Sentinel errors for traversal construction and execution.
var (
	// ErrSourceNil is returned if a nil source is passed to New.
	ErrSourceNil = errors.New("bfs: source is nil")

	// ErrStartNotFound is returned when the start index resolves to no node.
	ErrStartNotFound = errors.New("bfs: no node at start index")

	// ErrSourceMutated is reported when a versioned source was structurally
	// mutated while a traversal over it was alive.
	ErrSourceMutated = errors.New("bfs: source mutated during traversal")

	// ErrNeighbors is reported when neighbor enumeration fails mid-traversal.
	ErrNeighbors = errors.New("bfs: neighbor enumeration error")
)

// NeighborSeq enumerates the outgoing (index, node) pairs of one row.
// *core.NeighborIterator satisfies it.
type NeighborSeq[N any] interface {
	// Next returns the next (index, node) pair, or false when exhausted.
	Next() (int, N, bool)

	// Err reports why the sequence stopped early, or nil.
	Err() error
}

// Source is the capability pair breadth-first traversal is defined over:
// enumerate the neighbors of an index, and resolve a node by index.
// It deliberately says nothing about how edges are stored.
type Source[N any] interface {
	// Neighbors returns a fresh enumeration of the outgoing (index, node)
	// pairs of idx, in ascending index order.
	Neighbors(idx int) (NeighborSeq[N], error)

	// NodeAt resolves idx to its node value, or false if idx holds no node.
	NodeAt(idx int) (N, bool)
}

// Versioned is an optional Source upgrade: a monotonic generation counter
// that increases on every structural mutation. When present, Iterator checks
// it on every step and faults with ErrSourceMutated on a change.
type Versioned interface {
	Version() uint64
}

// Entry is one traversal output: the visited node plus the ordered list of
// its neighbor values (every populated cell of its row, visited or not).
type Entry[N any] struct {
	Node  N
	Edges []N
}

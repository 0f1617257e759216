// File: neighbors.go
// Role: NeighborIterator — lazy view over one adjacency-matrix row.

package core

// NeighborIterator is a lazy, finite sequence of (column, node) pairs for one
// fixed row, in ascending column order, skipping empty cells. Each call to
// Graph.Neighbors yields a fresh iterator.
//
// Nodes are resolved through the arena at Next() time, not at construction
// time, so the view reflects the container's current state as long as the
// container has not been structurally mutated. Mutation invalidates the
// iterator: Next returns false and Err reports ErrConcurrentMutation.
type NeighborIterator[N comparable, W any] struct {
	g    *Graph[N, W]
	row  int
	col  int
	seen uint64
	err  error
}

// Next returns the next populated (column, node) pair of the row, or false
// when the row is exhausted.
func (it *NeighborIterator[N, W]) Next() (int, N, bool) {
	var zero N
	if it.err != nil {
		return 0, zero, false
	}
	if it.g.Version() != it.seen {
		it.err = ErrConcurrentMutation
		return 0, zero, false
	}

	for it.col < it.g.adj.Side() {
		c := it.col
		it.col++
		if _, populated := it.g.adj.Get(it.row, c); populated {
			if node, live := it.g.arena.NodeAt(c); live {
				return c, node, true
			}
		}
	}

	return 0, zero, false
}

// Err reports a pending iterator fault, or nil.
func (it *NeighborIterator[N, W]) Err() error {
	return it.err
}

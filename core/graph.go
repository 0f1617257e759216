// File: graph.go
// Role: Graph — the container composing NodeArena and AdjacencyStore.
//
// All mutation APIs update arena and matrix atomically from the caller's
// perspective: the container is single-threaded, so no partial update is ever
// observable. Read APIs (Nodes, Neighbors) borrow the current state and are
// invalidated by any structural mutation performed while they are alive.

package core

import "fmt"

// Graph is a dense directed graph: node values in a deduplicating arena,
// directed edge payloads in a square adjacency matrix. Node indices are
// stable across removals of other nodes; a removed node's index becomes the
// first candidate for reuse.
type Graph[N comparable, W any] struct {
	arena *NodeArena[N]
	adj   *AdjacencyStore[W]
	edges int // populated-cell count, maintained incrementally
}

// Edge is one directed edge for bulk construction via FromEdges.
type Edge[N comparable, W any] struct {
	From, To N
	Weight   W
}

// NewGraph returns an empty graph.
// Complexity: O(1).
func NewGraph[N comparable, W any]() *Graph[N, W] {
	return &Graph[N, W]{
		arena: NewNodeArena[N](),
		adj:   NewAdjacencyStore[W](),
	}
}

// FromEdges builds a graph from a list of (from, to, weight) triples. The
// first occurrence of a node value creates it; later occurrences reuse its
// index, so endpoint insertion is idempotent. Each triple then adds one
// directed edge and inherits AddEdge's duplicate-edge failure.
// Complexity: O(|edges|) average.
func FromEdges[N comparable, W any](edges []Edge[N, W]) (*Graph[N, W], error) {
	g := NewGraph[N, W]()
	for _, e := range edges {
		from := g.intern(e.From)
		to := g.intern(e.To)
		if err := g.AddEdge(from, to, e.Weight); err != nil {
			return nil, fmt.Errorf("FromEdges(%v->%v): %w", e.From, e.To, err)
		}
	}

	return g, nil
}

// intern returns the index of node, inserting it first if absent.
func (g *Graph[N, W]) intern(node N) int {
	if idx, ok := g.arena.IndexOf(node); ok {
		return idx
	}
	idx, _ := g.arena.Add(node) // cannot be a duplicate: IndexOf just missed

	return idx
}

// AddNode inserts a node value and returns its index.
// Returns ErrDuplicateNode if an equal live node already exists.
// Complexity: O(1) average.
func (g *Graph[N, W]) AddNode(node N) (int, error) {
	return g.arena.Add(node)
}

// RemoveNode deletes the node at idx together with every edge touching it, in
// both directions. The second result is false — and nothing changes — if idx
// holds no live node. Never a fault.
// Complexity: O(n) where n is the arena slot count.
func (g *Graph[N, W]) RemoveNode(idx int) (N, bool) {
	var zero N
	if _, live := g.arena.NodeAt(idx); !live {
		return zero, false
	}

	// Clear row idx and column idx; the diagonal cell is cleared once.
	for i := 0; i < g.arena.Span(); i++ {
		if _, ok := g.adj.Clear(i, idx); ok {
			g.edges--
		}
		if i == idx {
			continue
		}
		if _, ok := g.adj.Clear(idx, i); ok {
			g.edges--
		}
	}
	node, _ := g.arena.Remove(idx)

	return node, true
}

// AddEdge stores weight in cell (from, to), growing matrix capacity first if
// needed.
// Returns ErrIndexOutOfRange (naming the offending index) if either endpoint
// holds no live node, and ErrDuplicateEdge if the cell is already populated.
// Complexity: O(1) amortized.
func (g *Graph[N, W]) AddEdge(from, to int, weight W) error {
	if _, live := g.arena.NodeAt(from); !live {
		return fmt.Errorf("%w %d", ErrIndexOutOfRange, from)
	}
	if _, live := g.arena.NodeAt(to); !live {
		return fmt.Errorf("%w %d", ErrIndexOutOfRange, to)
	}
	if _, populated := g.adj.Get(from, to); populated {
		return fmt.Errorf("edge %d->%d: %w", from, to, ErrDuplicateEdge)
	}

	g.adj.Set(from, to, weight)
	g.edges++

	return nil
}

// RemoveEdge empties cell (from, to) and returns the previous weight. The
// second result is false — and nothing changes — if either index is out of
// range or the cell was already empty. Never a fault.
// Complexity: O(1).
func (g *Graph[N, W]) RemoveEdge(from, to int) (W, bool) {
	w, ok := g.adj.Clear(from, to)
	if ok {
		g.edges--
	}

	return w, ok
}

// ContainsNode reports whether an equal live node exists.
// Complexity: O(1) average.
func (g *Graph[N, W]) ContainsNode(node N) bool {
	return g.arena.Contains(node)
}

// ContainsEdge reports whether cell (from, to) is populated. Out-of-range
// indices read as "no edge".
// Complexity: O(1).
func (g *Graph[N, W]) ContainsEdge(from, to int) bool {
	_, ok := g.adj.Get(from, to)
	return ok
}

// IndexOf returns the index of node, or false if absent.
// Complexity: O(1) average.
func (g *Graph[N, W]) IndexOf(node N) (int, bool) {
	return g.arena.IndexOf(node)
}

// NodeAt reports the node at idx, or false if idx holds no live node.
// Complexity: O(1).
func (g *Graph[N, W]) NodeAt(idx int) (N, bool) {
	return g.arena.NodeAt(idx)
}

// Weight reports the payload of edge (from, to), or false if absent.
// Complexity: O(1).
func (g *Graph[N, W]) Weight(from, to int) (W, bool) {
	return g.adj.Get(from, to)
}

// NodeCount returns the live node count.
// Complexity: O(1).
func (g *Graph[N, W]) NodeCount() int {
	return g.arena.Len()
}

// EdgeCount returns the populated-cell count, maintained incrementally.
// Complexity: O(1).
func (g *Graph[N, W]) EdgeCount() int {
	return g.edges
}

// Version returns a counter that increases on every successful structural
// mutation. Iterators use it to detect mutation underneath them; external
// consumers (breadth-first traversal) may do the same.
func (g *Graph[N, W]) Version() uint64 {
	return g.arena.version + g.adj.version
}

// Nodes returns a fresh lazy iterator over live (index, node) pairs in
// ascending index order. The iterator is invalidated by any structural
// mutation of the graph; see NodeIterator.Err.
func (g *Graph[N, W]) Nodes() *NodeIterator[N] {
	return &NodeIterator[N]{
		arena:   g.arena,
		version: g.Version,
		seen:    g.Version(),
	}
}

// Neighbors returns a fresh lazy iterator over the outgoing (column, node)
// pairs of row idx, in ascending column order, skipping empty cells.
// Returns ErrIndexOutOfRange (naming idx) if idx holds no live node.
// Node values are resolved through the arena at iteration time.
func (g *Graph[N, W]) Neighbors(idx int) (*NeighborIterator[N, W], error) {
	if _, live := g.arena.NodeAt(idx); !live {
		return nil, fmt.Errorf("%w %d", ErrIndexOutOfRange, idx)
	}

	return &NeighborIterator[N, W]{
		g:    g,
		row:  idx,
		seen: g.Version(),
	}, nil
}

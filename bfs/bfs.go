// File: bfs.go
// Role: Iterator — lazy breadth-first traversal over a Source, emitting one
// Entry per reachable index in layer order.

package bfs

import (
	"fmt"

	"github.com/katalvlaran/densegraph/core"
)

// Iterator is a lazy breadth-first traversal. State is a visited set and a
// FIFO queue of indices; the queue starts holding the single start index.
// Terminal when the queue is empty.
//
// Takes O(n) auxiliary space and computes in O(n + e) steps overall,
// where n = node count and e = edge count.
type Iterator[N any] struct {
	src     Source[N]
	queue   []int
	visited map[int]struct{}
	genOf   func() uint64 // nil when the source is not Versioned
	gen     uint64
	err     error
}

// New builds a traversal over src starting from index start.
// Returns ErrSourceNil for a nil source and ErrStartNotFound (naming the
// index) when start resolves to no node — an invalid start is a precondition
// violation, not a silent empty sequence.
func New[N any](src Source[N], start int) (*Iterator[N], error) {
	if src == nil {
		return nil, ErrSourceNil
	}
	if _, ok := src.NodeAt(start); !ok {
		return nil, fmt.Errorf("%w %d", ErrStartNotFound, start)
	}

	it := &Iterator[N]{
		src:     src,
		queue:   []int{start},
		visited: make(map[int]struct{}),
	}
	if v, ok := src.(Versioned); ok {
		it.genOf = v.Version
		it.gen = v.Version()
	}

	return it, nil
}

// Next pops the queue's front index, marks it visited, enumerates its
// neighbors — enqueueing each not-yet-visited one, marked visited before the
// enqueue so it can never be enqueued twice — and emits the index's Entry.
// Returns false when the queue is empty or the traversal has faulted;
// consult Err to tell the two apart.
func (it *Iterator[N]) Next() (Entry[N], bool) {
	var zero Entry[N]
	if it.err != nil || len(it.queue) == 0 {
		return zero, false
	}
	if it.genOf != nil && it.genOf() != it.gen {
		it.err = ErrSourceMutated
		return zero, false
	}

	cur := it.queue[0]
	it.queue = it.queue[1:]
	// The start index is marked visited here, on pop, not on construction;
	// marking is idempotent for indices already discovered as neighbors.
	it.visited[cur] = struct{}{}

	node, ok := it.src.NodeAt(cur)
	if !ok {
		// A queued index can only vanish if the source changed.
		it.err = ErrSourceMutated
		return zero, false
	}
	seq, err := it.src.Neighbors(cur)
	if err != nil {
		it.err = fmt.Errorf("%w: index %d: %v", ErrNeighbors, cur, err)
		return zero, false
	}

	var edges []N
	for {
		i, n, more := seq.Next()
		if !more {
			break
		}
		edges = append(edges, n)
		if _, seen := it.visited[i]; !seen {
			it.visited[i] = struct{}{}
			it.queue = append(it.queue, i)
		}
	}
	if err := seq.Err(); err != nil {
		it.err = fmt.Errorf("%w: index %d: %v", ErrNeighbors, cur, err)
		return zero, false
	}

	return Entry[N]{Node: node, Edges: edges}, true
}

// Err reports why the traversal stopped early, or nil after a clean finish.
func (it *Iterator[N]) Err() error {
	return it.err
}

// All runs a full traversal from start and collects every Entry in visit
// order. Convenience over New + Next.
func All[N any](src Source[N], start int) ([]Entry[N], error) {
	it, err := New(src, start)
	if err != nil {
		return nil, err
	}

	var out []Entry[N]
	for {
		e, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, e)
	}
	if err := it.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// graphSource adapts *core.Graph to Source. The indirection exists because
// Graph.Neighbors returns its concrete iterator type, not the NeighborSeq
// interface.
type graphSource[N comparable, W any] struct {
	g *core.Graph[N, W]
}

// FromGraph wraps g as a traversal Source. The wrapper also satisfies
// Versioned, so traversals over it detect structural mutation.
func FromGraph[N comparable, W any](g *core.Graph[N, W]) Source[N] {
	return graphSource[N, W]{g: g}
}

func (s graphSource[N, W]) Neighbors(idx int) (NeighborSeq[N], error) {
	it, err := s.g.Neighbors(idx)
	if err != nil {
		return nil, err
	}

	return it, nil
}

func (s graphSource[N, W]) NodeAt(idx int) (N, bool) {
	return s.g.NodeAt(idx)
}

func (s graphSource[N, W]) Version() uint64 {
	return s.g.Version()
}

// File: arena.go
// Role: NodeArena — unique-value slot storage with index-stable reuse.
//
// Determinism:
//   - Iter() yields live nodes in ascending slot-index order.
//   - Freed indices are reused last-removed-first (LIFO).

package core

import "fmt"

// slot is one arena cell: empty or holding exactly one live node value.
type slot[N comparable] struct {
	node N
	live bool
}

// NodeArena stores unique node values and hands out stable integer indices.
//
// Uniqueness is enforced through a hash index (value → slot index) with full
// equality confirmation on lookup, so two distinct values can never alias one
// slot and a collision can never reject a valid insertion. Removal never
// shifts other indices; the freed index goes onto a LIFO free list and is the
// first candidate for reuse.
type NodeArena[N comparable] struct {
	slots   []slot[N] // backing storage; index == node index
	index   map[N]int // hash index: live value → slot index
	free    []int     // LIFO stack of freed slot indices
	version uint64    // generation counter for iterator invalidation
}

// NewNodeArena returns an empty arena.
// Complexity: O(1).
func NewNodeArena[N comparable]() *NodeArena[N] {
	return &NodeArena[N]{index: make(map[N]int)}
}

// Add inserts node and returns its slot index.
// The most-recently-freed index is reused when the free list is non-empty;
// otherwise a new slot is appended.
// Returns ErrDuplicateNode if an equal live node already exists.
// Complexity: O(1) average; O(n) worst case on backing-storage growth.
func (a *NodeArena[N]) Add(node N) (int, error) {
	if _, dup := a.index[node]; dup {
		return 0, ErrDuplicateNode
	}

	var idx int
	if n := len(a.free); n > 0 {
		// Reuse the last freed slot.
		idx = a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[idx] = slot[N]{node: node, live: true}
	} else {
		a.slots = append(a.slots, slot[N]{node: node, live: true})
		idx = len(a.slots) - 1
	}
	a.index[node] = idx
	a.version++

	return idx, nil
}

// Remove clears the slot at idx and returns the removed node.
// The second result is false — and nothing changes — if idx is out of range
// or the slot is already empty. Never a fault.
// Complexity: O(1) average.
func (a *NodeArena[N]) Remove(idx int) (N, bool) {
	var zero N
	if idx < 0 || idx >= len(a.slots) || !a.slots[idx].live {
		return zero, false
	}

	node := a.slots[idx].node
	a.slots[idx] = slot[N]{}
	delete(a.index, node)
	a.free = append(a.free, idx)
	a.version++

	return node, true
}

// Get is the unchecked accessor: it panics if idx is out of range or the slot
// is empty. Violating the precondition is a programmer error; use NodeAt when
// absence is a legitimate outcome.
// Complexity: O(1).
func (a *NodeArena[N]) Get(idx int) N {
	if idx < 0 || idx >= len(a.slots) {
		panic(fmt.Sprintf("core: Get(%d): index out of range", idx))
	}
	s := a.slots[idx]
	if !s.live {
		panic(fmt.Sprintf("core: Get(%d): slot is empty", idx))
	}

	return s.node
}

// NodeAt is the checked accessor: it reports the node at idx, or false if idx
// is out of range or the slot is empty. Never panics.
// Complexity: O(1).
func (a *NodeArena[N]) NodeAt(idx int) (N, bool) {
	var zero N
	if idx < 0 || idx >= len(a.slots) || !a.slots[idx].live {
		return zero, false
	}

	return a.slots[idx].node, true
}

// Contains reports whether an equal live node exists.
// Complexity: O(1) average via the hash index.
func (a *NodeArena[N]) Contains(node N) bool {
	_, ok := a.index[node]
	return ok
}

// IndexOf returns the slot index of node, or false if absent.
// Complexity: O(1) average via the hash index.
func (a *NodeArena[N]) IndexOf(node N) (int, bool) {
	idx, ok := a.index[node]
	return idx, ok
}

// Len returns the live node count.
// Complexity: O(1).
func (a *NodeArena[N]) Len() int {
	return len(a.slots) - len(a.free)
}

// Span returns the total slot count, freed slots included. Every valid node
// index is strictly below Span.
// Complexity: O(1).
func (a *NodeArena[N]) Span() int {
	return len(a.slots)
}

// Iter returns a fresh lazy iterator over live nodes in ascending index
// order, skipping empty slots. The iterator is invalidated by any structural
// mutation of the arena; see NodeIterator.Err.
func (a *NodeArena[N]) Iter() *NodeIterator[N] {
	return &NodeIterator[N]{
		arena:   a,
		version: func() uint64 { return a.version },
		seen:    a.version,
	}
}

// NodeIterator is a lazy, finite sequence of (index, node) pairs over one
// arena, ascending by index. Each call to Iter (or Graph.Nodes) yields a
// fresh, restartable-from-zero iterator.
type NodeIterator[N comparable] struct {
	arena   *NodeArena[N]
	pos     int
	version func() uint64 // generation source captured at construction
	seen    uint64
	err     error
}

// Next returns the next live (index, node) pair, or false when exhausted.
// If the container was mutated since construction, Next returns false and
// Err reports ErrConcurrentMutation.
func (it *NodeIterator[N]) Next() (int, N, bool) {
	var zero N
	if it.err != nil {
		return 0, zero, false
	}
	if it.version() != it.seen {
		it.err = ErrConcurrentMutation
		return 0, zero, false
	}

	for it.pos < len(it.arena.slots) {
		i := it.pos
		it.pos++
		if it.arena.slots[i].live {
			return i, it.arena.slots[i].node, true
		}
	}

	return 0, zero, false
}

// Err reports a pending iterator fault, or nil.
func (it *NodeIterator[N]) Err() error {
	return it.err
}

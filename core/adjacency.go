// File: adjacency.go
// Role: AdjacencyStore — resizable square matrix of optional edge payloads.
//
// Storage is a flat row-major slice for cache friendliness; a cell is
// addressed as row*side+col. Capacity only grows, never shrinks, even after
// node removal — fragmentation is the accepted cost of stable indices.

package core

import (
	"fmt"
	"math/bits"
)

// minSide is the smallest side length allocated on first growth.
const minSide = 4

// acell is one matrix cell: empty, or holding one directed edge payload.
type acell[W any] struct {
	weight W
	set    bool
}

// AdjacencyStore is a square matrix of optional edge payloads keyed by
// (row, column) index pairs. Cells (r,c) and (c,r) are independent: edges are
// directed. The zero capacity store reads as all-empty.
type AdjacencyStore[W any] struct {
	side    int        // current side length; capacity is side*side cells
	cells   []acell[W] // flat row-major backing, length side*side
	version uint64     // generation counter for iterator invalidation
}

// NewAdjacencyStore returns an empty store with zero capacity.
// Complexity: O(1).
func NewAdjacencyStore[W any]() *AdjacencyStore[W] {
	return &AdjacencyStore[W]{}
}

// Side returns the current side length of the matrix.
// Complexity: O(1).
func (s *AdjacencyStore[W]) Side() int {
	return s.side
}

// Get reports the payload at (row, col). Any index at or beyond the current
// capacity reads as empty without growing — read paths never allocate.
// Complexity: O(1).
func (s *AdjacencyStore[W]) Get(row, col int) (W, bool) {
	var zero W
	if row < 0 || col < 0 || row >= s.side || col >= s.side {
		return zero, false
	}
	c := s.cells[row*s.side+col]

	return c.weight, c.set
}

// Set stores weight at (row, col), growing capacity first if needed, and
// returns the previous payload if the cell was populated.
// Precondition: row ≥ 0 and col ≥ 0 (panics otherwise).
// Complexity: O(1) amortized; a growth step costs O(side²).
func (s *AdjacencyStore[W]) Set(row, col int, weight W) (W, bool) {
	if row < 0 || col < 0 {
		panic(fmt.Sprintf("core: Set(%d,%d): negative index", row, col))
	}
	s.grow(max(row, col))

	i := row*s.side + col
	prev := s.cells[i]
	s.cells[i] = acell[W]{weight: weight, set: true}
	s.version++

	return prev.weight, prev.set
}

// Clear empties the cell at (row, col) and returns the previous payload.
// The second result is false — and nothing changes — if the indices are out
// of capacity or the cell was already empty.
// Complexity: O(1).
func (s *AdjacencyStore[W]) Clear(row, col int) (W, bool) {
	var zero W
	if row < 0 || col < 0 || row >= s.side || col >= s.side {
		return zero, false
	}

	i := row*s.side + col
	prev := s.cells[i]
	if !prev.set {
		return zero, false
	}
	s.cells[i] = acell[W]{}
	s.version++

	return prev.weight, true
}

// grow reallocates the matrix so that index maxIdx fits: the new side length
// is max(4, maxIdx+1) rounded up to the next power of two. Batching growth
// this way keeps amortized per-edge cost O(1) across repeated insertions.
// Existing cells keep their (row, col) addresses; new cells start empty.
func (s *AdjacencyStore[W]) grow(maxIdx int) {
	if maxIdx < s.side {
		return
	}

	side := nextPowerOfTwo(max(minSide, maxIdx+1))
	cells := make([]acell[W], side*side)
	for r := 0; r < s.side; r++ {
		copy(cells[r*side:r*side+s.side], s.cells[r*s.side:(r+1)*s.side])
	}
	s.side, s.cells = side, cells
}

// nextPowerOfTwo returns the smallest power of two ≥ n (n ≥ 1).
func nextPowerOfTwo(n int) int {
	return 1 << bits.Len(uint(n-1))
}

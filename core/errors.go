// Package core: sentinel error set.
// All operations MUST return these sentinels for user-triggered error
// conditions and tests MUST check them via errors.Is. Panics are reserved for
// documented programmer-error preconditions (the unchecked Get accessor).

package core

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "core: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) only when
// context (an offending index, a pair) is essential — callers still match
// with errors.Is.

var (
	// ErrDuplicateNode is returned when adding a node value equal to one that
	// is already live in the arena.
	ErrDuplicateNode = errors.New("core: duplicate node")

	// ErrDuplicateEdge is returned when adding an edge over a cell that
	// already holds a payload. Replace by removing the edge first.
	ErrDuplicateEdge = errors.New("core: edge already exists")

	// ErrIndexOutOfRange is returned when an edge or neighbor operation names
	// an index with no live node behind it.
	ErrIndexOutOfRange = errors.New("core: no node at index")

	// ErrConcurrentMutation is reported by an iterator whose container was
	// structurally mutated after the iterator was created.
	ErrConcurrentMutation = errors.New("core: container mutated during iteration")
)

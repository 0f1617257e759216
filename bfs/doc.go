// Package bfs provides lazy breadth-first traversal over any dense-graph
// source that can enumerate neighbors and resolve a node by index.
//
// What
//
//   - Explore indices level by level from a start index, visiting each
//     reachable index exactly once.
//   - Next() emits one Entry per visited index: the node value plus the
//     ordered list of its neighbor values (all of them, visited or not).
//   - Entries appear in BFS layer order: the start first, then its unvisited
//     neighbors in ascending-index discovery order, then theirs, and so on.
//     Indices unreachable from the start never appear.
//
// Why
//
//   - Traversal must not be coupled to the matrix representation. Iterator is
//     generic over the Source capability pair {Neighbors, NodeAt}; swap in a
//     different internal representation without touching traversal logic.
//     FromGraph adapts a *core.Graph.
//
// Mutation detection
//
//	A Source that also implements Versioned (core.Graph does) is checked on
//	every step: if the source mutated since the traversal started, Next
//	returns false and Err reports ErrSourceMutated. A non-versioned source is
//	trusted not to change underneath the traversal.
//
// Complexity (n = node count, e = edge count)
//
//   - Time:   O(n + e) for a full traversal over an adjacency list;
//     O(n²) over a dense matrix row scan, which is the dense-graph trade.
//   - Memory: O(n) for the visited set and queue.
//
// Usage
//
//	it, err := bfs.New(bfs.FromGraph(g), start)
//	if err != nil {
//	    // ErrSourceNil or ErrStartNotFound
//	}
//	for {
//	    entry, ok := it.Next()
//	    if !ok {
//	        break
//	    }
//	    // entry.Node, entry.Edges
//	}
//	if err := it.Err(); err != nil {
//	    // ErrSourceMutated or ErrNeighbors
//	}
//
// Errors
//
//   - ErrSourceNil      if the source is nil.
//   - ErrStartNotFound  if the start index resolves to no node (the message
//     names the index).
//   - ErrSourceMutated  if a versioned source changed mid-traversal.
//   - ErrNeighbors      if neighbor enumeration fails for a visited index.
package bfs

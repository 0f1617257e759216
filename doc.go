// Package densegraph is an in-memory container library for dense directed
// graphs: node values live in a deduplicating slot arena, edges in a
// directly-indexed adjacency matrix, and reachability is exposed through a
// generic breadth-first iterator.
//
// 🚀 What is densegraph?
//
//	A small, zero-dependency library that brings together:
//		• core/ — the Graph container: a node arena with O(1)-average dedup and
//		  index-stable slot reuse, plus a power-of-two-growing adjacency matrix
//		• bfs/  — lazy breadth-first traversal, generic over any source that can
//		  enumerate neighbors and resolve a node by index
//		• tgf/  — a line-oriented Trivial Graph Format reader and writer
//
// ✨ Why choose densegraph?
//
//   - Dense-first – O(1) edge lookup by (row, column) index pair
//   - Stable handles – removing a node never shifts the indices of the others
//   - Generic – any comparable node type, any edge payload type
//   - Pure Go – no cgo, no hidden deps
//
// Quick ASCII example:
//
//	    A──▶B
//	    │   │
//	    ▼   ▼
//	    C──▶D
//
//	four nodes, four directed edges, one 4×4 matrix.
//
// Dive into the per-package docs for the full API, complexity notes, and the
// mutation-detection rules that keep live iterators honest.
//
//	go get github.com/katalvlaran/densegraph
package densegraph

// Package tgf reads and writes graphs in a line-oriented Trivial Graph
// Format. It is the serialization collaborator of the core container: the
// container knows nothing about text, and tgf touches the container only
// through its public surface.
//
// Format
//
//	Node section — one line per live node, "{1-based index} {node text}", in
//	arena iteration order. Indices are compacted: the n-th live node gets
//	index n regardless of holes left by removed slots.
//
//	Delimiter — a single "#" line.
//
//	Edge section — one line per populated cell, "{from} {to} {weight text}",
//	1-based, iterated row-major.
//
// Node and weight text is everything after the leading fields, so it may
// contain spaces but never newlines.
//
// Parsing ignores the node-line indices, re-derives the node list in file
// order (fresh 0-based internal indices), then replays edges, converting the
// 1-based file indices to 0-based internal ones. A serialized graph therefore
// parses back to an isomorphic graph; internal indices may be renumbered.
//
// Errors
//
//	Malformed input surfaces as typed, recoverable errors distinguishing the
//	two causes — ErrNodeLine and ErrEdgeLine — wrapped with the offending
//	line number. Parsing never panics.
//
// Usage
//
//	text := tgf.Marshal(g) // fmt.Sprint rendering
//	g2, err := tgf.Unmarshal(text, strconv.Atoi, strconv.Atoi)
package tgf

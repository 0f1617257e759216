// File: tgf.go
// Role: Trivial Graph Format writer and parser for core.Graph.

package tgf

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/densegraph/core"
)

// Sentinel errors distinguishing the two malformed-input causes.
var (
	// ErrNodeLine indicates a malformed node-section line: a missing
	// separator, an unparseable value, or input ending before the delimiter.
	ErrNodeLine = errors.New("tgf: malformed node line")

	// ErrEdgeLine indicates a malformed edge-section line: a missing
	// separator, an unparseable index or weight, or an index naming no node.
	ErrEdgeLine = errors.New("tgf: malformed edge line")
)

// delimiter separates the node section from the edge section.
const delimiter = "#"

// Marshal renders g with fmt.Sprint for both node values and weights.
// Rendered text must not contain newlines for the output to parse back;
// use MarshalFunc for custom rendering.
func Marshal[N comparable, W any](g *core.Graph[N, W]) string {
	return MarshalFunc(g,
		func(n N) string { return fmt.Sprint(n) },
		func(w W) string { return fmt.Sprint(w) },
	)
}

// MarshalFunc renders g using the supplied node and weight renderers.
//
// Slot indices are compacted to consecutive 1-based positions in arena
// iteration order, so edge endpoints stay aligned with the node section even
// when the arena has holes from removed nodes.
// Complexity: O(n²) over the live node count — one cell probe per pair.
func MarshalFunc[N comparable, W any](g *core.Graph[N, W], nodeText func(N) string, weightText func(W) string) string {
	var b strings.Builder

	// Node section; record slot → 1-based file position.
	pos := make(map[int]int, g.NodeCount())
	n := 0
	for it := g.Nodes(); ; {
		idx, node, ok := it.Next()
		if !ok {
			break
		}
		n++
		pos[idx] = n
		fmt.Fprintf(&b, "%d %s\n", n, nodeText(node))
	}

	b.WriteString(delimiter + "\n")

	// Edge section, row-major over populated cells.
	for it := g.Nodes(); ; {
		from, _, ok := it.Next()
		if !ok {
			break
		}
		for jt := g.Nodes(); ; {
			to, _, ok := jt.Next()
			if !ok {
				break
			}
			if w, populated := g.Weight(from, to); populated {
				fmt.Fprintf(&b, "%d %d %s\n", pos[from], pos[to], weightText(w))
			}
		}
	}

	return b.String()
}

// Unmarshal parses input into a fresh graph using the supplied node and
// weight parsers. Nodes are assigned fresh 0-based indices in file order;
// edge endpoints are converted from their 1-based file form.
//
// Returns ErrNodeLine or ErrEdgeLine (wrapped with the line number) on
// malformed input; never panics.
func Unmarshal[N comparable, W any](input string, parseNode func(string) (N, error), parseWeight func(string) (W, error)) (*core.Graph[N, W], error) {
	g := core.NewGraph[N, W]()
	sc := bufio.NewScanner(strings.NewReader(input))
	lineNo := 0

	// Node section, up to the delimiter.
	for {
		if !sc.Scan() {
			return nil, fmt.Errorf("%w: missing %q delimiter", ErrNodeLine, delimiter)
		}
		lineNo++
		line := sc.Text()
		if line == delimiter {
			break
		}

		_, raw, found := strings.Cut(line, " ")
		if !found {
			return nil, fmt.Errorf("%w %d: missing separator", ErrNodeLine, lineNo)
		}
		node, err := parseNode(raw)
		if err != nil {
			return nil, fmt.Errorf("%w %d: %v", ErrNodeLine, lineNo, err)
		}
		if _, err = g.AddNode(node); err != nil {
			return nil, fmt.Errorf("%w %d: %v", ErrNodeLine, lineNo, err)
		}
	}

	// Edge section, to end of input.
	for sc.Scan() {
		lineNo++
		from, to, weight, err := parseEdge(sc.Text(), parseWeight)
		if err != nil {
			return nil, fmt.Errorf("%w %d: %v", ErrEdgeLine, lineNo, err)
		}
		if err = g.AddEdge(from, to, weight); err != nil {
			return nil, fmt.Errorf("%w %d: %v", ErrEdgeLine, lineNo, err)
		}
	}

	return g, nil
}

// parseEdge splits "{from} {to} {weight}" and converts the endpoints from
// 1-based file indices to 0-based internal indices.
func parseEdge[W any](line string, parseWeight func(string) (W, error)) (int, int, W, error) {
	var zero W

	fromText, rest, found := strings.Cut(line, " ")
	if !found {
		return 0, 0, zero, errors.New("missing separator")
	}
	toText, weightText, found := strings.Cut(rest, " ")
	if !found {
		return 0, 0, zero, errors.New("missing separator")
	}

	from, err := strconv.Atoi(fromText)
	if err != nil || from < 1 {
		return 0, 0, zero, fmt.Errorf("bad from index %q", fromText)
	}
	to, err := strconv.Atoi(toText)
	if err != nil || to < 1 {
		return 0, 0, zero, fmt.Errorf("bad to index %q", toText)
	}
	weight, err := parseWeight(weightText)
	if err != nil {
		return 0, 0, zero, err
	}

	return from - 1, to - 1, weight, nil
}

package bfs_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/katalvlaran/densegraph/bfs"
	"github.com/katalvlaran/densegraph/core"
)

// buildGraph wires the given adjacency fixture, interning endpoint values in
// first-occurrence order.
func buildGraph(t *testing.T, adjacency []struct {
	node  string
	edges []string
}) *core.Graph[string, int] {
	t.Helper()
	g := core.NewGraph[string, int]()
	intern := func(v string) int {
		if idx, ok := g.IndexOf(v); ok {
			return idx
		}
		idx, err := g.AddNode(v)
		if err != nil {
			t.Fatalf("AddNode(%q): %v", v, err)
		}
		return idx
	}
	for _, row := range adjacency {
		from := intern(row.node)
		for _, to := range row.edges {
			if err := g.AddEdge(from, intern(to), 0); err != nil {
				t.Fatalf("AddEdge(%q->%q): %v", row.node, to, err)
			}
		}
	}
	return g
}

// TestBFS_Errors verifies construction-time faults.
func TestBFS_Errors(t *testing.T) {
	// nil source
	if _, err := bfs.New[string](nil, 0); !errors.Is(err, bfs.ErrSourceNil) {
		t.Errorf("nil source: want ErrSourceNil, got %v", err)
	}
	// start index out of range
	g := core.NewGraph[string, int]()
	g.AddNode("A")
	_, err := bfs.New(bfs.FromGraph(g), 6)
	if !errors.Is(err, bfs.ErrStartNotFound) {
		t.Errorf("bad start: want ErrStartNotFound, got %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), "6") {
		t.Errorf("bad start: error must name the index, got %v", err)
	}
	// start index on a freed slot
	b, _ := g.AddNode("B")
	g.RemoveNode(b)
	if _, err = bfs.New(bfs.FromGraph(g), b); !errors.Is(err, bfs.ErrStartNotFound) {
		t.Errorf("freed start: want ErrStartNotFound, got %v", err)
	}
}

// TestBFS_CollectsAllReachable replays the canonical fixture: A points at
// D, B, C; D back at A; B at C; C nowhere. Layer order, each node once.
func TestBFS_CollectsAllReachable(t *testing.T) {
	g := buildGraph(t, []struct {
		node  string
		edges []string
	}{
		{"A", []string{"D", "B", "C"}},
		{"D", []string{"A"}},
		{"B", []string{"C"}},
		{"C", nil},
	})

	got, err := bfs.All(bfs.FromGraph(g), 0)
	if err != nil {
		t.Fatal(err)
	}

	want := []bfs.Entry[string]{
		{Node: "A", Edges: []string{"D", "B", "C"}},
		{Node: "D", Edges: []string{"A"}},
		{Node: "B", Edges: []string{"C"}},
		{Node: "C", Edges: nil},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("traversal = %v; want %v", got, want)
	}
}

// TestBFS_SingleNode covers the trivial graph.
func TestBFS_SingleNode(t *testing.T) {
	g := core.NewGraph[string, int]()
	start, _ := g.AddNode("solo")

	got, err := bfs.All(bfs.FromGraph(g), start)
	if err != nil {
		t.Fatal(err)
	}
	want := []bfs.Entry[string]{{Node: "solo", Edges: nil}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("traversal = %v; want %v", got, want)
	}
}

// TestBFS_UnreachableAbsent ensures only the start's component appears.
func TestBFS_UnreachableAbsent(t *testing.T) {
	g := buildGraph(t, []struct {
		node  string
		edges []string
	}{
		{"X", []string{"Y"}},
		{"P", []string{"Q"}},
	})

	xIdx, _ := g.IndexOf("X")
	entries, err := bfs.All(bfs.FromGraph(g), xIdx)
	if err != nil {
		t.Fatal(err)
	}
	var order []string
	for _, e := range entries {
		order = append(order, e.Node)
	}
	if !reflect.DeepEqual(order, []string{"X", "Y"}) {
		t.Errorf("from X: got %v; want [X Y]", order)
	}
}

// TestBFS_CycleVisitedOnce verifies the visited set on a directed cycle.
func TestBFS_CycleVisitedOnce(t *testing.T) {
	g := buildGraph(t, []struct {
		node  string
		edges []string
	}{
		{"A", []string{"B"}},
		{"B", []string{"C"}},
		{"C", []string{"A"}},
	})

	entries, err := bfs.All(bfs.FromGraph(g), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("cycle: visited %d entries; want 3", len(entries))
	}
}

// TestBFS_SelfLoopNotReenqueued: the start is marked visited on pop, so its
// own loop edge cannot enqueue it again.
func TestBFS_SelfLoopNotReenqueued(t *testing.T) {
	g := buildGraph(t, []struct {
		node  string
		edges []string
	}{
		{"A", []string{"A", "B"}},
	})

	entries, err := bfs.All(bfs.FromGraph(g), 0)
	if err != nil {
		t.Fatal(err)
	}
	want := []bfs.Entry[string]{
		{Node: "A", Edges: []string{"A", "B"}},
		{Node: "B", Edges: nil},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("self loop: got %v; want %v", entries, want)
	}
}

// TestBFS_DiamondSingleVisit: two paths converge on one node; it appears once.
func TestBFS_DiamondSingleVisit(t *testing.T) {
	g := buildGraph(t, []struct {
		node  string
		edges []string
	}{
		{"A", []string{"B", "C"}},
		{"B", []string{"D"}},
		{"C", []string{"D"}},
		{"D", nil},
	})

	entries, err := bfs.All(bfs.FromGraph(g), 0)
	if err != nil {
		t.Fatal(err)
	}
	var order []string
	for _, e := range entries {
		order = append(order, e.Node)
	}
	if !reflect.DeepEqual(order, []string{"A", "B", "C", "D"}) {
		t.Errorf("diamond: got %v; want [A B C D]", order)
	}
}

// TestBFS_LazyStepping drives the iterator by hand instead of via All.
func TestBFS_LazyStepping(t *testing.T) {
	g := buildGraph(t, []struct {
		node  string
		edges []string
	}{
		{"A", []string{"B"}},
		{"B", nil},
	})

	it, err := bfs.New(bfs.FromGraph(g), 0)
	if err != nil {
		t.Fatal(err)
	}

	e, ok := it.Next()
	if !ok || e.Node != "A" {
		t.Fatalf("step 1: got (%v,%v); want A", e, ok)
	}
	e, ok = it.Next()
	if !ok || e.Node != "B" {
		t.Fatalf("step 2: got (%v,%v); want B", e, ok)
	}
	if _, ok = it.Next(); ok {
		t.Error("step 3: want exhausted")
	}
	if err := it.Err(); err != nil {
		t.Errorf("clean finish: unexpected error %v", err)
	}
}

// TestBFS_MutationFaults verifies the generation check between steps.
func TestBFS_MutationFaults(t *testing.T) {
	g := buildGraph(t, []struct {
		node  string
		edges []string
	}{
		{"A", []string{"B"}},
		{"B", []string{"C"}},
		{"C", nil},
	})

	it, err := bfs.New(bfs.FromGraph(g), 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := it.Next(); !ok {
		t.Fatal("first step must succeed")
	}

	if _, err := g.AddNode("Z"); err != nil {
		t.Fatal(err)
	}

	if _, ok := it.Next(); ok {
		t.Error("post-mutation step must fail")
	}
	if !errors.Is(it.Err(), bfs.ErrSourceMutated) {
		t.Errorf("want ErrSourceMutated, got %v", it.Err())
	}
	// The fault is sticky.
	if _, ok := it.Next(); ok {
		t.Error("fault must be sticky")
	}
}

// TestBFS_UnversionedSource exercises the capability pair without the
// Versioned upgrade: a hand-rolled adjacency-slice source.
func TestBFS_UnversionedSource(t *testing.T) {
	src := sliceSource{
		nodes: []string{"a", "b", "c"},
		adj:   [][]int{{1, 2}, {2}, nil},
	}

	entries, err := bfs.All[string](src, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := []bfs.Entry[string]{
		{Node: "a", Edges: []string{"b", "c"}},
		{Node: "b", Edges: []string{"c"}},
		{Node: "c", Edges: nil},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("slice source: got %v; want %v", entries, want)
	}
}

// sliceSource is a minimal adjacency-list Source proving the traversal is
// not coupled to the matrix representation.
type sliceSource struct {
	nodes []string
	adj   [][]int
}

func (s sliceSource) NodeAt(idx int) (string, bool) {
	if idx < 0 || idx >= len(s.nodes) {
		return "", false
	}
	return s.nodes[idx], true
}

func (s sliceSource) Neighbors(idx int) (bfs.NeighborSeq[string], error) {
	return &sliceSeq{src: s, row: s.adj[idx]}, nil
}

type sliceSeq struct {
	src sliceSource
	row []int
	pos int
}

func (q *sliceSeq) Next() (int, string, bool) {
	if q.pos >= len(q.row) {
		return 0, "", false
	}
	i := q.row[q.pos]
	q.pos++
	return i, q.src.nodes[i], true
}

func (q *sliceSeq) Err() error { return nil }

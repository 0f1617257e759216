package bfs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/densegraph/bfs"
	"github.com/katalvlaran/densegraph/core"
)

// Example traverses a small broadcast topology level by level.
func Example() {
	g, _ := core.FromEdges([]core.Edge[string, int]{
		{From: "relay", To: "north", Weight: 1},
		{From: "relay", To: "south", Weight: 1},
		{From: "north", To: "edge-1", Weight: 1},
		{From: "south", To: "edge-2", Weight: 1},
	})

	start, _ := g.IndexOf("relay")
	it, err := bfs.New(bfs.FromGraph(g), start)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for {
		entry, ok := it.Next()
		if !ok {
			break
		}
		fmt.Printf("%s -> [%s]\n", entry.Node, strings.Join(entry.Edges, " "))
	}
	// Output:
	// relay -> [north south]
	// north -> [edge-1]
	// south -> [edge-2]
	// edge-1 -> []
	// edge-2 -> []
}

// ExampleAll collects a full traversal in one call.
func ExampleAll() {
	g, _ := core.FromEdges([]core.Edge[int, struct{}]{
		{From: 1, To: 2},
		{From: 2, To: 3},
	})

	entries, _ := bfs.All(bfs.FromGraph(g), 0)
	for _, e := range entries {
		fmt.Println(e.Node)
	}
	// Output:
	// 1
	// 2
	// 3
}

// Package main runs a fixed shortest-path query and prints the outcome.
//
//	      [A]
//	   1 /   \ 4
//	    /     \
//	 [B]--2--[C]      [E] (isolated)
//	    \     /
//	   5 \   / 1
//	      [D]
//
// Goal: A → D. Expected: "Distance: 4, Path: A -> B -> C -> D".
// Errors are printed, not propagated; the process always exits normally.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dijkstra"
)

func demoGraph() *core.Graph {
	return core.MustFromAdjacency(
		core.VertexSpec{ID: "A", Edges: []core.Neighbor{{To: "B", Weight: 1}, {To: "C", Weight: 4}}},
		core.VertexSpec{ID: "B", Edges: []core.Neighbor{{To: "A", Weight: 1}, {To: "C", Weight: 2}, {To: "D", Weight: 5}}},
		core.VertexSpec{ID: "C", Edges: []core.Neighbor{{To: "A", Weight: 4}, {To: "B", Weight: 2}, {To: "D", Weight: 1}}},
		core.VertexSpec{ID: "D", Edges: []core.Neighbor{{To: "B", Weight: 5}, {To: "C", Weight: 1}}},
		core.VertexSpec{ID: "E"},
	)
}

// run prints the result of start→end on g to w.
func run(w io.Writer, g *core.Graph, start, end string) {
	res, err := dijkstra.NewFinder(g).FindShortestPath(start, end)
	if err != nil {
		fmt.Fprintf(w, "An error occurred: %v\n", err)
		return
	}
	fmt.Fprintln(w, res)
}

func main() {
	run(os.Stdout, demoGraph(), "A", "D")
}

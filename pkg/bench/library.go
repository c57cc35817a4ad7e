// Package bench holds the two benchmark routines of a corpus entry: community
// detection timing and the induced-subgraph ratio sweep.
package bench

import (
	"github.com/dd0wney/cluso-graphbench/pkg/algorithms"
	"github.com/dd0wney/cluso-graphbench/pkg/graph"
)

// Library is the graph-algorithm surface the benchmarks time. Implementations must
// leave g untouched; outputs go to the caller-provided membership buffer or to new
// values.
type Library interface {
	Strength(g *graph.Graph, weights []float64, mode graph.NeighborMode) ([]float64, error)
	Multilevel(g *graph.Graph, weights []float64, resolution float64, membership []int) error
	Leiden(g *graph.Graph, weights, vertexWeights []float64, resolution float64, opts algorithms.LeidenOptions, membership []int) error
	InducedSubgraph(g *graph.Graph, selector []int, mode graph.SubgraphMode) (*graph.Graph, error)
}

package algorithms

import (
	"github.com/dd0wney/cluso-graphbench/pkg/graph"
	"github.com/dd0wney/cluso-graphbench/pkg/rng"
)

// Library binds the graph operations and partitioners used by the benchmarks.
// Leiden's refinement randomness comes from its own stream.
type Library struct {
	src *rng.Source
}

// NewLibrary returns a Library whose randomized algorithms draw from src.
func NewLibrary(src *rng.Source) *Library {
	return &Library{src: src}
}

// Strength returns the weighted degree of every vertex of g.
func (l *Library) Strength(g *graph.Graph, weights []float64, mode graph.NeighborMode) ([]float64, error) {
	return g.Strength(weights, mode)
}

// Multilevel runs Louvain modularity optimization into membership.
func (l *Library) Multilevel(g *graph.Graph, weights []float64, resolution float64, membership []int) error {
	if err := Multilevel(g, weights, resolution, membership); err != nil {
		return graph.AlgorithmError(methodMultilevel, err)
	}
	return nil
}

// Leiden runs the resolution-parameterized partitioner into membership.
func (l *Library) Leiden(g *graph.Graph, weights, vertexWeights []float64, resolution float64, opts LeidenOptions, membership []int) error {
	if _, err := Leiden(l.src, g, weights, vertexWeights, resolution, opts, membership); err != nil {
		return graph.AlgorithmError(methodLeiden, err)
	}
	return nil
}

// InducedSubgraph extracts the subgraph spanned by selector.
func (l *Library) InducedSubgraph(g *graph.Graph, selector []int, mode graph.SubgraphMode) (*graph.Graph, error) {
	return g.InducedSubgraph(selector, mode)
}

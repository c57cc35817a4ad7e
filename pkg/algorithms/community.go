package algorithms

import (
	"fmt"
	"math"

	"github.com/dd0wney/cluso-graphbench/pkg/graph"
	gonum "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/community"
	"gonum.org/v1/gonum/graph/simple"
)

const methodMultilevel = "Multilevel"

// Multilevel runs Louvain multilevel modularity optimization on the undirected
// graph g and writes one community label per vertex into membership, which must
// already have length g.VertexCount(). A nil weights slice treats every edge as
// weight 1. Labels are 0..k-1.
//
// Every call converts g into a gonum graph first, so timing a call includes
// that conversion.
func Multilevel(g *graph.Graph, weights []float64, resolution float64, membership []int) (err error) {
	if err := checkPartitionInput(methodMultilevel, g, weights, membership); err != nil {
		return err
	}
	if resolution <= 0 || math.IsNaN(resolution) || math.IsInf(resolution, 0) {
		return graph.InvalidParameterError(methodMultilevel, "resolution %g must be positive and finite", resolution)
	}

	if g.VertexCount() == 0 {
		return nil
	}

	ug, err := toGonum(g, weights)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			err = graph.AlgorithmError(methodMultilevel, fmt.Errorf("%v", r))
		}
	}()

	reduced := community.Modularize(ug, resolution, nil)
	for c, members := range reduced.Communities() {
		for _, v := range members {
			membership[v.ID()] = c
		}
	}
	return nil
}

// Modularity returns the modularity of membership on g at the given resolution.
func Modularity(g *graph.Graph, weights []float64, membership []int, resolution float64) (float64, error) {
	if err := checkPartitionInput("Modularity", g, weights, membership); err != nil {
		return 0, err
	}
	ug, err := toGonum(g, weights)
	if err != nil {
		return 0, err
	}

	k := 0
	for _, c := range membership {
		k = max(k, c+1)
	}
	groups := make([][]gonum.Node, k)
	for v, c := range membership {
		if c < 0 {
			return 0, graph.InvalidParameterError("Modularity", "vertex %d has negative label %d", v, c)
		}
		groups[c] = append(groups[c], simple.Node(v))
	}
	return community.Q(ug, groups, resolution), nil
}

// toGonum converts g into a gonum undirected graph with nodes 0..n-1. Parallel
// edges are merged by summing their weights.
func toGonum(g *graph.Graph, weights []float64) (gonum.Undirected, error) {
	n := g.VertexCount()

	if weights == nil {
		ug := simple.NewUndirectedGraph()
		for v := 0; v < n; v++ {
			ug.AddNode(simple.Node(v))
		}
		for id := 0; id < g.EdgeCount(); id++ {
			e := g.Edge(id)
			if e.From == e.To {
				return nil, graph.InvalidParameterError(methodMultilevel, "edge %d is a self-loop", id)
			}
			if ug.HasEdgeBetween(int64(e.From), int64(e.To)) {
				return nil, graph.InvalidParameterError(methodMultilevel, "edge %d duplicates (%d,%d) in an unweighted graph", id, e.From, e.To)
			}
			ug.SetEdge(simple.Edge{F: simple.Node(e.From), T: simple.Node(e.To)})
		}
		return ug, nil
	}

	wg := simple.NewWeightedUndirectedGraph(0, 0)
	for v := 0; v < n; v++ {
		wg.AddNode(simple.Node(v))
	}
	for id := 0; id < g.EdgeCount(); id++ {
		e := g.Edge(id)
		if e.From == e.To {
			return nil, graph.InvalidParameterError(methodMultilevel, "edge %d is a self-loop", id)
		}
		w := weights[id]
		if prev := wg.WeightedEdge(int64(e.From), int64(e.To)); prev != nil {
			w += prev.Weight()
		}
		wg.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(e.From), T: simple.Node(e.To), W: w})
	}
	return wg, nil
}

func checkPartitionInput(op string, g *graph.Graph, weights []float64, membership []int) error {
	if g == nil {
		return graph.InvalidParameterError(op, "graph is nil")
	}
	if g.Directed() {
		return graph.InvalidParameterError(op, "only undirected graphs are supported")
	}
	if len(membership) != g.VertexCount() {
		return graph.InvalidParameterError(op, "membership length %d does not match vertex count %d", len(membership), g.VertexCount())
	}
	return g.ValidateWeights(op, weights)
}

// Summarize groups a membership vector into communities ordered by label.
func Summarize(membership []int) *CommunityDetectionResult {
	k := 0
	for _, c := range membership {
		k = max(k, c+1)
	}
	communities := make([]*Community, k)
	for c := range communities {
		communities[c] = &Community{ID: c}
	}
	for v, c := range membership {
		if c < 0 {
			continue
		}
		communities[c].Vertices = append(communities[c].Vertices, v)
		communities[c].Size++
	}

	out := make([]*Community, 0, k)
	for _, c := range communities {
		if c.Size > 0 {
			out = append(out, c)
		}
	}

	m := make([]int, len(membership))
	copy(m, membership)
	return &CommunityDetectionResult{Communities: out, Membership: m}
}

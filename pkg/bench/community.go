package bench

import (
	"github.com/dd0wney/cluso-graphbench/pkg/algorithms"
	"github.com/dd0wney/cluso-graphbench/pkg/graph"
	"github.com/dd0wney/cluso-graphbench/pkg/timing"
)

// louvainResolution is the modularity resolution of the multilevel optimizer.
const louvainResolution = 1.0

// Community times rep calls of the multilevel modularity optimizer and rep calls of
// the Leiden partitioner on g, then ends the group with a separator.
//
// Leiden uses the vertex strengths as vertex weights and 1/Σweights as the
// resolution; with nil weights the sum is the edge count. Both algorithms share one
// membership buffer sized to the vertex count. Each call overwrites it completely,
// so it is not reset between repetitions.
func Community(engine *timing.Engine, lib Library, g *graph.Graph, weights []float64, name string, rep int) ([]timing.Measurement, error) {
	const op = "Community"

	n := g.VertexCount()
	membership, err := allocInts(op, "membership", n)
	if err != nil {
		return nil, err
	}

	strength, err := lib.Strength(g, weights, graph.All)
	if err != nil {
		return nil, err
	}
	if len(strength) != n {
		return nil, graph.AllocationError(op, "vertex strength", n)
	}

	total, err := g.TotalWeight(weights)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, graph.InvalidParameterError(op, "%s: total edge weight is zero", name)
	}
	resolution := 1 / total

	base := Label{
		Graph:       name,
		Vertices:    n,
		Edges:       g.EdgeCount(),
		Weighted:    weights != nil,
		Repetitions: rep,
	}

	louvain := base
	louvain.Operation = "1 Louvain"
	leiden := base
	leiden.Operation = "2 Leiden "

	opts := algorithms.DefaultLeidenOptions()
	tasks := []timing.Task{
		{
			Label:       louvain.String(),
			Operation:   OpLouvain,
			Weighted:    weights != nil,
			Repetitions: rep,
			Work: func() error {
				return lib.Multilevel(g, weights, louvainResolution, membership)
			},
		},
		{
			Label:       leiden.String(),
			Operation:   OpLeiden,
			Weighted:    weights != nil,
			Repetitions: rep,
			Work: func() error {
				return lib.Leiden(g, weights, strength, resolution, opts, membership)
			},
		},
	}

	out := make([]timing.Measurement, 0, len(tasks))
	for _, t := range tasks {
		m, err := engine.Run(t)
		if err != nil {
			return out, err
		}
		out = append(out, m)
	}
	engine.Separator()
	return out, nil
}

// allocInts sizes a scratch buffer, reporting a failed allocation as an error.
func allocInts(op, buffer string, n int) (buf []int, err error) {
	if n < 0 {
		return nil, graph.AllocationError(op, buffer, n)
	}
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, graph.AllocationError(op, buffer, n)
		}
	}()
	return make([]int, n), nil
}

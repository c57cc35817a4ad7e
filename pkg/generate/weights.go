package generate

import (
	"github.com/dd0wney/cluso-graphbench/pkg/graph"
	"github.com/dd0wney/cluso-graphbench/pkg/rng"
)

// RandomWeights fills buf with one uniform [0,1) draw per edge of g and returns it
// resized to exactly g.EdgeCount(). Every element is overwritten; buf's previous
// contents never survive. buf may be nil.
func RandomWeights(src *rng.Source, g *graph.Graph, buf []float64) ([]float64, error) {
	if src == nil || g == nil {
		return nil, graph.InvalidParameterError("RandomWeights", "random source and graph are required")
	}

	m := g.EdgeCount()
	if cap(buf) < m {
		buf = make([]float64, m)
	}
	buf = buf[:m]
	for i := range buf {
		buf[i] = src.Float64()
	}
	return buf, nil
}

package bench

import (
	"github.com/dd0wney/cluso-graphbench/pkg/graph"
	"github.com/dd0wney/cluso-graphbench/pkg/logging"
	"github.com/dd0wney/cluso-graphbench/pkg/timing"
)

// SweepSteps is the number of sampling ratios: 0.1, 0.2, ..., 1.0.
const SweepSteps = 10

// SweepPoint is one sampling ratio and the number of vertices it selects.
type SweepPoint struct {
	Ratio    float64
	Selected int
}

// SweepRatios returns the sweep points for a graph with n vertices. Ratios come
// from an integer step counter and Selected = floor(n*i/10) in integer arithmetic,
// so the last point always selects exactly n vertices.
func SweepRatios(n int) []SweepPoint {
	points := make([]SweepPoint, SweepSteps)
	for i := 1; i <= SweepSteps; i++ {
		points[i-1] = SweepPoint{
			Ratio:    float64(i) / SweepSteps,
			Selected: int(int64(n) * int64(i) / SweepSteps),
		}
	}
	return points
}

// InducedSubgraphSweep times induced-subgraph extraction for every sweep point.
// The selector is the prefix 0..k-1 of the vertex ids. rep is the number of
// extractions timed per point; the subgraphs are discarded as soon as they are
// built.
func InducedSubgraphSweep(engine *timing.Engine, lib Library, g *graph.Graph, name string, rep int, logger logging.Logger) ([]timing.Measurement, error) {
	logger = logging.OrDefault(logger)

	out := make([]timing.Measurement, 0, SweepSteps)
	for _, p := range SweepRatios(g.VertexCount()) {
		selector, err := allocInts("InducedSubgraphSweep", "vertex selector", p.Selected)
		if err != nil {
			return out, err
		}
		for i := range selector {
			selector[i] = i
		}

		logger.Debug("creating vertex selector",
			logging.String("graph", name),
			logging.Float64("ratio", p.Ratio),
			logging.Int("first", 0),
			logging.Int("last", p.Selected-1))

		label := Label{
			Operation:   "Induced subgraph",
			Graph:       name,
			Vertices:    p.Selected,
			Edges:       -1,
			Repetitions: rep,
			Ratio:       p.Ratio,
		}
		m, err := engine.Run(timing.Task{
			Label:       label.String(),
			Operation:   OpSubgraph,
			Repetitions: rep,
			Work: func() error {
				_, err := lib.InducedSubgraph(g, selector, graph.SubgraphAuto)
				return err
			},
		})
		if err != nil {
			return out, err
		}
		out = append(out, m)
	}
	return out, nil
}

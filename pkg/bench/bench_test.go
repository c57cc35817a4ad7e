package bench

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-graphbench/pkg/algorithms"
	"github.com/dd0wney/cluso-graphbench/pkg/graph"
	"github.com/dd0wney/cluso-graphbench/pkg/logging"
	"github.com/dd0wney/cluso-graphbench/pkg/timing"
)

// fakeLibrary records calls and delegates the cheap operations to pkg/graph.
type fakeLibrary struct {
	multilevel  int
	leiden      int
	subgraphs   []int // selector length per call
	resolutions []float64
	vertexW     []float64
	opts        algorithms.LeidenOptions
	fail        error
}

func (f *fakeLibrary) Strength(g *graph.Graph, weights []float64, mode graph.NeighborMode) ([]float64, error) {
	return g.Strength(weights, mode)
}

func (f *fakeLibrary) Multilevel(g *graph.Graph, weights []float64, resolution float64, membership []int) error {
	f.multilevel++
	f.resolutions = append(f.resolutions, resolution)
	return f.fail
}

func (f *fakeLibrary) Leiden(g *graph.Graph, weights, vertexWeights []float64, resolution float64, opts algorithms.LeidenOptions, membership []int) error {
	f.leiden++
	f.resolutions = append(f.resolutions, resolution)
	f.vertexW = vertexWeights
	f.opts = opts
	return nil
}

func (f *fakeLibrary) InducedSubgraph(g *graph.Graph, selector []int, mode graph.SubgraphMode) (*graph.Graph, error) {
	f.subgraphs = append(f.subgraphs, len(selector))
	for i, v := range selector {
		if v != i {
			return nil, errors.New("selector is not a prefix")
		}
	}
	return g.InducedSubgraph(selector, mode)
}

type recordingSink struct {
	got        []timing.Measurement
	separators []int // measurement count at each separator
}

func (s *recordingSink) Record(m timing.Measurement) { s.got = append(s.got, m) }
func (s *recordingSink) Separator()                  { s.separators = append(s.separators, len(s.got)) }

func path(t *testing.T, n int) *graph.Graph {
	t.Helper()
	edges := make([]graph.Edge, 0, n)
	for v := 0; v+1 < n; v++ {
		edges = append(edges, graph.Edge{From: v, To: v + 1})
	}
	g, err := graph.New(n, false, edges)
	require.NoError(t, err)
	return g
}

func TestCommunity_TwoMeasurementsThenSeparator(t *testing.T) {
	g := path(t, 5)
	weights := []float64{0.5, 0.5, 1, 2}
	lib := &fakeLibrary{}
	sink := &recordingSink{}

	ms, err := Community(timing.NewEngine(nil, sink), lib, g, weights, "G(n,m)", 3)
	require.NoError(t, err)

	assert.Len(t, ms, 2)
	assert.Equal(t, 3, lib.multilevel)
	assert.Equal(t, 3, lib.leiden)
	require.Len(t, sink.got, 2)
	assert.Equal(t, []int{2}, sink.separators, "one separator after both measurements")

	assert.Equal(t, "1 Louvain, G(n,m), vcount=5, ecount=4, weighted, 3x", sink.got[0].Label)
	assert.Equal(t, "2 Leiden , G(n,m), vcount=5, ecount=4, weighted, 3x", sink.got[1].Label)
	assert.Equal(t, OpLouvain, sink.got[0].Operation)
	assert.Equal(t, OpLeiden, sink.got[1].Operation)

	assert.Equal(t, 1.0, lib.resolutions[0], "Louvain runs at resolution 1")
	assert.Equal(t, 0.25, lib.resolutions[3], "Leiden runs at 1/sum(weights)")
	assert.Equal(t, []float64{0.5, 1, 1.5, 3, 2}, lib.vertexW)
	assert.Equal(t, algorithms.DefaultLeidenOptions(), lib.opts)
	assert.Equal(t, algorithms.LeidenOptions{Beta: 0.01, Iterations: 1}, lib.opts)
}

func TestCommunity_Unweighted(t *testing.T) {
	g := path(t, 5)
	lib := &fakeLibrary{}
	sink := &recordingSink{}

	_, err := Community(timing.NewEngine(nil, sink), lib, g, nil, "PA", 1)
	require.NoError(t, err)

	assert.Equal(t, "1 Louvain, PA, vcount=5, ecount=4, unweighted, 1x", sink.got[0].Label)
	assert.Equal(t, 0.25, lib.resolutions[1], "nil weights use 1/edge count")
	assert.Equal(t, []float64{1, 2, 2, 2, 1}, lib.vertexW, "nil weights give degrees")
}

func TestCommunity_ZeroTotalWeight(t *testing.T) {
	g := path(t, 3)
	lib := &fakeLibrary{}
	sink := &recordingSink{}

	_, err := Community(timing.NewEngine(nil, sink), lib, g, []float64{0, 0}, "zero", 1)
	assert.True(t, graph.IsInvalidParameter(err))
	assert.Zero(t, lib.multilevel)
	assert.Empty(t, sink.got)
}

func TestCommunity_AlgorithmFailureAborts(t *testing.T) {
	g := path(t, 4)
	lib := &fakeLibrary{fail: errors.New("diverged")}
	sink := &recordingSink{}

	_, err := Community(timing.NewEngine(nil, sink), lib, g, nil, "G(n,m)", 5)
	require.Error(t, err)
	assert.True(t, graph.IsAlgorithmFailure(err))
	assert.Equal(t, 1, lib.multilevel, "first failure stops the repetitions")
	assert.Zero(t, lib.leiden)
	assert.Empty(t, sink.got)
	assert.Empty(t, sink.separators)
}

func TestCommunity_RealLibrary(t *testing.T) {
	g := path(t, 12)
	sink := &recordingSink{}

	_, err := Community(timing.NewEngine(nil, sink), algorithms.NewLibrary(nil), g, nil, "path", 2)
	// Leiden needs a random source.
	assert.True(t, graph.IsInvalidParameter(err))
	require.Len(t, sink.got, 1, "Louvain still completed")
}

func TestSweepRatios(t *testing.T) {
	points := SweepRatios(100)
	require.Len(t, points, SweepSteps)
	for i, p := range points {
		assert.Equal(t, 10*(i+1), p.Selected)
		assert.InDelta(t, float64(i+1)/10, p.Ratio, 1e-12)
	}
	assert.Equal(t, 1.0, points[SweepSteps-1].Ratio)
}

func TestSweepRatios_Properties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("ten non-decreasing points ending at n", prop.ForAll(
		func(n int) bool {
			points := SweepRatios(n)
			if len(points) != SweepSteps || points[SweepSteps-1].Selected != n {
				return false
			}
			for i := 1; i < len(points); i++ {
				if points[i].Selected < points[i-1].Selected || points[i].Ratio <= points[i-1].Ratio {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 1_000_000),
	))

	properties.Property("points strictly increase once n >= 10", prop.ForAll(
		func(n int) bool {
			points := SweepRatios(n)
			for i := 1; i < len(points); i++ {
				if points[i].Selected <= points[i-1].Selected {
					return false
				}
			}
			return true
		},
		gen.IntRange(10, 1_000_000),
	))

	properties.Property("selection never exceeds the ratio", prop.ForAll(
		func(n int) bool {
			for _, p := range SweepRatios(n) {
				if float64(p.Selected) > p.Ratio*float64(n)+1e-9 || float64(p.Selected) < math.Floor(p.Ratio*float64(n))-1 {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 1_000_000),
	))

	properties.TestingRun(t)
}

func TestInducedSubgraphSweep(t *testing.T) {
	g := path(t, 100)
	lib := &fakeLibrary{}
	sink := &recordingSink{}

	ms, err := InducedSubgraphSweep(timing.NewEngine(nil, sink), lib, g, "G(n,m)", 2, nil)
	require.NoError(t, err)

	require.Len(t, ms, 10)
	assert.Empty(t, sink.separators)

	want := make([]int, 0, 20)
	for i := 1; i <= 10; i++ {
		want = append(want, 10*i, 10*i)
	}
	assert.Equal(t, want, lib.subgraphs, "each ratio point timed rep times")

	assert.Equal(t, "Induced subgraph, G(n,m), ratio 0.30, vcount=30, 2x", sink.got[2].Label)
	assert.Equal(t, "Induced subgraph, G(n,m), ratio 1.00, vcount=100, 2x", sink.got[9].Label)
	assert.Equal(t, OpSubgraph, sink.got[0].Operation)
}

func TestInducedSubgraphSweep_Failure(t *testing.T) {
	g := path(t, 10)
	sink := &recordingSink{}

	_, err := InducedSubgraphSweep(timing.NewEngine(nil, sink), &fakeLibrary{}, g, "x", 0, nil)
	assert.True(t, graph.IsInvalidParameter(err))
	assert.Empty(t, sink.got)
}

func TestInducedSubgraphSweep_NilLoggerUsesDefault(t *testing.T) {
	var logs bytes.Buffer
	logging.SetDefaultLogger(logging.NewJSONLogger(&logs, logging.DebugLevel))
	t.Cleanup(func() { logging.SetDefaultLogger(nil) })

	_, err := InducedSubgraphSweep(timing.NewEngine(nil), &fakeLibrary{}, path(t, 20), "PA", 1, nil)
	require.NoError(t, err)

	assert.Equal(t, SweepSteps, strings.Count(logs.String(), `"msg":"creating vertex selector"`))
	assert.Contains(t, logs.String(), `"last":19`)
}

func TestLabel(t *testing.T) {
	tests := []struct {
		label Label
		want  string
	}{
		{
			Label{Operation: "1 Louvain", Graph: "forest fire", Vertices: 1000, Edges: 2315, Weighted: true, Repetitions: 100},
			"1 Louvain, forest fire, vcount=1000, ecount=2315, weighted, 100x",
		},
		{
			Label{Operation: "2 Leiden ", Graph: "PA", Vertices: 10, Edges: 0, Repetitions: 1},
			"2 Leiden , PA, vcount=10, ecount=0, unweighted, 1x",
		},
		{
			Label{Operation: "Induced subgraph", Graph: "PA", Vertices: 3, Edges: -1, Repetitions: 1, Ratio: 0.3},
			"Induced subgraph, PA, ratio 0.30, vcount=3, 1x",
		},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.label.String())
	}
}

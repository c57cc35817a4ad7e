package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-graphbench/pkg/graph"
	"github.com/dd0wney/cluso-graphbench/pkg/rng"
)

func TestMaxSimpleEdges(t *testing.T) {
	tests := []struct {
		n        int
		directed bool
		want     int64
	}{
		{0, false, 0},
		{1, false, 0},
		{2, false, 1},
		{100, false, 4950},
		{100, true, 9900},
		{100000, false, 4999950000},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MaxSimpleEdges(tt.n, tt.directed), "n=%d directed=%v", tt.n, tt.directed)
	}
}

func TestPairDecoding(t *testing.T) {
	want := []graph.Edge{{From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 2}, {From: 0, To: 3}, {From: 1, To: 3}, {From: 2, To: 3}}
	for idx, e := range want {
		assert.Equal(t, e, undirectedPair(int64(idx)), "index %d", idx)
	}

	// Every ordered pair of 4 vertices without loops, in row order.
	seen := make(map[graph.Edge]bool)
	for idx := int64(0); idx < MaxSimpleEdges(4, true); idx++ {
		e := directedPair(idx, 4)
		assert.NotEqual(t, e.From, e.To)
		assert.False(t, seen[e], "pair %v decoded twice", e)
		seen[e] = true
	}
	assert.Len(t, seen, 12)
}

func TestUniformRandom_CorpusShape(t *testing.T) {
	g, err := UniformRandom(rng.New(137), 100, 500, false)
	require.NoError(t, err)

	assert.Equal(t, 100, g.VertexCount())
	assert.Equal(t, 500, g.EdgeCount())
	assert.False(t, g.Directed())
	assert.True(t, simple(g))
}

func TestUniformRandom_Complete(t *testing.T) {
	g, err := UniformRandom(rng.New(1), 6, 15, false)
	require.NoError(t, err)
	assert.Equal(t, 15, g.EdgeCount())
	assert.True(t, simple(g))
}

func TestUniformRandom_InvalidInput(t *testing.T) {
	src := rng.New(1)
	for name, call := range map[string]func() error{
		"too many edges":  func() error { _, err := UniformRandom(src, 10, 46, false); return err },
		"negative n":      func() error { _, err := UniformRandom(src, -1, 0, false); return err },
		"negative m":      func() error { _, err := UniformRandom(src, 10, -1, false); return err },
		"nil source":      func() error { _, err := UniformRandom(nil, 10, 1, false); return err },
		"bad forward":     func() error { _, err := ForestFire(src, FFParams{Vertices: 10, ForwardProb: 1}); return err },
		"bad backward":    func() error { _, err := ForestFire(src, FFParams{Vertices: 10, ForwardProb: 0.5, BackwardFactor: 2}); return err },
		"bad ambassadors": func() error { _, err := ForestFire(src, FFParams{Vertices: 10, Ambassadors: -1}); return err },
		"negative power":  func() error { _, err := PreferentialAttachment(src, PAParams{Vertices: 10, Power: -1}); return err },
		"negative steps":  func() error { _, err := PreferentialAttachment(src, PAParams{Vertices: 10, EdgesPerStep: -1}); return err },
		"directed no appeal": func() error {
			_, err := PreferentialAttachment(src, PAParams{Vertices: 10, EdgesPerStep: 1, Directed: true})
			return err
		},
		"unknown model": func() error { _, err := FromSpec(src, Spec{Model: "lattice", Vertices: 4}); return err },
	} {
		t.Run(name, func(t *testing.T) {
			err := call()
			require.Error(t, err)
			assert.True(t, graph.IsInvalidParameter(err), "error %v should be invalid parameter", err)
		})
	}
}

func TestPreferentialAttachment_CorpusShape(t *testing.T) {
	g, err := PreferentialAttachment(rng.New(137), PAParams{
		Vertices:     1000,
		EdgesPerStep: 5,
		Power:        1,
		OutPref:      true,
	})
	require.NoError(t, err)

	assert.Equal(t, 1000, g.VertexCount())
	// 1+2+3+4 for the first vertices, then 5 per vertex.
	assert.Equal(t, 10+5*995, g.EdgeCount())
	assert.True(t, simple(g))
}

func TestPreferentialAttachment_PrefersHubs(t *testing.T) {
	g, err := PreferentialAttachment(rng.New(3), PAParams{Vertices: 2000, EdgesPerStep: 1, Power: 1, ZeroAppeal: 1})
	require.NoError(t, err)

	deg, err := g.Degree(graph.All)
	require.NoError(t, err)

	early, late := 0, 0
	for v := 0; v < 20; v++ {
		early += deg[v]
	}
	for v := 1980; v < 2000; v++ {
		late += deg[v]
	}
	assert.Greater(t, early, late, "early vertices should collect more links")
}

func TestForestFire_CorpusShape(t *testing.T) {
	g, err := ForestFire(rng.New(137), FFParams{
		Vertices:       1000,
		ForwardProb:    0.2,
		BackwardFactor: 1,
		Ambassadors:    2,
	})
	require.NoError(t, err)

	assert.Equal(t, 1000, g.VertexCount())
	assert.GreaterOrEqual(t, g.EdgeCount(), 1+2*998)
	assert.True(t, simple(g))
}

func TestFromSpec_Reproducible(t *testing.T) {
	specs := []Spec{
		{Model: ModelUniformRandom, Vertices: 200, Edges: 800},
		{Model: ModelPreferentialAttachment, Vertices: 200, EdgesPerStep: 3, Power: 1, OutPref: true},
		{Model: ModelForestFire, Vertices: 200, ForwardProb: 0.2, BackwardFactor: 1, Ambassadors: 2},
	}

	for _, s := range specs {
		t.Run(s.String(), func(t *testing.T) {
			a, err := FromSpec(rng.New(137), s)
			require.NoError(t, err)
			b, err := FromSpec(rng.New(137), s)
			require.NoError(t, err)
			assert.True(t, sameEdges(a, b))
		})
	}
}

func TestRandomWeights_Reproducible(t *testing.T) {
	g, err := UniformRandom(rng.New(5), 50, 100, false)
	require.NoError(t, err)

	a, err := RandomWeights(rng.New(137), g, nil)
	require.NoError(t, err)
	b, err := RandomWeights(rng.New(137), g, nil)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	_, err = RandomWeights(nil, g, nil)
	assert.True(t, graph.IsInvalidParameter(err))
}

func TestPSumTree(t *testing.T) {
	tree := newPSumTree(5)
	for i, w := range []float64{1, 0, 2, 0, 1} {
		tree.Update(i, w)
	}
	require.Equal(t, 4.0, tree.Sum())

	assert.Equal(t, 0, tree.Search(0.5))
	assert.Equal(t, 2, tree.Search(1.0))
	assert.Equal(t, 2, tree.Search(2.9))
	assert.Equal(t, 4, tree.Search(3.5))

	tree.Update(0, 0)
	tree.Update(2, 0)
	tree.Update(4, 0)
	assert.Equal(t, 0.0, tree.Sum(), "zeroed tree must sum to exactly zero")
}

func TestModels(t *testing.T) {
	assert.ElementsMatch(t, []Model{"gnm", "pa", "forestfire"}, Models())
	assert.Equal(t, "gnm(n=100, m=500)", Spec{Model: ModelUniformRandom, Vertices: 100, Edges: 500}.String())
}

package generate

import (
	"math"
	"slices"

	"github.com/dd0wney/cluso-graphbench/pkg/graph"
	"github.com/dd0wney/cluso-graphbench/pkg/rng"
)

const methodUniformRandom = "UniformRandom"

// UniformRandom returns a G(n,m) graph: m distinct edges drawn uniformly without
// replacement from all vertex pairs, with no self-loops and no multi-edges.
// Edges are numbered in increasing pair order.
func UniformRandom(src *rng.Source, n, m int, directed bool) (*graph.Graph, error) {
	if src == nil {
		return nil, graph.InvalidParameterError(methodUniformRandom, "random source is nil")
	}
	if n < 0 {
		return nil, graph.InvalidParameterError(methodUniformRandom, "vertex count %d is negative", n)
	}
	if m < 0 {
		return nil, graph.InvalidParameterError(methodUniformRandom, "edge count %d is negative", m)
	}

	maxEdges := MaxSimpleEdges(n, directed)
	if int64(m) > maxEdges {
		return nil, graph.InvalidParameterError(methodUniformRandom,
			"edge count %d exceeds %d possible edges on %d vertices", m, maxEdges, n)
	}

	picks := sampleDistinct(src, maxEdges, m)
	edges := make([]graph.Edge, len(picks))
	for i, idx := range picks {
		if directed {
			edges[i] = directedPair(idx, n)
		} else {
			edges[i] = undirectedPair(idx)
		}
	}

	return graph.New(n, directed, edges)
}

// MaxSimpleEdges returns the number of edges of the complete simple graph on n vertices.
func MaxSimpleEdges(n int, directed bool) int64 {
	if n < 2 {
		return 0
	}
	nn := int64(n)
	if directed {
		return nn * (nn - 1)
	}
	return nn * (nn - 1) / 2
}

// sampleDistinct returns m distinct values from [0,max) in increasing order
// using Floyd's algorithm.
func sampleDistinct(src *rng.Source, max int64, m int) []int64 {
	seen := make(map[int64]struct{}, m)
	out := make([]int64, 0, m)
	for j := max - int64(m); j < max; j++ {
		t := src.Int63n(j + 1)
		if _, dup := seen[t]; dup {
			t = j
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}

// undirectedPair decodes idx into the pair (i,j), i<j, where pairs are enumerated
// column by column: (0,1), (0,2), (1,2), (0,3), ...
func undirectedPair(idx int64) graph.Edge {
	j := int64((1 + math.Sqrt(1+8*float64(idx))) / 2)
	for j*(j-1)/2 > idx {
		j--
	}
	for (j+1)*j/2 <= idx {
		j++
	}
	i := idx - j*(j-1)/2
	return graph.Edge{From: int(i), To: int(j)}
}

// directedPair decodes idx into an ordered pair without self-loops.
func directedPair(idx int64, n int) graph.Edge {
	from := idx / int64(n-1)
	to := idx % int64(n-1)
	if to >= from {
		to++
	}
	return graph.Edge{From: int(from), To: int(to)}
}

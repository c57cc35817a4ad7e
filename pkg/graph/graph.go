package graph

import "math"

// New creates a graph with n vertices and the given edges. Edge i of the result is
// edges[i]. Endpoints must lie in [0, n).
func New(n int, directed bool, edges []Edge) (*Graph, error) {
	if n < 0 {
		return nil, InvalidParameterError("New", "vertex count %d is negative", n)
	}

	g := &Graph{
		n:        n,
		directed: directed,
		edges:    make([]Edge, len(edges)),
		out:      make([][]int, n),
	}
	if directed {
		g.in = make([][]int, n)
	}

	copy(g.edges, edges)
	for id, e := range g.edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, InvalidParameterError("New", "edge %d (%d,%d) outside vertex range [0,%d)", id, e.From, e.To, n)
		}
		g.link(id, e)
	}

	return g, nil
}

func (g *Graph) link(id int, e Edge) {
	g.out[e.From] = append(g.out[e.From], id)
	if g.directed {
		g.in[e.To] = append(g.in[e.To], id)
	} else if e.To != e.From {
		g.out[e.To] = append(g.out[e.To], id)
	}
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Directed reports whether edges are ordered pairs.
func (g *Graph) Directed() bool { return g.directed }

// Edge returns the endpoints of edge id.
func (g *Graph) Edge(id int) Edge { return g.edges[id] }

// Edges returns a copy of the edge list in identifier order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Incident returns the ids of edges incident to v under mode. The returned slice
// must not be modified. An undirected self-loop is listed once.
func (g *Graph) Incident(v int, mode NeighborMode) []int {
	if !g.directed {
		return g.out[v]
	}
	switch mode {
	case Out:
		return g.out[v]
	case In:
		return g.in[v]
	default:
		all := make([]int, 0, len(g.out[v])+len(g.in[v]))
		all = append(all, g.out[v]...)
		return append(all, g.in[v]...)
	}
}

// Other returns the endpoint of edge id that is not v.
func (g *Graph) Other(id, v int) int {
	e := g.edges[id]
	if e.From == v {
		return e.To
	}
	return e.From
}

// Degree returns the number of incident edges of every vertex, counting self-loops
// twice under All.
func (g *Graph) Degree(mode NeighborMode) ([]int, error) {
	if err := validateMode("Degree", mode); err != nil {
		return nil, err
	}

	deg := make([]int, g.n)
	for _, e := range g.edges {
		switch {
		case !g.directed || mode == All:
			deg[e.From]++
			deg[e.To]++
		case mode == Out:
			deg[e.From]++
		default:
			deg[e.To]++
		}
	}
	return deg, nil
}

// Strength returns the weighted degree of every vertex: the sum of weights of the
// incident edges selected by mode. A nil weights slice counts every edge as 1, so
// the result equals Degree.
func (g *Graph) Strength(weights []float64, mode NeighborMode) ([]float64, error) {
	if err := validateMode("Strength", mode); err != nil {
		return nil, err
	}
	if weights != nil && len(weights) != len(g.edges) {
		return nil, InvalidParameterError("Strength", "weight vector length %d does not match edge count %d", len(weights), len(g.edges))
	}

	str := make([]float64, g.n)
	for id, e := range g.edges {
		w := 1.0
		if weights != nil {
			w = weights[id]
		}
		switch {
		case !g.directed || mode == All:
			str[e.From] += w
			str[e.To] += w
		case mode == Out:
			str[e.From] += w
		default:
			str[e.To] += w
		}
	}
	return str, nil
}

// TotalWeight returns the sum of weights, or the edge count when weights is nil.
func (g *Graph) TotalWeight(weights []float64) (float64, error) {
	if weights == nil {
		return float64(len(g.edges)), nil
	}
	if len(weights) != len(g.edges) {
		return 0, InvalidParameterError("TotalWeight", "weight vector length %d does not match edge count %d", len(weights), len(g.edges))
	}
	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	return sum, nil
}

// ValidateWeights checks that weights is nil or an edge-aligned vector of finite
// non-negative values.
func (g *Graph) ValidateWeights(op string, weights []float64) error {
	if weights == nil {
		return nil
	}
	if len(weights) != len(g.edges) {
		return InvalidParameterError(op, "weight vector length %d does not match edge count %d", len(weights), len(g.edges))
	}
	for id, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return InvalidParameterError(op, "weight of edge %d is %g", id, w)
		}
	}
	return nil
}

func validateMode(op string, mode NeighborMode) error {
	switch mode {
	case Out, In, All:
		return nil
	default:
		return InvalidParameterError(op, "unknown neighbor mode %d", int(mode))
	}
}

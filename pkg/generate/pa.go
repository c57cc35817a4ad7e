package generate

import (
	"math"

	"github.com/dd0wney/cluso-graphbench/pkg/graph"
	"github.com/dd0wney/cluso-graphbench/pkg/rng"
)

const methodPreferentialAttachment = "PreferentialAttachment"

// PAParams configures a preferential-attachment graph.
type PAParams struct {
	Vertices     int
	EdgesPerStep int     // edges added with every new vertex
	Power        float64 // exponent applied to the degree
	ZeroAppeal   float64 // attractiveness added to every vertex
	OutPref      bool    // count edges a vertex created toward its own attractiveness
	Directed     bool
}

// PreferentialAttachment grows a graph one vertex at a time. Vertex i (i >= 1)
// attaches to min(EdgesPerStep, i) distinct earlier vertices, each picked with
// probability proportional to degree^Power + ZeroAppeal. In directed graphs only
// in-degree counts unless OutPref is set; undirected graphs always use the total
// degree. When every earlier vertex has zero attractiveness the target is drawn
// uniformly. Edges point from the new vertex to the chosen targets.
func PreferentialAttachment(src *rng.Source, p PAParams) (*graph.Graph, error) {
	if err := p.validate(src); err != nil {
		return nil, err
	}

	n, m := p.Vertices, p.EdgesPerStep
	useOut := p.OutPref || !p.Directed

	deg := make([]int, n)
	tree := newPSumTree(n)
	attract := func(d int) float64 {
		if d == 0 {
			return p.ZeroAppeal
		}
		return math.Pow(float64(d), p.Power) + p.ZeroAppeal
	}

	edges := make([]graph.Edge, 0, int64(m)*int64(max(n-1, 0)))
	if n > 0 {
		tree.Update(0, attract(0))
	}

	picked := make([]int, 0, m)
	for i := 1; i < n; i++ {
		want := min(m, i)
		picked = picked[:0]

		for len(picked) < want {
			var to int
			if sum := tree.Sum(); sum > 0 {
				to = tree.Search(src.Float64() * sum)
				if tree.Get(to) == 0 {
					// Rounding pushed the draw onto an empty leaf.
					continue
				}
			} else {
				to = uniformUnpicked(src, i, picked)
			}
			picked = append(picked, to)
			// Exclude the target from later draws of this step.
			tree.Update(to, 0)
		}

		for _, to := range picked {
			edges = append(edges, graph.Edge{From: i, To: to})
			deg[to]++
			if useOut {
				deg[i]++
			}
		}
		for _, to := range picked {
			tree.Update(to, attract(deg[to]))
		}
		tree.Update(i, attract(deg[i]))
	}

	return graph.New(n, p.Directed, edges)
}

// uniformUnpicked draws uniformly among vertices [0,limit) not yet picked this step.
func uniformUnpicked(src *rng.Source, limit int, picked []int) int {
	for {
		v := src.Intn(limit)
		taken := false
		for _, u := range picked {
			if u == v {
				taken = true
				break
			}
		}
		if !taken {
			return v
		}
	}
}

func (p PAParams) validate(src *rng.Source) error {
	switch {
	case src == nil:
		return graph.InvalidParameterError(methodPreferentialAttachment, "random source is nil")
	case p.Vertices < 0:
		return graph.InvalidParameterError(methodPreferentialAttachment, "vertex count %d is negative", p.Vertices)
	case p.EdgesPerStep < 0:
		return graph.InvalidParameterError(methodPreferentialAttachment, "edges per step %d is negative", p.EdgesPerStep)
	case p.Power < 0 || math.IsNaN(p.Power) || math.IsInf(p.Power, 0):
		return graph.InvalidParameterError(methodPreferentialAttachment, "power %g must be finite and non-negative", p.Power)
	case p.ZeroAppeal < 0 || math.IsNaN(p.ZeroAppeal) || math.IsInf(p.ZeroAppeal, 0):
		return graph.InvalidParameterError(methodPreferentialAttachment, "zero appeal %g must be finite and non-negative", p.ZeroAppeal)
	case p.ZeroAppeal == 0 && p.Directed && !p.OutPref:
		return graph.InvalidParameterError(methodPreferentialAttachment, "zero appeal must be positive for directed graphs without out-preference")
	}
	return nil
}

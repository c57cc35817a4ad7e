package generate

import (
	"math"

	"github.com/dd0wney/cluso-graphbench/pkg/graph"
	"github.com/dd0wney/cluso-graphbench/pkg/rng"
)

const methodForestFire = "ForestFire"

// FFParams configures a forest-fire growth graph.
type FFParams struct {
	Vertices       int
	ForwardProb    float64 // forward burning probability, in [0,1)
	BackwardFactor float64 // backward burning probability is ForwardProb*BackwardFactor
	Ambassadors    int     // ambassadors picked by every new vertex
	Directed       bool
}

// ForestFire grows a graph where every new vertex picks Ambassadors distinct
// earlier vertices uniformly at random and then spreads a fire from them. Each
// burning vertex links the newcomer to itself, then ignites Geometric(ForwardProb)
// of its unburnt out-neighbors and Geometric(ForwardProb*BackwardFactor) of its
// unburnt in-neighbors. A vertex burns at most once per newcomer, so the result has
// no multi-edges. Undirected output keeps the same edges without orientation.
func ForestFire(src *rng.Source, p FFParams) (*graph.Graph, error) {
	if err := p.validate(src); err != nil {
		return nil, err
	}

	n := p.Vertices
	backProb := p.ForwardProb * p.BackwardFactor

	outNbr := make([][]int, n)
	inNbr := make([][]int, n)
	visited := make([]int, n) // visited[v] == newcomer+1 when v burnt for newcomer
	var edges []graph.Edge

	var queue, cand []int
	for v := 1; v < n; v++ {
		mark := v + 1
		queue = queue[:0]

		ambs := min(p.Ambassadors, v)
		for picked := 0; picked < ambs; {
			a := src.Intn(v)
			if visited[a] == mark {
				continue
			}
			visited[a] = mark
			queue = append(queue, a)
			picked++
		}

		for len(queue) > 0 {
			a := queue[0]
			queue = queue[1:]
			edges = append(edges, graph.Edge{From: v, To: a})

			queue, cand = burn(src, outNbr[a], p.ForwardProb, visited, mark, queue, cand)
			queue, cand = burn(src, inNbr[a], backProb, visited, mark, queue, cand)
		}

		// Register the newcomer's links only after its fire is out.
		for i := len(edges) - 1; i >= 0 && edges[i].From == v; i-- {
			a := edges[i].To
			outNbr[v] = append(outNbr[v], a)
			inNbr[a] = append(inNbr[a], v)
		}
	}

	return graph.New(n, p.Directed, edges)
}

// burn ignites Geometric(prob) unburnt vertices from nbrs, appending them to queue.
func burn(src *rng.Source, nbrs []int, prob float64, visited []int, mark int, queue, cand []int) ([]int, []int) {
	cand = cand[:0]
	for _, u := range nbrs {
		if visited[u] != mark {
			cand = append(cand, u)
		}
	}
	if len(cand) == 0 {
		return queue, cand
	}

	k := min(src.Geometric(prob), len(cand))
	src.Shuffle(cand, k)
	for _, u := range cand[:k] {
		visited[u] = mark
		queue = append(queue, u)
	}
	return queue, cand
}

func (p FFParams) validate(src *rng.Source) error {
	switch {
	case src == nil:
		return graph.InvalidParameterError(methodForestFire, "random source is nil")
	case p.Vertices < 0:
		return graph.InvalidParameterError(methodForestFire, "vertex count %d is negative", p.Vertices)
	case p.ForwardProb < 0 || p.ForwardProb >= 1 || math.IsNaN(p.ForwardProb):
		return graph.InvalidParameterError(methodForestFire, "forward burning probability %g not in [0,1)", p.ForwardProb)
	case p.BackwardFactor < 0 || math.IsNaN(p.BackwardFactor) || math.IsInf(p.BackwardFactor, 0):
		return graph.InvalidParameterError(methodForestFire, "backward factor %g must be finite and non-negative", p.BackwardFactor)
	case p.ForwardProb*p.BackwardFactor >= 1:
		return graph.InvalidParameterError(methodForestFire, "backward burning probability %g not below 1", p.ForwardProb*p.BackwardFactor)
	case p.Ambassadors < 0:
		return graph.InvalidParameterError(methodForestFire, "ambassador count %d is negative", p.Ambassadors)
	}
	return nil
}

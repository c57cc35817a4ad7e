package algorithms

import (
	"container/list"

	"github.com/dd0wney/cluso-graphbench/pkg/graph"
)

// ConnectedComponents finds all weakly connected components of g
func ConnectedComponents(g *graph.Graph) *CommunityDetectionResult {
	n := g.VertexCount()
	membership := make([]int, n)
	for v := range membership {
		membership[v] = -1
	}

	componentID := 0

	// BFS to find each component
	for start := 0; start < n; start++ {
		if membership[start] >= 0 {
			continue
		}

		queue := list.New()
		queue.PushBack(start)
		membership[start] = componentID

		for queue.Len() > 0 {
			v, ok := queue.Remove(queue.Front()).(int)
			if !ok {
				continue
			}
			for _, id := range g.Incident(v, graph.All) {
				u := g.Other(id, v)
				if membership[u] < 0 {
					membership[u] = componentID
					queue.PushBack(u)
				}
			}
		}
		componentID++
	}

	return Summarize(membership)
}

// CommunitiesConnected reports whether every community of membership induces a
// connected subgraph of g.
func CommunitiesConnected(g *graph.Graph, membership []int) (bool, error) {
	for _, c := range Summarize(membership).Communities {
		sub, err := g.InducedSubgraph(c.Vertices, graph.SubgraphCreateFromScratch)
		if err != nil {
			return false, err
		}
		if len(ConnectedComponents(sub).Communities) > 1 {
			return false, nil
		}
	}
	return true, nil
}

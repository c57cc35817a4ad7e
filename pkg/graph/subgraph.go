package graph

import "slices"

// autoCopyThreshold is the selected fraction above which SubgraphAuto copies the
// graph and deletes the rest instead of rebuilding from the selected vertices.
const autoCopyThreshold = 0.5

// InducedSubgraph returns the subgraph spanned by the vertices in selector together
// with every edge whose endpoints are both selected. Duplicate selector entries are
// ignored. Selected vertices keep their relative order: the smallest selected id
// becomes vertex 0. Edges keep their relative order.
func (g *Graph) InducedSubgraph(selector []int, mode SubgraphMode) (*Graph, error) {
	keep := make([]bool, g.n)
	k := 0
	for _, v := range selector {
		if v < 0 || v >= g.n {
			return nil, InvalidParameterError("InducedSubgraph", "vertex %d outside range [0,%d)", v, g.n)
		}
		if !keep[v] {
			keep[v] = true
			k++
		}
	}

	if mode == SubgraphAuto {
		mode = SubgraphCreateFromScratch
		if g.n > 0 && float64(k)/float64(g.n) > autoCopyThreshold {
			mode = SubgraphCopyAndDelete
		}
	}

	switch mode {
	case SubgraphCopyAndDelete:
		return g.copyAndDelete(keep, k), nil
	case SubgraphCreateFromScratch:
		return g.createFromScratch(keep, k), nil
	default:
		return nil, InvalidParameterError("InducedSubgraph", "unknown subgraph mode %d", int(mode))
	}
}

// copyAndDelete walks the full edge list and drops edges touching removed vertices.
func (g *Graph) copyAndDelete(keep []bool, k int) *Graph {
	index := make([]int, g.n)
	next := 0
	for v := 0; v < g.n; v++ {
		if keep[v] {
			index[v] = next
			next++
		} else {
			index[v] = -1
		}
	}

	sub := &Graph{
		n:        k,
		directed: g.directed,
		edges:    make([]Edge, 0, len(g.edges)),
		out:      make([][]int, k),
	}
	if g.directed {
		sub.in = make([][]int, k)
	}

	for _, e := range g.edges {
		from, to := index[e.From], index[e.To]
		if from < 0 || to < 0 {
			continue
		}
		ne := Edge{From: from, To: to}
		sub.link(len(sub.edges), ne)
		sub.edges = append(sub.edges, ne)
	}
	return sub
}

// createFromScratch only visits edges incident to selected vertices.
func (g *Graph) createFromScratch(keep []bool, k int) *Graph {
	vids := make([]int, 0, k)
	index := make(map[int]int, k)
	for v := 0; v < g.n; v++ {
		if keep[v] {
			index[v] = len(vids)
			vids = append(vids, v)
		}
	}

	var ids []int
	for _, v := range vids {
		for _, id := range g.out[v] {
			e := g.edges[id]
			// Collect each edge once, from its source endpoint.
			if e.From != v {
				continue
			}
			if _, ok := index[e.To]; ok {
				ids = append(ids, id)
			}
		}
	}
	slices.Sort(ids)

	sub := &Graph{
		n:        k,
		directed: g.directed,
		edges:    make([]Edge, 0, len(ids)),
		out:      make([][]int, k),
	}
	if g.directed {
		sub.in = make([][]int, k)
	}
	for _, id := range ids {
		e := g.edges[id]
		ne := Edge{From: index[e.From], To: index[e.To]}
		sub.link(len(sub.edges), ne)
		sub.edges = append(sub.edges, ne)
	}
	return sub
}

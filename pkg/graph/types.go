package graph

// NeighborMode selects which incident edges of a vertex are considered.
type NeighborMode int

const (
	// Out follows edges leaving a vertex. Same as All on undirected graphs.
	Out NeighborMode = iota + 1
	// In follows edges entering a vertex. Same as All on undirected graphs.
	In
	// All follows every incident edge regardless of direction.
	All
)

// String returns the string representation of a NeighborMode
func (m NeighborMode) String() string {
	switch m {
	case Out:
		return "out"
	case In:
		return "in"
	case All:
		return "all"
	default:
		return "unknown"
	}
}

// SubgraphMode selects how an induced subgraph is materialized.
type SubgraphMode int

const (
	// SubgraphAuto lets the implementation pick the cheaper strategy from the selected fraction.
	SubgraphAuto SubgraphMode = iota
	// SubgraphCopyAndDelete copies the whole graph and drops unselected vertices.
	SubgraphCopyAndDelete
	// SubgraphCreateFromScratch builds a new graph from the edges of the selected vertices.
	SubgraphCreateFromScratch
)

// String returns the string representation of a SubgraphMode
func (m SubgraphMode) String() string {
	switch m {
	case SubgraphAuto:
		return "auto"
	case SubgraphCopyAndDelete:
		return "copy_and_delete"
	case SubgraphCreateFromScratch:
		return "create_from_scratch"
	default:
		return "unknown"
	}
}

// Edge is an edge of a Graph as a pair of vertex indices.
type Edge struct {
	From int
	To   int
}

// Graph is a vertex-indexed graph with edges identified by their insertion order.
// Vertices are 0..VertexCount()-1 and edges 0..EdgeCount()-1. A Graph is never
// mutated after construction; derived graphs are new values.
type Graph struct {
	n        int
	directed bool
	edges    []Edge
	out      [][]int // out[v]: ids of edges leaving v (all incident edges when undirected)
	in       [][]int // in[v]: ids of edges entering v (nil when undirected)
}

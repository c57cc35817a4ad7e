package bench

import (
	"fmt"
	"strings"
)

// Operation names, also used as metric labels.
const (
	OpLouvain  = "louvain"
	OpLeiden   = "leiden"
	OpSubgraph = "induced_subgraph"
)

// Label identifies one measurement well enough to compare it across runs.
type Label struct {
	Operation   string  // display name of the timed operation
	Graph       string  // corpus entry name, e.g. "G(n,m)"
	Vertices    int     // vertex count of the timed input
	Edges       int     // edge count; negative omits it
	Weighted    bool
	Repetitions int
	Ratio       float64 // sampling ratio; 0 omits it
}

// String renders the label, e.g.
// "1 Louvain, G(n,m), vcount=100, ecount=500, weighted, 1000x".
func (l Label) String() string {
	var b strings.Builder
	b.WriteString(l.Operation)
	b.WriteString(", ")
	b.WriteString(l.Graph)
	if l.Ratio > 0 {
		fmt.Fprintf(&b, ", ratio %.2f", l.Ratio)
	}
	fmt.Fprintf(&b, ", vcount=%d", l.Vertices)
	if l.Edges >= 0 {
		fmt.Fprintf(&b, ", ecount=%d", l.Edges)
	}
	if l.Ratio == 0 {
		if l.Weighted {
			b.WriteString(", weighted")
		} else {
			b.WriteString(", unweighted")
		}
	}
	fmt.Fprintf(&b, ", %dx", l.Repetitions)
	return b.String()
}

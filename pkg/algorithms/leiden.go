package algorithms

import (
	"maps"
	"math"
	"slices"

	"github.com/dd0wney/cluso-graphbench/pkg/graph"
	"github.com/dd0wney/cluso-graphbench/pkg/rng"
)

const methodLeiden = "Leiden"

// levelGraph is the weighted undirected graph a Leiden level works on. Level 0 is
// the input graph; later levels contract the refined clusters of the previous one.
type levelGraph struct {
	n     int
	start []int     // CSR row offsets, len n+1
	nbr   []int     // neighbor per CSR slot; self-loops are kept in self instead
	w     []float64 // edge weight per CSR slot
	self  []float64 // self-loop weight per node
	nodeW []float64 // node weight per node
}

// Leiden partitions the undirected graph g by optimizing
//
//	Q = 1/(2m) Σ_ij (A_ij - resolution·n_i·n_j) δ(σ_i, σ_j)
//
// where A is the (weighted) adjacency, n the vertex weights and m the total edge
// weight. A nil weights slice uses weight 1 per edge; a nil vertexWeights slice
// uses the vertex strengths. membership must have length g.VertexCount(); it is
// overwritten with labels 0..k-1 and only read when opts.StartFromMembership is set.
func Leiden(src *rng.Source, g *graph.Graph, weights, vertexWeights []float64, resolution float64, opts LeidenOptions, membership []int) (LeidenResult, error) {
	if src == nil {
		return LeidenResult{}, graph.InvalidParameterError(methodLeiden, "random source is nil")
	}
	if err := checkPartitionInput(methodLeiden, g, weights, membership); err != nil {
		return LeidenResult{}, err
	}
	if math.IsNaN(resolution) || math.IsInf(resolution, 0) {
		return LeidenResult{}, graph.InvalidParameterError(methodLeiden, "resolution %g must be finite", resolution)
	}
	if opts.Beta <= 0 || math.IsNaN(opts.Beta) || math.IsInf(opts.Beta, 0) {
		return LeidenResult{}, graph.InvalidParameterError(methodLeiden, "beta %g must be positive and finite", opts.Beta)
	}
	if opts.Iterations == 0 {
		return LeidenResult{}, graph.InvalidParameterError(methodLeiden, "iteration count must be non-zero")
	}

	n := g.VertexCount()
	if vertexWeights == nil {
		str, err := g.Strength(weights, graph.All)
		if err != nil {
			return LeidenResult{}, err
		}
		vertexWeights = str
	}
	if len(vertexWeights) != n {
		return LeidenResult{}, graph.InvalidParameterError(methodLeiden, "vertex weight length %d does not match vertex count %d", len(vertexWeights), n)
	}

	base := newLevelGraph(g, weights, vertexWeights)

	if opts.StartFromMembership {
		for v, c := range membership {
			if c < 0 || c >= n {
				return LeidenResult{}, graph.InvalidParameterError(methodLeiden, "start label %d of vertex %d outside [0,%d)", c, v, n)
			}
		}
	} else {
		for v := range membership {
			membership[v] = v
		}
	}
	clusters := compact(membership)

	l := &leiden{src: src, resolution: resolution, beta: opts.Beta}
	for it := 0; opts.Iterations < 0 || it < opts.Iterations; it++ {
		changed := l.pass(base, membership)
		clusters = compact(membership)
		if opts.Iterations < 0 && !changed {
			break
		}
	}

	return LeidenResult{Clusters: clusters, Quality: base.quality(membership, resolution)}, nil
}

func newLevelGraph(g *graph.Graph, weights, vertexWeights []float64) *levelGraph {
	n := g.VertexCount()
	lg := &levelGraph{
		n:     n,
		start: make([]int, n+1),
		self:  make([]float64, n),
		nodeW: make([]float64, n),
	}
	copy(lg.nodeW, vertexWeights)

	for id := 0; id < g.EdgeCount(); id++ {
		e := g.Edge(id)
		if e.From != e.To {
			lg.start[e.From+1]++
			lg.start[e.To+1]++
		}
	}
	for v := 0; v < n; v++ {
		lg.start[v+1] += lg.start[v]
	}
	lg.nbr = make([]int, lg.start[n])
	lg.w = make([]float64, lg.start[n])

	fill := make([]int, n)
	copy(fill, lg.start[:n])
	for id := 0; id < g.EdgeCount(); id++ {
		e := g.Edge(id)
		w := 1.0
		if weights != nil {
			w = weights[id]
		}
		if e.From == e.To {
			lg.self[e.From] += 2 * w
			continue
		}
		lg.nbr[fill[e.From]], lg.w[fill[e.From]] = e.To, w
		fill[e.From]++
		lg.nbr[fill[e.To]], lg.w[fill[e.To]] = e.From, w
		fill[e.To]++
	}
	return lg
}

// quality evaluates Q for membership on lg. self holds twice the loop weight, so
// internal edges contribute 2w like an ordered-pair sum.
func (lg *levelGraph) quality(membership []int, resolution float64) float64 {
	k := 0
	for _, c := range membership {
		k = max(k, c+1)
	}
	internal := make([]float64, k)
	size := make([]float64, k)
	total := 0.0
	for v := 0; v < lg.n; v++ {
		c := membership[v]
		size[c] += lg.nodeW[v]
		internal[c] += lg.self[v]
		total += lg.self[v]
		for i := lg.start[v]; i < lg.start[v+1]; i++ {
			total += lg.w[i]
			if membership[lg.nbr[i]] == c {
				internal[c] += lg.w[i]
			}
		}
	}

	q := 0.0
	for c := range internal {
		q += internal[c] - resolution*size[c]*size[c]
	}
	if total > 0 {
		q /= total
	}
	return q
}

type leiden struct {
	src        *rng.Source
	resolution float64
	beta       float64
}

// pass runs one full Leiden pass (move, refine, aggregate until stable) starting
// from membership and writes the final partition of base vertices back into it.
func (l *leiden) pass(base *levelGraph, membership []int) bool {
	before := make([]int, len(membership))
	copy(before, membership)

	lg := base
	part := membership // partition of lg's nodes
	owner := make([]int, base.n)
	for v := range owner {
		owner[v] = v // level node holding base vertex v
	}

	for {
		k := l.moveNodes(lg, part)
		if k >= lg.n {
			break
		}

		refined, r := l.refine(lg, part, k)
		if r >= lg.n {
			// Refinement merged nothing; contract on the partition itself.
			refined = part
			r = k
		}

		next, nextPart := aggregate(lg, refined, r, part)
		for v := range owner {
			owner[v] = refined[owner[v]]
		}
		lg, part = next, nextPart
	}

	for v := range membership {
		membership[v] = part[owner[v]]
	}
	compact(membership)
	return !samePartition(before, membership)
}

// moveNodes is the queue-based local moving phase. It relabels part to 0..k-1 and
// returns k.
func (l *leiden) moveNodes(lg *levelGraph, part []int) int {
	n := lg.n
	size := make([]float64, n) // cluster node-weight totals, labels < n
	count := make([]int, n)    // cluster member counts
	for v := 0; v < n; v++ {
		size[part[v]] += lg.nodeW[v]
		count[part[v]]++
	}
	var empty []int
	for c := n - 1; c >= 0; c-- {
		if count[c] == 0 {
			empty = append(empty, c)
		}
	}

	queue := make([]int, n)
	for v := range queue {
		queue[v] = v
	}
	l.src.Shuffle(queue, n)
	inQueue := make([]bool, n)
	for v := range inQueue {
		inQueue[v] = true
	}

	edgeTo := make([]float64, n)
	var touched []int
	for head := 0; head < len(queue); head++ {
		v := queue[head]
		inQueue[v] = false
		cur := part[v]
		nv := lg.nodeW[v]

		size[cur] -= nv
		count[cur]--
		if count[cur] == 0 {
			empty = append(empty, cur)
		}

		touched = touched[:0]
		for i := lg.start[v]; i < lg.start[v+1]; i++ {
			c := part[lg.nbr[i]]
			if edgeTo[c] == 0 {
				touched = append(touched, c)
			}
			edgeTo[c] += lg.w[i]
		}

		best := cur
		bestDiff := edgeTo[cur] - l.resolution*nv*size[cur]
		for _, c := range touched {
			if d := edgeTo[c] - l.resolution*nv*size[c]; d > bestDiff {
				best, bestDiff = c, d
			}
		}
		if len(empty) > 0 && bestDiff < 0 {
			best = empty[len(empty)-1]
		}
		for _, c := range touched {
			edgeTo[c] = 0
		}
		edgeTo[cur] = 0

		if count[best] == 0 {
			empty = removeLast(empty, best)
		}
		size[best] += nv
		count[best]++
		part[v] = best

		if best != cur {
			for i := lg.start[v]; i < lg.start[v+1]; i++ {
				u := lg.nbr[i]
				if !inQueue[u] && part[u] != best {
					inQueue[u] = true
					queue = append(queue, u)
				}
			}
		}
	}

	return compact(part)
}

// refine splits every cluster of part into well-connected subclusters by greedy
// randomized merging of singletons. It returns the refined labels and their count.
func (l *leiden) refine(lg *levelGraph, part []int, k int) ([]int, int) {
	n := lg.n
	members := make([][]int, k)
	for v := 0; v < n; v++ {
		members[part[v]] = append(members[part[v]], v)
	}

	refined := make([]int, n)
	refSize := make([]float64, n)
	refExt := make([]float64, n) // weight from refined cluster to the rest of its parent
	merged := make([]bool, n)
	for v := 0; v < n; v++ {
		refined[v] = v
		refSize[v] = lg.nodeW[v]
	}

	edgeTo := make([]float64, n)
	var touched, cands []int
	var probs []float64
	for c, nodes := range members {
		parentSize := 0.0
		for _, v := range nodes {
			parentSize += lg.nodeW[v]
			for i := lg.start[v]; i < lg.start[v+1]; i++ {
				if part[lg.nbr[i]] == c {
					refExt[v] += lg.w[i]
				}
			}
		}

		order := append([]int(nil), nodes...)
		l.src.Shuffle(order, len(order))
		for _, v := range order {
			if merged[refined[v]] {
				continue
			}
			nv := lg.nodeW[v]
			if refExt[v] < l.resolution*nv*(parentSize-nv) {
				continue
			}

			own := refined[v]
			refSize[own] = 0
			ownExt := refExt[own]
			refExt[own] = 0

			touched = touched[:0]
			for i := lg.start[v]; i < lg.start[v+1]; i++ {
				u := lg.nbr[i]
				if part[u] != c {
					continue
				}
				rc := refined[u]
				if edgeTo[rc] == 0 {
					touched = append(touched, rc)
				}
				edgeTo[rc] += lg.w[i]
			}

			cands = append(cands[:0], own)
			probs = append(probs[:0], 0)
			maxDiff := 0.0
			for _, rc := range touched {
				if rc == own {
					continue
				}
				if refExt[rc] < l.resolution*refSize[rc]*(parentSize-refSize[rc]) {
					continue
				}
				d := edgeTo[rc] - l.resolution*nv*refSize[rc]
				if d < 0 {
					continue
				}
				cands = append(cands, rc)
				probs = append(probs, d)
				maxDiff = max(maxDiff, d)
			}

			chosen := l.pick(cands, probs, maxDiff)

			refSize[chosen] += nv
			refExt[chosen] += ownExt - 2*edgeTo[chosen]
			if chosen != own {
				refined[v] = chosen
				merged[chosen] = true
			} else {
				refExt[own] = ownExt
			}
			for _, rc := range touched {
				edgeTo[rc] = 0
			}
		}
	}

	return refined, compact(refined)
}

// pick draws a candidate with probability proportional to exp((d - maxDiff)/beta).
func (l *leiden) pick(cands []int, diffs []float64, maxDiff float64) int {
	total := 0.0
	for i, d := range diffs {
		diffs[i] = math.Exp((d - maxDiff) / l.beta)
		total += diffs[i]
	}
	if total == 0 || math.IsInf(total, 0) || math.IsNaN(total) {
		best := 0
		for i, d := range diffs {
			if d > diffs[best] {
				best = i
			}
		}
		return cands[best]
	}

	r := l.src.Float64() * total
	for i, p := range diffs {
		if r < p {
			return cands[i]
		}
		r -= p
	}
	return cands[len(cands)-1]
}

// aggregate contracts lg by the r clusters of by. The contracted node for cluster c
// inherits part of any of its members as its initial label.
func aggregate(lg *levelGraph, by []int, r int, part []int) (*levelGraph, []int) {
	next := &levelGraph{
		n:     r,
		start: make([]int, r+1),
		self:  make([]float64, r),
		nodeW: make([]float64, r),
	}
	nextPart := make([]int, r)

	rows := make([]map[int]float64, r)
	for v := 0; v < lg.n; v++ {
		c := by[v]
		next.nodeW[c] += lg.nodeW[v]
		next.self[c] += lg.self[v]
		nextPart[c] = part[v]
		for i := lg.start[v]; i < lg.start[v+1]; i++ {
			d := by[lg.nbr[i]]
			if d == c {
				next.self[c] += lg.w[i]
				continue
			}
			if rows[c] == nil {
				rows[c] = make(map[int]float64)
			}
			rows[c][d] += lg.w[i]
		}
	}

	for c := 0; c < r; c++ {
		next.start[c+1] = next.start[c] + len(rows[c])
	}
	next.nbr = make([]int, next.start[r])
	next.w = make([]float64, next.start[r])
	for c := 0; c < r; c++ {
		i := next.start[c]
		for _, d := range slices.Sorted(maps.Keys(rows[c])) {
			next.nbr[i], next.w[i] = d, rows[c][d]
			i++
		}
	}

	compact(nextPart)
	return next, nextPart
}

// compact relabels labels to 0..k-1 in order of first appearance and returns k.
func compact(labels []int) int {
	remap := make(map[int]int, len(labels))
	for i, c := range labels {
		id, ok := remap[c]
		if !ok {
			id = len(remap)
			remap[c] = id
		}
		labels[i] = id
	}
	return len(remap)
}

func samePartition(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func removeLast(s []int, v int) []int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

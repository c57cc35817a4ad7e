package generate

// psumTree stores non-negative weights for items 0..n-1 and samples an item with
// probability proportional to its weight in O(log n).
type psumTree struct {
	offset int
	tree   []float64 // 1-based heap layout; leaves start at offset
}

func newPSumTree(n int) *psumTree {
	offset := 1
	for offset < n {
		offset <<= 1
	}
	return &psumTree{offset: offset, tree: make([]float64, 2*offset)}
}

// Update sets the weight of item i. Parents are recomputed from their children so
// that a subtree of zero weights sums to exactly zero.
func (t *psumTree) Update(i int, w float64) {
	pos := t.offset + i
	t.tree[pos] = w
	for pos >>= 1; pos >= 1; pos >>= 1 {
		t.tree[pos] = t.tree[2*pos] + t.tree[2*pos+1]
	}
}

// Get returns the weight of item i.
func (t *psumTree) Get(i int) float64 { return t.tree[t.offset+i] }

// Sum returns the total weight.
func (t *psumTree) Sum() float64 { return t.tree[1] }

// Search returns the item whose cumulative weight interval contains x, x in [0, Sum()).
func (t *psumTree) Search(x float64) int {
	pos := 1
	for pos < t.offset {
		left := 2 * pos
		if x < t.tree[left] {
			pos = left
		} else {
			x -= t.tree[left]
			pos = left + 1
		}
	}
	return pos - t.offset
}

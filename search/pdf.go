package search

import "github.com/corevm/xsearch/state"

// discretePDF is a mutable weighted-sampling structure: Insert, Update and
// Remove run in amortized O(log n), and Choose draws a key with
// probability proportional to its current weight in O(log n). It is
// implemented as a Fenwick (binary indexed) tree over a dense weight
// array, with a side map from state identity to that array's current
// position — the position map is what lets Remove and Update locate a
// key's slot without a linear scan, and is kept consistent across the
// swap-with-last deletion Remove performs.
//
// The backing arrays grow by doubling, like a normal Go slice append,
// except growth also requires rebuilding the Fenwick tree from scratch:
// a Fenwick tree's internal ancestor structure depends on its total size,
// so a tree built incrementally under one size cannot simply be extended
// in place when that size changes.
type discretePDF struct {
	keys     []state.ExecutionState
	weights  []float64
	tree     []float64 // 1-indexed Fenwick tree, length capacity+1
	pos      map[state.ExecutionState]int
	capacity int
	count    int
}

func newDiscretePDF() *discretePDF {
	return &discretePDF{
		capacity: 1,
		weights:  make([]float64, 1),
		keys:     make([]state.ExecutionState, 1),
		tree:     make([]float64, 2),
		pos:      make(map[state.ExecutionState]int),
	}
}

func (p *discretePDF) empty() bool {
	return p.count == 0
}

func (p *discretePDF) size() int {
	return p.count
}

// fenwickAdd adds delta at 0-based weight index i.
func (p *discretePDF) fenwickAdd(i int, delta float64) {
	for j := i + 1; j <= p.capacity; j += j & (-j) {
		p.tree[j] += delta
	}
}

// fenwickPrefix returns the sum of weights[0:i).
func (p *discretePDF) fenwickPrefix(i int) float64 {
	var sum float64
	for j := i; j > 0; j -= j & (-j) {
		sum += p.tree[j]
	}
	return sum
}

func (p *discretePDF) total() float64 {
	return p.fenwickPrefix(p.count)
}

// rebuild reconstructs the Fenwick tree from the live portion of weights,
// used after capacity changes.
func (p *discretePDF) rebuild() {
	for i := range p.tree {
		p.tree[i] = 0
	}
	for i := 0; i < p.count; i++ {
		p.fenwickAdd(i, p.weights[i])
	}
}

func (p *discretePDF) grow() {
	p.capacity *= 2
	weights := make([]float64, p.capacity)
	copy(weights, p.weights)
	keys := make([]state.ExecutionState, p.capacity)
	copy(keys, p.keys)
	p.weights = weights
	p.keys = keys
	p.tree = make([]float64, p.capacity+1)
	p.rebuild()
}

// insert adds key with weight w, which must be positive.
func (p *discretePDF) insert(key state.ExecutionState, w float64) {
	if w <= 0 {
		w = minPositiveWeight
	}
	if p.count == p.capacity {
		p.grow()
	}
	i := p.count
	p.keys[i] = key
	p.weights[i] = w
	p.pos[key] = i
	p.fenwickAdd(i, w)
	p.count++
}

// update changes key's weight to w. key must already be tracked.
func (p *discretePDF) update(key state.ExecutionState, w float64) {
	if w <= 0 {
		w = minPositiveWeight
	}
	i, ok := p.pos[key]
	if !ok {
		violate("discretePDF: update of an untracked key")
	}
	delta := w - p.weights[i]
	p.weights[i] = w
	p.fenwickAdd(i, delta)
}

// remove drops key from the PDF using swap-with-last. key must already be
// tracked.
func (p *discretePDF) remove(key state.ExecutionState) {
	i, ok := p.pos[key]
	if !ok {
		violate("discretePDF: removed a key not tracked by this searcher")
	}
	last := p.count - 1
	if i != last {
		p.fenwickAdd(i, p.weights[last]-p.weights[i])
		p.keys[i] = p.keys[last]
		p.weights[i] = p.weights[last]
		p.pos[p.keys[i]] = i
	}
	p.fenwickAdd(last, -p.weights[last])
	p.keys[last] = nil
	p.weights[last] = 0
	p.count--
	delete(p.pos, key)
}

// choose draws a key with probability proportional to its weight, given a
// uniform sample u in [0, 1). It descends the Fenwick tree in O(log n)
// rather than doing a linear scan over prefix sums.
func (p *discretePDF) choose(u float64) state.ExecutionState {
	if p.empty() {
		violate("discretePDF: choose called on an empty PDF")
	}
	target := u * p.total()

	logSize := 1
	for logSize*2 <= p.capacity {
		logSize *= 2
	}

	idx := 0
	remaining := target
	for step := logSize; step > 0; step /= 2 {
		next := idx + step
		if next <= p.capacity && p.tree[next] <= remaining {
			idx = next
			remaining -= p.tree[next]
		}
	}
	if idx >= p.count {
		idx = p.count - 1
	}
	return p.keys[idx]
}

// minPositiveWeight is substituted for any non-positive weight a caller
// attempts to insert or update, since Choose's probability-proportional
// semantics require strictly positive weights throughout.
const minPositiveWeight = 1e-12

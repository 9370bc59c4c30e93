package search

import (
	"github.com/corevm/xsearch/rng"
	"github.com/corevm/xsearch/state"
)

// Random selects uniformly among its tracked states on every Select call,
// using the shared RNG's Intn draw over the unordered collection.
type Random struct {
	states []state.ExecutionState
	index  map[state.ExecutionState]int
	rng    *rng.Source
}

// NewRandom creates an empty Random searcher drawing from r.
func NewRandom(r *rng.Source) *Random {
	return &Random{index: make(map[state.ExecutionState]int), rng: r}
}

// Select draws one tracked state uniformly at random.
func (rs *Random) Select() state.ExecutionState {
	if len(rs.states) == 0 {
		violate("Random.Select called on an empty searcher")
	}
	return rs.states[rs.rng.Intn(len(rs.states))]
}

// Update adds added and removes removed using swap-with-last deletion,
// since Random's selection order is unspecified.
func (rs *Random) Update(_ state.ExecutionState, added, removed []state.ExecutionState) {
	for _, s := range added {
		rs.index[s] = len(rs.states)
		rs.states = append(rs.states, s)
	}
	for _, r := range removed {
		rs.remove(r)
	}
}

func (rs *Random) remove(target state.ExecutionState) {
	i, ok := rs.index[target]
	if !ok {
		violate("Random: removed a state not tracked by this searcher")
	}
	last := len(rs.states) - 1
	rs.states[i] = rs.states[last]
	rs.index[rs.states[i]] = i
	rs.states = rs.states[:last]
	delete(rs.index, target)
}

// Empty reports whether Random has no live states left to select from.
func (rs *Random) Empty() bool {
	return len(rs.states) == 0
}

package search

import "github.com/corevm/xsearch/state"

// InterleavedSearcher round-robins Select across a fixed, non-empty
// sequence of sub-searchers, forwarding every Update to all of them
// unchanged.
type InterleavedSearcher struct {
	subs  []Searcher
	index int
}

// NewInterleaved wraps subs, which must be non-empty, in round-robin
// order.
func NewInterleaved(subs ...Searcher) *InterleavedSearcher {
	if len(subs) == 0 {
		violate("NewInterleaved requires at least one sub-searcher")
	}
	return &InterleavedSearcher{subs: subs, index: len(subs)}
}

// Select decrements the cyclic index, wrapping back to len(subs) once it
// reaches zero, and delegates to the sub-searcher it lands on.
func (in *InterleavedSearcher) Select() state.ExecutionState {
	in.index--
	if in.index == 0 {
		in.index = len(in.subs)
	}
	return in.subs[in.index-1].Select()
}

// Update broadcasts current, added, and removed to every sub-searcher
// unchanged.
func (in *InterleavedSearcher) Update(current state.ExecutionState, added, removed []state.ExecutionState) {
	for _, s := range in.subs {
		s.Update(current, added, removed)
	}
}

// Empty reports whether every sub-searcher is empty.
func (in *InterleavedSearcher) Empty() bool {
	for _, s := range in.subs {
		if !s.Empty() {
			return false
		}
	}
	return true
}

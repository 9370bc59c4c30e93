package search

import "github.com/corevm/xsearch/state"

// BFS selects the least recently added state, implementing breadth-first
// exploration. States are held in insertion order and used as a queue:
// Select returns the head, removal of the head pops it, and removal of any
// other tracked state finds and erases it in place.
//
// When an Update reports a non-empty added set together with a
// non-removed current, BFS first rotates current to the tail before
// appending added. This preserves round-robin fairness across forks: a
// state that just forked children goes behind every state that was
// already waiting instead of running again straight away, and its new
// children are queued behind it.
type BFS struct {
	states []state.ExecutionState
}

// NewBFS creates an empty BFS searcher.
func NewBFS() *BFS {
	return &BFS{}
}

// Select returns the least recently added still-live state.
func (b *BFS) Select() state.ExecutionState {
	if len(b.states) == 0 {
		violate("BFS.Select called on an empty searcher")
	}
	return b.states[0]
}

// Update rotates current to the tail (if applicable), appends added, then
// removes every state in removed.
func (b *BFS) Update(current state.ExecutionState, added, removed []state.ExecutionState) {
	if len(added) > 0 && current != nil && !contains(removed, current) {
		b.rotateToTail(current)
	}
	b.states = append(b.states, added...)
	for _, r := range removed {
		b.remove(r)
	}
}

func (b *BFS) rotateToTail(target state.ExecutionState) {
	for i, s := range b.states {
		if s == target {
			b.states = append(b.states[:i], b.states[i+1:]...)
			b.states = append(b.states, target)
			return
		}
	}
	// current was not tracked (e.g. it belongs to a sibling searcher in a
	// composite); nothing to rotate.
}

func (b *BFS) remove(target state.ExecutionState) {
	n := len(b.states)
	if n == 0 {
		violate("BFS: removed a state not tracked by this searcher")
	}
	if b.states[0] == target {
		b.states = b.states[1:]
		return
	}
	for i := 1; i < n; i++ {
		if b.states[i] == target {
			b.states = append(b.states[:i], b.states[i+1:]...)
			return
		}
	}
	violate("BFS: removed a state not tracked by this searcher")
}

// Empty reports whether BFS has no live states left to select from.
func (b *BFS) Empty() bool {
	return len(b.states) == 0
}

func contains(states []state.ExecutionState, target state.ExecutionState) bool {
	for _, s := range states {
		if s == target {
			return true
		}
	}
	return false
}

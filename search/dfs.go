package search

import "github.com/corevm/xsearch/state"

// DFS selects the most recently added state, implementing depth-first
// exploration of the symbolic execution tree. States are held in insertion
// order and used as a stack: Select returns the tail, removal of the tail
// pops it, and removal of any other tracked state finds and erases it in
// place.
type DFS struct {
	states []state.ExecutionState
}

// NewDFS creates an empty DFS searcher.
func NewDFS() *DFS {
	return &DFS{}
}

// Select returns the most recently added still-live state.
func (d *DFS) Select() state.ExecutionState {
	if len(d.states) == 0 {
		violate("DFS.Select called on an empty searcher")
	}
	return d.states[len(d.states)-1]
}

// Update appends added to the stack, then removes every state in removed,
// popping in O(1) when a removal targets the current tail.
func (d *DFS) Update(_ state.ExecutionState, added, removed []state.ExecutionState) {
	d.states = append(d.states, added...)
	for _, r := range removed {
		d.remove(r)
	}
}

func (d *DFS) remove(target state.ExecutionState) {
	n := len(d.states)
	if n == 0 {
		violate("DFS: removed a state not tracked by this searcher")
	}
	if d.states[n-1] == target {
		d.states = d.states[:n-1]
		return
	}
	for i := n - 2; i >= 0; i-- {
		if d.states[i] == target {
			d.states = append(d.states[:i], d.states[i+1:]...)
			return
		}
	}
	violate("DFS: removed a state not tracked by this searcher")
}

// Empty reports whether DFS has no live states left to select from.
func (d *DFS) Empty() bool {
	return len(d.states) == 0
}

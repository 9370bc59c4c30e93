package search

import (
	"github.com/corevm/xsearch/ptree"
	"github.com/corevm/xsearch/rng"
	"github.com/corevm/xsearch/state"
)

// RandomRecoveryPath is RandomPath specialized for recovery states, which
// are organized as a stack of nested subtrees rather than one flat
// process tree: each recovery state spawns its own fork history once it
// starts running, nested inside the fork history of the state that spawned
// it.
type RandomRecoveryPath struct {
	treeStack []*ptree.Node
	states    []state.ExecutionState
	rng       *rng.Source
}

// NewRandomRecoveryPath creates an empty RandomRecoveryPath drawing
// randomness from r.
func NewRandomRecoveryPath(r *rng.Source) *RandomRecoveryPath {
	return &RandomRecoveryPath{rng: r}
}

// removalIsNoOp marks RandomRecoveryPath as unsuitable for direct
// composition under MergingSearcher; see ErrUnboundedDrain. Like
// RandomPath, its Select result is driven by tree shape rather than by a
// stable per-state slot a merging searcher's drain loop could exhaust.
func (r *RandomRecoveryPath) removalIsNoOp() {}

// Update pushes a new subtree root for every added state whose recovery
// level matches the current stack depth (the point at which it starts
// forking on its own), appends every added state to the flat list, and
// pops the stack whenever a resumed state at the top stack level (level
// equal to the stack depth minus one) completes. Every removed state is dropped from the flat list
// regardless.
func (r *RandomRecoveryPath) Update(current state.ExecutionState, added, removed []state.ExecutionState) {
	for _, s := range added {
		if s.Level() == len(r.treeStack) {
			if node, ok := s.PTreeNode().(*ptree.Node); ok {
				r.treeStack = append(r.treeStack, node)
			}
		}
		r.states = append(r.states, s)
	}
	for _, s := range removed {
		if s.IsResumed() && s.Level() == len(r.treeStack)-1 {
			r.treeStack = r.treeStack[:len(r.treeStack)-1]
		}
		r.removeFromList(s)
	}
}

func (r *RandomRecoveryPath) removeFromList(target state.ExecutionState) {
	for i, s := range r.states {
		if s == target {
			last := len(r.states) - 1
			r.states[i] = r.states[last]
			r.states = r.states[:last]
			return
		}
	}
}

// Select returns an arbitrary element of the flat list if the stack is
// empty, otherwise walks from the top of the stack to a leaf exactly as
// RandomPath.Select does, descending recovery chains on suspended states.
func (r *RandomRecoveryPath) Select() state.ExecutionState {
	if len(r.treeStack) == 0 {
		if len(r.states) == 0 {
			violate("RandomRecoveryPath.Select called on an empty searcher")
		}
		return r.states[0]
	}

	n := r.treeStack[len(r.treeStack)-1]
	for !n.IsLeaf() {
		switch {
		case n.Left != nil && n.Right == nil:
			n = n.Left
		case n.Left == nil && n.Right != nil:
			n = n.Right
		default:
			if r.rng.Bit() {
				n = n.Left
			} else {
				n = n.Right
			}
		}
	}
	st, _ := n.Data.(state.ExecutionState)
	return descendRecoveryChain(st)
}

// Empty reports whether both the subtree stack and the flat list are
// empty.
func (r *RandomRecoveryPath) Empty() bool {
	return len(r.treeStack) == 0 && len(r.states) == 0
}

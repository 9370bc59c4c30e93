package search

import (
	"github.com/corevm/xsearch/ptree"
	"github.com/corevm/xsearch/rng"
	"github.com/corevm/xsearch/state"
)

// RandomPath selects a state by walking the engine's process tree from the
// root to a leaf, flipping a coin at every fork. This biases selection
// towards states reached by fewer forks without the bookkeeping overhead
// of WeightedRandomSearcher, and — unlike every other searcher in this
// package — needs no bookkeeping of its own: the process tree already is
// the engine's canonical view of the live-state set, so Update is a no-op
// and Empty simply asks the engine.
type RandomPath struct {
	engine EngineView
	rng    *rng.Source
}

// NewRandomPath creates a RandomPath searcher walking engine's process
// tree using r.
func NewRandomPath(engine EngineView, r *rng.Source) *RandomPath {
	return &RandomPath{engine: engine, rng: r}
}

// removalIsNoOp marks RandomPath as unsuitable for direct composition under
// MergingSearcher; see ErrUnboundedDrain.
func (rp *RandomPath) removalIsNoOp() {}

// Select walks from the process tree root to a leaf, taking the populated
// child without consuming a random bit whenever only one child exists, and
// flipping a bit-paced coin otherwise. If the reached state is suspended
// behind a recovery state, it descends the recovery chain until an
// un-suspended state is found.
func (rp *RandomPath) Select() state.ExecutionState {
	root := rp.engine.ProcessTreeRoot()
	if root == nil {
		violate("RandomPath.Select called with an empty process tree")
	}
	var n *ptree.Node = root
	for !n.IsLeaf() {
		switch {
		case n.Left != nil && n.Right == nil:
			n = n.Left
		case n.Left == nil && n.Right != nil:
			n = n.Right
		default:
			if rp.rng.Bit() {
				n = n.Left
			} else {
				n = n.Right
			}
		}
	}
	st, _ := n.Data.(state.ExecutionState)
	return descendRecoveryChain(st)
}

// descendRecoveryChain follows s.RecoveryState() while s is suspended,
// returning the first un-suspended state reached.
func descendRecoveryChain(s state.ExecutionState) state.ExecutionState {
	for s != nil && s.IsSuspended() {
		s = s.RecoveryState()
	}
	return s
}

// Update is a no-op: the process tree, which RandomPath reads directly, is
// maintained by the engine itself.
func (rp *RandomPath) Update(state.ExecutionState, []state.ExecutionState, []state.ExecutionState) {
}

// Empty reports whether the engine currently has any live states.
func (rp *RandomPath) Empty() bool {
	return len(rp.engine.LiveStates()) == 0
}

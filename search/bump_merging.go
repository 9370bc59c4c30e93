package search

import (
	"github.com/corevm/xsearch/emit"
	"github.com/corevm/xsearch/state"
)

// BumpMergingSearcher wraps a base searcher and opportunistically merges
// states one at a time as they reach a designated merge point: the first
// state to arrive is parked, and the next arrival either merges into it
// (terminating itself) or bumps it back into circulation if the merge
// fails.
type BumpMergingSearcher struct {
	base    Searcher
	engine  EngineView
	parked  map[int]state.ExecutionState
	emitter emit.Emitter
	metrics *searcherMetricsSink
}

// NewBumpMergingSearcher wraps base, using engine to identify merge points
// and to terminate successfully-merged states.
func NewBumpMergingSearcher(base Searcher, engine EngineView, opts ...Option) *BumpMergingSearcher {
	cfg := applyOptions(opts)
	return &BumpMergingSearcher{
		base:    base,
		engine:  engine,
		parked:  make(map[int]state.ExecutionState),
		emitter: cfg.emitter,
		metrics: cfg.sink("bump_merging"),
	}
}

func (b *BumpMergingSearcher) atMergePoint(s state.ExecutionState) (int, bool) {
	mp, ok := b.engine.MergeFunctionSymbol()
	if !ok {
		return 0, false
	}
	if s.PC().Info.ID != mp {
		return 0, false
	}
	return mp, true
}

// Select keeps pulling from the base searcher until it can return a state
// that is not sitting at a merge-function call, parking or merging every
// state that is along the way.
func (b *BumpMergingSearcher) Select() state.ExecutionState {
	for {
		if b.base.Empty() {
			_, s := b.takeAnyParked()
			s.AdvancePastMergeCall()
			AddState(b.base, s)
			b.metrics.setParked(len(b.parked))
			continue
		}

		s := b.base.Select()
		mp, ok := b.atMergePoint(s)
		if !ok {
			return s
		}

		RemoveState(b.base, s)

		parked, havePark := b.parked[mp]
		if !havePark {
			b.parked[mp] = s
			b.metrics.setParked(len(b.parked))
			b.metrics.incMergeOutcome("parked")
			b.emitter.Emit(emit.Event{MergePoint: mp, Msg: "parked", StateID: stateID(s)})
			continue
		}

		if parked.Merge(s) {
			b.metrics.incMergeOutcome("merged")
			b.emitter.Emit(emit.Event{MergePoint: mp, Msg: "merged", StateID: stateID(parked), OtherStateID: stateID(s)})
			// Add-then-terminate idiom: s is momentarily re-registered with
			// the base purely so the base's bookkeeping sees a matching
			// add/remove pair around the termination, then immediately
			// removed again with RemoveState.
			AddState(b.base, s)
			b.engine.TerminateState(s)
			RemoveState(b.base, s)
			continue
		}

		b.metrics.incMergeOutcome("bumped")
		b.emitter.Emit(emit.Event{MergePoint: mp, Msg: "bumped", StateID: stateID(parked), OtherStateID: stateID(s)})
		parked.AdvancePastMergeCall()
		AddState(b.base, parked)
		b.parked[mp] = s
	}
}

func (b *BumpMergingSearcher) takeAnyParked() (int, state.ExecutionState) {
	for mp, s := range b.parked {
		delete(b.parked, mp)
		return mp, s
	}
	violate("BumpMergingSearcher.Select called on an empty searcher")
	return 0, nil
}

// Update forwards added unchanged; any removed state that is currently
// parked is dropped from the parked map instead of being forwarded to the
// base, which already stopped tracking it when it was parked.
func (b *BumpMergingSearcher) Update(current state.ExecutionState, added, removed []state.ExecutionState) {
	var forward []state.ExecutionState
	for _, r := range removed {
		if !b.unpark(r) {
			forward = append(forward, r)
		}
	}
	b.base.Update(current, added, forward)
	b.metrics.setParked(len(b.parked))
}

func (b *BumpMergingSearcher) unpark(target state.ExecutionState) bool {
	for mp, s := range b.parked {
		if s == target {
			delete(b.parked, mp)
			return true
		}
	}
	return false
}

// Empty reports whether both the base searcher and the parked map are
// empty.
func (b *BumpMergingSearcher) Empty() bool {
	return b.base.Empty() && len(b.parked) == 0
}

// stateID derives a stable log identity for a state from its process-tree
// back-reference, falling back to its pointer identity via fmt if absent.
func stateID(s state.ExecutionState) string {
	if node := s.PTreeNode(); node != nil {
		return formatStateID(node)
	}
	return formatStateID(s)
}

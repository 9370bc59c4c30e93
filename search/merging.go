package search

import (
	"github.com/corevm/xsearch/emit"
	"github.com/corevm/xsearch/state"
)

// MergingSearcher wraps a base searcher and performs batched merging: it
// drains the base down to the states sitting at merge points, groups those
// by merge point, and merges each group down to as few survivors as
// possible before returning any of them.
type MergingSearcher struct {
	base     Searcher
	engine   EngineView
	parked   map[state.ExecutionState]struct{}
	emitter  emit.Emitter
	metrics  *searcherMetricsSink
	maxDrain int
}

// NewMergingSearcher wraps base, using engine to identify merge points and
// to terminate successfully-merged states.
//
// If removing a state from base does not stop base's Select from
// returning it — true of RandomPath, whose RemoveState is a no-op and
// whose view is the engine's live-state set and process tree, and of
// RandomRecoveryPath while it walks a subtree of that process tree —
// MergingSearcher's drain loop may never observe the base going empty:
// the same already-parked state can keep coming back out of Select. This constructor refuses that combination unless the
// caller opts in explicitly with WithMaxDrain, which caps the drain loop
// instead of letting it spin forever.
func NewMergingSearcher(base Searcher, engine EngineView, opts ...Option) (*MergingSearcher, error) {
	cfg := applyOptions(opts)
	if _, nonTerm := base.(nonTerminating); nonTerm && cfg.maxDrain <= 0 {
		return nil, ErrUnboundedDrain
	}
	return &MergingSearcher{
		base:     base,
		engine:   engine,
		parked:   make(map[state.ExecutionState]struct{}),
		emitter:  cfg.emitter,
		metrics:  cfg.sink("merging"),
		maxDrain: cfg.maxDrain,
	}, nil
}

func (m *MergingSearcher) atMergePoint(s state.ExecutionState) (int, bool) {
	mp, ok := m.engine.MergeFunctionSymbol()
	if !ok {
		return 0, false
	}
	if s.PC().Info.ID != mp {
		return 0, false
	}
	return mp, true
}

// Select drains the base down to merge points, merges each merge point's
// group as far as possible, and returns a state that is not sitting at a
// merge point.
func (m *MergingSearcher) Select() state.ExecutionState {
	drained := 0
	for !m.base.Empty() {
		if m.maxDrain > 0 && drained >= m.maxDrain {
			break
		}
		s := m.base.Select()
		mp, ok := m.atMergePoint(s)
		if !ok {
			return s
		}
		RemoveState(m.base, s)
		m.parked[s] = struct{}{}
		m.metrics.incMergeOutcome("parked")
		drained++
		m.emitter.Emit(emit.Event{MergePoint: mp, Msg: "parked", StateID: stateID(s)})
	}
	m.metrics.setParked(len(m.parked))

	if len(m.parked) == 0 {
		violate("MergingSearcher.Select called on an empty searcher")
	}

	m.mergeParked()
	return m.Select()
}

// mergeParked groups every currently parked state by merge point and
// merges each group down to as few survivors as possible, returning every
// survivor to the base searcher.
func (m *MergingSearcher) mergeParked() {
	groups := make(map[int][]state.ExecutionState)
	for s := range m.parked {
		mp, _ := m.atMergePoint(s)
		groups[mp] = append(groups[mp], s)
	}

	for mp, group := range groups {
		for len(group) > 0 {
			survivor := group[0]
			rest := group[1:]
			var unmerged []state.ExecutionState
			for _, other := range rest {
				if survivor.Merge(other) {
					m.metrics.incMergeOutcome("merged")
					m.emitter.Emit(emit.Event{MergePoint: mp, Msg: "merged", StateID: stateID(survivor), OtherStateID: stateID(other)})
					delete(m.parked, other)
					m.engine.TerminateState(other)
				} else {
					m.emitter.Emit(emit.Event{MergePoint: mp, Msg: "merge_failed", StateID: stateID(survivor), OtherStateID: stateID(other)})
					unmerged = append(unmerged, other)
				}
			}
			survivor.AdvancePastMergeCall()
			delete(m.parked, survivor)
			AddState(m.base, survivor)
			group = unmerged
		}
	}
	m.metrics.setParked(len(m.parked))
}

// Update removes any parked state from the parked set instead of
// forwarding its removal to the base, which already stopped tracking it
// when it was parked; every other removal, and every addition, is
// forwarded unchanged.
func (m *MergingSearcher) Update(current state.ExecutionState, added, removed []state.ExecutionState) {
	var forward []state.ExecutionState
	for _, r := range removed {
		if _, isParked := m.parked[r]; isParked {
			delete(m.parked, r)
		} else {
			forward = append(forward, r)
		}
	}
	m.base.Update(current, added, forward)
	m.metrics.setParked(len(m.parked))
}

// Empty reports whether both the base searcher and the parked set are
// empty.
func (m *MergingSearcher) Empty() bool {
	return m.base.Empty() && len(m.parked) == 0
}

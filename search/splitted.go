package search

import (
	"github.com/corevm/xsearch/rng"
	"github.com/corevm/xsearch/state"
)

// SplittedSearcher routes states to one of two inner searchers by kind:
// ordinary, originating states go to base; recovery states go to
// recovery. A single shared ratio decides which inner searcher Select
// favors when both have candidates.
type SplittedSearcher struct {
	base     Searcher
	recovery Searcher
	ratio    int
	rng      *rng.Source
}

// NewSplitted wraps base and recovery, drawing the probabilistic choice
// between them from r. ratio is set via WithRatio and defaults to 50.
func NewSplitted(base, recovery Searcher, r *rng.Source, opts ...Option) *SplittedSearcher {
	cfg := applyOptions(opts)
	return &SplittedSearcher{base: base, recovery: recovery, ratio: cfg.ratio, rng: r}
}

// partitionByKind splits states into the subset for which isRecovery
// reports true and the subset for which it reports false.
func partitionByKind(states []state.ExecutionState) (originating, recovery []state.ExecutionState) {
	for _, s := range states {
		if s.IsRecoveryState() {
			recovery = append(recovery, s)
		} else {
			originating = append(originating, s)
		}
	}
	return originating, recovery
}

// currentFor returns current if it belongs to the kind identified by
// wantRecovery, and nil otherwise — a sub-searcher must never apply
// current-related heuristics to a state of the other kind.
func currentFor(current state.ExecutionState, wantRecovery bool) state.ExecutionState {
	if current == nil || current.IsRecoveryState() != wantRecovery {
		return nil
	}
	return current
}

// Update partitions added and removed by kind and forwards each subset to
// the matching inner searcher.
func (s *SplittedSearcher) Update(current state.ExecutionState, added, removed []state.ExecutionState) {
	origAdded, recAdded := partitionByKind(added)
	origRemoved, recRemoved := partitionByKind(removed)
	s.base.Update(currentFor(current, false), origAdded, origRemoved)
	s.recovery.Update(currentFor(current, true), recAdded, recRemoved)
}

// Select returns base's choice if recovery is empty, recovery's choice if
// base is empty, and otherwise picks recovery with probability
// ratio/100.
func (s *SplittedSearcher) Select() state.ExecutionState {
	switch {
	case s.base.Empty():
		return s.recovery.Select()
	case s.recovery.Empty():
		return s.base.Select()
	case s.rng.Float64() < float64(s.ratio)/100:
		return s.recovery.Select()
	default:
		return s.base.Select()
	}
}

// Empty reports whether both inner searchers are empty.
func (s *SplittedSearcher) Empty() bool {
	return s.base.Empty() && s.recovery.Empty()
}

// OptimizedSplittedSearcher extends SplittedSearcher with a third inner
// searcher dedicated to high-priority recovery states, which Select
// always prefers over the ordinary base/recovery split.
type OptimizedSplittedSearcher struct {
	base     Searcher
	recovery Searcher
	high     Searcher
	ratio    int
	rng      *rng.Source
}

// NewOptimizedSplitted wraps base, recovery, and high, drawing the
// probabilistic base/recovery choice from r when high has nothing to
// offer.
func NewOptimizedSplitted(base, recovery, high Searcher, r *rng.Source, opts ...Option) *OptimizedSplittedSearcher {
	cfg := applyOptions(opts)
	return &OptimizedSplittedSearcher{base: base, recovery: recovery, high: high, ratio: cfg.ratio, rng: r}
}

// partitionRecoveryByPriority splits a slice already known to be
// recovery states into its high- and low-priority subsets.
func partitionRecoveryByPriority(states []state.ExecutionState) (high, low []state.ExecutionState) {
	for _, s := range states {
		if s.Priority() == state.PriorityHigh {
			high = append(high, s)
		} else {
			low = append(low, s)
		}
	}
	return high, low
}

// Update partitions added and removed three ways — originating,
// high-priority recovery, low-priority recovery — forwards each subset to
// its inner searcher, and, if a root recovery state (level 0) completed
// in this update, flushes every remaining high-priority state down to
// the ordinary recovery searcher, demoting each to low priority.
func (o *OptimizedSplittedSearcher) Update(current state.ExecutionState, added, removed []state.ExecutionState) {
	origAdded, recAdded := partitionByKind(added)
	origRemoved, recRemoved := partitionByKind(removed)
	highAdded, lowAdded := partitionRecoveryByPriority(recAdded)
	highRemoved, lowRemoved := partitionRecoveryByPriority(recRemoved)

	o.base.Update(currentFor(current, false), origAdded, origRemoved)
	o.high.Update(nil, highAdded, highRemoved)
	o.recovery.Update(currentFor(current, true), lowAdded, lowRemoved)

	for _, r := range removed {
		if r.IsRecoveryState() && r.IsResumed() && r.Level() == 0 {
			o.flushHighToLow()
			break
		}
	}
}

// flushHighToLow drains every state out of the high-priority searcher,
// demotes it to low priority, and reinserts it into the ordinary recovery
// searcher.
func (o *OptimizedSplittedSearcher) flushHighToLow() {
	for !o.high.Empty() {
		s := o.high.Select()
		RemoveState(o.high, s)
		s.SetPriority(state.PriorityLow)
		AddState(o.recovery, s)
	}
}

// Select consults the high-priority searcher first; if it is empty,
// Select behaves exactly like SplittedSearcher over base and recovery.
func (o *OptimizedSplittedSearcher) Select() state.ExecutionState {
	if !o.high.Empty() {
		return o.high.Select()
	}
	switch {
	case o.base.Empty():
		return o.recovery.Select()
	case o.recovery.Empty():
		return o.base.Select()
	case o.rng.Float64() < float64(o.ratio)/100:
		return o.recovery.Select()
	default:
		return o.base.Select()
	}
}

// Empty reports whether all three inner searchers are empty.
func (o *OptimizedSplittedSearcher) Empty() bool {
	return o.base.Empty() && o.recovery.Empty() && o.high.Empty()
}

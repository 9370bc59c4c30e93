// Package search implements the state-selection subsystem: the family of
// pluggable strategies a symbolic execution engine uses to choose which
// live state to advance next. Every concrete searcher in this package
// satisfies the Searcher interface; composite searchers own one or more
// inner Searchers and delegate to them.
package search

import "github.com/corevm/xsearch/state"

// Searcher is the polymorphic contract every concrete search strategy
// implements. The engine calls Update after each step with the set of
// states that were added and removed, then calls Select to obtain the next
// state to advance.
type Searcher interface {
	// Select returns a state to advance next. The caller must not invoke
	// Select when Empty reports true. The returned state is guaranteed to
	// have been added to this searcher and not yet removed, but repeated
	// calls to Select are not required to return the same state absent an
	// intervening Update (BatchingSearcher is the deliberate exception).
	Select() state.ExecutionState

	// Update informs the searcher that current was the state most recently
	// advanced (nil if no step was taken), that the states in added are
	// newly live, and that the states in removed are no longer live.
	// added and removed are disjoint. Searchers that maintain derived
	// views of the engine's live-state set must apply removed before or
	// together with added so that a state appearing in both a prior
	// removed set and a later added set is never silently dropped.
	Update(current state.ExecutionState, added, removed []state.ExecutionState)

	// Empty reports whether this searcher currently tracks zero states.
	Empty() bool
}

// AddState is equivalent to Update(nil, []state.ExecutionState{s}, nil),
// provided as a convenience for callers adding one state at a time.
func AddState(s Searcher, st state.ExecutionState) {
	s.Update(nil, []state.ExecutionState{st}, nil)
}

// RemoveState is equivalent to Update(nil, nil,
// []state.ExecutionState{s}), provided as a convenience for callers
// removing one state at a time.
func RemoveState(s Searcher, st state.ExecutionState) {
	s.Update(nil, nil, []state.ExecutionState{st})
}

// nonTerminating is implemented by searchers whose RemoveState does not
// stop Select from returning the removed state (RandomPath's RemoveState
// is a no-op, and RandomRecoveryPath's tree walk reads the engine's
// process tree rather than its own flat list). MergingSearcher refuses to wrap one of these
// directly: the drain loop in MergingSearcher.Select never observes the
// base searcher going empty once a state it already returned is parked,
// because the base never "forgets" a state it was never asked to forget.
type nonTerminating interface {
	removalIsNoOp()
}

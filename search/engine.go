package search

import (
	"github.com/corevm/xsearch/ptree"
	"github.com/corevm/xsearch/state"
)

// EngineView is the narrow, read-only window a Searcher has into the
// hosting engine. RandomPath and RandomRecoveryPath read the process tree
// through it; BumpMergingSearcher and MergingSearcher use TerminateState to
// drop a successfully-merged state.
type EngineView interface {
	// LiveStates returns every state currently live in the engine. Used
	// only by RandomPath to answer Empty without duplicating the engine's
	// bookkeeping.
	LiveStates() []state.ExecutionState

	// ProcessTreeRoot returns the root of the engine's process tree. The
	// returned tree must not be mutated by the caller and must not be
	// retained past the end of the current Select call, since the engine
	// may restructure it at the next step.
	ProcessTreeRoot() *ptree.Node

	// TerminateState asks the engine to tear s down. A merging searcher
	// that calls this must also issue matching add/remove bookkeeping to
	// its base searcher so the base's view stays coherent with the
	// engine's final live set.
	TerminateState(s state.ExecutionState)

	// MergeFunctionSymbol returns the instruction identifying the
	// designated merge function, and false if none is configured (in
	// which case no merge points exist and the merging searchers are
	// inert pass-throughs).
	MergeFunctionSymbol() (id int, ok bool)
}

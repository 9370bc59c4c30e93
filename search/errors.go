package search

import "errors"

// ErrUnknownWeightMode is returned by NewWeightedRandom when constructed
// with a Mode value outside the enumerated set. This is a configuration
// error: it is detected at construction time and never surfaces mid-run.
var ErrUnknownWeightMode = errors.New("search: unknown weighted-random mode")

// ErrUnboundedDrain is returned by NewMergingSearcher when the supplied
// base searcher is one whose Select can keep returning a removed state
// (RandomPath, RandomRecoveryPath) and no WithMaxDrain option was given. Composing
// MergingSearcher directly over such a base can loop in Select forever,
// since the base never reports itself empty once a state it returned has
// been parked elsewhere. Pass WithMaxDrain to accept a bounded drain
// instead of refusing the composition outright.
var ErrUnboundedDrain = errors.New("search: merging searcher over a non-removing base needs WithMaxDrain")

// InvariantViolation is panicked when the engine and a searcher's internal
// bookkeeping have desynchronized: Select called while Empty, or a state
// removed that was never tracked. These indicate the engine and searcher
// have gone irrecoverably out of sync, so they are not modeled as
// returned errors.
type InvariantViolation struct {
	Msg string
}

// Error implements the error interface so InvariantViolation can be
// inspected with errors.As after a recovered panic, e.g. in tests.
func (e InvariantViolation) Error() string {
	return "search: invariant violation: " + e.Msg
}

func violate(msg string) {
	panic(InvariantViolation{Msg: msg})
}

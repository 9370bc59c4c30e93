package search

import (
	"time"

	"github.com/corevm/xsearch/clock"
	"github.com/corevm/xsearch/stats"
	"github.com/corevm/xsearch/state"
)

// BatchingSearcher wraps a base searcher and sticks with the last state it
// selected for a time/instruction budget window, amortizing the cost of an
// expensive base (typically a WeightedRandomSearcher reweighing against a
// slow solver) across many engine steps.
type BatchingSearcher struct {
	base    Searcher
	tracker stats.Tracker
	clock   clock.Clock

	timeBudget time.Duration
	instBudget uint32

	cached         state.ExecutionState
	lastStartTime  float64
	lastStartInsts uint64

	metrics *searcherMetricsSink
}

// NewBatching wraps base, caching its selections for the budgets set by
// WithBatchBudget (zero-value budgets mean every call is a cache miss).
func NewBatching(base Searcher, tracker stats.Tracker, c clock.Clock, opts ...Option) *BatchingSearcher {
	cfg := applyOptions(opts)
	return &BatchingSearcher{
		base:       base,
		tracker:    tracker,
		clock:      c,
		timeBudget: cfg.timeBudget,
		instBudget: cfg.instBudget,
		metrics:    cfg.sink("batching"),
	}
}

// Select returns the cached state unless it is unset or its budget window
// has expired, in which case it draws a fresh state from the base and
// resnapshots the window. An observed time overshoot of more than 10% of
// the configured budget self-tunes the budget up to the observed delta,
// compensating for a budget that turned out too tight for a slow solver
// call that ran inside the window.
func (b *BatchingSearcher) Select() state.ExecutionState {
	now := b.clock.WallTime()
	if b.cached != nil {
		elapsed := time.Duration((now - b.lastStartTime) * float64(time.Second))
		instsDelta := b.tracker.Instructions() - b.lastStartInsts
		if elapsed < b.timeBudget && uint32(instsDelta) < b.instBudget {
			b.metrics.incBatchHit()
			return b.cached
		}
		if b.timeBudget > 0 && elapsed > b.timeBudget+b.timeBudget/10 {
			b.timeBudget = elapsed
		}
	}

	b.metrics.incBatchMiss()
	b.cached = b.base.Select()
	b.lastStartTime = now
	b.lastStartInsts = b.tracker.Instructions()
	return b.cached
}

// Update invalidates the cache if the cached state is among removed, then
// forwards current, added, and removed to the base unchanged.
func (b *BatchingSearcher) Update(current state.ExecutionState, added, removed []state.ExecutionState) {
	if b.cached != nil && contains(removed, b.cached) {
		b.cached = nil
	}
	b.base.Update(current, added, removed)
}

// Empty reports whether the base searcher is empty.
func (b *BatchingSearcher) Empty() bool {
	return b.base.Empty()
}

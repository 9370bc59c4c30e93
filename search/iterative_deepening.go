package search

import (
	"time"

	"github.com/corevm/xsearch/clock"
	"github.com/corevm/xsearch/state"
)

// IterativeDeepeningTimeSearcher wraps a base searcher and gives every
// state a per-round time budget to make progress. A state that overruns
// its round is pulled out of circulation and parked; when the base
// searcher runs dry, every paused state is reinjected and the round
// budget doubles, so slow-to-converge states eventually get a longer
// shot without ever starving fast ones in earlier rounds.
type IterativeDeepeningTimeSearcher struct {
	base  Searcher
	clock clock.Clock

	budget    time.Duration
	paused    map[state.ExecutionState]struct{}
	lastStart float64

	metrics *searcherMetricsSink
}

const defaultInitialTimeBudget = time.Second

// NewIterativeDeepeningTime wraps base, starting the per-round time budget
// at 1 second unless overridden with WithInitialTimeBudget.
func NewIterativeDeepeningTime(base Searcher, c clock.Clock, opts ...Option) *IterativeDeepeningTimeSearcher {
	cfg := applyOptions(opts)
	budget := cfg.initialTime
	if budget <= 0 {
		budget = defaultInitialTimeBudget
	}
	return &IterativeDeepeningTimeSearcher{
		base:    base,
		clock:   c,
		budget:  budget,
		paused:  make(map[state.ExecutionState]struct{}),
		metrics: cfg.sink("iterative_deepening"),
	}
}

// Select snapshots the current time as the round's start and delegates to
// the base searcher.
func (d *IterativeDeepeningTimeSearcher) Select() state.ExecutionState {
	d.lastStart = d.clock.WallTime()
	return d.base.Select()
}

// Update forwards added and every removed state that isn't already
// paused, pauses current if it overran this round's budget, and — once
// the base searcher runs dry — doubles the budget and bulk-reinjects
// every paused state.
func (d *IterativeDeepeningTimeSearcher) Update(current state.ExecutionState, added, removed []state.ExecutionState) {
	var forward []state.ExecutionState
	removedCurrent := false
	for _, r := range removed {
		if r == current {
			removedCurrent = true
		}
		if _, isPaused := d.paused[r]; isPaused {
			delete(d.paused, r)
		} else {
			forward = append(forward, r)
		}
	}

	d.base.Update(current, added, forward)

	elapsed := time.Duration((d.clock.WallTime() - d.lastStart) * float64(time.Second))
	if current != nil && !removedCurrent && elapsed > d.budget {
		RemoveState(d.base, current)
		d.paused[current] = struct{}{}
	}

	if d.base.Empty() && len(d.paused) > 0 {
		d.budget *= 2
		d.metrics.incBudgetDoubling()
		for s := range d.paused {
			AddState(d.base, s)
			delete(d.paused, s)
		}
	}
}

// Empty reports whether both the base searcher and the paused set are
// empty.
func (d *IterativeDeepeningTimeSearcher) Empty() bool {
	return d.base.Empty() && len(d.paused) == 0
}

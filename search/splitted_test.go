package search

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corevm/xsearch/rng"
	"github.com/corevm/xsearch/state"
)

func TestOptimizedSplittedPrefersHighPriorityThenFlushesOnRootCompletion(t *testing.T) {
	base := NewDFS()
	recovery := NewDFS()
	high := NewDFS()
	src := rng.New(rand.New(rand.NewSource(1)))
	o := NewOptimizedSplitted(base, recovery, high, src)

	rh := newFakeState("R_H")
	rh.recoveryState = true
	rh.priority = state.PriorityHigh
	rh.level = 0

	rl := newFakeState("R_L")
	rl.recoveryState = true
	rl.priority = state.PriorityLow

	orig := newFakeState("O")

	o.Update(nil, []state.ExecutionState{rh, rl, orig}, nil)

	require.Equal(t, state.ExecutionState(rh), o.Select(), "Select with a high-priority recovery state present should return it")

	rh.resumed = true
	o.Update(nil, nil, []state.ExecutionState{rh})

	// root is a separate, already-tracked low-priority recovery state.
	// Add a second high-priority state alongside it, then remove root as
	// a resumed level-0 completion and confirm the flush drains rh2 into
	// the regular recovery searcher, demoted to low priority.
	root := newFakeState("ROOT")
	root.recoveryState = true
	root.level = 0

	rh2 := newFakeState("R_H2")
	rh2.recoveryState = true
	rh2.priority = state.PriorityHigh
	rh2.level = 1

	o.Update(nil, []state.ExecutionState{root, rh2}, nil)

	root.resumed = true
	o.Update(nil, nil, []state.ExecutionState{root})

	require.True(t, high.Empty(), "high-priority searcher should be empty after a root recovery state completes")
	require.Equal(t, state.PriorityLow, rh2.Priority(), "flushed state should have been demoted to low priority")
}

func TestSplittedRoutesByKind(t *testing.T) {
	base := NewDFS()
	recovery := NewDFS()
	src := rng.New(rand.New(rand.NewSource(2)))
	s := NewSplitted(base, recovery, src)

	orig := newFakeState("O")
	rec := newFakeState("R")
	rec.recoveryState = true

	s.Update(nil, []state.ExecutionState{orig, rec}, nil)

	require.False(t, base.Empty(), "the originating addition must reach base")
	require.False(t, recovery.Empty(), "the recovery addition must reach the recovery searcher")
	require.Equal(t, state.ExecutionState(orig), base.Select(), "base must only ever see the originating state")
	require.Equal(t, state.ExecutionState(rec), recovery.Select(), "the recovery searcher must only ever see the recovery state")
}

func TestSplittedSelectFallsBackWhenOneSideEmpty(t *testing.T) {
	base := NewDFS()
	recovery := NewDFS()
	src := rng.New(rand.New(rand.NewSource(3)))
	s := NewSplitted(base, recovery, src, WithRatio(100))

	orig := newFakeState("O")
	AddState(base, orig)

	require.Equal(t, state.ExecutionState(orig), s.Select(), "Select with recovery empty should return O despite ratio=100")
}

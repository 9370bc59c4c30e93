package search

import (
	"testing"

	"github.com/corevm/xsearch/state"
)

func TestMergingSearcherDrainsAndMergesGroup(t *testing.T) {
	base := NewDFS()
	engine := &fakeEngine{mergeSymbol: testMergeSymbol, hasMerge: true}
	m, err := NewMergingSearcher(base, engine)
	if err != nil {
		t.Fatal(err)
	}

	s1 := newFakeState("S1")
	s1.pcID = testMergeSymbol
	s1.mergeSucceeds = true
	s2 := newFakeState("S2")
	s2.pcID = testMergeSymbol
	s2.mergeSucceeds = true

	AddState(base, s1)
	AddState(base, s2)

	// Both states sit at the merge point, so the base fully drains before
	// any merge pass runs. The parked set is unordered, so either state may
	// be picked as the group's base and absorb the other; the survivor is
	// handed back by the recursive Select once it's returned to the (now
	// non-empty) base.
	got := m.Select()
	var survivor, absorbed *fakeState
	switch got {
	case state.ExecutionState(s1):
		survivor, absorbed = s1, s2
	case state.ExecutionState(s2):
		survivor, absorbed = s2, s1
	default:
		t.Fatalf("Select after merging the drained group = %v, want the survivor S1 or S2", got)
	}
	if len(engine.terminated) != 1 || engine.terminated[0] != absorbed {
		t.Fatalf("expected %v to be terminated by the merge, terminated=%v", absorbed, engine.terminated)
	}
	if len(survivor.mergedWith) != 1 || survivor.mergedWith[0] != absorbed {
		t.Fatalf("%v should have absorbed %v", survivor, absorbed)
	}
}

func TestMergingSearcherPassesThroughNonMergeStates(t *testing.T) {
	base := NewDFS()
	engine := &fakeEngine{mergeSymbol: testMergeSymbol, hasMerge: true}
	m, err := NewMergingSearcher(base, engine)
	if err != nil {
		t.Fatal(err)
	}

	ordinary := newFakeState("O")
	ordinary.pcID = 1
	AddState(base, ordinary)

	if got := m.Select(); got != ordinary {
		t.Fatalf("Select for a state not at the merge point = %v, want it returned unchanged", got)
	}
}

func TestMergingSearcherRejectsNonTerminatingBaseWithoutMaxDrain(t *testing.T) {
	engine := &fakeEngine{}
	rp := NewRandomPath(engine, nil)
	if _, err := NewMergingSearcher(rp, engine); err != ErrUnboundedDrain {
		t.Fatalf("err = %v, want ErrUnboundedDrain", err)
	}
}

func TestMergingSearcherAcceptsNonTerminatingBaseWithMaxDrain(t *testing.T) {
	engine := &fakeEngine{}
	rp := NewRandomPath(engine, nil)
	if _, err := NewMergingSearcher(rp, engine, WithMaxDrain(10)); err != nil {
		t.Fatalf("err = %v, want nil once WithMaxDrain is supplied", err)
	}
}

func TestMergingSearcherUpdateDropsParkedFromForwardedRemoval(t *testing.T) {
	base := NewDFS()
	engine := &fakeEngine{mergeSymbol: testMergeSymbol, hasMerge: true}
	m, err := NewMergingSearcher(base, engine)
	if err != nil {
		t.Fatal(err)
	}

	parked := newFakeState("P")
	parked.pcID = testMergeSymbol
	AddState(base, parked)
	_ = m // parked directly via base for this bookkeeping-only check

	m.parked[parked] = struct{}{}
	RemoveState(base, parked)
	m.Update(nil, nil, []state.ExecutionState{parked})
	if _, stillParked := m.parked[parked]; stillParked {
		t.Fatal("Update should have dropped the parked state from the parked set")
	}
}

package search

import (
	"testing"

	"github.com/corevm/xsearch/state"
)

func TestInterleavedRoundRobinsAcrossSubSearchers(t *testing.T) {
	a, b, c := NewDFS(), NewDFS(), NewDFS()
	sa, sb, sc := newFakeState("A"), newFakeState("B"), newFakeState("C")
	AddState(a, sa)
	AddState(b, sb)
	AddState(c, sc)

	in := NewInterleaved(a, b, c)

	got := []string{}
	for i := 0; i < 6; i++ {
		got = append(got, in.Select().(*fakeState).name)
	}
	want := []string{"B", "A", "C", "B", "A", "C"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("selection %d = %v, want %v (full sequence %v)", i, got[i], want[i], got)
		}
	}
}

func TestInterleavedUpdateBroadcasts(t *testing.T) {
	a, b := NewDFS(), NewDFS()
	in := NewInterleaved(a, b)
	if !in.Empty() {
		t.Fatal("fresh interleaved searcher over empty sub-searchers should be empty")
	}

	s := newFakeState("X")
	in.Update(nil, []state.ExecutionState{s}, nil)
	if a.Empty() || b.Empty() {
		t.Fatal("Update should broadcast added to every sub-searcher")
	}

	in.Update(nil, nil, []state.ExecutionState{s})
	if !in.Empty() {
		t.Fatal("Update should broadcast removed to every sub-searcher")
	}
}

func TestNewInterleavedPanicsOnEmpty(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected NewInterleaved() with no sub-searchers to panic")
		}
	}()
	NewInterleaved()
}

package search

import (
	"testing"

	"github.com/corevm/xsearch/state"
)

func TestBFSFIFOOrderWithRotation(t *testing.T) {
	b := NewBFS()
	a, bb := newFakeState("A"), newFakeState("B")
	AddState(b, a)
	AddState(b, bb)

	if got := b.Select(); got != a {
		t.Fatalf("Select after adding A,B = %v, want A", got)
	}

	x, y := newFakeState("X"), newFakeState("Y")
	b.Update(a, []state.ExecutionState{x, y}, nil)

	if got := b.Select(); got != bb {
		t.Fatalf("Select after rotating A to tail = %v, want B", got)
	}
	RemoveState(b, bb)
	if got := b.Select(); got != a {
		t.Fatalf("Select after removing B = %v, want A (rotated to the tail ahead of X and Y)", got)
	}
}

func TestBFSRotationNoOpWhenCurrentUntracked(t *testing.T) {
	b := NewBFS()
	other := newFakeState("OTHER")
	a := newFakeState("A")
	AddState(b, a)

	// current belongs to a sibling searcher in a composite and is not
	// tracked here; rotation must silently no-op rather than panic.
	b.Update(other, []state.ExecutionState{newFakeState("B")}, nil)
	if got := b.Select(); got != a {
		t.Fatalf("Select = %v, want A (untracked current must not disturb order)", got)
	}
}

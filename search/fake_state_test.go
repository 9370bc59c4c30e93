package search

import "github.com/corevm/xsearch/state"

// fakeFrame is a minimal state.Frame for tests that don't exercise the
// call-path weight modes.
type fakeFrame struct {
	cps              state.CallPathStatistics
	minDistOnReturn  int
}

func (f fakeFrame) CallPathStatistics() state.CallPathStatistics { return f.cps }
func (f fakeFrame) MinDistToUncoveredOnReturn() int              { return f.minDistOnReturn }

type fakeCallPathStats struct{ n int }

func (f fakeCallPathStats) InstructionCount() int { return f.n }

// fakeState is a hand-rolled state.ExecutionState double. Tests construct
// one per logical state and mutate its fields directly rather
// than going through setters, since every test in this package owns its
// fakes exclusively and runs single-threaded.
type fakeState struct {
	name string

	pcID   int
	stack  []state.Frame
	weight float64

	queryCost        float64
	instsSinceCovNew int
	ptreeNode        any

	recoveryState    bool
	suspended        bool
	recoverTo        state.ExecutionState
	priority         state.Priority
	level            int
	resumed          bool

	mergeSucceeds bool
	mergedWith    []state.ExecutionState
}

func newFakeState(name string) *fakeState {
	return &fakeState{
		name:  name,
		stack: []state.Frame{fakeFrame{cps: fakeCallPathStats{n: 1}, minDistOnReturn: 1}},
	}
}

func (f *fakeState) PC() *state.Instruction {
	return &state.Instruction{Info: state.InstructionInfo{ID: f.pcID}}
}
func (f *fakeState) Stack() []state.Frame       { return f.stack }
func (f *fakeState) Weight() float64            { return f.weight }
func (f *fakeState) QueryCost() float64         { return f.queryCost }
func (f *fakeState) InstsSinceCovNew() int      { return f.instsSinceCovNew }
func (f *fakeState) PTreeNode() any             { return f.ptreeNode }
func (f *fakeState) IsRecoveryState() bool      { return f.recoveryState }
func (f *fakeState) IsSuspended() bool          { return f.suspended }
func (f *fakeState) RecoveryState() state.ExecutionState { return f.recoverTo }
func (f *fakeState) Priority() state.Priority   { return f.priority }
func (f *fakeState) SetPriority(p state.Priority) { f.priority = p }
func (f *fakeState) Level() int                 { return f.level }
func (f *fakeState) IsResumed() bool            { return f.resumed }

func (f *fakeState) Merge(other state.ExecutionState) bool {
	if !f.mergeSucceeds {
		return false
	}
	f.mergedWith = append(f.mergedWith, other)
	return true
}

func (f *fakeState) AdvancePastMergeCall() {
	f.pcID = -1
}

func (f *fakeState) String() string { return f.name }

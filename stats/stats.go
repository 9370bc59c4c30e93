// Package stats declares the read-only statistics and coverage-distance
// collaborators the weight oracles in package search consume. Both the
// global instruction counter and the per-instruction metric table are
// owned and updated by the hosting engine; the search subsystem only ever
// reads them.
package stats

// Tracker exposes the process-wide counters the InstCount weight mode and
// BatchingSearcher's instruction budget need.
type Tracker interface {
	// Instructions is the monotone count of instructions the engine has
	// executed across all states since startup.
	Instructions() uint64
	// IndexedValue returns the named metric's value at the given dense
	// instruction id, e.g. the global visit count used by InstCount.
	IndexedValue(metric string, instructionID int) uint64
}

// Metric names understood by the default Tracker implementations shipped
// alongside a hosting engine; the search subsystem treats these as opaque
// strings and never branches on them itself.
const (
	MetricVisitCount = "visit-count"
)

// DistanceOracle answers "how far is this program point from interesting
// code" queries used by the MinDistToUncovered, CoveringNew, and
// PatchTesting weight modes. pc is the instruction at the query point;
// returnDistance is the cached distance recorded at the top stack frame's
// return site, used as a fallback when the instruction itself has no
// direct distance recorded.
type DistanceOracle interface {
	// DistanceToUncovered returns the shortest remaining instruction count
	// to a line of code this state has not yet covered.
	DistanceToUncovered(pc *Point, returnDistance int) int
	// DistanceToCall returns the shortest remaining instruction count to
	// the configured patch-testing target call.
	DistanceToCall(pc *Point, returnDistance int) int
}

// Point is the minimal addressable program location the distance oracles
// key on: the dense instruction id assigned to a KInstruction.
type Point struct {
	InstructionID int
}

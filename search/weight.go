package search

import (
	"github.com/corevm/xsearch/state"
	"github.com/corevm/xsearch/stats"
)

// WeightMode selects which weight function WeightedRandomSearcher draws
// from. Depth caches its weight at insertion time; every other mode is
// recomputed on each state's Update.
type WeightMode int

const (
	// ModeDepth uses the state's own cached heuristic seed.
	ModeDepth WeightMode = iota
	// ModeInstCount favors states sitting on rarely-visited instructions.
	ModeInstCount
	// ModeCPInstCount favors states with a short call-path instruction
	// count.
	ModeCPInstCount
	// ModeQueryCost favors states that have made cheap solver queries.
	ModeQueryCost
	// ModeMinDistToUncovered favors states close to uncovered code.
	ModeMinDistToUncovered
	// ModeCoveringNew adds a term rewarding recent new-coverage hits to
	// ModeMinDistToUncovered.
	ModeCoveringNew
	// ModePatchTesting is ModeCoveringNew with a call-distance oracle
	// substituted for the uncovered-code distance oracle.
	ModePatchTesting
)

// updatesWeights reports whether this mode must be recomputed whenever its
// state advances, as opposed to Depth, whose weight is fixed at insertion.
func (m WeightMode) updatesWeights() bool {
	return m != ModeDepth
}

// weightFunc computes one state's sampling weight. All weightFuncs must
// return a strictly positive value; the discretePDF clamps non-positive
// results to a small epsilon as a last line of defense, but a correct
// implementation never relies on that clamp.
type weightFunc func(s state.ExecutionState, tracker stats.Tracker, oracle stats.DistanceOracle) float64

func weightDepth(s state.ExecutionState, _ stats.Tracker, _ stats.DistanceOracle) float64 {
	return s.Weight()
}

func weightInstCount(s state.ExecutionState, tracker stats.Tracker, _ stats.DistanceOracle) float64 {
	hits := tracker.IndexedValue(stats.MetricVisitCount, s.PC().Info.ID)
	n := float64(maxUint64(hits, 1))
	return 1.0 / (n * n)
}

func weightCPInstCount(s state.ExecutionState, _ stats.Tracker, _ stats.DistanceOracle) float64 {
	top := s.Stack()[0]
	n := maxInt(top.CallPathStatistics().InstructionCount(), 1)
	return 1.0 / float64(n)
}

func weightQueryCost(s state.ExecutionState, _ stats.Tracker, _ stats.DistanceOracle) float64 {
	cost := s.QueryCost()
	if cost < 0.1 {
		return 1.0
	}
	return 1.0 / cost
}

// minDistToUncoveredTerm is shared between ModeMinDistToUncovered and
// ModeCoveringNew.
func minDistToUncoveredTerm(s state.ExecutionState, oracle stats.DistanceOracle) float64 {
	top := s.Stack()[0]
	point := &stats.Point{InstructionID: s.PC().Info.ID}
	d := oracle.DistanceToUncovered(point, top.MinDistToUncoveredOnReturn())
	if d == 0 {
		d = 10000
	}
	return 1.0 / float64(d*d)
}

func weightMinDistToUncovered(s state.ExecutionState, _ stats.Tracker, oracle stats.DistanceOracle) float64 {
	return minDistToUncoveredTerm(s, oracle)
}

func weightCoveringNew(s state.ExecutionState, _ stats.Tracker, oracle stats.DistanceOracle) float64 {
	w := minDistToUncoveredTerm(s, oracle)
	if since := s.InstsSinceCovNew(); since > 0 {
		denom := maxInt(since-1000, 1)
		w += 1.0 / float64(denom*denom)
	}
	return w
}

func weightPatchTesting(s state.ExecutionState, _ stats.Tracker, oracle stats.DistanceOracle) float64 {
	top := s.Stack()[0]
	point := &stats.Point{InstructionID: s.PC().Info.ID}
	d := oracle.DistanceToCall(point, top.MinDistToUncoveredOnReturn())
	if d == 0 {
		d = 10000
	}
	w := 1.0 / float64(d*d)
	if since := s.InstsSinceCovNew(); since > 0 {
		denom := maxInt(since-1000, 1)
		w += 1.0 / float64(denom*denom)
	}
	return w
}

var weightFuncsByMode = map[WeightMode]weightFunc{
	ModeDepth:              weightDepth,
	ModeInstCount:          weightInstCount,
	ModeCPInstCount:        weightCPInstCount,
	ModeQueryCost:          weightQueryCost,
	ModeMinDistToUncovered: weightMinDistToUncovered,
	ModeCoveringNew:        weightCoveringNew,
	ModePatchTesting:       weightPatchTesting,
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func maxUint64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}

package search

import (
	"github.com/corevm/xsearch/rng"
	"github.com/corevm/xsearch/state"
	"github.com/corevm/xsearch/stats"
)

// WeightedRandomSearcher draws a state with probability proportional to a
// per-state weight computed by one of the modes enumerated by WeightMode.
// The Depth mode caches its weight once at insertion time; every other
// mode is recomputed each time its state is reported as the Update's
// current.
type WeightedRandomSearcher struct {
	mode    WeightMode
	weigh   weightFunc
	tracker stats.Tracker
	oracle  stats.DistanceOracle
	pdf     *discretePDF
	rng     *rng.Source
	metrics *searcherMetricsSink
}

// NewWeightedRandom constructs a WeightedRandomSearcher for mode, drawing
// randomness from r and weight inputs from tracker and oracle. Returns
// ErrUnknownWeightMode if mode is not one of the enumerated WeightMode
// values — a configuration error, detected here at construction time
// rather than surfacing on the first Select.
func NewWeightedRandom(mode WeightMode, tracker stats.Tracker, oracle stats.DistanceOracle, r *rng.Source, opts ...Option) (*WeightedRandomSearcher, error) {
	fn, ok := weightFuncsByMode[mode]
	if !ok {
		return nil, ErrUnknownWeightMode
	}
	w := &WeightedRandomSearcher{
		mode:    mode,
		weigh:   fn,
		tracker: tracker,
		oracle:  oracle,
		pdf:     newDiscretePDF(),
		rng:     r,
	}
	cfg := applyOptions(opts)
	w.metrics = cfg.sink("weighted_random")
	return w, nil
}

// Select draws one state from the PDF with probability proportional to its
// current weight.
func (w *WeightedRandomSearcher) Select() state.ExecutionState {
	if w.pdf.empty() {
		violate("WeightedRandomSearcher.Select called on an empty searcher")
	}
	return w.pdf.choose(w.rng.Float64())
}

// Update reweighs current (unless it was just removed) when the mode
// requires live recomputation, then applies added and removed to the PDF.
func (w *WeightedRandomSearcher) Update(current state.ExecutionState, added, removed []state.ExecutionState) {
	if w.mode.updatesWeights() && current != nil && !contains(removed, current) {
		if _, tracked := w.pdf.pos[current]; tracked {
			w.pdf.update(current, w.weigh(current, w.tracker, w.oracle))
		}
	}
	for _, s := range added {
		w.pdf.insert(s, w.weigh(s, w.tracker, w.oracle))
	}
	for _, s := range removed {
		w.pdf.remove(s)
	}
	w.metrics.setPDFSize(w.pdf.size())
}

// Empty reports whether the PDF has no tracked states.
func (w *WeightedRandomSearcher) Empty() bool {
	return w.pdf.empty()
}

// Package metrics provides Prometheus-compatible instrumentation for the
// search subsystem, built on the standard promauto registration pattern.
// All series are namespaced "xsearch_" and carry no per-state labels,
// since a search run can track many thousands of states and per-state
// cardinality would overwhelm a Prometheus backend.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles every series this module emits. Construct one with New
// and pass it to the searcher constructors that accept a *Metrics option;
// a nil *Metrics is valid everywhere and simply disables instrumentation.
type Metrics struct {
	TrackedStates   prometheus.Gauge
	ParkedStates    *prometheus.GaugeVec
	PDFSize         prometheus.Gauge
	BatchHits       prometheus.Counter
	BatchMisses     prometheus.Counter
	BudgetDoublings prometheus.Counter
	MergeOutcomes   *prometheus.CounterVec
}

// New registers and returns a Metrics bundle against reg. Pass
// prometheus.NewRegistry() for an isolated registry (recommended for
// tests), or prometheus.DefaultRegisterer to expose these alongside the
// hosting process's other metrics.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		TrackedStates: factory.NewGauge(prometheus.GaugeOpts{
			Name: "xsearch_tracked_states",
			Help: "Number of states currently tracked by the top-level searcher.",
		}),
		ParkedStates: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "xsearch_parked_states",
			Help: "Number of states parked out of the base searcher's view, by parking searcher.",
		}, []string{"searcher"}),
		PDFSize: factory.NewGauge(prometheus.GaugeOpts{
			Name: "xsearch_weighted_pdf_size",
			Help: "Number of entries in WeightedRandomSearcher's discrete PDF.",
		}),
		BatchHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "xsearch_batch_hits_total",
			Help: "Select calls served from BatchingSearcher's cached state.",
		}),
		BatchMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "xsearch_batch_misses_total",
			Help: "Select calls that invalidated BatchingSearcher's cache and drew a fresh state.",
		}),
		BudgetDoublings: factory.NewCounter(prometheus.CounterOpts{
			Name: "xsearch_iterative_deepening_doublings_total",
			Help: "Times IterativeDeepeningTimeSearcher doubled its round time budget.",
		}),
		MergeOutcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "xsearch_merge_outcomes_total",
			Help: "Merge attempts by outcome (parked, merged, bumped).",
		}, []string{"outcome"}),
	}
}

// SetParked records searcher's current parked-state count.
func (m *Metrics) SetParked(searcher string, n int) {
	if m == nil {
		return
	}
	m.ParkedStates.WithLabelValues(searcher).Set(float64(n))
}

// SetTrackedStates records the top-level searcher's tracked-state count.
func (m *Metrics) SetTrackedStates(n int) {
	if m == nil {
		return
	}
	m.TrackedStates.Set(float64(n))
}

// SetPDFSize records a WeightedRandomSearcher's current PDF entry count.
func (m *Metrics) SetPDFSize(n int) {
	if m == nil {
		return
	}
	m.PDFSize.Set(float64(n))
}

// IncBatchHit records a Select call served from BatchingSearcher's cache.
func (m *Metrics) IncBatchHit() {
	if m == nil {
		return
	}
	m.BatchHits.Inc()
}

// IncBatchMiss records a Select call that drew a fresh state.
func (m *Metrics) IncBatchMiss() {
	if m == nil {
		return
	}
	m.BatchMisses.Inc()
}

// IncBudgetDoubling records an IterativeDeepeningTimeSearcher round-budget
// doubling.
func (m *Metrics) IncBudgetDoubling() {
	if m == nil {
		return
	}
	m.BudgetDoublings.Inc()
}

// IncMergeOutcome records a merge attempt outcome ("parked", "merged", or
// "bumped").
func (m *Metrics) IncMergeOutcome(outcome string) {
	if m == nil {
		return
	}
	m.MergeOutcomes.WithLabelValues(outcome).Inc()
}

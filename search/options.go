package search

import (
	"time"

	"github.com/corevm/xsearch/emit"
	"github.com/corevm/xsearch/metrics"
)

// Option configures a searcher constructor. Options are chainable and
// self-documenting: every constructor in this package that accepts
// ...Option only reads the fields relevant to it, so options that don't apply
// to a given searcher are silently ignored rather than erroring.
type Option func(*config)

type config struct {
	metrics     *metrics.Metrics
	emitter     emit.Emitter
	maxDrain    int
	ratio       int
	timeBudget  time.Duration
	instBudget  uint32
	initialTime time.Duration
}

func applyOptions(opts []Option) *config {
	cfg := &config{
		emitter: emit.NewNull(),
		ratio:   50,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithMetrics attaches a Prometheus metrics bundle. Passing nil (the
// default) disables instrumentation.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *config) { c.metrics = m }
}

// WithEmitter attaches the Emitter BumpMergingSearcher and MergingSearcher
// use for structured merge-point logging — the debug-log-merge channel.
// The default is emit.NewNull(), which discards everything.
func WithEmitter(e emit.Emitter) Option {
	return func(c *config) {
		if e != nil {
			c.emitter = e
		}
	}
}

// WithMaxDrain bounds MergingSearcher's drain loop at n selections from the
// base searcher before forcing a merge pass, resolving the composition
// hazard documented on NewMergingSearcher for bases whose RemoveState is a
// no-op.
func WithMaxDrain(n int) Option {
	return func(c *config) { c.maxDrain = n }
}

// WithRatio sets SplittedSearcher and OptimizedSplittedSearcher's
// recovery-selection probability, as an integer percentage in [0, 100].
// The default is 50.
func WithRatio(percent int) Option {
	return func(c *config) {
		if percent < 0 {
			percent = 0
		}
		if percent > 100 {
			percent = 100
		}
		c.ratio = percent
	}
}

// WithBatchBudget sets BatchingSearcher's time and instruction budgets.
func WithBatchBudget(timeBudget time.Duration, instBudget uint32) Option {
	return func(c *config) {
		c.timeBudget = timeBudget
		c.instBudget = instBudget
	}
}

// WithInitialTimeBudget overrides IterativeDeepeningTimeSearcher's starting
// per-round time budget. The default is 1 second.
func WithInitialTimeBudget(d time.Duration) Option {
	return func(c *config) { c.initialTime = d }
}

// searcherMetricsSink narrows a shared *metrics.Metrics down to the calls a
// single searcher instance needs, tagging parked-state updates with this
// searcher's name. A nil underlying Metrics makes every method a no-op, so
// searchers never need a nil check at the call site.
type searcherMetricsSink struct {
	m    *metrics.Metrics
	name string
}

func (c *config) sink(name string) *searcherMetricsSink {
	return &searcherMetricsSink{m: c.metrics, name: name}
}

func (s *searcherMetricsSink) setParked(n int) {
	if s == nil || s.m == nil {
		return
	}
	s.m.SetParked(s.name, n)
}

func (s *searcherMetricsSink) setPDFSize(n int) {
	if s == nil || s.m == nil {
		return
	}
	s.m.SetPDFSize(n)
}

func (s *searcherMetricsSink) incBatchHit() {
	if s == nil || s.m == nil {
		return
	}
	s.m.IncBatchHit()
}

func (s *searcherMetricsSink) incBatchMiss() {
	if s == nil || s.m == nil {
		return
	}
	s.m.IncBatchMiss()
}

func (s *searcherMetricsSink) incBudgetDoubling() {
	if s == nil || s.m == nil {
		return
	}
	s.m.IncBudgetDoubling()
}

func (s *searcherMetricsSink) incMergeOutcome(outcome string) {
	if s == nil || s.m == nil {
		return
	}
	s.m.IncMergeOutcome(outcome)
}

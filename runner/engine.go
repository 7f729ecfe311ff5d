package runner

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/deadstate/classify"
	"go.uber.org/zap"
)

// Option customizes Run, mirroring core.GraphOption /
// dfs.Option's functional-options style.
type Option func(*runConfig)

type runConfig struct {
	timeout  time.Duration
	logger   *zap.Logger
	metrics  *Metrics
	expected *Output
}

func newRunConfig(opts ...Option) *runConfig {
	cfg := &runConfig{
		timeout: 0, // zero means no timeout
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithTimeout bounds Run's wall-clock budget, checked only between
// transactions (spec section 5): a zero duration, the default, means
// no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *runConfig) { c.timeout = d }
}

// WithLogger attaches a zap.Logger for timeout, expected-output
// divergence, and end-of-run summary logging. The default is a no-op
// logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *runConfig) { c.logger = l }
}

// WithMetrics attaches a Metrics set Run increments as it goes.
func WithMetrics(m *Metrics) Option {
	return func(c *runConfig) { c.metrics = m }
}

// WithExpected attaches an expected Output Run compares its result
// against, populating Result.Correct.
func WithExpected(expected Output) Option {
	return func(c *runConfig) { c.expected = &expected }
}

// Run feeds txs to algorithmName's classifier in order, checking the
// timeout between each one (spec section 4.10 / section 5): the
// runner cannot cancel a transaction mid-flight, only refuse to start
// the next one once the budget is exhausted. On a timeout the
// partially-built graph is abandoned; Run reports TimedOut without an
// Output. On completion, every identifier mentioned across txs is
// queried and grouped into the four sorted status lists.
func Run(algorithmName string, txs []classify.Transaction, opts ...Option) (Result, error) {
	cfg := newRunConfig(opts...)
	algo, err := NewAlgorithm(algorithmName)
	if err != nil {
		return Result{}, err
	}

	runID := uuid.New()
	start := time.Now()
	logger := cfg.logger.With(zap.String("algorithm", algorithmName), zap.String("run_id", runID.String()))

	deadline := time.Time{}
	if cfg.timeout > 0 {
		deadline = start.Add(cfg.timeout)
	}

	for i, tx := range txs {
		if !deadline.IsZero() && time.Now().After(deadline) {
			logger.Warn("run timed out between transactions", zap.Int("completed", i), zap.Int("total", len(txs)))
			if cfg.metrics != nil {
				cfg.metrics.Timeouts.Inc()
			}
			return Result{
				RunID:     runID,
				Algorithm: algorithmName,
				TimedOut:  true,
				Elapsed:   time.Since(start),
			}, nil
		}
		applyTransaction(algo, tx)
		if cfg.metrics != nil {
			cfg.metrics.TransactionsProcessed.Inc()
		}
	}

	out := group(algo, txs)
	elapsed := time.Since(start)
	if cfg.metrics != nil {
		cfg.metrics.RunDuration.WithLabelValues(algorithmName).Observe(elapsed.Seconds())
	}

	var correct *bool
	if cfg.expected != nil {
		ok := outputsEqual(out, *cfg.expected)
		correct = &ok
		if !ok {
			logger.Warn("classification diverged from expected output")
		}
	}

	logger.Info("run completed",
		zap.Int("open", len(out.Open)), zap.Int("unknown", len(out.Unknown)),
		zap.Int("dead", len(out.Dead)), zap.Int("live", len(out.Live)),
		zap.Duration("elapsed", elapsed))

	return Result{
		RunID:     runID,
		Algorithm: algorithmName,
		Output:    out,
		Correct:   correct,
		Time:      algo.GetTime(),
		Space:     algo.GetSpace(),
		Elapsed:   elapsed,
	}, nil
}

func applyTransaction(a classify.Algorithm, tx classify.Transaction) {
	switch tx.Kind {
	case classify.TxAdd:
		a.AddTransition(tx.V1, tx.V2)
	case classify.TxClose:
		a.MarkClosed(tx.V1)
	case classify.TxLive:
		a.MarkLive(tx.V1)
	case classify.TxNotReachable:
		a.NotReachable(tx.V1, tx.V2)
	}
}

// group enumerates every identifier the algorithm has seen plus every
// identifier mentioned in txs and sorts each into the four status
// lists; an identifier the algorithm never saw (one that appears only
// in NotReachable transactions) is listed as Open.
func group(a classify.Algorithm, txs []classify.Transaction) Output {
	var out Output
	ids := a.SeenIdentifiers()
	for _, tx := range txs {
		ids = append(ids, tx.V1)
		if tx.Kind == classify.TxAdd || tx.Kind == classify.TxNotReachable {
			ids = append(ids, tx.V2)
		}
	}
	listed := make(map[int]bool, len(ids))
	for _, v := range ids {
		if listed[v] {
			continue
		}
		listed[v] = true
		st, ok := a.GetStatus(v)
		if !ok {
			st = classify.StatusOpen
		}
		switch st {
		case classify.StatusOpen:
			out.Open = append(out.Open, v)
		case classify.StatusUnknown:
			out.Unknown = append(out.Unknown, v)
		case classify.StatusDead:
			out.Dead = append(out.Dead, v)
		case classify.StatusLive:
			out.Live = append(out.Live, v)
		}
	}
	sort.Ints(out.Open)
	sort.Ints(out.Unknown)
	sort.Ints(out.Dead)
	sort.Ints(out.Live)
	return out
}

func outputsEqual(a, b Output) bool {
	return intSlicesEqual(a.Open, b.Open) &&
		intSlicesEqual(a.Unknown, b.Unknown) &&
		intSlicesEqual(a.Dead, b.Dead) &&
		intSlicesEqual(a.Live, b.Live)
}

func intSlicesEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

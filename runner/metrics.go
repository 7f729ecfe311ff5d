package runner

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the counters and histograms Run updates, grounded on
// luxfi-consensus's protocol/nova/metrics.go construction style: one
// struct of pre-built prometheus collectors, registered once by the
// caller (typically cmd/deadstate serve-metrics) against its own
// Registerer.
type Metrics struct {
	TransactionsProcessed prometheus.Counter
	Timeouts              prometheus.Counter
	RunDuration           *prometheus.HistogramVec
}

// NewMetrics builds an unregistered Metrics set. Call Register before
// scraping it.
func NewMetrics() *Metrics {
	return &Metrics{
		TransactionsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "deadstate_transactions_processed_total",
			Help: "Number of transactions fed to a classify.Algorithm across all runs.",
		}),
		Timeouts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "deadstate_timeouts_total",
			Help: "Number of runs that hit their wall-clock timeout between transactions.",
		}),
		RunDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: "deadstate_run_duration_seconds",
			Help: "Wall-clock duration of a complete transaction-log run, by algorithm.",
		}, []string{"algorithm"}),
	}
}

// Register adds every collector in m to reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.TransactionsProcessed, m.Timeouts, m.RunDuration} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

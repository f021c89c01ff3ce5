package lwwset

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	"github.com/go-kit/kit/metrics/prometheus"
	prom "github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the counters a Replica updates.
type Metrics struct {
	// Writes counts local Put and Apply calls that changed the stored entry.
	Writes metrics.Counter
	// Merges counts completed merges.
	Merges metrics.Counter
	// Overwrites counts keys whose entry was taken from a merge source.
	Overwrites metrics.Counter
}

// NewDiscardMetrics returns Metrics that record nothing.
func NewDiscardMetrics() *Metrics {
	return &Metrics{
		Writes:     discard.NewCounter(),
		Merges:     discard.NewCounter(),
		Overwrites: discard.NewCounter(),
	}
}

// NewPrometheusMetrics registers Prometheus counters under namespace with the
// default registerer. It panics if the counters are already registered.
func NewPrometheusMetrics(namespace string) *Metrics {
	return &Metrics{
		Writes: prometheus.NewCounterFrom(prom.CounterOpts{
			Namespace: namespace,
			Subsystem: "lwwset",
			Name:      "writes_total",
			Help:      "Number of local writes that changed an entry",
		}, nil),
		Merges: prometheus.NewCounterFrom(prom.CounterOpts{
			Namespace: namespace,
			Subsystem: "lwwset",
			Name:      "merges_total",
			Help:      "Number of completed merges",
		}, nil),
		Overwrites: prometheus.NewCounterFrom(prom.CounterOpts{
			Namespace: namespace,
			Subsystem: "lwwset",
			Name:      "merge_overwrites_total",
			Help:      "Number of entries taken from a merge source",
		}, nil),
	}
}

func (m *Metrics) withDefaults() *Metrics {
	out := *m
	if out.Writes == nil {
		out.Writes = discard.NewCounter()
	}
	if out.Merges == nil {
		out.Merges = discard.NewCounter()
	}
	if out.Overwrites == nil {
		out.Overwrites = discard.NewCounter()
	}
	return &out
}

// Package metrics exposes prometheus counters for D* Lite searches.
//
// A Collector is registered against a caller-supplied prometheus.Registerer
// so several engines (or tests) can use isolated registries. Every method is
// safe to call on a nil *Collector, which is how engines run without metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector groups the search metrics of one or more engines.
type Collector struct {
	Searches       prometheus.Counter
	Iterations     prometheus.Counter
	StaleReinserts prometheus.Counter
	Replans        prometheus.Counter
	IterationCaps  prometheus.Counter
	SearchLength   prometheus.Histogram
	FrontierSize   prometheus.Gauge
}

// New registers the collector's series on reg. Passing
// prometheus.DefaultRegisterer exposes them on the default /metrics handler.
func New(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		Searches: factory.NewCounter(prometheus.CounterOpts{
			Name: "dstarlite_searches_total",
			Help: "Total number of ComputeShortestPath runs.",
		}),
		Iterations: factory.NewCounter(prometheus.CounterOpts{
			Name: "dstarlite_iterations_total",
			Help: "Total number of frontier pops across all searches.",
		}),
		StaleReinserts: factory.NewCounter(prometheus.CounterOpts{
			Name: "dstarlite_stale_reinserts_total",
			Help: "Popped entries whose key was stale and were re-queued.",
		}),
		Replans: factory.NewCounter(prometheus.CounterOpts{
			Name: "dstarlite_replans_total",
			Help: "Incremental replans triggered by cost changes or start moves.",
		}),
		IterationCaps: factory.NewCounter(prometheus.CounterOpts{
			Name: "dstarlite_iteration_cap_total",
			Help: "Searches stopped by the iteration cap before converging.",
		}),
		SearchLength: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "dstarlite_search_iterations",
			Help:    "Frontier pops per search.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		FrontierSize: factory.NewGauge(prometheus.GaugeOpts{
			Name: "dstarlite_frontier_size",
			Help: "Frontier size at the end of the latest search.",
		}),
	}
}

// ObserveSearch records one finished search.
func (c *Collector) ObserveSearch(iterations int, converged bool) {
	if c == nil {
		return
	}
	c.Searches.Inc()
	c.Iterations.Add(float64(iterations))
	c.SearchLength.Observe(float64(iterations))
	if !converged {
		c.IterationCaps.Inc()
	}
}

// StaleReinsert counts one stale-key refresh.
func (c *Collector) StaleReinsert() {
	if c == nil {
		return
	}
	c.StaleReinserts.Inc()
}

// Replan counts one incremental replan.
func (c *Collector) Replan() {
	if c == nil {
		return
	}
	c.Replans.Inc()
}

// SetFrontierSize publishes the current frontier length.
func (c *Collector) SetFrontierSize(n int) {
	if c == nil {
		return
	}
	c.FrontierSize.Set(float64(n))
}

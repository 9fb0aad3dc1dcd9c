// Package metrics exports shortest-path search statistics as Prometheus metrics.
//
// A Collector is both a prometheus.Collector and a dijkstra.Observer:
//
//	c := metrics.NewCollector("shortpath")
//	prometheus.MustRegister(c)
//	f := dijkstra.NewFinder(g, dijkstra.WithObserver(c))
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/shortpath/dijkstra"
)

// OutcomeOK labels successful searches; failures use dijkstra.ErrorKind.
const OutcomeOK = "ok"

// Collector aggregates dijkstra.SearchStats.
type Collector struct {
	searches    *prometheus.CounterVec
	finalized   prometheus.Histogram
	relaxations prometheus.Histogram
	duration    *prometheus.HistogramVec
}

// NewCollector builds a Collector whose metric names start with namespace.
//
// Metrics:
//   - <ns>_searches_total{outcome}
//   - <ns>_finalized_vertices
//   - <ns>_relaxations
//   - <ns>_search_duration_seconds{strategy}
func NewCollector(namespace string) *Collector {
	return &Collector{
		searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "searches_total",
				Help:      "Total number of shortest path searches by outcome",
			},
			[]string{"outcome"},
		),
		finalized: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "finalized_vertices",
			Help:      "Vertices finalized per search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		relaxations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "relaxations",
			Help:      "Successful edge relaxations per search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_duration_seconds",
				Help:      "Wall time of a shortest path search",
				Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
			},
			[]string{"strategy"},
		),
	}
}

// SearchFinished implements dijkstra.Observer.
func (c *Collector) SearchFinished(stats dijkstra.SearchStats, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = dijkstra.ErrorKind(err)
	}
	c.searches.WithLabelValues(outcome).Inc()
	c.duration.WithLabelValues(stats.Strategy.String()).Observe(stats.Duration.Seconds())
	if err == nil {
		c.finalized.Observe(float64(stats.Finalized))
		c.relaxations.Observe(float64(stats.Relaxations))
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.searches.Describe(ch)
	c.finalized.Describe(ch)
	c.relaxations.Describe(ch)
	c.duration.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.searches.Collect(ch)
	c.finalized.Collect(ch)
	c.relaxations.Collect(ch)
	c.duration.Collect(ch)
}

var (
	_ prometheus.Collector = (*Collector)(nil)
	_ dijkstra.Observer    = (*Collector)(nil)
)

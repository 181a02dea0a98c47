package tfce

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors updated after every invocation.
type Metrics struct {
	Invocations prometheus.Counter
	Elements    prometheus.Counter
	Clusters    prometheus.Counter
	Merges      prometheus.Counter
	Relinked    prometheus.Counter
	Duration    prometheus.Histogram
}

// NewMetrics creates the TFCE collectors and registers them with reg.
// A nil reg yields unregistered collectors.
// Registering twice with the same registry panics, as promauto does.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Invocations: f.NewCounter(prometheus.CounterOpts{
			Namespace: "tfce",
			Name:      "invocations_total",
			Help:      "Completed TFCE invocations (one per column or frame).",
		}),
		Elements: f.NewCounter(prometheus.CounterOpts{
			Namespace: "tfce",
			Name:      "elements_total",
			Help:      "Elements popped from the threshold heap.",
		}),
		Clusters: f.NewCounter(prometheus.CounterOpts{
			Namespace: "tfce",
			Name:      "clusters_created_total",
			Help:      "Clusters started by an isolated element.",
		}),
		Merges: f.NewCounter(prometheus.CounterOpts{
			Namespace: "tfce",
			Name:      "cluster_merges_total",
			Help:      "Clusters absorbed into a larger cluster.",
		}),
		Relinked: f.NewCounter(prometheus.CounterOpts{
			Namespace: "tfce",
			Name:      "members_relinked_total",
			Help:      "Member reassignments performed by merges.",
		}),
		Duration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "tfce",
			Name:      "invocation_duration_seconds",
			Help:      "Wall time of one TFCE invocation, both sign passes.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
		}),
	}
}

func (m *Metrics) observe(s Stats, elapsed time.Duration) {
	m.Invocations.Inc()
	m.Elements.Add(float64(s.Elements))
	m.Clusters.Add(float64(s.ClustersCreated))
	m.Merges.Add(float64(s.Merges))
	m.Relinked.Add(float64(s.Relinked))
	m.Duration.Observe(elapsed.Seconds())
}

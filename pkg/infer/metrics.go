package infer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricInferencesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "arrayinfer",
		Name:      "inferences_total",
		Help:      "The total number of expression trees inferred per direction.",
	}, []string{"direction"})
	metricFixpointPasses = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "arrayinfer",
		Name:      "fixpoint_passes",
		Help:      "Number of rule passes needed to reach the fixpoint.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
	})
	metricInconsistentNodesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "arrayinfer",
		Name:      "inconsistent_nodes_total",
		Help:      "The total number of nodes inferred as Inconsistent.",
	})
)

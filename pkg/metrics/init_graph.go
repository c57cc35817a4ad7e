package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGraphMetrics() {
	r.GraphsGeneratedTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphbench_graphs_generated_total",
			Help: "Total number of generated corpus graphs",
		},
		[]string{"model"}, // gnm, pa, forestfire
	)

	r.GraphGenerationDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "graphbench_graph_generation_seconds",
			Help:    "Time spent generating a corpus graph in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
		[]string{"model"},
	)

	r.GraphVertices = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "graphbench_graph_vertices",
			Help: "Vertex count of the graph currently under test",
		},
	)

	r.GraphEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "graphbench_graph_edges",
			Help: "Edge count of the graph currently under test",
		},
	)

	r.FailuresTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphbench_failures_total",
			Help: "Total number of aborted runs by error kind",
		},
		[]string{"kind"}, // invalid parameter, algorithm failure, allocation failure
	)
}

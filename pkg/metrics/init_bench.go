package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initBenchMetrics() {
	r.MeasurementsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphbench_measurements_total",
			Help: "Total number of timed measurements",
		},
		[]string{"operation", "weighted"},
	)

	r.MeasurementWallSeconds = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "graphbench_measurement_wall_seconds",
			Help:    "Wall-clock time of a whole measurement (all repetitions) in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 12),
		},
		[]string{"operation"},
	)

	r.MeasurementCPUSeconds = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "graphbench_measurement_cpu_seconds",
			Help:    "User plus system CPU time of a whole measurement in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 12),
		},
		[]string{"operation"},
	)

	r.CallSeconds = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "graphbench_call_seconds",
			Help:    "Mean wall-clock time of a single invocation in seconds",
			Buckets: prometheus.ExponentialBuckets(0.000001, 4, 14),
		},
		[]string{"operation"},
	)

	r.InvocationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphbench_invocations_total",
			Help: "Total number of timed operation invocations",
		},
		[]string{"operation"},
	)
}

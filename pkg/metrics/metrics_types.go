package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for a benchmark run
type Registry struct {
	// Measurement Metrics
	MeasurementsTotal      *prometheus.CounterVec
	MeasurementWallSeconds *prometheus.HistogramVec
	MeasurementCPUSeconds  *prometheus.HistogramVec
	CallSeconds            *prometheus.HistogramVec
	InvocationsTotal       *prometheus.CounterVec

	// Graph Metrics
	GraphsGeneratedTotal    *prometheus.CounterVec
	GraphGenerationDuration *prometheus.HistogramVec
	GraphVertices           prometheus.Gauge
	GraphEdges              prometheus.Gauge
	FailuresTotal           *prometheus.CounterVec

	// System Metrics
	UptimeSeconds    prometheus.Gauge
	GoRoutines       prometheus.Gauge
	MemoryAllocBytes prometheus.Gauge
	MemorySysBytes   prometheus.Gauge

	registry *prometheus.Registry
	started  time.Time
}

// Summary is the end-of-run digest read back from the registry.
type Summary struct {
	Measurements     int
	Invocations      int
	Graphs           int
	Failures         int
	MeasuredSeconds  float64
	MemoryAllocBytes uint64
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
		started:  time.Now(),
	}

	r.initBenchMetrics()
	r.initGraphMetrics()
	r.initSystemMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

package metrics

import (
	"runtime"
	"strconv"
	"time"

	dto "github.com/prometheus/client_model/go"
)

// RecordMeasurement records one timed measurement of rep invocations
func (r *Registry) RecordMeasurement(operation string, weighted bool, rep int, wall, cpu time.Duration) {
	r.MeasurementsTotal.WithLabelValues(operation, strconv.FormatBool(weighted)).Inc()
	r.MeasurementWallSeconds.WithLabelValues(operation).Observe(wall.Seconds())
	r.MeasurementCPUSeconds.WithLabelValues(operation).Observe(cpu.Seconds())
	r.InvocationsTotal.WithLabelValues(operation).Add(float64(rep))
	if rep > 0 {
		r.CallSeconds.WithLabelValues(operation).Observe(wall.Seconds() / float64(rep))
	}
}

// RecordGraph records a generated corpus graph
func (r *Registry) RecordGraph(model string, vertices, edges int, elapsed time.Duration) {
	r.GraphsGeneratedTotal.WithLabelValues(model).Inc()
	r.GraphGenerationDuration.WithLabelValues(model).Observe(elapsed.Seconds())
	r.GraphVertices.Set(float64(vertices))
	r.GraphEdges.Set(float64(edges))
}

// RecordFailure counts an aborted run
func (r *Registry) RecordFailure(kind string) {
	r.FailuresTotal.WithLabelValues(kind).Inc()
}

// UpdateSystemMetrics samples the Go runtime
func (r *Registry) UpdateSystemMetrics() {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	r.UptimeSeconds.Set(time.Since(r.started).Seconds())
	r.GoRoutines.Set(float64(runtime.NumGoroutine()))
	r.MemoryAllocBytes.Set(float64(ms.Alloc))
	r.MemorySysBytes.Set(float64(ms.Sys))
}

// Summary reads the run totals back from the registry.
func (r *Registry) Summary() (Summary, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return Summary{}, err
	}

	var s Summary
	for _, mf := range families {
		switch mf.GetName() {
		case "graphbench_measurements_total":
			s.Measurements = int(sumCounters(mf))
		case "graphbench_invocations_total":
			s.Invocations = int(sumCounters(mf))
		case "graphbench_graphs_generated_total":
			s.Graphs = int(sumCounters(mf))
		case "graphbench_failures_total":
			s.Failures = int(sumCounters(mf))
		case "graphbench_measurement_wall_seconds":
			for _, m := range mf.GetMetric() {
				s.MeasuredSeconds += m.GetHistogram().GetSampleSum()
			}
		case "graphbench_memory_alloc_bytes":
			for _, m := range mf.GetMetric() {
				s.MemoryAllocBytes = uint64(m.GetGauge().GetValue())
			}
		}
	}
	return s, nil
}

func sumCounters(mf *dto.MetricFamily) float64 {
	var total float64
	for _, m := range mf.GetMetric() {
		total += m.GetCounter().GetValue()
	}
	return total
}

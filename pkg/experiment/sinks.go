package experiment

import (
	"github.com/dd0wney/cluso-graphbench/pkg/logging"
	"github.com/dd0wney/cluso-graphbench/pkg/metrics"
	"github.com/dd0wney/cluso-graphbench/pkg/timing"
)

// metricsSink feeds every measurement into the metrics registry.
type metricsSink struct {
	reg *metrics.Registry
}

func (s metricsSink) Record(m timing.Measurement) {
	s.reg.RecordMeasurement(m.Operation, m.Weighted, m.Repetitions, m.Wall, m.User+m.System)
}

func (metricsSink) Separator() {}

// logSink mirrors measurements to the structured log at debug level.
type logSink struct {
	logger logging.Logger
}

func (s logSink) Record(m timing.Measurement) {
	s.logger.Debug("measurement",
		logging.Label(m.Label),
		logging.Operation(m.Operation),
		logging.Repetitions(m.Repetitions),
		logging.Latency(m.Wall),
		logging.Duration("user", m.User),
		logging.Duration("system", m.System))
}

func (logSink) Separator() {}

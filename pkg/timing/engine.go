package timing

import (
	"github.com/dd0wney/cluso-graphbench/pkg/graph"
)

// Engine times Tasks and forwards the measurements to its sinks.
type Engine struct {
	clock Clock
	sinks []Sink
}

// NewEngine creates an engine reading clock. A nil clock uses SystemClock.
func NewEngine(clock Clock, sinks ...Sink) *Engine {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Engine{clock: clock, sinks: sinks}
}

// AddSink registers another measurement receiver.
func (e *Engine) AddSink(s Sink) {
	e.sinks = append(e.sinks, s)
}

// Run invokes t.Work exactly t.Repetitions times between two clock samples and
// emits the measurement to every sink. If Work fails the loop stops at once,
// nothing is emitted and the failure is returned as an AlgorithmFailure.
func (e *Engine) Run(t Task) (Measurement, error) {
	if t.Repetitions < 1 {
		return Measurement{}, graph.InvalidParameterError("Run", "%q: repetition count %d is below 1", t.Label, t.Repetitions)
	}
	if t.Work == nil {
		return Measurement{}, graph.InvalidParameterError("Run", "%q: no work to time", t.Label)
	}

	work, rep := t.Work, t.Repetitions
	start := e.clock.Now()
	for i := 0; i < rep; i++ {
		if err := work(); err != nil {
			return Measurement{}, graph.AlgorithmError(t.Label, err)
		}
	}
	end := e.clock.Now()

	m := Measurement{
		Label:       t.Label,
		Operation:   t.Operation,
		Weighted:    t.Weighted,
		Repetitions: rep,
		Wall:        end.Wall.Sub(start.Wall),
		User:        end.User - start.User,
		System:      end.System - start.System,
	}
	for _, s := range e.sinks {
		s.Record(m)
	}
	return m, nil
}

// Separator ends a group of measurements on every sink.
func (e *Engine) Separator() {
	for _, s := range e.sinks {
		s.Separator()
	}
}

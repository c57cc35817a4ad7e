package timing

import "time"

// Sample is a point-in-time reading of the wall clock and the process CPU clocks.
type Sample struct {
	Wall   time.Time
	User   time.Duration
	System time.Duration
}

// Clock produces Samples.
type Clock interface {
	Now() Sample
}

// Task is a labeled unit of work to be timed.
type Task struct {
	Label       string
	Operation   string // short operation tag used for metrics, e.g. "louvain"
	Weighted    bool
	Repetitions int
	Work        func() error
}

// Measurement is the timing of one Task.
type Measurement struct {
	Label       string
	Operation   string
	Weighted    bool
	Repetitions int
	Wall        time.Duration
	User        time.Duration
	System      time.Duration
}

// PerCall returns the wall time of a single invocation.
func (m Measurement) PerCall() time.Duration {
	if m.Repetitions <= 0 {
		return 0
	}
	return m.Wall / time.Duration(m.Repetitions)
}

// Sink receives measurements in the order they are taken.
type Sink interface {
	// Record receives one finished measurement.
	Record(m Measurement)
	// Separator marks the end of a group of related measurements.
	Separator()
}

// Package timing runs a unit of work a fixed number of times between two clock
// samples and reports the elapsed wall and CPU time under a label.
//
// The clock samples bracket exactly the repeated invocations: any setup or
// teardown belongs to the caller, outside Engine.Run. Work is invoked back-to-back
// with no reset in between, so callers own any state that must be prepared before
// each call (benchmarks rely on algorithms overwriting their output buffers).
package timing

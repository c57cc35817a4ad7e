package timing

import "time"

// SystemClock reads the wall clock and the CPU time consumed by this process.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() Sample {
	user, sys := cpuTimes()
	return Sample{Wall: time.Now(), User: user, System: sys}
}

//go:build !unix

package timing

import "time"

// CPU clocks are not sampled on this platform; only wall time is reported.
func cpuTimes() (user, sys time.Duration) {
	return 0, 0
}

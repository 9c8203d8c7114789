// Package leaktest verifies that code under test returns the process to its
// goroutine baseline, catching timers and workers that outlive a shutdown.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleTime   = 10 * time.Millisecond
	drainTimeout = 500 * time.Millisecond
	pollInterval = 5 * time.Millisecond
)

// GoroutineChecker snapshots the goroutine count at construction so Check
// can compare against it after the code under test has shut down.
type GoroutineChecker struct {
	t        testing.TB
	baseline int
}

// NewGoroutineChecker records the current goroutine count as the baseline
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	runtime.Gosched()
	time.Sleep(settleTime)

	return &GoroutineChecker{t: t, baseline: runtime.NumGoroutine()}
}

// Check polls until the goroutine count drops to the baseline plus headroom
// or the drain timeout expires. Headroom absorbs goroutines the runtime and
// test harness keep alive between the two snapshots.
func (g *GoroutineChecker) Check(headroom int) {
	g.t.Helper()

	deadline := time.Now().Add(drainTimeout)
	current := runtime.NumGoroutine()
	for current > g.baseline+headroom {
		if time.Now().After(deadline) {
			g.t.Errorf("goroutines did not drain: baseline=%d current=%d headroom=%d",
				g.baseline, current, headroom)
			return
		}
		runtime.GC()
		time.Sleep(pollInterval)
		current = runtime.NumGoroutine()
	}
}

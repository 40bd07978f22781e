// Package leaktest provides helpers for asserting that a test leaves no
// stray goroutines or retained heap behind.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleDelay  = 10 * time.Millisecond
	pollInterval = 10 * time.Millisecond
	checkGrace   = 200 * time.Millisecond
)

// GoroutineChecker records a goroutine baseline at construction time and
// compares against it later.
type GoroutineChecker struct {
	t        testing.TB
	baseline int
}

// NewGoroutineChecker captures the current goroutine count as the baseline.
// Construct it before starting the code under test.
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	settle()
	return &GoroutineChecker{t: t, baseline: runtime.NumGoroutine()}
}

// Check fails the test when more than tolerance goroutines remain above the
// baseline. It polls for a short grace period first so goroutines that are
// mid-exit do not trip the check.
func (c *GoroutineChecker) Check(tolerance int) {
	c.t.Helper()

	current := runtime.NumGoroutine()
	deadline := time.Now().Add(checkGrace)
	for current-c.baseline > tolerance && time.Now().Before(deadline) {
		time.Sleep(pollInterval)
		settle()
		current = runtime.NumGoroutine()
	}

	if leaked := current - c.baseline; leaked > tolerance {
		c.t.Errorf("goroutine leak: baseline=%d current=%d leaked=%d (tolerance %d)",
			c.baseline, current, leaked, tolerance)
	}
}

// HeapChecker records a heap baseline at construction time and compares
// against it later.
type HeapChecker struct {
	t        testing.TB
	baseline uint64
}

// NewHeapChecker captures the current live heap size as the baseline.
func NewHeapChecker(t testing.TB) *HeapChecker {
	t.Helper()
	settle()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return &HeapChecker{t: t, baseline: m.Alloc}
}

// Check fails the test when the live heap grew by more than maxGrowth bytes
// since the baseline.
func (c *HeapChecker) Check(maxGrowth uint64) {
	c.t.Helper()
	settle()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	if m.Alloc > c.baseline && m.Alloc-c.baseline > maxGrowth {
		c.t.Errorf("heap growth: baseline=%dB current=%dB growth=%dB (max %dB)",
			c.baseline, m.Alloc, m.Alloc-c.baseline, maxGrowth)
	}
}

// WaitForGoroutines blocks until the goroutine count drops to target or the
// timeout elapses, failing the test in the latter case.
func WaitForGoroutines(t testing.TB, target int, timeout time.Duration) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if runtime.NumGoroutine() <= target {
			return
		}
		runtime.Gosched()
		time.Sleep(pollInterval)
	}

	t.Errorf("timed out waiting for goroutines: current=%d target=%d",
		runtime.NumGoroutine(), target)
}

func settle() {
	runtime.Gosched()
	runtime.GC()
	time.Sleep(settleDelay)
}

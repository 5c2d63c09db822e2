package core

import "sync/atomic"

// TickMetrics records match-loop counters for monitoring and debugging.
// All fields are updated atomically; readers see a consistent-enough view
// for logging purposes.
type TickMetrics struct {
	TickCount     int64 // ticks advanced
	TotalTickNs   int64 // cumulative tick duration
	InputsApplied int64 // commands applied to the world
	LinesRejected int64 // input lines that failed to parse
}

// AddTick records one tick's duration and returns the new tick count.
func (m *TickMetrics) AddTick(ns int64) int64 {
	atomic.AddInt64(&m.TotalTickNs, ns)
	return atomic.AddInt64(&m.TickCount, 1)
}

func (m *TickMetrics) IncInput()    { atomic.AddInt64(&m.InputsApplied, 1) }
func (m *TickMetrics) IncRejected() { atomic.AddInt64(&m.LinesRejected, 1) }

// AvgTickMs returns the mean tick duration in milliseconds.
func (m *TickMetrics) AvgTickMs() float64 {
	ticks := atomic.LoadInt64(&m.TickCount)
	if ticks == 0 {
		return 0
	}
	return float64(atomic.LoadInt64(&m.TotalTickNs)) / float64(ticks) / 1e6
}

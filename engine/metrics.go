package engine

import "sync/atomic"

// Metrics is the sink the engine reports into. Injected at construction so
// the core stays free of process-wide singletons; implementations must be
// cheap enough for the hot path.
type Metrics interface {
	OnOrderProcessed()
	OnOrderRejected()
	OnMatchFound()
	// OnLatency records wall-clock latency observed OUTSIDE the core; the
	// engine itself never reads a clock and never calls it.
	OnLatency(nanos int64)
}

// NopMetrics discards everything.
type NopMetrics struct{}

func (NopMetrics) OnOrderProcessed() {}
func (NopMetrics) OnOrderRejected()  {}
func (NopMetrics) OnMatchFound()     {}
func (NopMetrics) OnLatency(int64)   {}

// CounterMetrics is the counting sink the server wires in: plain atomic
// counters readable by whatever exposes them (logs, admin endpoints). A nil
// sink passed to New falls back to NopMetrics, not to this type.
type CounterMetrics struct {
	ordersProcessed atomic.Uint64
	ordersRejected  atomic.Uint64
	matchesFound    atomic.Uint64
	latencySum      atomic.Int64
	latencyCount    atomic.Uint64
}

func (m *CounterMetrics) OnOrderProcessed() { m.ordersProcessed.Add(1) }
func (m *CounterMetrics) OnOrderRejected()  { m.ordersRejected.Add(1) }
func (m *CounterMetrics) OnMatchFound()     { m.matchesFound.Add(1) }

func (m *CounterMetrics) OnLatency(nanos int64) {
	m.latencySum.Add(nanos)
	m.latencyCount.Add(1)
}

func (m *CounterMetrics) OrdersProcessed() uint64 { return m.ordersProcessed.Load() }
func (m *CounterMetrics) OrdersRejected() uint64  { return m.ordersRejected.Load() }
func (m *CounterMetrics) MatchesFound() uint64    { return m.matchesFound.Load() }

// AverageLatencyNs returns the mean recorded latency, 0 when nothing was
// recorded.
func (m *CounterMetrics) AverageLatencyNs() float64 {
	n := m.latencyCount.Load()
	if n == 0 {
		return 0
	}
	return float64(m.latencySum.Load()) / float64(n)
}

// Reset zeroes all counters.
func (m *CounterMetrics) Reset() {
	m.ordersProcessed.Store(0)
	m.ordersRejected.Store(0)
	m.matchesFound.Store(0)
	m.latencySum.Store(0)
	m.latencyCount.Store(0)
}

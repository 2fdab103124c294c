package input

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/gridmouse/internal/input/mouse"
)

// Metrics counts what the input handler did and how long it took.
// Counters are safe to read from any goroutine.
type Metrics struct {
	keyEvents    atomic.Uint64
	repeats      atomic.Uint64
	toggles      atomic.Uint64
	clicks       atomic.Uint64
	doubleClicks atomic.Uint64
	misses       atomic.Uint64
	moves        atomic.Uint64
	scrolls      atomic.Uint64

	// Latency tracking
	mu                sync.RWMutex
	latencies         []time.Duration
	maxLatencySamples int
	latencyIdx        int
	peakLatency       atomic.Int64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{
		latencies:         make([]time.Duration, 512),
		maxLatencySamples: 512,
		startTime:         time.Now(),
	}
}

// RecordKeyEvent records a handled key event with its processing time.
func (m *Metrics) RecordKeyEvent(latency time.Duration) {
	m.keyEvents.Add(1)

	latencyNs := latency.Nanoseconds()
	for {
		current := m.peakLatency.Load()
		if latencyNs <= current {
			break
		}
		if m.peakLatency.CompareAndSwap(current, latencyNs) {
			break
		}
	}

	m.mu.Lock()
	m.latencies[m.latencyIdx] = latency
	m.latencyIdx = (m.latencyIdx + 1) % m.maxLatencySamples
	m.mu.Unlock()
}

// RecordEffects counts the effects produced for one event.
func (m *Metrics) RecordEffects(effects []Effect) {
	for _, e := range effects {
		switch e := e.(type) {
		case Click:
			if e.Count == mouse.ClickDouble {
				m.doubleClicks.Add(1)
			} else {
				m.clicks.Add(1)
			}
		case Miss:
			m.misses.Add(1)
		case Move:
			m.moves.Add(1)
		case Scroll, HScroll:
			m.scrolls.Add(1)
		}
	}
}

// RecordToggle counts an overlay or free-mode toggle.
func (m *Metrics) RecordToggle() {
	m.toggles.Add(1)
}

// RecordRepeat counts a suppressed auto-repeat.
func (m *Metrics) RecordRepeat() {
	m.repeats.Add(1)
}

// MetricsSnapshot holds a point-in-time view of metrics.
type MetricsSnapshot struct {
	KeyEvents    uint64
	Repeats      uint64
	Toggles      uint64
	Clicks       uint64
	DoubleClicks uint64
	Misses       uint64
	Moves        uint64
	Scrolls      uint64

	AvgLatency  time.Duration
	P99Latency  time.Duration
	PeakLatency time.Duration

	Uptime time.Duration
}

// Snapshot returns a point-in-time view of all metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	latencies := make([]time.Duration, len(m.latencies))
	copy(latencies, m.latencies)
	start := m.startTime
	m.mu.RUnlock()

	snap := MetricsSnapshot{
		KeyEvents:    m.keyEvents.Load(),
		Repeats:      m.repeats.Load(),
		Toggles:      m.toggles.Load(),
		Clicks:       m.clicks.Load(),
		DoubleClicks: m.doubleClicks.Load(),
		Misses:       m.misses.Load(),
		Moves:        m.moves.Load(),
		Scrolls:      m.scrolls.Load(),
		PeakLatency:  time.Duration(m.peakLatency.Load()),
		Uptime:       time.Since(start),
	}
	snap.AvgLatency, snap.P99Latency = latencyStats(latencies)
	return snap
}

// Fields returns the snapshot as log fields.
func (s MetricsSnapshot) Fields() map[string]any {
	return map[string]any{
		"key_events":    s.KeyEvents,
		"repeats":       s.Repeats,
		"toggles":       s.Toggles,
		"clicks":        s.Clicks,
		"double_clicks": s.DoubleClicks,
		"misses":        s.Misses,
		"moves":         s.Moves,
		"scrolls":       s.Scrolls,
		"avg_latency":   s.AvgLatency.String(),
		"p99_latency":   s.P99Latency.String(),
		"peak_latency":  s.PeakLatency.String(),
		"uptime":        s.Uptime.Round(time.Second).String(),
	}
}

// latencyStats computes average and p99 over the recorded samples.
func latencyStats(latencies []time.Duration) (avg, p99 time.Duration) {
	valid := make([]time.Duration, 0, len(latencies))
	var sum time.Duration
	for _, l := range latencies {
		if l > 0 {
			valid = append(valid, l)
			sum += l
		}
	}
	if len(valid) == 0 {
		return 0, 0
	}
	avg = sum / time.Duration(len(valid))

	sort.Slice(valid, func(i, j int) bool { return valid[i] < valid[j] })
	idx := int(float64(len(valid)) * 0.99)
	if idx >= len(valid) {
		idx = len(valid) - 1
	}
	return avg, valid[idx]
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.keyEvents.Store(0)
	m.repeats.Store(0)
	m.toggles.Store(0)
	m.clicks.Store(0)
	m.doubleClicks.Store(0)
	m.misses.Store(0)
	m.moves.Store(0)
	m.scrolls.Store(0)
	m.peakLatency.Store(0)

	m.mu.Lock()
	m.latencies = make([]time.Duration, m.maxLatencySamples)
	m.latencyIdx = 0
	m.startTime = time.Now()
	m.mu.Unlock()
}

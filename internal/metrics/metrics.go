package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// SyncMetrics tracks catalog synchronizer activity across runs.
type SyncMetrics struct {
	Runs            Counter
	ProductsSynced  Counter
	VariantsSynced  Counter
	RowsPruned      Counter
	lastDurationNs  int64
}

func (m *SyncMetrics) ObserveRun(d time.Duration) {
	m.Runs.Inc()
	atomic.StoreInt64(&m.lastDurationNs, int64(d))
}

func (m *SyncMetrics) LastRunDuration() time.Duration {
	return time.Duration(atomic.LoadInt64(&m.lastDurationNs))
}

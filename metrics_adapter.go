package corosort

import (
	"fmt"
	"time"

	"github.com/halfvector/corosort/metrics"
)

// metricsRecorder adapts metrics.Provider's name-keyed instruments to the
// per-worker measurements this package wants observable: relinquish counts
// and per-yield elapsed time, plus a process-wide in-flight gauge.
type metricsRecorder struct {
	provider metrics.Provider
}

func (m *metricsRecorder) recordStart(n int) {
	m.provider.UpDownCounter("corosort.workers_inflight").Add(int64(n))
}

func (m *metricsRecorder) recordYield(workerIndex int, elapsed time.Duration, reason yieldReason) {
	switch reason {
	case reasonYield, reasonSuspend:
		m.provider.Counter(fmt.Sprintf("corosort.worker.%d.relinquish_total", workerIndex)).Add(1)
	case reasonDone, reasonFail:
		m.provider.UpDownCounter("corosort.workers_inflight").Add(-1)
	}
	m.provider.Histogram(fmt.Sprintf("corosort.worker.%d.yield_seconds", workerIndex)).Record(elapsed.Seconds())
}

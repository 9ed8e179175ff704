package corosort

import "sync"

// lifecycleCoordinator encapsulates Scheduler's shutdown sequence. It is a
// wiring helper: it doesn't own the pool itself, it just guarantees the
// release step runs exactly once no matter how many times Cleanup is
// called.
type lifecycleCoordinator struct {
	once    sync.Once
	release func()
}

func newLifecycleCoordinator(release func()) *lifecycleCoordinator {
	return &lifecycleCoordinator{release: release}
}

// Close runs the release step exactly once.
func (lc *lifecycleCoordinator) Close() {
	lc.once.Do(func() {
		if lc.release != nil {
			lc.release()
		}
	})
}

package corosort

import "time"

// Handle is the coroutine-facing view of the scheduler, passed explicitly
// into a worker's entry function rather than looked up through package-level
// state. Its methods are only safe to call from inside the goroutine the
// Handle was issued to.
type Handle struct {
	sched *Scheduler
	coro  *Coroutine
}

// Coroutine returns this worker's pool record.
func (h *Handle) Coroutine() *Coroutine { return h.coro }

// Yield performs a conditional context switch: a no-op unless at least one
// scheduling quantum has elapsed since this coroutine was last resumed, and
// always a no-op before Run starts or after the scheduler has stopped
// running. This is the sole mechanism by which the sort and I/O state
// machine keep the scheduling latency bound.
func (h *Handle) Yield() {
	if !h.sched.running.Load() {
		return
	}
	elapsed := time.Since(h.coro.resumeTime)
	if elapsed < h.sched.quantum {
		return
	}
	h.switchOut(reasonYield, elapsed, nil)
}

// Suspend performs an unconditional context switch, crediting elapsed time
// regardless of quantum. Intended for genuinely blocking waits, such as
// polling an in-progress asynchronous read.
func (h *Handle) Suspend() {
	if !h.sched.running.Load() {
		return
	}
	elapsed := time.Since(h.coro.resumeTime)
	h.switchOut(reasonSuspend, elapsed, nil)
}

// Done marks this coroutine complete and returns control to the scheduler.
// The worker's entry function must return immediately afterward.
func (h *Handle) Done() {
	elapsed := time.Since(h.coro.resumeTime)
	h.switchOut(reasonDone, elapsed, nil)
}

// Fail reports a terminal error from this worker, poisoning the run: the
// next pass through the scheduler loop causes Run to return ErrRunFailed.
// The worker's entry function must return immediately afterward.
func (h *Handle) Fail(kind ErrorKind, context string, cause error) {
	elapsed := time.Since(h.coro.resumeTime)
	se := &SchedulerError{Kind: kind, WorkerIndex: h.coro.index, Context: context, Cause: cause}
	h.switchOut(reasonFail, elapsed, se)
}

// switchOut credits elapsed execution time, records the relinquish event,
// sends the yield message to the scheduler, and — for non-terminal reasons
// — blocks until the scheduler resumes this coroutine again.
func (h *Handle) switchOut(reason yieldReason, elapsed time.Duration, err *SchedulerError) {
	h.coro.execTime += elapsed
	if h.sched.metrics != nil {
		h.sched.metrics.recordYield(h.coro.index, elapsed, reason)
	}

	terminal := reason == reasonDone || reason == reasonFail
	if !terminal {
		h.coro.timesPassedControl++
	}

	h.sched.yieldCh <- yieldMsg{reason: reason, err: err}

	if !terminal {
		<-h.coro.resumeCh
	}
}

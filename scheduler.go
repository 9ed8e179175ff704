package corosort

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/halfvector/corosort/metrics"
	"github.com/halfvector/corosort/pool"
)

// Scheduler owns a pool of N+1 coroutine slots (one reserved parker slot at
// index 0, plus one slot per worker) and round-robins control between them.
// It is built as a scoped value rather than package-level global state — a
// *Handle is passed explicitly into each worker's entry function instead.
type Scheduler struct {
	cfg Config
	n   int // number of workers, excludes the parker slot

	quantum time.Duration

	slots     pool.Pool
	poolSlice []*Coroutine // index 0 = parker, [1, n] = workers

	entryPoint func(*Handle)
	metrics    *metricsRecorder

	yieldCh chan yieldMsg

	running atomic.Bool
	started atomic.Bool

	pendingCount int
	errFlag      bool
	firstErr     *SchedulerError

	cleanup *lifecycleCoordinator
}

// NewScheduler allocates a scheduler for nWorkers. The per-worker quantum
// is cfg.TargetLatencyUsec / nWorkers.
func NewScheduler(nWorkers int, cfg Config, opts ...SchedulerOption) (*Scheduler, error) {
	if nWorkers <= 0 {
		return nil, ErrNoWorkers
	}

	so := schedulerOptions{cfg: cfg, metricsProvider: metrics.NewNoopProvider()}
	for _, opt := range opts {
		if opt == nil {
			panic("nil scheduler option")
		}
		opt(&so)
	}

	if err := validateConfig(&so.cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	quantumUsec := so.cfg.TargetLatencyUsec / float64(nWorkers)
	quantum := time.Duration(quantumUsec * float64(time.Microsecond))

	slots := pool.NewFixed(uint(nWorkers+1), func() interface{} { return newCoroutine(0) })

	poolSlice := make([]*Coroutine, nWorkers+1)
	for i := 0; i <= nWorkers; i++ {
		c := slots.Get().(*Coroutine)
		c.index = i
		poolSlice[i] = c
	}

	s := &Scheduler{
		cfg:          so.cfg,
		n:            nWorkers,
		quantum:      quantum,
		slots:        slots,
		poolSlice:    poolSlice,
		metrics:      &metricsRecorder{provider: so.metricsProvider},
		yieldCh:      make(chan yieldMsg),
		pendingCount: nWorkers,
	}
	s.cleanup = newLifecycleCoordinator(s.releasePool)
	return s, nil
}

// RegisterEntryPoint binds fn as the body every worker coroutine runs. Must
// be called after NewScheduler and before Run.
func (s *Scheduler) RegisterEntryPoint(fn func(*Handle)) {
	s.entryPoint = fn
}

// CoroPool returns the worker slots (excluding the parker), so the caller
// can attach per-worker inputs — e.g. file paths — before Run.
func (s *Scheduler) CoroPool() []*Coroutine {
	return s.poolSlice[1:]
}

// Run transfers control into the round-robin loop and blocks until every
// worker has called Done, one has called Fail, or ctx is cancelled. It
// returns nil iff every worker reached Done with no failure.
//
// Run may only be called once per Scheduler.
func (s *Scheduler) Run(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	if s.entryPoint == nil {
		return ErrNoEntryPoint
	}

	s.metrics.recordStart(s.n)
	s.running.Store(true)
	defer s.running.Store(false)

	for i := 1; i <= s.n; i++ {
		go s.runWorker(i)
	}

	current := 0
	for s.pendingCount > 0 && !s.errFlag {
		select {
		case <-ctx.Done():
			s.errFlag = true
			s.firstErr = &SchedulerError{Kind: SchedulerFatal, Context: "context", Cause: ctx.Err()}
			s.pendingCount = 0
			continue
		default:
		}

		current = s.nextRunnable(current)
		s.resume(current)

		msg := <-s.yieldCh
		switch msg.reason {
		case reasonDone:
			s.poolSlice[current].done = true
			s.pendingCount--
		case reasonFail:
			s.errFlag = true
			s.firstErr = msg.err
			s.pendingCount = 0
		case reasonYield, reasonSuspend:
			// no bookkeeping beyond what Handle.switchOut already did.
		}
	}

	if s.errFlag {
		return fmt.Errorf("%w: %w", ErrRunFailed, s.firstErr)
	}
	return nil
}

// runWorker waits for the first scheduling opportunity, then runs the
// registered entry point. A worker that panics without calling Done/Fail is
// reported as a SchedulerFatal error rather than crashing the process.
func (s *Scheduler) runWorker(idx int) {
	c := s.poolSlice[idx]
	<-c.resumeCh

	h := &Handle{sched: s, coro: c}
	defer func() {
		if r := recover(); r != nil {
			h.Fail(SchedulerFatal, "worker panic", fmt.Errorf("%v", r))
		}
	}()
	s.entryPoint(h)
}

// nextRunnable scans forward from current over the worker range [1, n],
// wrapping, and returns the first non-done index. Ties (i.e., only one
// worker left) resolve to that worker.
func (s *Scheduler) nextRunnable(current int) int {
	for step := 1; step <= s.n; step++ {
		cand := (current+step-1)%s.n + 1
		if !s.poolSlice[cand].done {
			return cand
		}
	}
	panic("corosort: no runnable coroutine with pending_count > 0")
}

func (s *Scheduler) resume(idx int) {
	c := s.poolSlice[idx]
	c.resumeTime = time.Now()
	c.resumeCh <- struct{}{}
}

// Cleanup releases the coroutine pool. Idempotent.
func (s *Scheduler) Cleanup() {
	s.cleanup.Close()
}

func (s *Scheduler) releasePool() {
	for _, c := range s.poolSlice {
		s.slots.Put(c)
	}
	s.poolSlice = nil
}

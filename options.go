package corosort

import "github.com/halfvector/corosort/metrics"

// SchedulerOption configures a Scheduler. Use NewScheduler(nWorkers, cfg, opts...).
type SchedulerOption func(*schedulerOptions)

// internal builder state for options assembly.
type schedulerOptions struct {
	cfg             Config
	metricsProvider metrics.Provider
}

// WithOutputPath overrides Config.OutputPath.
func WithOutputPath(path string) SchedulerOption {
	return func(o *schedulerOptions) { o.cfg.OutputPath = path }
}

// WithTargetLatencyUsec overrides Config.TargetLatencyUsec.
func WithTargetLatencyUsec(usec float64) SchedulerOption {
	return func(o *schedulerOptions) { o.cfg.TargetLatencyUsec = usec }
}

// WithMetrics attaches a metrics.Provider the scheduler records per-worker
// execution time, relinquish counts, and in-flight gauge to.
// Defaults to metrics.NewNoopProvider() if never supplied.
func WithMetrics(p metrics.Provider) SchedulerOption {
	return func(o *schedulerOptions) {
		if p != nil {
			o.metricsProvider = p
		}
	}
}

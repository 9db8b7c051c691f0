// Package heartbeat runs the periodic liveness job. Its only observable
// effect is a log line on each tick, which makes a silent scheduler death
// visible in the log stream.
package heartbeat

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultInterval is used when the configured interval is zero or negative.
const DefaultInterval = time.Minute

// Runner emits a heartbeat at a fixed interval until stopped.
type Runner struct {
	interval   time.Duration
	logger     *slog.Logger
	tick       func(ctx context.Context)
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
	startOnce  sync.Once
	stopOnce   sync.Once
}

// Option customizes a Runner.
type Option func(*Runner)

// WithTickFunc replaces the default log-only tick action.
func WithTickFunc(fn func(ctx context.Context)) Option {
	return func(r *Runner) {
		r.tick = fn
	}
}

// NewRunner creates a heartbeat runner. A non-positive interval falls back
// to DefaultInterval.
func NewRunner(interval time.Duration, logger *slog.Logger, opts ...Option) *Runner {
	if interval <= 0 {
		interval = DefaultInterval
	}

	r := &Runner{
		interval: interval,
		logger:   logger.With("component", "heartbeat"),
	}
	r.tick = func(ctx context.Context) {
		r.logger.Info("heartbeat", "time", time.Now().UTC().Format(time.RFC3339))
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Start launches the heartbeat goroutine. Subsequent calls are no-ops.
func (r *Runner) Start() {
	r.startOnce.Do(func() {
		ctx, cancel := context.WithCancel(context.Background())
		r.cancelFunc = cancel

		r.wg.Add(1)
		go r.loop(ctx)

		r.logger.Info("heartbeat started", "interval", r.interval.String())
	})
}

// Stop halts the heartbeat and waits for the goroutine to exit.
// Safe to call multiple times, and before Start.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() {
		if r.cancelFunc == nil {
			return
		}
		r.cancelFunc()
		r.wg.Wait()
		r.logger.Info("heartbeat stopped")
	})
}

func (r *Runner) loop(ctx context.Context) {
	defer r.wg.Done()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

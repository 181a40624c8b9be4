package workers

import (
	"context"
	"sync"
	"time"

	"github.com/pwdman/pwdman-client/internal/logger"
)

// Workers bundles all background jobs of the client.
type Workers struct {
	workers []Worker
}

// NewWorkers groups the given workers.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Run starts every worker.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops every worker.
func (w *Workers) Stop() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}

// InactivityWorker logs the user out after a period without server
// activity. It ticks once per second for the lifetime of the app and is a
// no-op while unauthenticated; it is not restarted around login/logout.
type InactivityWorker struct {
	auth     authController
	idle     idleSource
	timeout  time.Duration
	interval time.Duration

	stopOnce sync.Once
	stop     chan struct{}
	logger   *logger.Logger
}

// NewInactivityWorker constructs the worker with the standard 1-second
// check interval.
func NewInactivityWorker(auth authController, idle idleSource, timeout time.Duration, log *logger.Logger) *InactivityWorker {
	return &InactivityWorker{
		auth:     auth,
		idle:     idle,
		timeout:  timeout,
		interval: time.Second,
		stop:     make(chan struct{}),
		logger:   log,
	}
}

// Run implements [Worker].
func (w *InactivityWorker) Run(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-w.stop:
				return
			case <-ticker.C:
				w.check(ctx)
			}
		}
	}()
}

// Stop implements [Worker].
func (w *InactivityWorker) Stop() {
	w.stopOnce.Do(func() { close(w.stop) })
}

func (w *InactivityWorker) check(ctx context.Context) {
	if !w.auth.IsLoggedIn() {
		return
	}
	if w.idle.IdleFor() < w.timeout {
		return
	}

	w.logger.Info().Dur("idle", w.idle.IdleFor()).Msg("inactivity timeout reached, logging out")
	if err := w.auth.Logout(ctx); err != nil {
		w.logger.Error().Err(err).Msg("inactivity logout")
	}
}

package manager

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aldesouky/seedarr/config"
	"github.com/aldesouky/seedarr/pkg/logger"
)

const (
	defaultCheckInterval     = 6 * time.Hour
	defaultReconcileInterval = 2 * time.Minute
)

// Scheduler drives the pipeline with two independent tickers: one for
// episode detection and one for download reconciliation.
type Scheduler struct {
	manager MediaManager
	config  config.Manager
}

func NewScheduler(m MediaManager, cfg config.Manager) *Scheduler {
	return &Scheduler{manager: m, config: cfg}
}

// Run blocks until ctx is cancelled. Pass failures are logged and the next
// tick tries again; only cancellation stops the loops.
func (s *Scheduler) Run(ctx context.Context) error {
	checkInterval := s.config.CheckInterval
	if checkInterval <= 0 {
		checkInterval = defaultCheckInterval
	}

	reconcileInterval := s.config.ReconcileInterval
	if reconcileInterval <= 0 {
		reconcileInterval = defaultReconcileInterval
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.loop(ctx, "detection", checkInterval, s.manager.CheckAllItems)
	})

	g.Go(func() error {
		return s.loop(ctx, "reconciliation", reconcileInterval, s.manager.Reconcile)
	})

	return g.Wait()
}

func (s *Scheduler) loop(ctx context.Context, name string, interval time.Duration, pass func(context.Context) error) error {
	log := logger.FromCtx(ctx).With("loop", name)

	run := func() {
		if err := pass(ctx); err != nil {
			log.Warnw("pass failed, will retry next tick", "error", err)
		}
	}

	run()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			run()
		}
	}
}

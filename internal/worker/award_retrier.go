package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"skill-swap-core/internal/pkg/errs"
	"skill-swap-core/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

const defaultRunTimeout = 30 * time.Second

type AwardRetryRunner interface {
	RetryPendingAwards(ctx context.Context) (*commands.AwardRetryReport, error)
}

// AwardRetrier re-mints pending session awards on a cron schedule. Runs
// never overlap.
type AwardRetrier struct {
	cron       *cron.Cron
	runner     AwardRetryRunner
	schedule   string
	runTimeout time.Duration
	mu         sync.Mutex
}

func NewAwardRetrier(runner AwardRetryRunner, schedule string) *AwardRetrier {
	return &AwardRetrier{
		cron:       cron.New(),
		runner:     runner,
		schedule:   schedule,
		runTimeout: defaultRunTimeout,
	}
}

func (w *AwardRetrier) Start() error {
	if _, err := w.cron.AddFunc(w.schedule, w.runScheduled); err != nil {
		return errs.Wrapf(err, "invalid award retry schedule %q", w.schedule)
	}
	w.cron.Start()
	slog.Info("award retry scheduler started", "schedule", w.schedule)
	return nil
}

// Stop waits for a running job to finish or ctx to expire.
func (w *AwardRetrier) Stop(ctx context.Context) {
	done := w.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		slog.Warn("award retry scheduler stop timed out")
	}
	slog.Info("award retry scheduler stopped")
}

func (w *AwardRetrier) runScheduled() {
	ctx, cancel := context.WithTimeout(context.Background(), w.runTimeout)
	defer cancel()
	if _, err := w.RunOnce(ctx); err != nil {
		slog.Error("award retry run failed", "error", err)
	}
}

// RunOnce skips when a previous run is still in flight.
func (w *AwardRetrier) RunOnce(ctx context.Context) (*commands.AwardRetryReport, error) {
	if !w.mu.TryLock() {
		slog.Debug("award retry already running, skipping")
		return &commands.AwardRetryReport{}, nil
	}
	defer w.mu.Unlock()
	return w.runner.RetryPendingAwards(ctx)
}

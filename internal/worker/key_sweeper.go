package worker

import (
	"context"
	"log/slog"

	"skill-swap-core/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

type ExpiredKeyStore interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// KeySweeper drops idempotency records past their TTL.
type KeySweeper struct {
	cron     *cron.Cron
	store    ExpiredKeyStore
	schedule string
}

func NewKeySweeper(store ExpiredKeyStore, schedule string) *KeySweeper {
	return &KeySweeper{cron: cron.New(), store: store, schedule: schedule}
}

func (s *KeySweeper) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, func() { _, _ = s.RunOnce(context.Background()) }); err != nil {
		return errs.Wrapf(err, "invalid key sweep schedule %q", s.schedule)
	}
	s.cron.Start()
	return nil
}

func (s *KeySweeper) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}

func (s *KeySweeper) RunOnce(ctx context.Context) (int64, error) {
	n, err := s.store.DeleteExpired(ctx)
	if err != nil {
		slog.Error("idempotency key sweep failed", "error", err)
		return 0, err
	}
	if n > 0 {
		slog.Info("expired idempotency keys removed", "count", n)
	}
	return n, nil
}

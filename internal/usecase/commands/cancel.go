package commands

import (
	"context"
	"fmt"
	"log/slog"

	"skill-swap-core/internal/domain/auth"
	"skill-swap-core/internal/domain/session"
	"skill-swap-core/internal/pkg/clock"
	"skill-swap-core/internal/pkg/errs"
	"skill-swap-core/internal/usecase/shared"
)

// CancelResult reports a cancelled session. The slot stays booked: a slot
// is booked at most once, so cancelling never reopens it.
type CancelResult struct {
	SessionID     uint64
	TransactionID string
	// RefundRequired is always true; reversing the payment is external.
	RefundRequired bool
}

type CancelCommands interface {
	CancelSession(ctx context.Context, sc auth.SessionContext, sessionID uint64) (*CancelResult, error)
}

type cancelUseCaseImpl struct {
	sessions shared.SessionRepository
	notifier shared.Notifier
	clock    clock.Clock
}

func NewCancelUseCase(sessions shared.SessionRepository, notifier shared.Notifier, clk clock.Clock) CancelCommands {
	return &cancelUseCaseImpl{sessions: sessions, notifier: notifier, clock: clk}
}

func (uc *cancelUseCaseImpl) CancelSession(ctx context.Context, sc auth.SessionContext, sessionID uint64) (*CancelResult, error) {
	caller, err := sc.RequireIdentity()
	if err != nil {
		return nil, validation(err)
	}
	sess, err := uc.sessions.Update(ctx, sessionID, func(s *session.Session) error {
		return s.Cancel(caller, uc.clock.Now())
	})
	if err != nil {
		switch {
		case errs.Is(err, session.ErrNotStudent):
			return nil, errs.Mark(err, errs.ErrUnauthorized)
		case errs.IsAny(err, session.ErrAlreadyCompleted, session.ErrAlreadyCancelled):
			return nil, errs.Mark(err, errs.ErrConflict)
		default:
			return nil, notFound(err, ErrSessionNotFound)
		}
	}

	detached := context.WithoutCancel(ctx)
	tx := sess.Booking().TransactionID
	slog.Info("session cancelled", "session_id", sess.ID(), "tx_id", tx)
	fields := map[string]string{"session_id": fmt.Sprint(sess.ID()), "tx_id": tx}
	uc.notifier.Notify(detached, shared.Notification{
		Level:     shared.LevelWarning,
		Topic:     "session.cancelled",
		Message:   fmt.Sprintf("Session %d cancelled; payment %s requires a refund", sess.ID(), tx),
		Recipient: sess.Student(),
		Fields:    fields,
		At:        uc.clock.Now(),
	})
	uc.notifier.Notify(detached, shared.Notification{
		Level:     shared.LevelInfo,
		Topic:     "session.cancelled",
		Message:   fmt.Sprintf("Session %d (%s) was cancelled by the student", sess.ID(), sess.SlotLabel()),
		Recipient: sess.Teacher(),
		Fields:    fields,
		At:        uc.clock.Now(),
	})
	return &CancelResult{SessionID: sess.ID(), TransactionID: tx, RefundRequired: true}, nil
}

package commands

import (
	"context"
	"fmt"
	"log/slog"

	"skill-swap-core/internal/domain/auth"
	"skill-swap-core/internal/domain/identity"
	"skill-swap-core/internal/domain/session"
	"skill-swap-core/internal/domain/skill"
	"skill-swap-core/internal/domain/user"
	"skill-swap-core/internal/pkg/clock"
	"skill-swap-core/internal/pkg/errs"
	"skill-swap-core/internal/usecase/shared"
)

type CompletionResult struct {
	SessionID      uint64
	Completed      bool
	AwardedAssetID *string
	AwardStatus    session.AwardStatus
	// Replayed is set when the session had already been completed.
	Replayed bool
}

type CompletionCommands interface {
	// Complete marks the session complete once and triggers a single award.
	// When the award could not be minted the result is still returned,
	// together with an error marked errs.ErrAwardPending.
	Complete(ctx context.Context, sc auth.SessionContext, sessionID uint64) (*CompletionResult, error)
	// RetryPendingAwards mints awards for completed sessions whose first
	// mint failed.
	RetryPendingAwards(ctx context.Context) (*AwardRetryReport, error)
}

type AwardRetryReport struct {
	Attempted    int
	Issued       int
	StillPending int
}

type completionUseCaseImpl struct {
	sessions shared.SessionRepository
	skills   shared.SkillRepository
	users    shared.UserRepository
	registry shared.ContractClient
	notifier shared.Notifier
	clock    clock.Clock
}

func NewCompletionUseCase(
	sessions shared.SessionRepository,
	skills shared.SkillRepository,
	users shared.UserRepository,
	registry shared.ContractClient,
	notifier shared.Notifier,
	clock clock.Clock,
) CompletionCommands {
	return &completionUseCaseImpl{
		sessions: sessions,
		skills:   skills,
		users:    users,
		registry: registry,
		notifier: notifier,
		clock:    clock,
	}
}

func (uc *completionUseCaseImpl) Complete(ctx context.Context, sc auth.SessionContext, sessionID uint64) (*CompletionResult, error) {
	caller, err := sc.RequireIdentity()
	if err != nil {
		return nil, validation(err)
	}

	alreadyCompleted := false
	sess, err := uc.sessions.Update(ctx, sessionID, func(s *session.Session) error {
		if s.IsCompleted() && caller.Equal(s.Teacher()) {
			alreadyCompleted = true
			return nil
		}
		return s.Complete(caller, uc.clock.Now())
	})
	if err != nil {
		err = completionError(err)
		uc.reject(ctx, caller, sessionID, err)
		return nil, err
	}
	if alreadyCompleted {
		res := resultOf(sess, true)
		if sess.AwardStatus() != session.AwardIssued {
			return res, errs.Mark(errs.Newf("award for session %d is %s", sess.ID(), sess.AwardStatus()), errs.ErrAwardPending)
		}
		return res, nil
	}
	slog.Info("session completed", "session_id", sess.ID(), "teacher", caller.String())

	// The session is terminal now; nothing below may undo it.
	detached := context.WithoutCancel(ctx)
	uc.recordCompletion(detached, sess)
	return uc.award(detached, sess)
}

// recordCompletion syncs the registry and the reputation counters. Failures
// leave the completion in place and are reported to the teacher.
func (uc *completionUseCaseImpl) recordCompletion(ctx context.Context, sess *session.Session) {
	if err := uc.registry.CompleteSession(ctx, sess.ID(), sess.Teacher()); err != nil {
		uc.unsynced(ctx, sess, "session.registry_unsynced", "Session completed but the registry did not record it", err)
	}
	if _, err := uc.users.Update(ctx, sess.Teacher(), func(u *user.User) error {
		u.AddReputation(sess.Hours())
		return nil
	}); err != nil {
		uc.unsynced(ctx, sess, "session.reputation_unsynced", "Session completed but reputation was not updated", err)
	}
	if _, err := uc.skills.Update(ctx, sess.SkillID(), func(s *skill.Skill) error {
		s.RecordCompletedSession()
		return nil
	}); err != nil {
		uc.unsynced(ctx, sess, "skill.stats_unsynced", "Session completed but the skill was not credited", err)
	}
}

func (uc *completionUseCaseImpl) unsynced(ctx context.Context, sess *session.Session, topic, msg string, cause error) {
	slog.Warn(msg, "session_id", sess.ID(), "skill_id", sess.SkillID(), "teacher", sess.Teacher().String(), "error", cause)
	uc.notifier.Notify(ctx, shared.Notification{
		Level:     shared.LevelWarning,
		Topic:     topic,
		Message:   msg,
		Recipient: sess.Teacher(),
		Fields: map[string]string{
			"session_id": fmt.Sprint(sess.ID()),
			"skill_id":   fmt.Sprint(sess.SkillID()),
			"error":      cause.Error(),
		},
		At: uc.clock.Now(),
	})
}

// reject tells the caller why a completion was refused.
func (uc *completionUseCaseImpl) reject(ctx context.Context, caller identity.Identity, sessionID uint64, cause error) {
	uc.notifier.Notify(ctx, shared.Notification{
		Level:     shared.LevelError,
		Topic:     "session.complete_rejected",
		Message:   "Session completion rejected: " + cause.Error(),
		Recipient: caller,
		Fields:    map[string]string{"session_id": fmt.Sprint(sessionID)},
		At:        uc.clock.Now(),
	})
}

// award performs the mint for a session whose award status is minting.
func (uc *completionUseCaseImpl) award(ctx context.Context, sess *session.Session) (*CompletionResult, error) {
	assetID, mintErr := uc.registry.ClaimAward(ctx, sess.ID(), sess.Student())
	if mintErr == nil && assetID == "" {
		mintErr = session.ErrEmptyAssetID
	}
	if mintErr != nil {
		updated, err := uc.sessions.Update(ctx, sess.ID(), func(s *session.Session) error {
			return s.MarkAwardPending(mintErr.Error())
		})
		if err != nil {
			return nil, errs.Mark(err, ErrStoreFailure)
		}
		slog.Warn("award mint failed, session left award pending", "session_id", sess.ID(), "error", mintErr)
		uc.emit(ctx, updated, shared.LevelWarning, "session.award_pending", "Session completed; award will be retried")
		return resultOf(updated, false), errs.Mark(errs.Wrap(mintErr, "award mint failed"), errs.ErrAwardPending)
	}

	updated, err := uc.sessions.Update(ctx, sess.ID(), func(s *session.Session) error {
		return s.RecordAward(assetID)
	})
	if err != nil {
		// The mint already happened; keep the id visible in logs for reconciliation.
		slog.Error("failed to record awarded asset", "session_id", sess.ID(), "asset_id", assetID, "error", err)
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	slog.Info("session award issued", "session_id", sess.ID(), "asset_id", assetID)
	uc.emit(ctx, updated, shared.LevelSuccess, "session.award_issued", fmt.Sprintf("Award %s issued for session %d", assetID, sess.ID()))
	return resultOf(updated, false), nil
}

func (uc *completionUseCaseImpl) RetryPendingAwards(ctx context.Context) (*AwardRetryReport, error) {
	pending := session.AwardPending
	candidates, err := uc.sessions.List(ctx, shared.SessionFilter{AwardStatus: &pending})
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	report := &AwardRetryReport{}
	for _, c := range candidates {
		if ctx.Err() != nil {
			break
		}
		// Claiming under the store lock keeps concurrent runs from minting twice.
		claimed, err := uc.sessions.Update(ctx, c.ID(), func(s *session.Session) error {
			return s.ResumeAward()
		})
		if err != nil {
			continue
		}
		report.Attempted++
		_, err = uc.award(ctx, claimed)
		switch {
		case err == nil:
			report.Issued++
		case errs.Is(err, errs.ErrAwardPending):
			report.StillPending++
		default:
			slog.Error("award retry failed", "session_id", c.ID(), "error", err)
		}
	}
	if report.Attempted > 0 {
		slog.Info("award retry finished", "attempted", report.Attempted, "issued", report.Issued, "still_pending", report.StillPending)
	}
	return report, nil
}

func (uc *completionUseCaseImpl) emit(ctx context.Context, s *session.Session, level shared.NotificationLevel, topic, msg string) {
	fields := map[string]string{
		"session_id":   fmt.Sprint(s.ID()),
		"skill_id":     fmt.Sprint(s.SkillID()),
		"award_status": s.AwardStatus().String(),
	}
	if id := s.AwardedAssetID(); id != nil {
		fields["asset_id"] = *id
	}
	n := shared.Notification{Level: level, Topic: topic, Message: msg, Fields: fields, At: uc.clock.Now()}
	n.Recipient = s.Teacher()
	uc.notifier.Notify(ctx, n)
	n.Recipient = s.Student()
	uc.notifier.Notify(ctx, n)
}

func resultOf(s *session.Session, replayed bool) *CompletionResult {
	return &CompletionResult{
		SessionID:      s.ID(),
		Completed:      s.IsCompleted(),
		AwardedAssetID: s.AwardedAssetID(),
		AwardStatus:    s.AwardStatus(),
		Replayed:       replayed,
	}
}

func completionError(err error) error {
	switch {
	case errs.Is(err, session.ErrNotTeacher):
		return errs.Mark(err, errs.ErrUnauthorized)
	case errs.Is(err, session.ErrSessionCancelled):
		return errs.Mark(err, errs.ErrConflict)
	default:
		return notFound(err, ErrSessionNotFound)
	}
}

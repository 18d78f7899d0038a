package commands

import (
	"context"
	"fmt"
	"log/slog"

	"skill-swap-core/internal/domain/auth"
	"skill-swap-core/internal/domain/identity"
	domreview "skill-swap-core/internal/domain/review"
	"skill-swap-core/internal/domain/session"
	"skill-swap-core/internal/domain/skill"
	"skill-swap-core/internal/pkg/clock"
	"skill-swap-core/internal/pkg/errs"
	"skill-swap-core/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type SubmitReviewInput struct {
	SkillID uint64
	Rating  int
	Comment string
}

type SubmitReviewResult struct {
	FeedbackID    uint64
	AverageRating decimal.Decimal
	FeedbackCount int
}

type ReviewCommands interface {
	Submit(ctx context.Context, sc auth.SessionContext, in SubmitReviewInput) (*SubmitReviewResult, error)
}

type reviewUseCaseImpl struct {
	skills      shared.SkillRepository
	eligibility shared.EligibilityChecker
	notifier    shared.Notifier
	clock       clock.Clock
}

func NewReviewUseCase(skills shared.SkillRepository, eligibility shared.EligibilityChecker, notifier shared.Notifier, clk clock.Clock) ReviewCommands {
	if eligibility == nil {
		eligibility = AnyoneEligible{}
	}
	return &reviewUseCaseImpl{skills: skills, eligibility: eligibility, notifier: notifier, clock: clk}
}

func (uc *reviewUseCaseImpl) Submit(ctx context.Context, sc auth.SessionContext, in SubmitReviewInput) (*SubmitReviewResult, error) {
	student, err := sc.RequireIdentity()
	if err != nil {
		return nil, validation(err)
	}
	res, err := uc.submit(ctx, student, in)
	if err != nil {
		uc.notifier.Notify(ctx, shared.Notification{
			Level:     shared.LevelError,
			Topic:     "review.rejected",
			Message:   "Review rejected: " + err.Error(),
			Recipient: student,
			Fields:    map[string]string{"skill_id": fmt.Sprint(in.SkillID)},
			At:        uc.clock.Now(),
		})
		return nil, err
	}
	return res, nil
}

func (uc *reviewUseCaseImpl) submit(ctx context.Context, student identity.Identity, in SubmitReviewInput) (*SubmitReviewResult, error) {
	rating, err := domreview.NewRating(in.Rating)
	if err != nil {
		return nil, validation(err)
	}
	comment, err := domreview.NewComment(in.Comment)
	if err != nil {
		return nil, validation(err)
	}
	if err := uc.eligibility.CanReview(ctx, in.SkillID, student); err != nil {
		if errs.Is(err, domreview.ErrNotEligible) {
			return nil, errs.Mark(err, errs.ErrUnauthorized)
		}
		return nil, err
	}

	var created domreview.Feedback
	updated, err := uc.skills.Update(ctx, in.SkillID, func(s *skill.Skill) error {
		if student.Equal(s.Owner()) {
			return validation(domreview.ErrSelfReview)
		}
		created = domreview.NewFeedback(uint64(s.FeedbackCount()+1), s.ID(), student, rating, comment, uc.clock.Now())
		return s.AppendFeedback(created)
	})
	if err != nil {
		if errs.Is(err, errs.ErrValidation) {
			return nil, err
		}
		return nil, notFound(err, ErrSkillNotFound)
	}

	slog.Info("feedback recorded",
		"skill_id", updated.ID(),
		"feedback_id", created.ID(),
		"rating", rating.Value(),
		"average", updated.AverageRating().String())
	uc.notifier.Notify(ctx, shared.Notification{
		Level:     shared.LevelSuccess,
		Topic:     "review.submitted",
		Message:   "New review on " + updated.Name(),
		Recipient: updated.Owner(),
		Fields:    map[string]string{"average_rating": updated.AverageRating().StringFixed(1)},
		At:        uc.clock.Now(),
	})
	return &SubmitReviewResult{
		FeedbackID:    created.ID(),
		AverageRating: updated.AverageRating(),
		FeedbackCount: updated.FeedbackCount(),
	}, nil
}

// AnyoneEligible lets every identity review any skill.
type AnyoneEligible struct{}

func (AnyoneEligible) CanReview(context.Context, uint64, identity.Identity) error { return nil }

// CompletedSessionEligibility requires a completed session of the skill.
type CompletedSessionEligibility struct {
	Sessions shared.SessionRepository
}

func (e CompletedSessionEligibility) CanReview(ctx context.Context, skillID uint64, student identity.Identity) error {
	sessions, err := e.Sessions.List(ctx, shared.SessionFilter{Participant: &student})
	if err != nil {
		return errs.Mark(err, ErrStoreFailure)
	}
	for _, s := range sessions {
		if s.SkillID() == skillID && s.Student().Equal(student) && s.Status() == session.StatusCompleted {
			return nil
		}
	}
	return domreview.ErrNotEligible
}

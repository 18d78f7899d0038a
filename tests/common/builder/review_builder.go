//go:build unit || e2e

package builder

import (
	"time"

	"skill-swap-core/internal/domain/identity"
	"skill-swap-core/internal/domain/review"
	reqdto "skill-swap-core/internal/handler/dto/request"
	"skill-swap-core/internal/usecase/commands"
)

type ReviewBuilder struct {
	SkillID uint64
	Student string
	Rating  int
	Comment string
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		SkillID: 1,
		Student: "STUDENT-1",
		Rating:  5,
		Comment: "Excellent session!",
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

func (r *ReviewBuilder) BuildFeedback(id uint64, now time.Time) (review.Feedback, error) {
	rating, err := review.NewRating(r.Rating)
	if err != nil {
		return review.Feedback{}, err
	}
	comment, err := review.NewComment(r.Comment)
	if err != nil {
		return review.Feedback{}, err
	}
	return review.NewFeedback(id, r.SkillID, identity.MustParse(r.Student), rating, comment, now), nil
}

func (r *ReviewBuilder) BuildInput() commands.SubmitReviewInput {
	return commands.SubmitReviewInput{SkillID: r.SkillID, Rating: r.Rating, Comment: r.Comment}
}

func (r *ReviewBuilder) BuildRequestDTO() reqdto.SubmitReviewRequest {
	return reqdto.SubmitReviewRequest{Rating: r.Rating, Comment: r.Comment}
}

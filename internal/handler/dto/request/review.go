package request

import (
	"skill-swap-core/internal/domain/review"
	"skill-swap-core/internal/usecase/commands"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type SubmitReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (r SubmitReviewRequest) Validate() error {
	return invalid(validation.ValidateStruct(&r,
		validation.Field(&r.Rating, validation.Required.Error("rating is required"), validation.Min(review.MinRating), validation.Max(review.MaxRating)),
		validation.Field(&r.Comment, validation.Required.Error("comment is required"), validation.Length(1, review.MaxCommentLength)),
	))
}

func (r SubmitReviewRequest) ToInput(skillID uint64) commands.SubmitReviewInput {
	return commands.SubmitReviewInput{SkillID: skillID, Rating: r.Rating, Comment: r.Comment}
}

// PageQuery is bound from the query string of feedback listings.
type PageQuery struct {
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit"`
}

package response

import (
	"skill-swap-core/internal/usecase/commands"
	"skill-swap-core/internal/usecase/queries"
)

type SubmitReviewResponse struct {
	FeedbackID    uint64 `json:"feedbackId"`
	AverageRating string `json:"averageRating"`
	FeedbackCount int    `json:"feedbackCount"`
}

func FromSubmitReviewResult(r *commands.SubmitReviewResult) *SubmitReviewResponse {
	return &SubmitReviewResponse{
		FeedbackID:    r.FeedbackID,
		AverageRating: r.AverageRating.StringFixed(1),
		FeedbackCount: r.FeedbackCount,
	}
}

type FeedbackResponse struct {
	ID        uint64 `json:"id"`
	Student   string `json:"student"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt int64  `json:"createdAt"`
}

type FeedbackPageResponse struct {
	Items      []*FeedbackResponse `json:"items"`
	NextCursor string              `json:"nextCursor,omitempty"`
}

func FromFeedbackPage(items []*queries.FeedbackView, next *queries.Cursor) *FeedbackPageResponse {
	res := &FeedbackPageResponse{Items: make([]*FeedbackResponse, len(items))}
	for i, it := range items {
		res.Items[i] = &FeedbackResponse{
			ID:        it.ID,
			Student:   it.Student,
			Rating:    it.Rating,
			Comment:   it.Comment,
			CreatedAt: it.CreatedAt.Unix(),
		}
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}

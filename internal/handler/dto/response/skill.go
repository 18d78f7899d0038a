package response

import (
	"skill-swap-core/internal/usecase/commands"
	"skill-swap-core/internal/usecase/queries"
)

type SlotResponse struct {
	Label       string `json:"label"`
	MeetingLink string `json:"meetingLink,omitempty"`
	Booked      bool   `json:"booked"`
	BookedBy    string `json:"bookedBy,omitempty"`
}

type SkillResponse struct {
	ID                uint64         `json:"id"`
	Owner             string         `json:"owner"`
	Name              string         `json:"name"`
	Description       string         `json:"description"`
	Rate              string         `json:"rate"`
	Category          string         `json:"category"`
	Level             string         `json:"level"`
	Slots             []SlotResponse `json:"slots"`
	AverageRating     string         `json:"averageRating"`
	FeedbackCount     int            `json:"feedbackCount"`
	SessionsCompleted int            `json:"sessionsCompleted"`
	CreatedAt         int64          `json:"createdAt"`
}

type ListSkillResponse struct {
	Skill            *SkillResponse `json:"skill"`
	FeeTransactionID string         `json:"feeTransactionId,omitempty"`
}

func FromSkillView(v *queries.SkillView) *SkillResponse {
	slots := make([]SlotResponse, len(v.Slots))
	for i, s := range v.Slots {
		slots[i] = SlotResponse{Label: s.Label, MeetingLink: s.MeetingLink, Booked: s.Booked, BookedBy: s.BookedBy}
	}
	return &SkillResponse{
		ID:                v.ID,
		Owner:             v.Owner,
		Name:              v.Name,
		Description:       v.Description,
		Rate:              v.Rate.String(),
		Category:          v.Category,
		Level:             v.Level,
		Slots:             slots,
		AverageRating:     v.AverageRating.StringFixed(1),
		FeedbackCount:     v.FeedbackCount,
		SessionsCompleted: v.SessionsCompleted,
		CreatedAt:         v.CreatedAt.Unix(),
	}
}

func FromSkillViews(vs []*queries.SkillView) []*SkillResponse {
	res := make([]*SkillResponse, len(vs))
	for i, v := range vs {
		res[i] = FromSkillView(v)
	}
	return res
}

// FromListSkillResult renders a fresh listing; none of its slots is booked yet.
func FromListSkillResult(r *commands.ListSkillResult) *ListSkillResponse {
	s := r.Skill
	slots := make([]SlotResponse, 0, len(s.Slots()))
	for _, sl := range s.Slots() {
		slots = append(slots, SlotResponse{Label: sl.Label(), MeetingLink: sl.MeetingLink()})
	}
	return &ListSkillResponse{
		Skill: &SkillResponse{
			ID:                s.ID(),
			Owner:             s.Owner().String(),
			Name:              s.Name(),
			Description:       s.Description(),
			Rate:              s.Rate().String(),
			Category:          s.Category().String(),
			Level:             s.Level().String(),
			Slots:             slots,
			AverageRating:     s.AverageRating().StringFixed(1),
			FeedbackCount:     s.FeedbackCount(),
			SessionsCompleted: s.SessionsCompleted(),
			CreatedAt:         s.CreatedAt().Unix(),
		},
		FeeTransactionID: r.FeeTransactionID,
	}
}

//go:build unit || e2e

package builder

import (
	"fmt"
	"time"

	"skill-swap-core/internal/domain/identity"
	"skill-swap-core/internal/domain/review"
	"skill-swap-core/internal/domain/skill"
	reqdto "skill-swap-core/internal/handler/dto/request"
	"skill-swap-core/internal/usecase/commands"
	"skill-swap-core/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type SlotSpec struct {
	Label       string
	MeetingLink string
}

type SkillBuilder struct {
	ID          uint64
	Owner       string
	Name        string
	Description string
	Rate        string
	Category    string
	Level       string
	Slots       []SlotSpec
	// Ratings seed an existing feedback history, one entry per rating.
	Ratings           []int
	AverageRating     string
	SessionsCompleted int
}

func NewSkillBuilder() *SkillBuilder {
	return &SkillBuilder{
		ID:          1,
		Owner:       "TEACHER-1",
		Name:        "Go for beginners",
		Description: "Hands-on introduction to Go",
		Rate:        "25",
		Category:    "Programming",
		Level:       "Beginner",
		Slots: []SlotSpec{
			{Label: "Monday 10 AM", MeetingLink: "https://meet.example.com/go-1"},
			{Label: "Tuesday 2 PM", MeetingLink: "https://meet.example.com/go-2"},
		},
		AverageRating: "0",
	}
}

func (b *SkillBuilder) With(mutate func(*SkillBuilder)) *SkillBuilder {
	mutate(b)
	return b
}

func (b *SkillBuilder) BuildDraft() (skill.Draft, error) {
	rate, err := skill.NewRate(decimal.RequireFromString(b.Rate))
	if err != nil {
		return skill.Draft{}, err
	}
	category, err := skill.NewCategory(b.Category)
	if err != nil {
		return skill.Draft{}, err
	}
	level, err := skill.NewLevel(b.Level)
	if err != nil {
		return skill.Draft{}, err
	}
	slots := make([]skill.Slot, 0, len(b.Slots))
	for _, s := range b.Slots {
		slot, err := skill.NewSlot(s.Label, s.MeetingLink)
		if err != nil {
			return skill.Draft{}, err
		}
		slots = append(slots, slot)
	}
	return skill.NewDraft(identity.MustParse(b.Owner), b.Name, b.Description, rate, category, level, slots)
}

// MustBuildDomain panics on an invalid builder; use BuildDraft to test validation.
func (b *SkillBuilder) MustBuildDomain(now time.Time) *skill.Skill {
	d, err := b.BuildDraft()
	if err != nil {
		panic(err)
	}
	if len(b.Ratings) == 0 && b.SessionsCompleted == 0 {
		return skill.NewSkill(b.ID, d, now)
	}
	feedbacks := make([]review.Feedback, len(b.Ratings))
	for i, r := range b.Ratings {
		rating, err := review.NewRating(r)
		if err != nil {
			panic(err)
		}
		comment, err := review.NewComment("Earlier session")
		if err != nil {
			panic(err)
		}
		student := identity.MustParse(fmt.Sprintf("PAST-%d", i+1))
		feedbacks[i] = review.NewFeedback(uint64(i+1), b.ID, student, rating, comment, now)
	}
	return skill.ReconstructSkill(b.ID, d, feedbacks, decimal.RequireFromString(b.AverageRating), b.SessionsCompleted, now)
}

func (b *SkillBuilder) BuildInput() commands.ListSkillInput {
	slots := make([]commands.SlotInput, len(b.Slots))
	for i, s := range b.Slots {
		slots[i] = commands.SlotInput{Label: s.Label, MeetingLink: s.MeetingLink}
	}
	return commands.ListSkillInput{
		Name:        b.Name,
		Description: b.Description,
		Rate:        decimal.RequireFromString(b.Rate),
		Category:    b.Category,
		Level:       b.Level,
		Slots:       slots,
	}
}

func (b *SkillBuilder) BuildRequestDTO() reqdto.ListSkillRequest {
	slots := make([]reqdto.SlotRequest, len(b.Slots))
	for i, s := range b.Slots {
		slots[i] = reqdto.SlotRequest{Label: s.Label, MeetingLink: s.MeetingLink}
	}
	return reqdto.ListSkillRequest{
		Name:        b.Name,
		Description: b.Description,
		Rate:        b.Rate,
		Category:    b.Category,
		Level:       b.Level,
		Slots:       slots,
	}
}

func (b *SkillBuilder) BuildView() *queries.SkillView {
	slots := make([]queries.SlotView, len(b.Slots))
	for i, s := range b.Slots {
		slots[i] = queries.SlotView{Label: s.Label, MeetingLink: s.MeetingLink}
	}
	return &queries.SkillView{
		ID:            b.ID,
		Owner:         b.Owner,
		Name:          b.Name,
		Description:   b.Description,
		Rate:          decimal.RequireFromString(b.Rate),
		Category:      b.Category,
		Level:         b.Level,
		Slots:         slots,
		AverageRating: decimal.Zero,
	}
}

package review

import (
	"time"

	"skill-swap-core/internal/domain/identity"
)

// Feedback is an append-only entry in a skill's feedback log.
type Feedback struct {
	id        uint64
	skillID   uint64
	student   identity.Identity
	rating    Rating
	comment   Comment
	createdAt time.Time
}

func NewFeedback(id, skillID uint64, student identity.Identity, rating Rating, comment Comment, now time.Time) Feedback {
	return Feedback{
		id:        id,
		skillID:   skillID,
		student:   student,
		rating:    rating,
		comment:   comment,
		createdAt: now,
	}
}

func (f Feedback) ID() uint64                 { return f.id }
func (f Feedback) SkillID() uint64            { return f.skillID }
func (f Feedback) Student() identity.Identity { return f.student }
func (f Feedback) Rating() Rating             { return f.rating }
func (f Feedback) Comment() Comment           { return f.comment }
func (f Feedback) CreatedAt() time.Time       { return f.createdAt }

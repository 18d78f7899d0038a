package skill

import (
	"strings"
	"time"

	"skill-swap-core/internal/domain/identity"
	"skill-swap-core/internal/domain/review"

	"github.com/shopspring/decimal"
)

type Skill struct {
	id                uint64
	owner             identity.Identity
	name              string
	description       string
	rate              Rate
	category          Category
	level             Level
	slots             []Slot
	feedbacks         []review.Feedback
	averageRating     decimal.Decimal
	sessionsCompleted int
	createdAt         time.Time
}

// Draft is a validated listing that has not been assigned an id yet.
type Draft struct {
	Owner       identity.Identity
	Name        string
	Description string
	Rate        Rate
	Category    Category
	Level       Level
	Slots       []Slot
}

func NewDraft(owner identity.Identity, name, description string, rate Rate, category Category, level Level, slots []Slot) (Draft, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return Draft{}, ErrEmptyName
	}
	d := strings.TrimSpace(description)
	if d == "" {
		return Draft{}, ErrEmptyDescription
	}
	if len(slots) == 0 {
		return Draft{}, ErrNoSlots
	}
	seen := make(map[string]struct{}, len(slots))
	for _, s := range slots {
		if _, dup := seen[s.Label()]; dup {
			return Draft{}, ErrDuplicateSlot
		}
		seen[s.Label()] = struct{}{}
	}
	return Draft{
		Owner:       owner,
		Name:        n,
		Description: d,
		Rate:        rate,
		Category:    category,
		Level:       level,
		Slots:       append([]Slot(nil), slots...),
	}, nil
}

func NewSkill(id uint64, d Draft, now time.Time) *Skill {
	return &Skill{
		id:            id,
		owner:         d.Owner,
		name:          d.Name,
		description:   d.Description,
		rate:          d.Rate,
		category:      d.Category,
		level:         d.Level,
		slots:         append([]Slot(nil), d.Slots...),
		averageRating: decimal.Zero,
		createdAt:     now,
	}
}

// AppendFeedback adds an entry to the log and folds its rating into the
// rolling average.
func (s *Skill) AppendFeedback(f review.Feedback) error {
	if f.SkillID() != s.id {
		return ErrFeedbackSkillMiss
	}
	s.averageRating = review.RollingAverage(s.averageRating, len(s.feedbacks), f.Rating())
	s.feedbacks = append(s.feedbacks, f)
	return nil
}

func (s *Skill) RecordCompletedSession() {
	s.sessionsCompleted++
}

func (s *Skill) Slot(label string) (Slot, error) {
	for _, sl := range s.slots {
		if sl.Label() == label {
			return sl, nil
		}
	}
	return Slot{}, ErrSlotNotFound
}

// Clone returns a copy that shares no mutable state with s.
func (s *Skill) Clone() *Skill {
	c := *s
	c.slots = append([]Slot(nil), s.slots...)
	c.feedbacks = append([]review.Feedback(nil), s.feedbacks...)
	return &c
}

func (s *Skill) ID() uint64                     { return s.id }
func (s *Skill) Owner() identity.Identity       { return s.owner }
func (s *Skill) Name() string                   { return s.name }
func (s *Skill) Description() string            { return s.description }
func (s *Skill) Rate() Rate                     { return s.rate }
func (s *Skill) Category() Category             { return s.category }
func (s *Skill) Level() Level                   { return s.level }
func (s *Skill) Slots() []Slot                  { return append([]Slot(nil), s.slots...) }
func (s *Skill) Feedbacks() []review.Feedback   { return append([]review.Feedback(nil), s.feedbacks...) }
func (s *Skill) FeedbackCount() int             { return len(s.feedbacks) }
func (s *Skill) AverageRating() decimal.Decimal { return s.averageRating }
func (s *Skill) SessionsCompleted() int         { return s.sessionsCompleted }
func (s *Skill) CreatedAt() time.Time           { return s.createdAt }

// ReconstructSkill rebuilds a skill with an existing rating history, e.g.
// from a registry snapshot.
func ReconstructSkill(id uint64, d Draft, feedbacks []review.Feedback, average decimal.Decimal, sessionsCompleted int, createdAt time.Time) *Skill {
	s := NewSkill(id, d, createdAt)
	s.feedbacks = append([]review.Feedback(nil), feedbacks...)
	s.averageRating = average
	s.sessionsCompleted = sessionsCompleted
	return s
}

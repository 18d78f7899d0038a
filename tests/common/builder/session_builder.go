//go:build unit || e2e

package builder

import (
	"time"

	"skill-swap-core/internal/domain/identity"
	"skill-swap-core/internal/domain/session"

	"github.com/shopspring/decimal"
)

type SessionBuilder struct {
	ID            uint64
	SkillID       uint64
	Student       string
	Teacher       string
	SlotLabel     string
	MeetingLink   string
	Hours         int
	Amount        string
	TransactionID string
	Completed     bool
	Cancelled     bool
	AwardStatus   session.AwardStatus
	AwardedAsset  string
}

func NewSessionBuilder() *SessionBuilder {
	return &SessionBuilder{
		ID:            7,
		SkillID:       1,
		Student:       "STUDENT-1",
		Teacher:       "TEACHER-1",
		SlotLabel:     "Monday 10 AM",
		MeetingLink:   "https://meet.example.com/go-1",
		Hours:         1,
		Amount:        "25",
		TransactionID: "TX-000001",
		AwardStatus:   session.AwardNone,
	}
}

func (b *SessionBuilder) With(mutate func(*SessionBuilder)) *SessionBuilder {
	mutate(b)
	return b
}

func (b *SessionBuilder) BuildBooking() session.Booking {
	return session.Booking{
		SkillID:       b.SkillID,
		Student:       identity.MustParse(b.Student),
		Teacher:       identity.MustParse(b.Teacher),
		SlotLabel:     b.SlotLabel,
		MeetingLink:   b.MeetingLink,
		Hours:         b.Hours,
		Amount:        decimal.RequireFromString(b.Amount),
		TransactionID: b.TransactionID,
	}
}

// BuildDomain returns a fresh session unless the builder sets a later state,
// in which case the session is rebuilt as stored.
func (b *SessionBuilder) BuildDomain(now time.Time) *session.Session {
	if !b.Completed && !b.Cancelled && b.AwardStatus == session.AwardNone {
		return session.NewSession(b.ID, b.BuildBooking(), now)
	}
	var asset *string
	if b.AwardedAsset != "" {
		asset = &b.AwardedAsset
	}
	return session.ReconstructSession(b.ID, b.BuildBooking(), b.Completed, b.Cancelled, b.AwardStatus, asset, now)
}

package session

import (
	"time"

	"skill-swap-core/internal/domain/identity"

	"github.com/shopspring/decimal"
)

type Booking struct {
	SkillID       uint64
	Student       identity.Identity
	Teacher       identity.Identity
	SlotLabel     string
	MeetingLink   string
	Hours         int
	Amount        decimal.Decimal
	TransactionID string
}

type Session struct {
	id             uint64
	booking        Booking
	completed      bool
	cancelled      bool
	awardStatus    AwardStatus
	awardedAssetID *string
	awardError     string
	createdAt      time.Time
	completedAt    *time.Time
	cancelledAt    *time.Time
}

func NewSession(id uint64, b Booking, now time.Time) *Session {
	return &Session{
		id:          id,
		booking:     b,
		awardStatus: AwardNone,
		createdAt:   now,
	}
}

// Complete flips completed exactly once and moves the award into minting.
func (s *Session) Complete(caller identity.Identity, now time.Time) error {
	if s.cancelled {
		return ErrSessionCancelled
	}
	if !caller.Equal(s.booking.Teacher) {
		return ErrNotTeacher
	}
	if s.completed {
		return ErrAlreadyCompleted
	}
	s.completed = true
	s.completedAt = &now
	s.awardStatus = AwardMinting
	return nil
}

func (s *Session) RecordAward(assetID string) error {
	if assetID == "" {
		return ErrEmptyAssetID
	}
	switch s.awardStatus {
	case AwardMinting, AwardPending:
	case AwardIssued:
		return ErrAlreadyAwarded
	default:
		return ErrAwardNotAwaited
	}
	s.awardedAssetID = &assetID
	s.awardStatus = AwardIssued
	s.awardError = ""
	return nil
}

func (s *Session) MarkAwardPending(reason string) error {
	switch s.awardStatus {
	case AwardMinting, AwardPending:
	case AwardIssued:
		return ErrAlreadyAwarded
	default:
		return ErrAwardNotAwaited
	}
	s.awardStatus = AwardPending
	s.awardError = reason
	return nil
}

// ResumeAward claims a pending award for another mint.
func (s *Session) ResumeAward() error {
	if s.awardStatus != AwardPending {
		return ErrAwardNotAwaited
	}
	s.awardStatus = AwardMinting
	return nil
}

func (s *Session) Cancel(caller identity.Identity, now time.Time) error {
	if !caller.Equal(s.booking.Student) {
		return ErrNotStudent
	}
	if s.completed {
		return ErrAlreadyCompleted
	}
	if s.cancelled {
		return ErrAlreadyCancelled
	}
	s.cancelled = true
	s.cancelledAt = &now
	return nil
}

func (s *Session) Status() Status {
	switch {
	case s.completed:
		return StatusCompleted
	case s.cancelled:
		return StatusCancelled
	default:
		return StatusBooked
	}
}

func (s *Session) IsParticipant(id identity.Identity) bool {
	return id.Equal(s.booking.Student) || id.Equal(s.booking.Teacher)
}

func (s *Session) Clone() *Session {
	c := *s
	if s.awardedAssetID != nil {
		v := *s.awardedAssetID
		c.awardedAssetID = &v
	}
	if s.completedAt != nil {
		v := *s.completedAt
		c.completedAt = &v
	}
	if s.cancelledAt != nil {
		v := *s.cancelledAt
		c.cancelledAt = &v
	}
	return &c
}

func (s *Session) ID() uint64                 { return s.id }
func (s *Session) Booking() Booking           { return s.booking }
func (s *Session) SkillID() uint64            { return s.booking.SkillID }
func (s *Session) Student() identity.Identity { return s.booking.Student }
func (s *Session) Teacher() identity.Identity { return s.booking.Teacher }
func (s *Session) SlotLabel() string          { return s.booking.SlotLabel }
func (s *Session) Hours() int                 { return s.booking.Hours }
func (s *Session) IsCompleted() bool          { return s.completed }
func (s *Session) IsCancelled() bool          { return s.cancelled }
func (s *Session) AwardStatus() AwardStatus   { return s.awardStatus }
func (s *Session) AwardedAssetID() *string    { return s.awardedAssetID }
func (s *Session) AwardError() string         { return s.awardError }
func (s *Session) CreatedAt() time.Time       { return s.createdAt }
func (s *Session) CompletedAt() *time.Time    { return s.completedAt }
func (s *Session) CancelledAt() *time.Time    { return s.cancelledAt }

func ReconstructSession(id uint64, b Booking, completed, cancelled bool, awardStatus AwardStatus, awardedAssetID *string, createdAt time.Time) *Session {
	return &Session{
		id:             id,
		booking:        b,
		completed:      completed,
		cancelled:      cancelled,
		awardStatus:    awardStatus,
		awardedAssetID: awardedAssetID,
		createdAt:      createdAt,
	}
}

package queries

import (
	"time"

	"github.com/shopspring/decimal"
)

type SlotView struct {
	Label       string
	MeetingLink string
	Booked      bool
	BookedBy    string
}

type SkillView struct {
	ID                uint64
	Owner             string
	Name              string
	Description       string
	Rate              decimal.Decimal
	Category          string
	Level             string
	Slots             []SlotView
	AverageRating     decimal.Decimal
	FeedbackCount     int
	SessionsCompleted int
	CreatedAt         time.Time
}

type FeedbackView struct {
	ID        uint64
	SkillID   uint64
	Student   string
	Rating    int
	Comment   string
	CreatedAt time.Time
}

type SessionView struct {
	ID             uint64
	SkillID        uint64
	Student        string
	Teacher        string
	SlotLabel      string
	MeetingLink    string
	Hours          int
	Amount         decimal.Decimal
	TransactionID  string
	Status         string
	Completed      bool
	AwardStatus    string
	AwardedAssetID *string
	CreatedAt      time.Time
	CompletedAt    *time.Time
}

type ReputationView struct {
	Identity       string
	Name           string
	Reputation     int
	SkillsListed   int
	SessionsTaught int
	RegisteredAt   time.Time
}

type NotificationView struct {
	Level   string
	Topic   string
	Message string
	Fields  map[string]string
	At      time.Time
}

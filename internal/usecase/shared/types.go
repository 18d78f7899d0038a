package shared

import (
	"context"
	"time"

	"skill-swap-core/internal/domain/booking"
	"skill-swap-core/internal/domain/identity"
	dompayment "skill-swap-core/internal/domain/payment"
	"skill-swap-core/internal/domain/session"
	"skill-swap-core/internal/domain/skill"
	"skill-swap-core/internal/domain/user"
	"skill-swap-core/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrAlreadyBooked = errs.New("slot already booked")

// SlotLedger is the single writer of slot booked-state.
type SlotLedger interface {
	IsAvailable(ctx context.Context, skillID uint64, slotLabel string) (bool, error)
	// Reserve returns ErrAlreadyBooked when another payer holds the slot.
	Reserve(ctx context.Context, skillID uint64, slotLabel string, payer identity.Identity) error
	Release(ctx context.Context, skillID uint64, slotLabel string) error
	Holder(ctx context.Context, skillID uint64, slotLabel string) (identity.Identity, bool, error)
}

type SkillFilter struct {
	Owner    *identity.Identity
	Category *skill.Category
	Level    *skill.Level
	MinRate  *decimal.Decimal
	MaxRate  *decimal.Decimal
}

type SkillRepository interface {
	Save(ctx context.Context, s *skill.Skill) error
	FindByID(ctx context.Context, id uint64) (*skill.Skill, error)
	List(ctx context.Context, filter SkillFilter) ([]*skill.Skill, error)
	// Update applies fn to the stored skill under the store's lock.
	Update(ctx context.Context, id uint64, fn func(s *skill.Skill) error) (*skill.Skill, error)
}

type SessionFilter struct {
	Participant *identity.Identity
	AwardStatus *session.AwardStatus
}

type SessionRepository interface {
	NextID(ctx context.Context) (uint64, error)
	Save(ctx context.Context, s *session.Session) error
	FindByID(ctx context.Context, id uint64) (*session.Session, error)
	List(ctx context.Context, filter SessionFilter) ([]*session.Session, error)
	Update(ctx context.Context, id uint64, fn func(s *session.Session) error) (*session.Session, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByIdentity(ctx context.Context, id identity.Identity) (*user.User, error)
	Update(ctx context.Context, id identity.Identity, fn func(u *user.User) error) (*user.User, error)
}

const (
	IdempotencyProcessing = "processing"
	IdempotencyCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key         uuid.UUID
	Owner       string
	Endpoint    string
	Status      string
	RequestHash string
	Attempt     *booking.Attempt
	ExpiresAt   time.Time
}

type IdempotencyRepository interface {
	// TryInsert reports false when a live record already holds the key.
	TryInsert(ctx context.Context, key uuid.UUID, owner, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	Get(ctx context.Context, key uuid.UUID, owner string) (*IdempotencyRecord, error)
	Complete(ctx context.Context, key uuid.UUID, owner string, attempt *booking.Attempt) error
	Delete(ctx context.Context, key uuid.UUID, owner string) error
}

// PaymentExecutor performs one external transfer.
type PaymentExecutor interface {
	Name() string
	Execute(ctx context.Context, p dompayment.Payment) (string, error)
}

// PaymentGateway invokes exec exactly once and maps its failure into a
// *payment.Error.
type PaymentGateway interface {
	Pay(ctx context.Context, exec PaymentExecutor, p dompayment.Payment) (string, error)
}

type SkillListing struct {
	Name     string
	Category string
	Level    string
	Rate     decimal.Decimal
	Slots    []string
}

type SessionRecord struct {
	SessionID     uint64
	SkillID       uint64
	Student       identity.Identity
	Teacher       identity.Identity
	SlotLabel     string
	TransactionID string
}

// ContractClient is the external system of record.
type ContractClient interface {
	RegisterUser(ctx context.Context, id identity.Identity, name string) error
	ListSkill(ctx context.Context, owner identity.Identity, listing SkillListing) (uint64, error)
	BookSession(ctx context.Context, rec SessionRecord) error
	CompleteSession(ctx context.Context, sessionID uint64, teacher identity.Identity) error
	// ClaimAward mints the completion asset to the recipient.
	ClaimAward(ctx context.Context, sessionID uint64, recipient identity.Identity) (string, error)
}

type NotificationLevel string

const (
	LevelInfo    NotificationLevel = "info"
	LevelWarning NotificationLevel = "warning"
	LevelSuccess NotificationLevel = "success"
	LevelError   NotificationLevel = "error"
)

type Notification struct {
	Level     NotificationLevel
	Topic     string
	Message   string
	Recipient identity.Identity
	Fields    map[string]string
	At        time.Time
}

// Notifier is fire-and-forget.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

type EligibilityChecker interface {
	CanReview(ctx context.Context, skillID uint64, student identity.Identity) error
}

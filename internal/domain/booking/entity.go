package booking

import (
	"time"

	"skill-swap-core/internal/domain/identity"
	"skill-swap-core/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Attempt is the ephemeral lifecycle of one user booking action.
type Attempt struct {
	id             uuid.UUID
	skillID        uint64
	slotLabel      string
	payer          identity.Identity
	receiver       identity.Identity
	amount         decimal.Decimal
	hours          int
	state          State
	transactionID  string
	fallbackUsed   bool
	refundRequired bool
	reason         string
	sessionID      uint64
	startedAt      time.Time
	finishedAt     time.Time
}

func NewAttempt(id uuid.UUID, skillID uint64, slotLabel string, payer identity.Identity, hours int, now time.Time) *Attempt {
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Attempt{
		id:        id,
		skillID:   skillID,
		slotLabel: slotLabel,
		payer:     payer,
		hours:     hours,
		state:     StateInitiated,
		startedAt: now,
	}
}

// Price fixes the amount and receiver before any payment is attempted.
func (a *Attempt) Price(amount decimal.Decimal, receiver identity.Identity) error {
	if a.state != StateInitiated {
		return a.illegal("price")
	}
	if !amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	a.amount = amount
	a.receiver = receiver
	return nil
}

func (a *Attempt) FailValidation(reason string, now time.Time) error {
	if a.state != StateInitiated {
		return a.illegal("fail validation")
	}
	return a.finish(StateValidationFailed, reason, now)
}

// Conflict ends the attempt on an unavailable slot. refundRequired is set
// when the payer has already been charged.
func (a *Attempt) Conflict(reason string, refundRequired bool, now time.Time) error {
	switch a.state {
	case StateInitiated, StatePaymentConfirmed:
	default:
		return a.illegal("conflict")
	}
	if refundRequired && a.state != StatePaymentConfirmed {
		return a.illegal("refund before payment")
	}
	a.refundRequired = refundRequired
	return a.finish(StateSlotConflict, reason, now)
}

func (a *Attempt) BeginPayment() error {
	if a.state != StateInitiated {
		return a.illegal("begin payment")
	}
	if !a.amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	a.state = StatePaymentPending
	return nil
}

func (a *Attempt) ConfirmPayment(txID string, viaFallback bool) error {
	if a.state != StatePaymentPending {
		return a.illegal("confirm payment")
	}
	a.transactionID = txID
	a.fallbackUsed = viaFallback
	a.state = StatePaymentConfirmed
	return nil
}

func (a *Attempt) FailPayment(reason string, fallbackTried bool, now time.Time) error {
	if a.state != StatePaymentPending {
		return a.illegal("fail payment")
	}
	a.fallbackUsed = fallbackTried
	return a.finish(StatePaymentFailed, reason, now)
}

func (a *Attempt) Commit(sessionID uint64, now time.Time) error {
	if a.state != StatePaymentConfirmed {
		return a.illegal("commit")
	}
	a.sessionID = sessionID
	return a.finish(StateSlotCommitted, "session booked", now)
}

func (a *Attempt) finish(state State, reason string, now time.Time) error {
	a.state = state
	a.reason = reason
	a.finishedAt = now
	return nil
}

func (a *Attempt) illegal(op string) error {
	return errs.Mark(errs.Newf("cannot %s in state %s", op, a.state), ErrIllegalTransition)
}

func (a *Attempt) ID() uuid.UUID               { return a.id }
func (a *Attempt) SkillID() uint64             { return a.skillID }
func (a *Attempt) SlotLabel() string           { return a.slotLabel }
func (a *Attempt) Payer() identity.Identity    { return a.payer }
func (a *Attempt) Receiver() identity.Identity { return a.receiver }
func (a *Attempt) Amount() decimal.Decimal     { return a.amount }
func (a *Attempt) Hours() int                  { return a.hours }
func (a *Attempt) State() State                { return a.state }
func (a *Attempt) TransactionID() string       { return a.transactionID }
func (a *Attempt) FallbackUsed() bool          { return a.fallbackUsed }
func (a *Attempt) RefundRequired() bool        { return a.refundRequired }
func (a *Attempt) Reason() string              { return a.reason }
func (a *Attempt) SessionID() uint64           { return a.sessionID }
func (a *Attempt) StartedAt() time.Time        { return a.startedAt }
func (a *Attempt) FinishedAt() time.Time       { return a.finishedAt }

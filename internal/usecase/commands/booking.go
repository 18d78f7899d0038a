package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"skill-swap-core/internal/domain/auth"
	"skill-swap-core/internal/domain/booking"
	"skill-swap-core/internal/domain/identity"
	dompayment "skill-swap-core/internal/domain/payment"
	"skill-swap-core/internal/domain/session"
	"skill-swap-core/internal/domain/skill"
	"skill-swap-core/internal/infra"
	"skill-swap-core/internal/pkg/clock"
	"skill-swap-core/internal/pkg/errs"
	"skill-swap-core/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	bookingEndpoint = "POST /skills/:id/bookings"
	idempotencyTTL  = 24 * time.Hour
)

type BookingInput struct {
	SkillID   uint64
	SlotLabel string
	// Hours is only priced under hourly pricing.
	Hours int
	// AllowFallback lets this attempt retry once through the key-based
	// executor when the primary signer is unavailable.
	AllowFallback  bool
	IdempotencyKey uuid.UUID
}

type BookingResult struct {
	Attempt  *booking.Attempt
	Session  *session.Session
	Replayed bool
}

type BookingCommands interface {
	// Book always returns a terminal attempt when the result is non-nil.
	// The error is nil only for SlotCommitted.
	Book(ctx context.Context, sc auth.SessionContext, in BookingInput) (*BookingResult, error)
}

type BookingPolicy struct {
	Pricing       booking.PriceCalculator
	ReservePolicy booking.ReservePolicy
	// Escrow receives payments when set; otherwise the skill owner does.
	Escrow identity.Identity
}

type PaymentExecutors struct {
	Primary  shared.PaymentExecutor
	Fallback shared.PaymentExecutor // nil disables the fallback path
}

type bookingUseCaseImpl struct {
	skills      shared.SkillRepository
	sessions    shared.SessionRepository
	slots       shared.SlotLedger
	idempotency shared.IdempotencyRepository
	gateway     shared.PaymentGateway
	executors   PaymentExecutors
	registry    shared.ContractClient
	notifier    shared.Notifier
	policy      BookingPolicy
	clock       clock.Clock
}

func NewBookingUseCase(
	skills shared.SkillRepository,
	sessions shared.SessionRepository,
	slots shared.SlotLedger,
	idempotency shared.IdempotencyRepository,
	gateway shared.PaymentGateway,
	executors PaymentExecutors,
	registry shared.ContractClient,
	notifier shared.Notifier,
	policy BookingPolicy,
	clock clock.Clock,
) BookingCommands {
	if policy.Pricing == nil {
		policy.Pricing = booking.FlatRateCalculator{}
	}
	if policy.ReservePolicy == "" {
		policy.ReservePolicy = booking.ReserveAfterPayment
	}
	return &bookingUseCaseImpl{
		skills:      skills,
		sessions:    sessions,
		slots:       slots,
		idempotency: idempotency,
		gateway:     gateway,
		executors:   executors,
		registry:    registry,
		notifier:    notifier,
		policy:      policy,
		clock:       clock,
	}
}

func (uc *bookingUseCaseImpl) Book(ctx context.Context, sc auth.SessionContext, in BookingInput) (*BookingResult, error) {
	payer, err := sc.RequireIdentity()
	if err != nil {
		return nil, validation(err)
	}
	if in.IdempotencyKey == uuid.Nil {
		return uc.book(ctx, payer, in)
	}

	owner := payer.String()
	replayed, err := uc.handleIdempotency(ctx, in.IdempotencyKey, owner, uc.requestHash(in))
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return replayed, outcomeError(replayed.Attempt)
	}

	result, err := uc.book(ctx, payer, in)
	detached := context.WithoutCancel(ctx)
	if result == nil {
		// Nothing terminal happened, so the key may be used again.
		if delErr := uc.idempotency.Delete(detached, in.IdempotencyKey, owner); delErr != nil {
			slog.Warn("failed to release idempotency key", "key", in.IdempotencyKey, "error", delErr)
		}
		return nil, err
	}
	if cErr := uc.idempotency.Complete(detached, in.IdempotencyKey, owner, result.Attempt); cErr != nil {
		slog.Warn("failed to record idempotent booking outcome", "key", in.IdempotencyKey, "error", cErr)
	}
	return result, err
}

func (uc *bookingUseCaseImpl) handleIdempotency(ctx context.Context, key uuid.UUID, owner, requestHash string) (*BookingResult, error) {
	inserted, err := uc.idempotency.TryInsert(ctx, key, owner, bookingEndpoint, requestHash, uc.clock.Now().Add(idempotencyTTL))
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if inserted {
		return nil, nil
	}

	existing, err := uc.idempotency.Get(ctx, key, owner)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if existing.RequestHash != requestHash {
		return nil, errs.Mark(ErrDuplicateRequest, errs.ErrConflict)
	}

	switch existing.Status {
	case shared.IdempotencyCompleted:
		if existing.Attempt == nil {
			return nil, errs.New("completed idempotency record missing booking outcome")
		}
		result := &BookingResult{Attempt: existing.Attempt, Replayed: true}
		if id := existing.Attempt.SessionID(); id != 0 {
			sess, err := uc.sessions.FindByID(ctx, id)
			if err != nil {
				return nil, errs.Mark(err, ErrStoreFailure)
			}
			result.Session = sess
		}
		return result, nil
	case shared.IdempotencyProcessing:
		return nil, errs.Mark(ErrRequestInProgress, errs.ErrConflict)
	default:
		return nil, errs.Newf("invalid idempotency key status %q", existing.Status)
	}
}

func (uc *bookingUseCaseImpl) book(ctx context.Context, payer identity.Identity, in BookingInput) (*BookingResult, error) {
	attempt := booking.NewAttempt(uuid.New(), in.SkillID, in.SlotLabel, payer, in.Hours, uc.clock.Now())
	logger := slog.With(
		slog.String("attempt_id", attempt.ID().String()),
		slog.Uint64("skill_id", in.SkillID),
		slog.String("slot", in.SlotLabel),
		slog.String("payer", payer.String()),
	)
	uc.emit(ctx, attempt, shared.LevelInfo, "booking.initiated", "Booking started")

	sk, err := uc.skills.FindByID(ctx, in.SkillID)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrStoreFailure)
		}
		return uc.failValidation(ctx, attempt, validation(notFound(err, ErrSkillNotFound)))
	}
	slot, err := uc.price(attempt, sk)
	if err != nil {
		return uc.failValidation(ctx, attempt, validation(err))
	}

	held := false
	if uc.policy.ReservePolicy == booking.ReserveHold {
		if err := uc.slots.Reserve(ctx, sk.ID(), slot.Label(), payer); err != nil {
			if !errs.Is(err, shared.ErrAlreadyBooked) {
				return nil, errs.Mark(err, ErrStoreFailure)
			}
			return uc.conflict(ctx, attempt, err)
		}
		held = true
	} else {
		available, err := uc.slots.IsAvailable(ctx, sk.ID(), slot.Label())
		if err != nil {
			return nil, errs.Mark(err, ErrStoreFailure)
		}
		if !available {
			return uc.conflict(ctx, attempt, shared.ErrAlreadyBooked)
		}
	}

	if err := attempt.BeginPayment(); err != nil {
		return nil, err
	}
	uc.emit(ctx, attempt, shared.LevelInfo, "booking.payment_pending", "Waiting for payment confirmation")
	txID, viaFallback, payErr := uc.pay(ctx, attempt, in.AllowFallback)

	// From here on the attempt must reach a terminal state even if the
	// caller goes away.
	detached := context.WithoutCancel(ctx)
	if payErr != nil {
		if held {
			if relErr := uc.slots.Release(detached, sk.ID(), slot.Label()); relErr != nil {
				logger.Error("failed to release held slot after payment failure", "error", relErr)
			}
		}
		if err := attempt.FailPayment(payErr.Error(), viaFallback, uc.clock.Now()); err != nil {
			return nil, err
		}
		logger.Warn("booking payment failed", "state", attempt.State(), "fallback", viaFallback, "error", payErr)
		uc.emit(detached, attempt, shared.LevelError, "booking.payment_failed", "Payment failed: "+payErr.Error())
		return &BookingResult{Attempt: attempt}, errs.Wrap(payErr, "booking payment failed")
	}
	if err := attempt.ConfirmPayment(txID, viaFallback); err != nil {
		return nil, err
	}
	logger.Info("booking payment confirmed", "tx_id", txID, "fallback", viaFallback)

	if !held {
		if err := uc.slots.Reserve(detached, sk.ID(), slot.Label(), payer); err != nil {
			return uc.conflict(detached, attempt, err)
		}
	}
	return uc.commit(detached, attempt, sk, slot)
}

// price fixes the amount and receiver, or reports why the input is invalid.
func (uc *bookingUseCaseImpl) price(a *booking.Attempt, sk *skill.Skill) (skill.Slot, error) {
	if a.SlotLabel() == "" {
		return skill.Slot{}, skill.ErrEmptySlotLabel
	}
	slot, err := sk.Slot(a.SlotLabel())
	if err != nil {
		return skill.Slot{}, err
	}
	if a.Payer().Equal(sk.Owner()) {
		return skill.Slot{}, booking.ErrSelfBooking
	}
	amount, err := uc.policy.Pricing.AmountDue(sk.Rate(), a.Hours())
	if err != nil {
		return skill.Slot{}, err
	}
	receiver := sk.Owner()
	if !uc.policy.Escrow.IsZero() {
		receiver = uc.policy.Escrow
	}
	if err := a.Price(amount, receiver); err != nil {
		return skill.Slot{}, err
	}
	return slot, nil
}

func (uc *bookingUseCaseImpl) pay(ctx context.Context, a *booking.Attempt, allowFallback bool) (string, bool, error) {
	p := dompayment.Payment{
		Amount:   a.Amount(),
		Sender:   a.Payer(),
		Receiver: a.Receiver(),
		Memo:     fmt.Sprintf("skill:%d slot:%s", a.SkillID(), a.SlotLabel()),
	}
	txID, err := uc.gateway.Pay(ctx, uc.executors.Primary, p)
	if err == nil {
		return txID, false, nil
	}
	if !allowFallback || uc.executors.Fallback == nil || !errs.Is(err, dompayment.ErrSignerUnavailable) {
		return "", false, err
	}

	slog.Warn("primary signer unavailable, using fallback executor",
		"attempt_id", a.ID().String(),
		"executor", uc.executors.Fallback.Name())
	uc.emit(ctx, a, shared.LevelWarning, "booking.payment_fallback", "Wallet signer unavailable, trying key-based payment")
	txID, err = uc.gateway.Pay(ctx, uc.executors.Fallback, p)
	if err != nil {
		return "", true, err
	}
	return txID, true, nil
}

func (uc *bookingUseCaseImpl) commit(ctx context.Context, a *booking.Attempt, sk *skill.Skill, slot skill.Slot) (*BookingResult, error) {
	sessionID, err := uc.sessions.NextID(ctx)
	var sess *session.Session
	if err == nil {
		sess = session.NewSession(sessionID, session.Booking{
			SkillID:       sk.ID(),
			Student:       a.Payer(),
			Teacher:       sk.Owner(),
			SlotLabel:     slot.Label(),
			MeetingLink:   slot.MeetingLink(),
			Hours:         uc.policy.Pricing.BilledHours(a.Hours()),
			Amount:        a.Amount(),
			TransactionID: a.TransactionID(),
		}, uc.clock.Now())
		err = uc.sessions.Save(ctx, sess)
	}
	if err != nil {
		if relErr := uc.slots.Release(ctx, sk.ID(), slot.Label()); relErr != nil {
			slog.Error("failed to release slot after session store failure", "skill_id", sk.ID(), "slot", slot.Label(), "error", relErr)
		}
		return uc.conflict(ctx, a, errs.Mark(err, ErrStoreFailure))
	}

	if err := a.Commit(sessionID, uc.clock.Now()); err != nil {
		return nil, err
	}
	slog.Info("booking committed",
		"attempt_id", a.ID().String(),
		"session_id", sessionID,
		"skill_id", sk.ID(),
		"slot", slot.Label(),
		"tx_id", a.TransactionID())
	uc.emit(ctx, a, shared.LevelSuccess, "booking.committed", fmt.Sprintf("Session %d booked for %s", sessionID, slot.Label()))

	rec := shared.SessionRecord{
		SessionID:     sessionID,
		SkillID:       sk.ID(),
		Student:       a.Payer(),
		Teacher:       sk.Owner(),
		SlotLabel:     slot.Label(),
		TransactionID: a.TransactionID(),
	}
	if err := uc.registry.BookSession(ctx, rec); err != nil {
		slog.Warn("registry did not record booked session", "session_id", sessionID, "error", err)
		uc.emit(ctx, a, shared.LevelWarning, "booking.registry_unsynced", "Booking saved locally; registry update failed")
	}
	return &BookingResult{Attempt: a, Session: sess}, nil
}

func (uc *bookingUseCaseImpl) failValidation(ctx context.Context, a *booking.Attempt, cause error) (*BookingResult, error) {
	if err := a.FailValidation(cause.Error(), uc.clock.Now()); err != nil {
		return nil, err
	}
	uc.emit(ctx, a, shared.LevelError, "booking.validation_failed", "Booking rejected: "+cause.Error())
	return &BookingResult{Attempt: a}, cause
}

// conflict ends the attempt on an unavailable slot. A refund is flagged
// whenever payment was already confirmed.
func (uc *bookingUseCaseImpl) conflict(ctx context.Context, a *booking.Attempt, cause error) (*BookingResult, error) {
	refund := a.State() == booking.StatePaymentConfirmed
	reason := "slot already booked"
	if !errs.Is(cause, shared.ErrAlreadyBooked) {
		reason = "slot could not be committed"
	}
	if refund {
		reason += "; payment " + a.TransactionID() + " requires a refund"
	}
	if err := a.Conflict(reason, refund, uc.clock.Now()); err != nil {
		return nil, err
	}
	level := shared.LevelWarning
	if refund {
		level = shared.LevelError
		slog.Error("booking lost slot after payment", "attempt_id", a.ID().String(), "tx_id", a.TransactionID(), "error", cause)
	}
	uc.emit(ctx, a, level, "booking.slot_conflict", "Booking failed: "+reason)
	return &BookingResult{Attempt: a}, errs.Mark(errs.Mark(errs.Wrap(cause, reason), ErrSlotConflict), errs.ErrConflict)
}

func (uc *bookingUseCaseImpl) emit(ctx context.Context, a *booking.Attempt, level shared.NotificationLevel, topic, msg string) {
	fields := map[string]string{
		"attempt_id": a.ID().String(),
		"skill_id":   fmt.Sprint(a.SkillID()),
		"slot":       a.SlotLabel(),
		"state":      a.State().String(),
	}
	if a.TransactionID() != "" {
		fields["tx_id"] = a.TransactionID()
	}
	uc.notifier.Notify(ctx, shared.Notification{
		Level:     level,
		Topic:     topic,
		Message:   msg,
		Recipient: a.Payer(),
		Fields:    fields,
		At:        uc.clock.Now(),
	})
}

// outcomeError rebuilds the error category of a stored terminal attempt.
func outcomeError(a *booking.Attempt) error {
	switch a.State() {
	case booking.StateSlotCommitted:
		return nil
	case booking.StateValidationFailed:
		return validation(errs.New(a.Reason()))
	case booking.StatePaymentFailed:
		return errs.Mark(errs.New(a.Reason()), errs.ErrPaymentFailed)
	case booking.StateSlotConflict:
		return errs.Mark(errs.Mark(errs.New(a.Reason()), ErrSlotConflict), errs.ErrConflict)
	default:
		return errs.Newf("booking attempt %s is not terminal: %s", a.ID(), a.State())
	}
}

// requestHash fingerprints what a booking charges and books. Hours count as
// billed so that a retry differing only in ignored hours still replays.
func (uc *bookingUseCaseImpl) requestHash(in BookingInput) string {
	data, _ := json.Marshal(struct {
		SkillID       uint64 `json:"skill_id"`
		SlotLabel     string `json:"slot_label"`
		BilledHours   int    `json:"billed_hours"`
		AllowFallback bool   `json:"allow_fallback"`
	}{in.SkillID, in.SlotLabel, uc.policy.Pricing.BilledHours(in.Hours), in.AllowFallback})
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

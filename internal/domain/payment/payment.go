package payment

import (
	"skill-swap-core/internal/domain/identity"
	"skill-swap-core/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type Reason string

const (
	ReasonSignerUnavailable Reason = "signer_unavailable"
	ReasonRejectedByNetwork Reason = "rejected_by_network"
	ReasonInvalidReceiver   Reason = "invalid_receiver"
)

var (
	ErrSignerUnavailable = errs.New("payment signer unavailable")
	ErrRejectedByNetwork = errs.New("payment rejected by network")
	ErrInvalidReceiver   = errs.New("payment receiver invalid")
	ErrNonPositiveAmount = errs.New("payment amount must be positive")
	ErrInvalidSender     = errs.New("payment sender invalid")
)

// Error is the only failure shape a payment attempt surfaces.
type Error struct {
	Reason   Reason
	Executor string
	err      error
}

func NewError(reason Reason, executor string, cause error) *Error {
	return &Error{Reason: reason, Executor: executor, err: cause}
}

func (e *Error) Error() string {
	msg := "payment failed (" + string(e.Reason) + ")"
	if e.Executor != "" {
		msg += " via " + e.Executor
	}
	if e.err != nil {
		msg += ": " + e.err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.err }

// Is lets errors.Is match the reason sentinels directly.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrSignerUnavailable:
		return e.Reason == ReasonSignerUnavailable
	case ErrRejectedByNetwork:
		return e.Reason == ReasonRejectedByNetwork
	case ErrInvalidReceiver:
		return e.Reason == ReasonInvalidReceiver
	case errs.ErrPaymentFailed:
		return true
	}
	return false
}

func ReasonOf(err error) (Reason, bool) {
	var pe *Error
	if errs.As(err, &pe) {
		return pe.Reason, true
	}
	return "", false
}

// Payment is one transfer request handed to an executor.
type Payment struct {
	Amount   decimal.Decimal
	Sender   identity.Identity
	Receiver identity.Identity
	Memo     string
}

func (p Payment) Validate() error {
	if !p.Amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	if p.Sender.IsZero() {
		return ErrInvalidSender
	}
	if p.Receiver.IsZero() {
		return NewError(ReasonInvalidReceiver, "", ErrInvalidReceiver)
	}
	return nil
}

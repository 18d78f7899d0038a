package booking

import "skill-swap-core/internal/pkg/errs"

var (
	ErrIllegalTransition = errs.New("illegal booking state transition")
	ErrInvalidHours      = errs.New("hours must be at least 1")
	ErrNonPositiveAmount = errs.New("amount due must be positive")
	ErrSelfBooking       = errs.New("teachers cannot book their own skill")
)

type State string

const (
	StateInitiated        State = "initiated"
	StatePaymentPending   State = "payment_pending"
	StatePaymentConfirmed State = "payment_confirmed"
	StateSlotCommitted    State = "slot_committed"
	StateValidationFailed State = "validation_failed"
	StatePaymentFailed    State = "payment_failed"
	StateSlotConflict     State = "slot_conflict"
)

func (s State) String() string { return string(s) }

func (s State) IsTerminal() bool {
	switch s {
	case StateSlotCommitted, StateValidationFailed, StatePaymentFailed, StateSlotConflict:
		return true
	default:
		return false
	}
}

func (s State) IsSuccess() bool { return s == StateSlotCommitted }

// ReservePolicy decides when the slot ledger is written relative to payment.
type ReservePolicy string

const (
	// ReserveAfterPayment checks availability, pays, then reserves.
	ReserveAfterPayment ReservePolicy = "after_payment"
	// ReserveHold reserves provisionally before paying and releases the
	// slot if payment terminally fails.
	ReserveHold ReservePolicy = "hold"
)

func NewReservePolicy(s string) ReservePolicy {
	if ReservePolicy(s) == ReserveHold {
		return ReserveHold
	}
	return ReserveAfterPayment
}

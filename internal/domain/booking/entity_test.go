//go:build unit

package booking_test

import (
	"testing"
	"time"

	"skill-swap-core/internal/domain/booking"
	"skill-swap-core/internal/domain/identity"
	"skill-swap-core/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now     = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	payer   = identity.MustParse("STUDENT-1")
	teacher = identity.MustParse("TEACHER-1")
)

func newPricedAttempt(t *testing.T) *booking.Attempt {
	t.Helper()
	a := booking.NewAttempt(uuid.Nil, 1, "Monday 10 AM", payer, 1, now)
	require.NoError(t, a.Price(decimal.NewFromInt(25), teacher))
	return a
}

func TestAttempt(t *testing.T) {
	t.Run("new attempt", func(t *testing.T) {
		a := booking.NewAttempt(uuid.Nil, 1, "Monday 10 AM", payer, 1, now)
		assert.NotEqual(t, uuid.Nil, a.ID())
		assert.Equal(t, booking.StateInitiated, a.State())
		assert.False(t, a.State().IsTerminal())
		assert.Equal(t, now, a.StartedAt())
	})

	t.Run("keeps caller supplied id", func(t *testing.T) {
		id := uuid.New()
		a := booking.NewAttempt(id, 1, "Monday 10 AM", payer, 1, now)
		assert.Equal(t, id, a.ID())
	})

	t.Run("happy path reaches slot committed", func(t *testing.T) {
		a := newPricedAttempt(t)
		require.NoError(t, a.BeginPayment())
		assert.Equal(t, booking.StatePaymentPending, a.State())
		require.NoError(t, a.ConfirmPayment("TX-1", false))
		assert.Equal(t, booking.StatePaymentConfirmed, a.State())
		require.NoError(t, a.Commit(7, now.Add(time.Second)))

		assert.Equal(t, booking.StateSlotCommitted, a.State())
		assert.True(t, a.State().IsSuccess())
		assert.True(t, a.State().IsTerminal())
		assert.Equal(t, "TX-1", a.TransactionID())
		assert.Equal(t, uint64(7), a.SessionID())
		assert.Equal(t, teacher, a.Receiver())
		assert.True(t, decimal.NewFromInt(25).Equal(a.Amount()))
		assert.False(t, a.RefundRequired())
	})

	t.Run("payment failure is terminal", func(t *testing.T) {
		a := newPricedAttempt(t)
		require.NoError(t, a.BeginPayment())
		require.NoError(t, a.FailPayment("rejected", true, now))

		assert.Equal(t, booking.StatePaymentFailed, a.State())
		assert.True(t, a.FallbackUsed())
		assert.Equal(t, "rejected", a.Reason())
		assert.Empty(t, a.TransactionID())
	})

	t.Run("conflict after payment requires refund", func(t *testing.T) {
		a := newPricedAttempt(t)
		require.NoError(t, a.BeginPayment())
		require.NoError(t, a.ConfirmPayment("TX-2", false))
		require.NoError(t, a.Conflict("slot taken", true, now))

		assert.Equal(t, booking.StateSlotConflict, a.State())
		assert.True(t, a.RefundRequired())
		assert.Equal(t, "TX-2", a.TransactionID())
	})

	t.Run("conflict before payment", func(t *testing.T) {
		a := newPricedAttempt(t)
		require.NoError(t, a.Conflict("slot taken", false, now))
		assert.Equal(t, booking.StateSlotConflict, a.State())
		assert.False(t, a.RefundRequired())
	})

	t.Run("refund cannot be required before payment", func(t *testing.T) {
		a := newPricedAttempt(t)
		err := a.Conflict("slot taken", true, now)
		assert.True(t, errs.Is(err, booking.ErrIllegalTransition))
	})

	t.Run("non positive amount", func(t *testing.T) {
		a := booking.NewAttempt(uuid.Nil, 1, "Monday 10 AM", payer, 1, now)
		assert.ErrorIs(t, a.Price(decimal.Zero, teacher), booking.ErrNonPositiveAmount)
		assert.ErrorIs(t, a.BeginPayment(), booking.ErrNonPositiveAmount)
	})

	t.Run("illegal transitions", func(t *testing.T) {
		cases := []struct {
			name string
			run  func(a *booking.Attempt) error
		}{
			{name: "commit before payment", run: func(a *booking.Attempt) error { return a.Commit(1, now) }},
			{name: "confirm before begin", run: func(a *booking.Attempt) error { return a.ConfirmPayment("TX", false) }},
			{name: "fail payment before begin", run: func(a *booking.Attempt) error { return a.FailPayment("x", false, now) }},
			{name: "begin twice", run: func(a *booking.Attempt) error {
				_ = a.BeginPayment()
				return a.BeginPayment()
			}},
			{name: "validation failure after begin", run: func(a *booking.Attempt) error {
				_ = a.BeginPayment()
				return a.FailValidation("late", now)
			}},
			{name: "leave terminal state", run: func(a *booking.Attempt) error {
				_ = a.FailValidation("bad", now)
				return a.BeginPayment()
			}},
			{name: "conflict while payment pending", run: func(a *booking.Attempt) error {
				_ = a.BeginPayment()
				return a.Conflict("x", false, now)
			}},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				err := c.run(newPricedAttempt(t))
				require.Error(t, err)
				assert.True(t, errs.Is(err, booking.ErrIllegalTransition), "unexpected error: %v", err)
			})
		}
	})
}

func TestReservePolicy(t *testing.T) {
	assert.Equal(t, booking.ReserveHold, booking.NewReservePolicy("hold"))
	assert.Equal(t, booking.ReserveAfterPayment, booking.NewReservePolicy("after_payment"))
	assert.Equal(t, booking.ReserveAfterPayment, booking.NewReservePolicy("unknown"))
}

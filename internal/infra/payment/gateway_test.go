//go:build unit

package payment_test

import (
	"context"
	"crypto/ed25519"
	"strings"
	"testing"

	"skill-swap-core/internal/domain/identity"
	dompayment "skill-swap-core/internal/domain/payment"
	"skill-swap-core/internal/infra/ledger"
	"skill-swap-core/internal/infra/payment"
	"skill-swap-core/internal/pkg/errs"
	sharedmock "skill-swap-core/tests/mock/shared"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validPayment() dompayment.Payment {
	return dompayment.Payment{
		Amount:   decimal.NewFromInt(25),
		Sender:   identity.MustParse("P1"),
		Receiver: identity.MustParse("TEACHER-1"),
		Memo:     "skill:1 slot:Monday 10 AM",
	}
}

func TestGateway_Pay(t *testing.T) {
	ctx := context.Background()

	t.Run("wallet executor returns the ledger transaction id", func(t *testing.T) {
		fake := ledger.NewFake()
		gw := payment.NewGateway(identity.OpaqueFormat{})

		txID, err := gw.Pay(ctx, payment.NewWalletExecutor(fake), validPayment())
		require.NoError(t, err)
		assert.Equal(t, "TX-000001", txID)
		require.Len(t, fake.Transfers(), 1)
		assert.Equal(t, "TEACHER-1", fake.Transfers()[0].Receiver)
	})

	tests := []struct {
		name   string
		setup  func(f *ledger.Fake)
		reason dompayment.Reason
		target error
	}{
		{
			name:   "signer down maps to signer unavailable",
			setup:  func(f *ledger.Fake) { f.SetSignerDown(true) },
			reason: dompayment.ReasonSignerUnavailable,
			target: dompayment.ErrSignerUnavailable,
		},
		{
			name:   "network rejection maps to rejected by network",
			setup:  func(f *ledger.Fake) { f.SetRejectAll(true) },
			reason: dompayment.ReasonRejectedByNetwork,
			target: dompayment.ErrRejectedByNetwork,
		},
		{
			name:   "receiver rejected by the ledger maps to invalid receiver",
			setup:  func(f *ledger.Fake) { f.RejectReceiver("TEACHER-1") },
			reason: dompayment.ReasonInvalidReceiver,
			target: dompayment.ErrInvalidReceiver,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := ledger.NewFake()
			tt.setup(fake)
			gw := payment.NewGateway(identity.OpaqueFormat{})

			_, err := gw.Pay(ctx, payment.NewWalletExecutor(fake), validPayment())
			require.Error(t, err)
			reason, ok := dompayment.ReasonOf(err)
			require.True(t, ok)
			assert.Equal(t, tt.reason, reason)
			assert.True(t, errs.Is(err, tt.target))
			assert.True(t, errs.Is(err, errs.ErrPaymentFailed))
			assert.Empty(t, fake.Transfers())
		})
	}

	t.Run("invalid input never reaches the executor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		exec := sharedmock.NewMockPaymentExecutor(ctrl)
		exec.EXPECT().Execute(gomock.Any(), gomock.Any()).Times(0)
		gw := payment.NewGateway(identity.OpaqueFormat{})

		zero := validPayment()
		zero.Amount = decimal.Zero
		_, err := gw.Pay(ctx, exec, zero)
		assert.ErrorIs(t, err, dompayment.ErrNonPositiveAmount)

		noReceiver := validPayment()
		noReceiver.Receiver = identity.Identity{}
		_, err = gw.Pay(ctx, exec, noReceiver)
		reason, ok := dompayment.ReasonOf(err)
		require.True(t, ok)
		assert.Equal(t, dompayment.ReasonInvalidReceiver, reason)
	})

	t.Run("strict format rejects a malformed receiver", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		exec := sharedmock.NewMockPaymentExecutor(ctrl)
		exec.EXPECT().Execute(gomock.Any(), gomock.Any()).Times(0)
		gw := payment.NewGateway(identity.AlgorandFormat{})

		pub, _, err := ed25519.GenerateKey(nil)
		require.NoError(t, err)
		sender, err := identity.FromPublicKey(pub)
		require.NoError(t, err)

		p := validPayment()
		p.Sender = sender
		_, err = gw.Pay(ctx, exec, p)
		assert.True(t, errs.Is(err, dompayment.ErrInvalidReceiver))
	})

	t.Run("executor is called exactly once and never retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		exec := sharedmock.NewMockPaymentExecutor(ctrl)
		exec.EXPECT().Name().Return("wallet").AnyTimes()
		exec.EXPECT().Execute(gomock.Any(), gomock.Any()).Return("", ledger.ErrSignerUnavailable).Times(1)
		gw := payment.NewGateway(identity.OpaqueFormat{})

		_, err := gw.Pay(ctx, exec, validPayment())
		assert.True(t, errs.Is(err, dompayment.ErrSignerUnavailable))
	})

	t.Run("no response counts as rejected by network", func(t *testing.T) {
		fake := ledger.NewFake()
		gw := payment.NewGateway(identity.OpaqueFormat{})
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := gw.Pay(cctx, payment.NewWalletExecutor(fake), validPayment())
		reason, ok := dompayment.ReasonOf(err)
		require.True(t, ok)
		assert.Equal(t, dompayment.ReasonRejectedByNetwork, reason)
	})

	t.Run("empty transaction id is a rejection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		exec := sharedmock.NewMockPaymentExecutor(ctrl)
		exec.EXPECT().Name().Return("wallet").AnyTimes()
		exec.EXPECT().Execute(gomock.Any(), gomock.Any()).Return("", nil)
		gw := payment.NewGateway(identity.OpaqueFormat{})

		_, err := gw.Pay(ctx, exec, validPayment())
		assert.True(t, errs.Is(err, dompayment.ErrRejectedByNetwork))
	})

	t.Run("missing executor reports signer unavailable", func(t *testing.T) {
		gw := payment.NewGateway(identity.OpaqueFormat{})
		_, err := gw.Pay(ctx, nil, validPayment())
		assert.True(t, errs.Is(err, dompayment.ErrSignerUnavailable))
	})
}

func TestKeyExecutor(t *testing.T) {
	ctx := context.Background()

	t.Run("signature verifies against the canonical message", func(t *testing.T) {
		fake := ledger.NewFake()
		exec, err := payment.NewKeyExecutorFromSeed(strings.Repeat("ab", 32), fake)
		require.NoError(t, err)

		txID, err := exec.Execute(ctx, validPayment())
		require.NoError(t, err)
		assert.Equal(t, "TX-000001", txID)

		signed := fake.SignedTransfers()
		require.Len(t, signed, 1)
		msg, err := payment.CanonicalMessage(signed[0].Transfer)
		require.NoError(t, err)
		assert.True(t, ed25519.Verify(exec.PublicKey(), msg, signed[0].Signature))
		assert.Equal(t, []byte(exec.PublicKey()), signed[0].PublicKey)
	})

	t.Run("key executor works while the wallet signer is down", func(t *testing.T) {
		fake := ledger.NewFake()
		fake.SetSignerDown(true)
		exec, err := payment.NewKeyExecutorFromSeed(strings.Repeat("01", 32), fake)
		require.NoError(t, err)

		_, err = exec.Execute(ctx, validPayment())
		assert.NoError(t, err)
	})

	t.Run("rejects a malformed seed", func(t *testing.T) {
		for _, seed := range []string{"", "zz", strings.Repeat("01", 16)} {
			_, err := payment.NewKeyExecutorFromSeed(seed, ledger.NewFake())
			assert.ErrorIs(t, err, payment.ErrInvalidSeed, "seed %q", seed)
		}
	})
}

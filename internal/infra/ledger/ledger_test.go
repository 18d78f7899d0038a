//go:build unit

package ledger_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"skill-swap-core/internal/infra/ledger"
	"skill-swap-core/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transfer() ledger.Transfer {
	return ledger.Transfer{
		Amount:   decimal.RequireFromString("25.50"),
		Sender:   "P1",
		Receiver: "TEACHER-1",
		Memo:     "skill:1 slot:Monday 10 AM",
	}
}

func TestFake(t *testing.T) {
	ctx := context.Background()

	t.Run("transaction ids are sequential across both paths", func(t *testing.T) {
		f := ledger.NewFake()
		first, err := f.SignAndSubmit(ctx, transfer())
		require.NoError(t, err)
		second, err := f.SubmitSigned(ctx, ledger.SignedTransfer{Transfer: transfer(), Signature: []byte{1}})
		require.NoError(t, err)

		assert.Equal(t, "TX-000001", first)
		assert.Equal(t, "TX-000002", second)
		assert.Len(t, f.Transfers(), 1)
		assert.Len(t, f.SignedTransfers(), 1)
	})

	t.Run("signer outage only affects wallet signing", func(t *testing.T) {
		f := ledger.NewFake()
		f.SetSignerDown(true)

		_, err := f.SignAndSubmit(ctx, transfer())
		assert.ErrorIs(t, err, ledger.ErrSignerUnavailable)
		_, err = f.SubmitSigned(ctx, ledger.SignedTransfer{Transfer: transfer(), Signature: []byte{1}})
		assert.NoError(t, err)
	})

	t.Run("unsigned payloads are rejected", func(t *testing.T) {
		f := ledger.NewFake()
		_, err := f.SubmitSigned(ctx, ledger.SignedTransfer{Transfer: transfer()})
		assert.ErrorIs(t, err, ledger.ErrRejected)
	})

	t.Run("rejections leave no transfer behind", func(t *testing.T) {
		f := ledger.NewFake()
		f.RejectReceiver("TEACHER-1")
		_, err := f.SignAndSubmit(ctx, transfer())
		assert.ErrorIs(t, err, ledger.ErrInvalidAddress)

		f.SetRejectAll(true)
		_, err = f.SignAndSubmit(ctx, transfer())
		assert.ErrorIs(t, err, ledger.ErrRejected)
		assert.Empty(t, f.Transfers())
	})
}

func TestHTTPClient(t *testing.T) {
	ctx := context.Background()

	t.Run("posts the transfer with the bearer token", func(t *testing.T) {
		var got ledger.Transfer
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/payments", r.URL.Path)
			assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			_ = json.NewEncoder(w).Encode(map[string]string{"tx_id": "ALGO-TX-1"})
		}))
		defer srv.Close()

		c := ledger.NewHTTPClient(srv.URL, "secret", time.Second)
		txID, err := c.SignAndSubmit(ctx, transfer())
		require.NoError(t, err)
		assert.Equal(t, "ALGO-TX-1", txID)
		assert.True(t, got.Amount.Equal(decimal.RequireFromString("25.50")))
		assert.Equal(t, "TEACHER-1", got.Receiver)
	})

	t.Run("signed transfers go to the transactions endpoint", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/transactions", r.URL.Path)
			_ = json.NewEncoder(w).Encode(map[string]string{"tx_id": "ALGO-TX-2"})
		}))
		defer srv.Close()

		c := ledger.NewHTTPClient(srv.URL, "", time.Second)
		txID, err := c.SubmitSigned(ctx, ledger.SignedTransfer{Transfer: transfer(), Signature: []byte{1}})
		require.NoError(t, err)
		assert.Equal(t, "ALGO-TX-2", txID)
	})

	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{name: "503 means the signer is unavailable", status: http.StatusServiceUnavailable, body: "wallet locked", want: ledger.ErrSignerUnavailable},
		{name: "401 means the signer is unavailable", status: http.StatusUnauthorized, body: "no session", want: ledger.ErrSignerUnavailable},
		{name: "422 on receiver is an invalid address", status: http.StatusUnprocessableEntity, body: "receiver not found", want: ledger.ErrInvalidAddress},
		{name: "other failures are rejections", status: http.StatusBadRequest, body: "overspend", want: ledger.ErrRejected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, tt.body, tt.status)
			}))
			defer srv.Close()

			c := ledger.NewHTTPClient(srv.URL, "", time.Second)
			_, err := c.SignAndSubmit(ctx, transfer())
			assert.True(t, errs.Is(err, tt.want), "got %v", err)
		})
	}

	t.Run("missing transaction id is a rejection", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		_, err := ledger.NewHTTPClient(srv.URL, "", time.Second).SignAndSubmit(ctx, transfer())
		assert.True(t, errs.Is(err, ledger.ErrRejected))
	})

	t.Run("timeout is treated as a rejection", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
		}))
		defer srv.Close()

		_, err := ledger.NewHTTPClient(srv.URL, "", 20*time.Millisecond).SignAndSubmit(ctx, transfer())
		assert.True(t, errs.Is(err, ledger.ErrRejected))
	})
}

package ledger

import (
	"context"

	"skill-swap-core/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Provider-side failures. The payment gateway maps them to payment
// reasons.
var (
	ErrSignerUnavailable = errs.New("ledger: signer unavailable")
	ErrRejected          = errs.New("ledger: transaction rejected")
	ErrInvalidAddress    = errs.New("ledger: receiver address rejected")
)

type Transfer struct {
	Amount   decimal.Decimal `json:"amount"`
	Sender   string          `json:"sender"`
	Receiver string          `json:"receiver"`
	Memo     string          `json:"memo,omitempty"`
}

type SignedTransfer struct {
	Transfer
	PublicKey []byte `json:"public_key"`
	Signature []byte `json:"signature"`
}

type Client interface {
	// SignAndSubmit asks the wallet provider to sign for the sender.
	SignAndSubmit(ctx context.Context, t Transfer) (string, error)
	// SubmitSigned broadcasts a transfer signed locally.
	SubmitSigned(ctx context.Context, st SignedTransfer) (string, error)
}

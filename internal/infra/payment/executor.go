package payment

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"

	dompayment "skill-swap-core/internal/domain/payment"
	"skill-swap-core/internal/infra/ledger"
	"skill-swap-core/internal/pkg/errs"
)

const (
	WalletExecutorName = "wallet"
	KeyExecutorName    = "key"
)

var ErrInvalidSeed = errs.New("fallback signer seed must be 32 hex-encoded bytes")

// WalletExecutor delegates signing to the wallet provider behind the ledger.
type WalletExecutor struct {
	client ledger.Client
}

func NewWalletExecutor(client ledger.Client) *WalletExecutor {
	return &WalletExecutor{client: client}
}

func (w *WalletExecutor) Name() string { return WalletExecutorName }

func (w *WalletExecutor) Execute(ctx context.Context, p dompayment.Payment) (string, error) {
	return w.client.SignAndSubmit(ctx, toTransfer(p))
}

// KeyExecutor signs transfers locally with an ed25519 key and submits the
// signed payload. It is the manual-key fallback path.
type KeyExecutor struct {
	key    ed25519.PrivateKey
	client ledger.Client
}

func NewKeyExecutor(key ed25519.PrivateKey, client ledger.Client) *KeyExecutor {
	return &KeyExecutor{key: key, client: client}
}

func NewKeyExecutorFromSeed(hexSeed string, client ledger.Client) (*KeyExecutor, error) {
	seed, err := hex.DecodeString(hexSeed)
	if err != nil || len(seed) != ed25519.SeedSize {
		return nil, ErrInvalidSeed
	}
	return NewKeyExecutor(ed25519.NewKeyFromSeed(seed), client), nil
}

func (k *KeyExecutor) Name() string { return KeyExecutorName }

func (k *KeyExecutor) PublicKey() ed25519.PublicKey {
	return k.key.Public().(ed25519.PublicKey)
}

func (k *KeyExecutor) Execute(ctx context.Context, p dompayment.Payment) (string, error) {
	t := toTransfer(p)
	msg, err := CanonicalMessage(t)
	if err != nil {
		return "", err
	}
	return k.client.SubmitSigned(ctx, ledger.SignedTransfer{
		Transfer:  t,
		PublicKey: k.PublicKey(),
		Signature: ed25519.Sign(k.key, msg),
	})
}

// CanonicalMessage is the byte string covered by a local signature.
func CanonicalMessage(t ledger.Transfer) ([]byte, error) {
	b, err := json.Marshal(t)
	if err != nil {
		return nil, errs.Wrap(err, "encode transfer")
	}
	return append([]byte("TX"), b...), nil
}

func toTransfer(p dompayment.Payment) ledger.Transfer {
	return ledger.Transfer{
		Amount:   p.Amount,
		Sender:   p.Sender.String(),
		Receiver: p.Receiver.String(),
		Memo:     p.Memo,
	}
}

package ledger

import (
	"context"
	"fmt"
	"sync"
)

// Fake is a deterministic in-memory ledger. Transaction ids are TX-000001,
// TX-000002 and so on.
type Fake struct {
	mu               sync.Mutex
	seq              int
	signerDown       bool
	rejectAll        bool
	invalidReceivers map[string]bool
	transfers        []Transfer
	signedTransfers  []SignedTransfer
}

func NewFake() *Fake {
	return &Fake{invalidReceivers: make(map[string]bool)}
}

func (f *Fake) SetSignerDown(down bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signerDown = down
}

func (f *Fake) SetRejectAll(reject bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rejectAll = reject
}

func (f *Fake) RejectReceiver(addr string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalidReceivers[addr] = true
}

func (f *Fake) SignAndSubmit(ctx context.Context, t Transfer) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.signerDown {
		return "", ErrSignerUnavailable
	}
	if err := f.checkLocked(ctx, t); err != nil {
		return "", err
	}
	f.transfers = append(f.transfers, t)
	return f.nextLocked(), nil
}

func (f *Fake) SubmitSigned(ctx context.Context, st SignedTransfer) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(st.Signature) == 0 {
		return "", ErrRejected
	}
	if err := f.checkLocked(ctx, st.Transfer); err != nil {
		return "", err
	}
	f.signedTransfers = append(f.signedTransfers, st)
	return f.nextLocked(), nil
}

func (f *Fake) checkLocked(ctx context.Context, t Transfer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if f.rejectAll {
		return ErrRejected
	}
	if f.invalidReceivers[t.Receiver] {
		return ErrInvalidAddress
	}
	return nil
}

func (f *Fake) nextLocked() string {
	f.seq++
	return fmt.Sprintf("TX-%06d", f.seq)
}

// Transfers returns wallet-signed transfers in submission order.
func (f *Fake) Transfers() []Transfer {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Transfer(nil), f.transfers...)
}

func (f *Fake) SignedTransfers() []SignedTransfer {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]SignedTransfer(nil), f.signedTransfers...)
}

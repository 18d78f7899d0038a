package repository

import (
	"context"
	"sync"

	"skill-swap-core/internal/domain/identity"
	"skill-swap-core/internal/usecase/shared"
)

type slotKey struct {
	skillID uint64
	label   string
}

// SlotLedger keeps booked-state in process memory. Reserve is the only
// check-then-set and runs under a single mutex.
type SlotLedger struct {
	mu     sync.Mutex
	booked map[slotKey]identity.Identity
}

func NewSlotLedger() *SlotLedger {
	return &SlotLedger{booked: make(map[slotKey]identity.Identity)}
}

func (l *SlotLedger) IsAvailable(_ context.Context, skillID uint64, slotLabel string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, taken := l.booked[slotKey{skillID, slotLabel}]
	return !taken, nil
}

func (l *SlotLedger) Reserve(_ context.Context, skillID uint64, slotLabel string, payer identity.Identity) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	k := slotKey{skillID, slotLabel}
	if _, taken := l.booked[k]; taken {
		return shared.ErrAlreadyBooked
	}
	l.booked[k] = payer
	return nil
}

func (l *SlotLedger) Release(_ context.Context, skillID uint64, slotLabel string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.booked, slotKey{skillID, slotLabel})
	return nil
}

func (l *SlotLedger) Holder(_ context.Context, skillID uint64, slotLabel string) (identity.Identity, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	holder, ok := l.booked[slotKey{skillID, slotLabel}]
	return holder, ok, nil
}

package redisledger

import (
	"context"
	"fmt"

	"skill-swap-core/internal/domain/identity"
	"skill-swap-core/internal/infra"
	"skill-swap-core/internal/pkg/errs"
	"skill-swap-core/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

// Ledger stores booked-state in Redis so several API instances share one
// slot authority. SET NX makes Reserve a single atomic check-then-set.
type Ledger struct {
	client redis.UniversalClient
	prefix string
}

var _ shared.SlotLedger = (*Ledger)(nil)

func New(client redis.UniversalClient, prefix string) *Ledger {
	return &Ledger{client: client, prefix: prefix}
}

func (l *Ledger) key(skillID uint64, slotLabel string) string {
	return fmt.Sprintf("%s:slot:%d:%s", l.prefix, skillID, slotLabel)
}

func (l *Ledger) IsAvailable(ctx context.Context, skillID uint64, slotLabel string) (bool, error) {
	n, err := l.client.Exists(ctx, l.key(skillID, slotLabel)).Result()
	if err != nil {
		return false, infra.WrapRepoErr("redis exists", err, infra.KindUnavailable)
	}
	return n == 0, nil
}

func (l *Ledger) Reserve(ctx context.Context, skillID uint64, slotLabel string, payer identity.Identity) error {
	ok, err := l.client.SetNX(ctx, l.key(skillID, slotLabel), payer.String(), 0).Result()
	if err != nil {
		return infra.WrapRepoErr("redis setnx", err, infra.KindUnavailable)
	}
	if !ok {
		return shared.ErrAlreadyBooked
	}
	return nil
}

func (l *Ledger) Release(ctx context.Context, skillID uint64, slotLabel string) error {
	if err := l.client.Del(ctx, l.key(skillID, slotLabel)).Err(); err != nil {
		return infra.WrapRepoErr("redis del", err, infra.KindUnavailable)
	}
	return nil
}

func (l *Ledger) Holder(ctx context.Context, skillID uint64, slotLabel string) (identity.Identity, bool, error) {
	v, err := l.client.Get(ctx, l.key(skillID, slotLabel)).Result()
	if errs.Is(err, redis.Nil) {
		return identity.Identity{}, false, nil
	}
	if err != nil {
		return identity.Identity{}, false, infra.WrapRepoErr("redis get", err, infra.KindUnavailable)
	}
	// Stored values were format-checked before the reservation.
	return identity.FromTrusted(v), true, nil
}

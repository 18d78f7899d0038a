package repository

import (
	"context"
	"sync"
	"time"

	"skill-swap-core/internal/domain/booking"
	"skill-swap-core/internal/infra"
	"skill-swap-core/internal/pkg/clock"
	"skill-swap-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type idempotencyKey struct {
	key   uuid.UUID
	owner string
}

type IdempotencyRepository struct {
	mu      sync.Mutex
	records map[idempotencyKey]*shared.IdempotencyRecord
	clock   clock.Clock
}

func NewIdempotencyRepository(clk clock.Clock) *IdempotencyRepository {
	return &IdempotencyRepository{
		records: make(map[idempotencyKey]*shared.IdempotencyRecord),
		clock:   clk,
	}
}

// TryInsert claims the key unless a record that has not expired holds it.
func (r *IdempotencyRepository) TryInsert(_ context.Context, key uuid.UUID, owner, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := idempotencyKey{key, owner}
	if existing, ok := r.records[k]; ok && existing.ExpiresAt.After(r.clock.Now()) {
		return false, nil
	}
	r.records[k] = &shared.IdempotencyRecord{
		Key:         key,
		Owner:       owner,
		Endpoint:    endpoint,
		Status:      shared.IdempotencyProcessing,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return true, nil
}

func (r *IdempotencyRepository) Get(_ context.Context, key uuid.UUID, owner string) (*shared.IdempotencyRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[idempotencyKey{key, owner}]
	if !ok {
		return nil, infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}
	c := *rec
	return &c, nil
}

func (r *IdempotencyRepository) Complete(_ context.Context, key uuid.UUID, owner string, attempt *booking.Attempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[idempotencyKey{key, owner}]
	if !ok {
		return infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}
	rec.Status = shared.IdempotencyCompleted
	rec.Attempt = attempt
	return nil
}

func (r *IdempotencyRepository) Delete(_ context.Context, key uuid.UUID, owner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, idempotencyKey{key, owner})
	return nil
}

// DeleteExpired drops records past their expiry and reports how many.
func (r *IdempotencyRepository) DeleteExpired(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.clock.Now()
	var n int64
	for k, rec := range r.records {
		if !rec.ExpiresAt.After(now) {
			delete(r.records, k)
			n++
		}
	}
	return n, nil
}

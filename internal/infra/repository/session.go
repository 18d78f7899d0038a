package repository

import (
	"context"
	"sort"
	"sync"

	"skill-swap-core/internal/domain/session"
	"skill-swap-core/internal/infra"
	"skill-swap-core/internal/usecase/shared"
)

type SessionRepository struct {
	mu       sync.RWMutex
	lastID   uint64
	sessions map[uint64]*session.Session
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: make(map[uint64]*session.Session)}
}

// NextID hands out ids sequentially from 1.
func (r *SessionRepository) NextID(_ context.Context) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastID++
	return r.lastID, nil
}

func (r *SessionRepository) Save(_ context.Context, s *session.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.sessions[s.ID()]; exists {
		return infra.WrapRepoErr("session id already stored", nil, infra.KindDuplicateKey)
	}
	r.sessions[s.ID()] = s.Clone()
	return nil
}

func (r *SessionRepository) FindByID(_ context.Context, id uint64) (*session.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, infra.WrapRepoErr("session not found", nil, infra.KindNotFound)
	}
	return s.Clone(), nil
}

func (r *SessionRepository) List(_ context.Context, filter shared.SessionFilter) ([]*session.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*session.Session, 0)
	for _, s := range r.sessions {
		if filter.Participant != nil && !s.IsParticipant(*filter.Participant) {
			continue
		}
		if filter.AwardStatus != nil && s.AwardStatus() != *filter.AwardStatus {
			continue
		}
		out = append(out, s.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

// Update keeps the stored session untouched when fn fails.
func (r *SessionRepository) Update(_ context.Context, id uint64, fn func(s *session.Session) error) (*session.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.sessions[id]
	if !ok {
		return nil, infra.WrapRepoErr("session not found", nil, infra.KindNotFound)
	}
	working := stored.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}
	r.sessions[id] = working
	return working.Clone(), nil
}

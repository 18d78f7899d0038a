package repository

import (
	"context"
	"sync"

	"skill-swap-core/internal/domain/identity"
	"skill-swap-core/internal/domain/user"
	"skill-swap-core/internal/infra"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*user.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*user.User)}
}

func (r *UserRepository) Create(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := u.Identity().String()
	if _, exists := r.users[key]; exists {
		return infra.WrapRepoErr("user already registered", nil, infra.KindDuplicateKey)
	}
	r.users[key] = u.Clone()
	return nil
}

func (r *UserRepository) FindByIdentity(_ context.Context, id identity.Identity) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id.String()]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return u.Clone(), nil
}

func (r *UserRepository) Update(_ context.Context, id identity.Identity, fn func(u *user.User) error) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.users[id.String()]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	working := stored.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}
	r.users[id.String()] = working
	return working.Clone(), nil
}

package commands

import (
	"context"
	"log/slog"

	"skill-swap-core/internal/domain/auth"
	domuser "skill-swap-core/internal/domain/user"
	"skill-swap-core/internal/infra"
	"skill-swap-core/internal/pkg/clock"
	"skill-swap-core/internal/pkg/errs"
	"skill-swap-core/internal/usecase/shared"
)

type UserCommands interface {
	RegisterUser(ctx context.Context, sc auth.SessionContext, name string) (*domuser.User, error)
}

type userUseCaseImpl struct {
	users    shared.UserRepository
	registry shared.ContractClient
	clock    clock.Clock
}

func NewUserUseCase(users shared.UserRepository, registry shared.ContractClient, clk clock.Clock) UserCommands {
	return &userUseCaseImpl{users: users, registry: registry, clock: clk}
}

func (uc *userUseCaseImpl) RegisterUser(ctx context.Context, sc auth.SessionContext, name string) (*domuser.User, error) {
	id, err := sc.RequireIdentity()
	if err != nil {
		return nil, validation(err)
	}
	n, err := domuser.NewName(name)
	if err != nil {
		return nil, validation(err)
	}

	if _, err := uc.users.FindByIdentity(ctx, id); err == nil {
		return nil, errs.Mark(ErrAlreadyRegistered, errs.ErrConflict)
	} else if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	if err := uc.registry.RegisterUser(ctx, id, n.Value()); err != nil {
		if errs.Is(err, domuser.ErrAlreadyRegistered) {
			return nil, errs.Mark(errs.Mark(err, ErrAlreadyRegistered), errs.ErrConflict)
		}
		return nil, errs.Mark(errs.Mark(err, ErrRegistryFailure), errs.ErrUpstream)
	}

	u := domuser.NewUser(id, n, uc.clock.Now())
	if err := uc.users.Create(ctx, u); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(ErrAlreadyRegistered, errs.ErrConflict)
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	slog.Info("user registered", "identity", id.String(), "role", sc.Role.String())
	return u, nil
}

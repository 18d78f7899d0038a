package queries

import (
	"context"

	"skill-swap-core/internal/domain/identity"
	"skill-swap-core/internal/domain/session"
	"skill-swap-core/internal/domain/user"
	"skill-swap-core/internal/infra"
	"skill-swap-core/internal/pkg/errs"
	"skill-swap-core/internal/usecase/shared"
)

var ErrUserNotFound = errs.Mark(errs.New("user not found"), errs.ErrNotFound)

type UserReadStore interface {
	FindByIdentity(ctx context.Context, id identity.Identity) (*user.User, error)
}

type UserQueries interface {
	GetReputation(ctx context.Context, id identity.Identity) (*ReputationView, error)
}

type userQueriesImpl struct {
	users    UserReadStore
	skills   SkillReadStore
	sessions SessionReadStore
}

func NewUserQueries(users UserReadStore, skills SkillReadStore, sessions SessionReadStore) UserQueries {
	return &userQueriesImpl{
		users:    users,
		skills:   skills,
		sessions: sessions,
	}
}

func (q *userQueriesImpl) GetReputation(ctx context.Context, id identity.Identity) (*ReputationView, error) {
	u, err := q.users.FindByIdentity(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	owned, err := q.skills.List(ctx, shared.SkillFilter{Owner: &id})
	if err != nil {
		return nil, err
	}
	sessions, err := q.sessions.List(ctx, shared.SessionFilter{Participant: &id})
	if err != nil {
		return nil, err
	}
	taught := 0
	for _, s := range sessions {
		if s.Teacher().Equal(id) && s.Status() == session.StatusCompleted {
			taught++
		}
	}

	return &ReputationView{
		Identity:       u.Identity().String(),
		Name:           u.Name().Value(),
		Reputation:     u.Reputation(),
		SkillsListed:   len(owned),
		SessionsTaught: taught,
		RegisteredAt:   u.RegisteredAt(),
	}, nil
}

//go:build unit

package queries_test

import (
	"context"
	"testing"

	"skill-swap-core/internal/domain/identity"
	"skill-swap-core/internal/domain/session"
	"skill-swap-core/internal/domain/user"
	"skill-swap-core/internal/infra/repository"
	"skill-swap-core/internal/pkg/errs"
	"skill-swap-core/internal/usecase/queries"
	"skill-swap-core/tests/common/builder"
	queriesmock "skill-swap-core/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetReputation(t *testing.T) {
	ctx := context.Background()
	teacher := identity.MustParse("TEACHER-1")

	users := repository.NewUserRepository()
	u, err := builder.NewUserBuilder().BuildDomain(testNow)
	require.NoError(t, err)
	require.NoError(t, users.Create(ctx, u))
	_, err = users.Update(ctx, teacher, func(u *user.User) error {
		u.AddReputation(3)
		return nil
	})
	require.NoError(t, err)

	skills := repository.NewSkillRepository()
	seedSkills(t, skills)
	sessions := seedSessions(t)
	_, err = sessions.Update(ctx, 7, func(s *session.Session) error { return s.Complete(teacher, testNow) })
	require.NoError(t, err)

	q := queries.NewUserQueries(users, skills, sessions)

	t.Run("aggregates listings and taught sessions", func(t *testing.T) {
		v, err := q.GetReputation(ctx, teacher)
		require.NoError(t, err)
		assert.Equal(t, queries.ReputationView{
			Identity:       "TEACHER-1",
			Name:           "Ada Teacher",
			Reputation:     3,
			SkillsListed:   1,
			SessionsTaught: 1,
			RegisteredAt:   testNow,
		}, *v)
	})

	t.Run("unknown identity", func(t *testing.T) {
		_, err := q.GetReputation(ctx, identity.MustParse("NOBODY"))
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("store failure is passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockUserReadStore(ctrl)
		store.EXPECT().FindByIdentity(gomock.Any(), teacher).Return(nil, assert.AnError)

		_, err := queries.NewUserQueries(store, skills, sessions).GetReputation(ctx, teacher)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

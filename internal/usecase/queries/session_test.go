//go:build unit

package queries_test

import (
	"context"
	"testing"

	"skill-swap-core/internal/domain/auth"
	"skill-swap-core/internal/domain/identity"
	"skill-swap-core/internal/domain/session"
	"skill-swap-core/internal/infra/repository"
	"skill-swap-core/internal/pkg/errs"
	"skill-swap-core/internal/usecase/queries"
	"skill-swap-core/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func caller(id string) auth.SessionContext {
	return auth.NewSessionContext(identity.MustParse(id), auth.RoleLearner)
}

func seedSessions(t *testing.T) *repository.SessionRepository {
	t.Helper()
	ctx := context.Background()
	repo := repository.NewSessionRepository()
	require.NoError(t, repo.Save(ctx, builder.NewSessionBuilder().BuildDomain(testNow)))
	require.NoError(t, repo.Save(ctx, builder.NewSessionBuilder().With(func(b *builder.SessionBuilder) {
		b.ID = 8
		b.Student = "STUDENT-2"
	}).BuildDomain(testNow)))
	return repo
}

func TestSessionQueries(t *testing.T) {
	ctx := context.Background()
	repo := seedSessions(t)
	_, err := repo.Update(ctx, 7, func(s *session.Session) error {
		if err := s.Complete(identity.MustParse("TEACHER-1"), testNow); err != nil {
			return err
		}
		return s.RecordAward("ASSET-000001")
	})
	require.NoError(t, err)
	q := queries.NewSessionQueries(repo)

	t.Run("participant reads the session", func(t *testing.T) {
		v, err := q.GetByID(ctx, caller("STUDENT-1"), 7)
		require.NoError(t, err)
		assert.Equal(t, "completed", v.Status)
		assert.Equal(t, "issued", v.AwardStatus)
		require.NotNil(t, v.AwardedAssetID)
		assert.Equal(t, "ASSET-000001", *v.AwardedAssetID)
		assert.Equal(t, "TX-000001", v.TransactionID)
		require.NotNil(t, v.CompletedAt)
	})

	t.Run("outsider sees not found", func(t *testing.T) {
		_, err := q.GetByID(ctx, caller("STUDENT-2"), 7)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("missing session", func(t *testing.T) {
		_, err := q.GetByID(ctx, caller("STUDENT-1"), 99)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("list mine by role", func(t *testing.T) {
		mine, err := q.ListMine(ctx, caller("STUDENT-2"))
		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.Equal(t, uint64(8), mine[0].ID)

		taught, err := q.ListMine(ctx, caller("TEACHER-1"))
		require.NoError(t, err)
		assert.Len(t, taught, 2)
	})

	t.Run("requires identity", func(t *testing.T) {
		_, err := q.ListMine(ctx, auth.SessionContext{})
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}

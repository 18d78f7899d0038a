//go:build unit

package repository

import (
	"context"
	"testing"

	"skill-swap-core/internal/domain/identity"
	"skill-swap-core/internal/domain/session"
	"skill-swap-core/internal/infra"
	"skill-swap-core/internal/pkg/errs"
	"skill-swap-core/internal/pkg/ptr"
	"skill-swap-core/internal/usecase/shared"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(id uint64, student string) *session.Session {
	return session.NewSession(id, session.Booking{
		SkillID:       1,
		Student:       identity.MustParse(student),
		Teacher:       identity.MustParse("TEACHER-1"),
		SlotLabel:     "Monday 10 AM",
		Hours:         1,
		Amount:        decimal.NewFromInt(25),
		TransactionID: "TX-000001",
	}, testNow)
}

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("NextID is sequential from 1", func(t *testing.T) {
		repo := NewSessionRepository()
		for want := uint64(1); want <= 3; want++ {
			id, err := repo.NextID(ctx)
			require.NoError(t, err)
			assert.Equal(t, want, id)
		}
	})

	t.Run("duplicate save is rejected", func(t *testing.T) {
		repo := NewSessionRepository()
		require.NoError(t, repo.Save(ctx, newTestSession(1, "STUDENT-1")))

		err := repo.Save(ctx, newTestSession(1, "STUDENT-1"))
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("failed update leaves the stored session untouched", func(t *testing.T) {
		repo := NewSessionRepository()
		require.NoError(t, repo.Save(ctx, newTestSession(1, "STUDENT-1")))

		boom := errs.New("boom")
		_, err := repo.Update(ctx, 1, func(s *session.Session) error {
			_ = s.Complete(identity.MustParse("TEACHER-1"), testNow)
			return boom
		})
		assert.ErrorIs(t, err, boom)

		stored, err := repo.FindByID(ctx, 1)
		require.NoError(t, err)
		assert.False(t, stored.IsCompleted())
	})

	t.Run("list filters by participant and award status", func(t *testing.T) {
		repo := NewSessionRepository()
		require.NoError(t, repo.Save(ctx, newTestSession(2, "STUDENT-2")))
		require.NoError(t, repo.Save(ctx, newTestSession(1, "STUDENT-1")))
		_, err := repo.Update(ctx, 1, func(s *session.Session) error {
			return s.Complete(identity.MustParse("TEACHER-1"), testNow)
		})
		require.NoError(t, err)

		all, _ := repo.List(ctx, shared.SessionFilter{})
		require.Len(t, all, 2)
		assert.Equal(t, uint64(1), all[0].ID())

		mine, _ := repo.List(ctx, shared.SessionFilter{Participant: ptr.Of(identity.MustParse("STUDENT-2"))})
		require.Len(t, mine, 1)
		assert.Equal(t, uint64(2), mine[0].ID())

		minting, _ := repo.List(ctx, shared.SessionFilter{AwardStatus: ptr.Of(session.AwardMinting)})
		require.Len(t, minting, 1)
		assert.Equal(t, uint64(1), minting[0].ID())
	})

	t.Run("unknown id is NOT_FOUND", func(t *testing.T) {
		repo := NewSessionRepository()
		_, err := repo.FindByID(ctx, 9)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		_, err = repo.Update(ctx, 9, func(*session.Session) error { return nil })
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

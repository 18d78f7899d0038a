//go:build unit

package session_test

import (
	"testing"
	"time"

	"skill-swap-core/internal/domain/identity"
	"skill-swap-core/internal/domain/session"
	"skill-swap-core/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now     = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	teacher = identity.MustParse("TEACHER-1")
	student = identity.MustParse("STUDENT-1")
)

func TestSessionComplete(t *testing.T) {
	t.Run("teacher completes once", func(t *testing.T) {
		s := builder.NewSessionBuilder().BuildDomain(now)
		assert.Equal(t, session.StatusBooked, s.Status())
		assert.Equal(t, session.AwardNone, s.AwardStatus())

		require.NoError(t, s.Complete(teacher, now.Add(time.Hour)))

		assert.True(t, s.IsCompleted())
		assert.Equal(t, session.StatusCompleted, s.Status())
		assert.Equal(t, session.AwardMinting, s.AwardStatus())
		require.NotNil(t, s.CompletedAt())
		assert.Equal(t, now.Add(time.Hour), *s.CompletedAt())
	})

	t.Run("second completion is rejected", func(t *testing.T) {
		s := builder.NewSessionBuilder().BuildDomain(now)
		require.NoError(t, s.Complete(teacher, now))
		assert.ErrorIs(t, s.Complete(teacher, now), session.ErrAlreadyCompleted)
	})

	t.Run("only the teacher of record", func(t *testing.T) {
		s := builder.NewSessionBuilder().BuildDomain(now)
		assert.ErrorIs(t, s.Complete(student, now), session.ErrNotTeacher)
		assert.ErrorIs(t, s.Complete(identity.MustParse("TEACHER-2"), now), session.ErrNotTeacher)
		assert.False(t, s.IsCompleted())
	})

	t.Run("cancelled session cannot complete", func(t *testing.T) {
		s := builder.NewSessionBuilder().BuildDomain(now)
		require.NoError(t, s.Cancel(student, now))
		assert.ErrorIs(t, s.Complete(teacher, now), session.ErrSessionCancelled)
	})
}

func TestSessionAward(t *testing.T) {
	completed := func(t *testing.T) *session.Session {
		t.Helper()
		s := builder.NewSessionBuilder().BuildDomain(now)
		require.NoError(t, s.Complete(teacher, now))
		return s
	}

	t.Run("record award", func(t *testing.T) {
		s := completed(t)
		require.NoError(t, s.RecordAward("ASSET-1"))
		assert.Equal(t, session.AwardIssued, s.AwardStatus())
		require.NotNil(t, s.AwardedAssetID())
		assert.Equal(t, "ASSET-1", *s.AwardedAssetID())
	})

	t.Run("award is issued at most once", func(t *testing.T) {
		s := completed(t)
		require.NoError(t, s.RecordAward("ASSET-1"))
		assert.ErrorIs(t, s.RecordAward("ASSET-2"), session.ErrAlreadyAwarded)
		assert.ErrorIs(t, s.MarkAwardPending("late"), session.ErrAlreadyAwarded)
		assert.Equal(t, "ASSET-1", *s.AwardedAssetID())
	})

	t.Run("empty asset id", func(t *testing.T) {
		s := completed(t)
		assert.ErrorIs(t, s.RecordAward(""), session.ErrEmptyAssetID)
	})

	t.Run("not awaiting before completion", func(t *testing.T) {
		s := builder.NewSessionBuilder().BuildDomain(now)
		assert.ErrorIs(t, s.RecordAward("ASSET-1"), session.ErrAwardNotAwaited)
		assert.ErrorIs(t, s.MarkAwardPending("x"), session.ErrAwardNotAwaited)
		assert.ErrorIs(t, s.ResumeAward(), session.ErrAwardNotAwaited)
	})

	t.Run("pending then resumed then issued", func(t *testing.T) {
		s := completed(t)
		require.NoError(t, s.MarkAwardPending("registry down"))
		assert.Equal(t, session.AwardPending, s.AwardStatus())
		assert.Equal(t, "registry down", s.AwardError())
		assert.Nil(t, s.AwardedAssetID())

		require.NoError(t, s.ResumeAward())
		assert.Equal(t, session.AwardMinting, s.AwardStatus())
		assert.ErrorIs(t, s.ResumeAward(), session.ErrAwardNotAwaited)

		require.NoError(t, s.RecordAward("ASSET-9"))
		assert.Equal(t, session.AwardIssued, s.AwardStatus())
		assert.Empty(t, s.AwardError())
	})
}

func TestSessionCancel(t *testing.T) {
	t.Run("student cancels", func(t *testing.T) {
		s := builder.NewSessionBuilder().BuildDomain(now)
		require.NoError(t, s.Cancel(student, now))
		assert.Equal(t, session.StatusCancelled, s.Status())
		require.NotNil(t, s.CancelledAt())
	})

	t.Run("teacher cannot cancel", func(t *testing.T) {
		s := builder.NewSessionBuilder().BuildDomain(now)
		assert.ErrorIs(t, s.Cancel(teacher, now), session.ErrNotStudent)
	})

	t.Run("twice", func(t *testing.T) {
		s := builder.NewSessionBuilder().BuildDomain(now)
		require.NoError(t, s.Cancel(student, now))
		assert.ErrorIs(t, s.Cancel(student, now), session.ErrAlreadyCancelled)
	})

	t.Run("after completion", func(t *testing.T) {
		s := builder.NewSessionBuilder().BuildDomain(now)
		require.NoError(t, s.Complete(teacher, now))
		assert.ErrorIs(t, s.Cancel(student, now), session.ErrAlreadyCompleted)
	})
}

func TestSessionClone(t *testing.T) {
	s := builder.NewSessionBuilder().BuildDomain(now)
	require.NoError(t, s.Complete(teacher, now))
	require.NoError(t, s.RecordAward("ASSET-1"))

	c := s.Clone()
	*c.AwardedAssetID() = "MUTATED"

	assert.Equal(t, "ASSET-1", *s.AwardedAssetID())
	assert.True(t, s.IsParticipant(student))
	assert.True(t, s.IsParticipant(teacher))
	assert.False(t, s.IsParticipant(identity.MustParse("OTHER")))
}

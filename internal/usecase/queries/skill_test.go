//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"skill-swap-core/internal/domain/identity"
	"skill-swap-core/internal/domain/skill"
	"skill-swap-core/internal/infra/repository"
	"skill-swap-core/internal/pkg/errs"
	"skill-swap-core/internal/usecase/queries"
	"skill-swap-core/tests/common/builder"
	queriesmock "skill-swap-core/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func seedSkills(t *testing.T, skills *repository.SkillRepository) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, skills.Save(ctx, builder.NewSkillBuilder().MustBuildDomain(testNow)))
	require.NoError(t, skills.Save(ctx, builder.NewSkillBuilder().With(func(b *builder.SkillBuilder) {
		b.ID = 2
		b.Owner = "TEACHER-2"
		b.Name = "Jazz piano"
		b.Category = "Music"
		b.Level = "Advanced"
		b.Rate = "60"
	}).MustBuildDomain(testNow)))
}

func TestSkillQueriesGet(t *testing.T) {
	ctx := context.Background()
	skills := repository.NewSkillRepository()
	slots := repository.NewSlotLedger()
	seedSkills(t, skills)
	require.NoError(t, slots.Reserve(ctx, 1, "Monday 10 AM", identity.MustParse("STUDENT-1")))
	q := queries.NewSkillQueries(skills, slots, identity.OpaqueFormat{})

	t.Run("view carries ledger booked state", func(t *testing.T) {
		got, err := q.GetByID(ctx, 1)
		require.NoError(t, err)

		want := builder.NewSkillBuilder().BuildView()
		want.Slots[0].Booked = true
		want.Slots[0].BookedBy = "STUDENT-1"
		want.CreatedAt = testNow
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("SkillView mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown skill", func(t *testing.T) {
		_, err := q.GetByID(ctx, 404)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}

func TestSkillQueriesList(t *testing.T) {
	ctx := context.Background()
	skills := repository.NewSkillRepository()
	seedSkills(t, skills)
	q := queries.NewSkillQueries(skills, repository.NewSlotLedger(), identity.OpaqueFormat{})
	d := func(s string) *decimal.Decimal {
		v := decimal.RequireFromString(s)
		return &v
	}

	cases := []struct {
		name   string
		filter queries.SkillListFilter
		want   []uint64
	}{
		{name: "no filter", want: []uint64{1, 2}},
		{name: "by owner", filter: queries.SkillListFilter{Owner: "TEACHER-2"}, want: []uint64{2}},
		{name: "by category", filter: queries.SkillListFilter{Category: "Programming"}, want: []uint64{1}},
		{name: "by level", filter: queries.SkillListFilter{Level: "Advanced"}, want: []uint64{2}},
		{name: "by rate range", filter: queries.SkillListFilter{MinRate: d("30"), MaxRate: d("100")}, want: []uint64{2}},
		{name: "inclusive bounds", filter: queries.SkillListFilter{MinRate: d("25"), MaxRate: d("25")}, want: []uint64{1}},
		{name: "nothing matches", filter: queries.SkillListFilter{Category: "Cooking"}, want: []uint64{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			views, err := q.List(ctx, c.filter)
			require.NoError(t, err)
			ids := make([]uint64, len(views))
			for i, v := range views {
				ids[i] = v.ID
			}
			assert.Equal(t, c.want, ids)
		})
	}

	invalid := []queries.SkillListFilter{
		{Category: "Juggling"},
		{Level: "Expert"},
		{Owner: "bad owner"},
		{MinRate: d("10"), MaxRate: d("5")},
	}
	for _, f := range invalid {
		_, err := q.List(ctx, f)
		assert.True(t, errs.Is(err, errs.ErrValidation), "filter %+v", f)
	}
}

func TestSkillQueriesListFeedback(t *testing.T) {
	ctx := context.Background()
	skills := repository.NewSkillRepository()
	require.NoError(t, skills.Save(ctx, builder.NewSkillBuilder().MustBuildDomain(testNow)))
	for i := 1; i <= 5; i++ {
		f, err := builder.NewReviewBuilder().With(func(b *builder.ReviewBuilder) { b.Rating = i }).BuildFeedback(uint64(i), testNow)
		require.NoError(t, err)
		_, err = skills.Update(ctx, 1, func(s *skill.Skill) error { return s.AppendFeedback(f) })
		require.NoError(t, err)
	}
	q := queries.NewSkillQueries(skills, repository.NewSlotLedger(), identity.OpaqueFormat{})

	t.Run("pages oldest first", func(t *testing.T) {
		page, next, err := q.ListFeedback(ctx, 1, nil, 2)
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, uint64(1), page[0].ID)
		require.NotNil(t, next)

		page, next, err = q.ListFeedback(ctx, 1, next, 2)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), page[0].ID)
		require.NotNil(t, next)

		page, next, err = q.ListFeedback(ctx, 1, next, 2)
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, 5, page[0].Rating)
		assert.Nil(t, next)
	})

	t.Run("bad cursor", func(t *testing.T) {
		_, _, err := q.ListFeedback(ctx, 1, &queries.Cursor{After: "!!"}, 2)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("unknown skill", func(t *testing.T) {
		_, _, err := q.ListFeedback(ctx, 9, nil, 2)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}

func TestSkillQueriesStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockSkillReadStore(ctrl)
	store.EXPECT().FindByID(gomock.Any(), uint64(1)).Return(nil, assert.AnError)
	q := queries.NewSkillQueries(store, repository.NewSlotLedger(), identity.OpaqueFormat{})

	_, err := q.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, assert.AnError)
	assert.False(t, errs.Is(err, errs.ErrNotFound))
}

//go:build unit

package user_test

import (
	"strings"
	"testing"
	"time"

	"skill-swap-core/internal/domain/identity"
	"skill-swap-core/internal/domain/user"
	"skill-swap-core/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(user.User{}, user.Name{}, identity.Identity{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain(now)
		require.NoError(t, err)

		name, _ := user.NewName("Ada Teacher")
		expected := user.NewUser(identity.MustParse("TEACHER-1"), name, now)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}
		assert.Zero(t, actual.Reputation())
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "single character",
				mutate: func(b *builder.UserBuilder) { b.Name = "A" },
			},
			{
				name:   "maximum length",
				mutate: func(b *builder.UserBuilder) { b.Name = strings.Repeat("あ", user.MaxNameLength) },
			},
			{
				name:   "empty",
				mutate: func(b *builder.UserBuilder) { b.Name = "" },
				errIs:  user.ErrEmptyName,
			},
			{
				name:   "whitespace only",
				mutate: func(b *builder.UserBuilder) { b.Name = "  \t " },
				errIs:  user.ErrEmptyName,
			},
			{
				name:   "too long",
				mutate: func(b *builder.UserBuilder) { b.Name = strings.Repeat("a", user.MaxNameLength+1) },
				errIs:  user.ErrNameTooLong,
			},
		})
	})

	t.Run("reputation", func(t *testing.T) {
		u, err := builder.NewUserBuilder().BuildDomain(now)
		require.NoError(t, err)

		u.AddReputation(2)
		u.AddReputation(0)
		u.AddReputation(-3)
		u.AddReputation(1)

		assert.Equal(t, 3, u.Reputation())
	})

	t.Run("clone is independent", func(t *testing.T) {
		u, err := builder.NewUserBuilder().BuildDomain(now)
		require.NoError(t, err)

		c := u.Clone()
		c.AddReputation(5)

		assert.Zero(t, u.Reputation())
		assert.Equal(t, 5, c.Reputation())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain(time.Now())

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

//go:build unit

package registry_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"skill-swap-core/internal/domain/identity"
	"skill-swap-core/internal/domain/user"
	"skill-swap-core/internal/infra/registry"
	"skill-swap-core/internal/pkg/errs"
	"skill-swap-core/internal/usecase/shared"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	teacher := identity.MustParse("TEACHER-1")

	t.Run("duplicate registration is rejected", func(t *testing.T) {
		m := registry.NewMemory()
		require.NoError(t, m.RegisterUser(ctx, teacher, "Ada"))
		assert.ErrorIs(t, m.RegisterUser(ctx, teacher, "Ada again"), user.ErrAlreadyRegistered)
	})

	t.Run("skill ids are assigned sequentially from 1", func(t *testing.T) {
		m := registry.NewMemory()
		first, err := m.ListSkill(ctx, teacher, shared.SkillListing{Name: "Go"})
		require.NoError(t, err)
		second, err := m.ListSkill(ctx, teacher, shared.SkillListing{Name: "Rust"})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), first)
		assert.Equal(t, uint64(2), second)
	})

	t.Run("completing an unknown session fails", func(t *testing.T) {
		m := registry.NewMemory()
		assert.ErrorIs(t, m.CompleteSession(ctx, 99, teacher), registry.ErrUnknownSession)
	})

	t.Run("award is stable per session and failures are counted", func(t *testing.T) {
		m := registry.NewMemory()
		student := identity.MustParse("STUDENT-1")
		m.FailNextMints(1)

		_, err := m.ClaimAward(ctx, 7, student)
		assert.ErrorIs(t, err, registry.ErrMintUnavailable)

		first, err := m.ClaimAward(ctx, 7, student)
		require.NoError(t, err)
		again, err := m.ClaimAward(ctx, 7, student)
		require.NoError(t, err)
		other, err := m.ClaimAward(ctx, 8, student)
		require.NoError(t, err)

		assert.Equal(t, "ASSET-000001", first)
		assert.Equal(t, first, again)
		assert.Equal(t, "ASSET-000002", other)
		assert.Equal(t, 4, m.MintCalls())
	})
}

func TestHTTP(t *testing.T) {
	ctx := context.Background()
	teacher := identity.MustParse("TEACHER-1")

	newServer := func(t *testing.T, routes map[string]http.HandlerFunc) *registry.HTTP {
		t.Helper()
		mux := http.NewServeMux()
		for pattern, h := range routes {
			mux.HandleFunc(pattern, h)
		}
		srv := httptest.NewServer(mux)
		t.Cleanup(srv.Close)
		return registry.NewHTTP(srv.URL, time.Second)
	}

	t.Run("list skill returns the registry id", func(t *testing.T) {
		c := newServer(t, map[string]http.HandlerFunc{
			"POST /skills": func(w http.ResponseWriter, r *http.Request) {
				var body map[string]any
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "TEACHER-1", body["owner"])
				assert.Equal(t, "25", body["rate"])
				_ = json.NewEncoder(w).Encode(map[string]uint64{"skill_id": 12})
			},
		})
		id, err := c.ListSkill(ctx, teacher, shared.SkillListing{Name: "Go", Rate: decimal.NewFromInt(25), Slots: []string{"Monday 10 AM"}})
		require.NoError(t, err)
		assert.Equal(t, uint64(12), id)
	})

	t.Run("zero skill id is an error", func(t *testing.T) {
		c := newServer(t, map[string]http.HandlerFunc{
			"POST /skills": func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte(`{}`)) },
		})
		_, err := c.ListSkill(ctx, teacher, shared.SkillListing{Name: "Go"})
		assert.Error(t, err)
	})

	t.Run("conflict on register maps to already registered", func(t *testing.T) {
		c := newServer(t, map[string]http.HandlerFunc{
			"POST /users": func(w http.ResponseWriter, _ *http.Request) { http.Error(w, "exists", http.StatusConflict) },
		})
		err := c.RegisterUser(ctx, teacher, "Ada")
		assert.True(t, errs.Is(err, user.ErrAlreadyRegistered))
	})

	t.Run("claim award posts to the session award path", func(t *testing.T) {
		c := newServer(t, map[string]http.HandlerFunc{
			"POST /sessions/7/award": func(w http.ResponseWriter, r *http.Request) {
				var body map[string]string
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "STUDENT-1", body["recipient"])
				_ = json.NewEncoder(w).Encode(map[string]string{"asset_id": "NFT-9"})
			},
			"POST /sessions/7/complete": func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) },
		})
		require.NoError(t, c.CompleteSession(ctx, 7, teacher))
		asset, err := c.ClaimAward(ctx, 7, identity.MustParse("STUDENT-1"))
		require.NoError(t, err)
		assert.Equal(t, "NFT-9", asset)
	})

	t.Run("book session surfaces server errors", func(t *testing.T) {
		c := newServer(t, map[string]http.HandlerFunc{
			"POST /sessions": func(w http.ResponseWriter, _ *http.Request) { http.Error(w, "down", http.StatusBadGateway) },
		})
		err := c.BookSession(ctx, shared.SessionRecord{SessionID: 1, SkillID: 1, Student: identity.MustParse("P1"), Teacher: teacher})
		assert.Error(t, err)
	})
}

//go:build e2e

package redisledger_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"skill-swap-core/internal/domain/identity"
	"skill-swap-core/internal/infra/redisledger"
	"skill-swap-core/internal/pkg/errs"
	"skill-swap-core/internal/usecase/shared"

	"github.com/docker/go-connections/nat"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const slot = "Monday 10 AM"

func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	port, err := c.MappedPort(ctx, nat.Port("6379/tcp"))
	require.NoError(t, err)
	host, err := c.Host(ctx)
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: host + ":" + port.Port()})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(ctx).Err())
	return client
}

func TestLedger(t *testing.T) {
	client := startRedis(t)
	ctx := context.Background()
	p1 := identity.MustParse("P1")
	p2 := identity.MustParse("P2")

	newLedger := func(t *testing.T) *redisledger.Ledger {
		require.NoError(t, client.FlushDB(ctx).Err())
		return redisledger.New(client, "test")
	}

	t.Run("first reservation wins and records the holder", func(t *testing.T) {
		l := newLedger(t)

		ok, err := l.IsAvailable(ctx, 1, slot)
		require.NoError(t, err)
		assert.True(t, ok)

		require.NoError(t, l.Reserve(ctx, 1, slot, p1))
		err = l.Reserve(ctx, 1, slot, p2)
		assert.True(t, errs.Is(err, shared.ErrAlreadyBooked))

		holder, booked, err := l.Holder(ctx, 1, slot)
		require.NoError(t, err)
		assert.True(t, booked)
		assert.Equal(t, "P1", holder.String())

		ok, err = l.IsAvailable(ctx, 1, slot)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("slots are keyed per skill and label", func(t *testing.T) {
		l := newLedger(t)
		require.NoError(t, l.Reserve(ctx, 1, slot, p1))
		assert.NoError(t, l.Reserve(ctx, 2, slot, p2))
		assert.NoError(t, l.Reserve(ctx, 1, "Tuesday 2 PM", p2))
	})

	t.Run("release frees the slot", func(t *testing.T) {
		l := newLedger(t)
		require.NoError(t, l.Reserve(ctx, 1, slot, p1))
		require.NoError(t, l.Release(ctx, 1, slot))

		_, booked, err := l.Holder(ctx, 1, slot)
		require.NoError(t, err)
		assert.False(t, booked)
		assert.NoError(t, l.Reserve(ctx, 1, slot, p2))
	})

	t.Run("concurrent reservations commit exactly once", func(t *testing.T) {
		l := newLedger(t)
		const workers = 16
		results := make([]error, workers)

		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[i] = l.Reserve(ctx, 1, slot, identity.MustParse(fmt.Sprintf("P%d", i+1)))
			}()
		}
		wg.Wait()

		wins := 0
		for _, err := range results {
			if err == nil {
				wins++
				continue
			}
			assert.True(t, errs.Is(err, shared.ErrAlreadyBooked))
		}
		assert.Equal(t, 1, wins)
	})

	t.Run("closed client reports an unavailable store", func(t *testing.T) {
		closed := redis.NewClient(&redis.Options{Addr: client.Options().Addr})
		require.NoError(t, closed.Close())
		l := redisledger.New(closed, "test")

		_, err := l.IsAvailable(ctx, 1, slot)
		assert.Error(t, err)
		assert.False(t, errs.Is(err, shared.ErrAlreadyBooked))
	})
}

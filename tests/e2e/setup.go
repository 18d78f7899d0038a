//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"skill-swap-core/cmd/bootstrap"
	"skill-swap-core/cmd/bootstrap/components"
	"skill-swap-core/internal/domain/identity"
	"skill-swap-core/internal/pkg/config"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

var (
	redisContainerOnce sync.Once
	redisTestContainer testcontainers.Container
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// ------------------------------------------------------------
// Per-process environment
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (ContainerInfo, *redis.Client) {
	gin.SetMode(gin.TestMode)
	startRedisContainerOnce(t)

	info, err := getContainerHostPort(redisTestContainer, "6379/tcp")
	require.NoError(t, err, "failed to resolve redis container address")

	client := redis.NewClient(&redis.Options{Addr: info.Host + ":" + info.Port.Port()})
	t.Cleanup(func() { _ = client.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, client.Ping(ctx).Err(), "redis is not reachable")

	slog.Info("e2e environment ready", "redis_host", info.Host, "redis_port", info.Port.Port())
	return info, client
}

// ------------------------------------------------------------
// Application under test
// Every call builds a fresh app, so in-memory stores start empty.
// ------------------------------------------------------------
func buildE2EApp(cfg config.Config) (*gin.Engine, *fx.App) {
	var router *gin.Engine

	testConfigModule := fx.Module("testconfig",
		fx.Provide(
			func() config.Config { return cfg },
			func(cfg config.Config) identity.Format { return identity.NewFormat(cfg.Identity.Format) },
		),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		components.StoreModule,
		components.AdapterModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("failed to start fx app: %v", err))
	}
	if router == nil {
		panic("fx app started without a router")
	}
	return router, app
}

func createTestConfig(info ContainerInfo) config.Config {
	cfg := config.NewTestConfig()
	cfg.SlotLedger.Backend = "redis"
	cfg.Redis.Addr = info.Host + ":" + info.Port.Port()
	return cfg
}

// ------------------------------------------------------------
// Container helpers
// ------------------------------------------------------------
func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

func startRedisContainerOnce(t *testing.T) {
	redisContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			// nothing in the ledger needs to survive the test run
			Cmd:        []string{"redis-server", "--save", "", "--appendonly", "no"},
			WaitingFor: wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
			Name:       "redis-e2e",
			Labels:     map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		redisTestContainer, err = startGenericContainer(req, 120)
		require.NoError(t, err, "failed to start redis container")

		t.Cleanup(func() {
			if redisTestContainer != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := redisTestContainer.Terminate(ctx); err != nil {
					slog.Warn("failed to terminate redis container", "error", err.Error())
				}
			}
		})
	})
}

func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// Shared suite for e2e tests
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	Redis  *redis.Client
	Config config.Config

	info ContainerInfo
	app  *fx.App
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	info, client := setupE2EEnvironment(t)
	s.info = info
	s.Redis = client
	s.Config = createTestConfig(info)
	require.NotEmpty(t, s.Config.Redis.Addr, "redis address missing from config")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

func (s *SharedSuite) SetupTest() {
	s.resetApp()
}

func (s *SharedSuite) SetupSubTest() {
	s.resetApp()
}

func (s *SharedSuite) TearDownSuite() {
	s.stopApp()
}

// resetApp flushes the slot ledger and restarts the application so every
// test sees skill ids and session ids starting at 1.
func (s *SharedSuite) resetApp() {
	t := s.T()
	s.stopApp()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Redis.FlushDB(ctx).Err(), "failed to flush redis")

	s.Router, s.app = buildE2EApp(s.Config)
	require.NotNil(t, s.Router, "router setup failed")
}

func (s *SharedSuite) stopApp() {
	if s.app == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.app.Stop(ctx); err != nil {
		slog.Warn("failed to stop fx app", "error", err.Error())
	}
	s.app = nil
}

//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"skill-swap-core/internal/domain/auth"
	"skill-swap-core/internal/domain/identity"
	"skill-swap-core/internal/infra/ledger"
	"skill-swap-core/internal/infra/notify"
	"skill-swap-core/internal/infra/payment"
	"skill-swap-core/internal/infra/registry"
	"skill-swap-core/internal/infra/repository"
	"skill-swap-core/internal/pkg/clock"
	"skill-swap-core/internal/usecase/commands"
	"skill-swap-core/internal/usecase/shared"
	"skill-swap-core/tests/common/builder"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func sessionFor(id string) auth.SessionContext {
	return auth.NewSessionContext(identity.MustParse(id), auth.RoleLearner)
}

func teacherSession(id string) auth.SessionContext {
	return auth.NewSessionContext(identity.MustParse(id), auth.RoleTeacher)
}

// fixture wires the in-memory collaborators the way the application does.
type fixture struct {
	skills      *repository.SkillRepository
	sessions    *repository.SessionRepository
	users       *repository.UserRepository
	slots       *repository.SlotLedger
	idempotency *repository.IdempotencyRepository
	outbox      *repository.NotificationOutbox
	ledger      *ledger.Fake
	registry    *registry.Memory
	gateway     *payment.Gateway
	executors   commands.PaymentExecutors
	notifier    shared.Notifier
	clock       *clock.MockClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		skills:   repository.NewSkillRepository(),
		sessions: repository.NewSessionRepository(),
		users:    repository.NewUserRepository(),
		slots:    repository.NewSlotLedger(),
		outbox:   repository.NewNotificationOutbox(0),
		ledger:   ledger.NewFake(),
		registry: registry.NewMemory(),
		gateway:  payment.NewGateway(identity.OpaqueFormat{}),
		clock:    clock.NewMockClock(testNow),
	}
	f.idempotency = repository.NewIdempotencyRepository(f.clock)
	f.notifier = notify.NewOutboxNotifier(f.outbox)

	fallback, err := payment.NewKeyExecutorFromSeed(strings.Repeat("01", 32), f.ledger)
	require.NoError(t, err)
	f.executors = commands.PaymentExecutors{
		Primary:  payment.NewWalletExecutor(f.ledger),
		Fallback: fallback,
	}
	return f
}

func (f *fixture) seedSkill(t *testing.T, mutate ...func(*builder.SkillBuilder)) {
	t.Helper()
	b := builder.NewSkillBuilder()
	for _, m := range mutate {
		b.With(m)
	}
	require.NoError(t, f.skills.Save(context.Background(), b.MustBuildDomain(testNow)))
}

func (f *fixture) seedUser(t *testing.T, id string) {
	t.Helper()
	u, err := builder.NewUserBuilder().With(func(b *builder.UserBuilder) { b.Identity = id }).BuildDomain(testNow)
	require.NoError(t, err)
	require.NoError(t, f.users.Create(context.Background(), u))
}

func (f *fixture) topicsFor(t *testing.T, id string) []string {
	t.Helper()
	items, err := f.outbox.ListFor(context.Background(), identity.MustParse(id))
	require.NoError(t, err)
	topics := make([]string, len(items))
	for i, n := range items {
		topics[i] = n.Topic
	}
	return topics
}

func (f *fixture) notificationsFor(t *testing.T, id, topic string) []shared.Notification {
	t.Helper()
	items, err := f.outbox.ListFor(context.Background(), identity.MustParse(id))
	require.NoError(t, err)
	var out []shared.Notification
	for _, n := range items {
		if n.Topic == topic {
			out = append(out, n)
		}
	}
	return out
}

package components

import (
	"skill-swap-core/internal/infra/redisledger"
	"skill-swap-core/internal/infra/repository"
	"skill-swap-core/internal/pkg/config"
	"skill-swap-core/internal/usecase/queries"
	"skill-swap-core/internal/usecase/shared"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		// Skill
		fx.Annotate(
			repository.NewSkillRepository,
			fx.As(new(shared.SkillRepository)),
			fx.As(new(queries.SkillReadStore)),
		),
		// Session
		fx.Annotate(
			repository.NewSessionRepository,
			fx.As(new(shared.SessionRepository)),
			fx.As(new(queries.SessionReadStore)),
		),
		// User
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(shared.UserRepository)),
			fx.As(new(queries.UserReadStore)),
		),
		// Idempotency: the concrete type is also swept by the worker
		repository.NewIdempotencyRepository,
		func(r *repository.IdempotencyRepository) shared.IdempotencyRepository { return r },
		// Notification outbox
		func() *repository.NotificationOutbox { return repository.NewNotificationOutbox(0) },
		func(o *repository.NotificationOutbox) queries.NotificationReadStore { return o },
		NewSlotLedger,
	),
)

func NewSlotLedger(lc fx.Lifecycle, cfg config.Config) shared.SlotLedger {
	if cfg.SlotLedger.UsesRedis() {
		return redisledger.New(NewRedisClient(lc, cfg), cfg.Redis.KeyPrefix)
	}
	return repository.NewSlotLedger()
}

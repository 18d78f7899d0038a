package bootstrap

import (
	"context"

	"skill-swap-core/internal/infra/repository"
	"skill-swap-core/internal/pkg/config"
	"skill-swap-core/internal/usecase/commands"
	"skill-swap-core/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		func(cfg config.Config, completion commands.CompletionCommands) *worker.AwardRetrier {
			return worker.NewAwardRetrier(completion, cfg.Award.RetrySchedule)
		},
		func(cfg config.Config, keys *repository.IdempotencyRepository) *worker.KeySweeper {
			return worker.NewKeySweeper(keys, cfg.Award.SweepSchedule)
		},
	),
	fx.Invoke(startWorkers),
)

func startWorkers(lc fx.Lifecycle, retrier *worker.AwardRetrier, sweeper *worker.KeySweeper) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			if err := retrier.Start(); err != nil {
				return err
			}
			return sweeper.Start()
		},
		OnStop: func(ctx context.Context) error {
			retrier.Stop(ctx)
			sweeper.Stop(ctx)
			return nil
		},
	})
}

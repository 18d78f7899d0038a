package bootstrap

import (
	"skill-swap-core/internal/domain/identity"
	"skill-swap-core/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) identity.Format {
			return identity.NewFormat(cfg.Identity.Format)
		},
	),
)

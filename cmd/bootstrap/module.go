package bootstrap

import (
	"skill-swap-core/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	JWTModule,
	components.StoreModule,
	components.AdapterModule,
	components.UseCaseModule,
	components.HandlerModule,
	WorkerModule,
)

package bootstrap

import (
	"bookit/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	CacheModule,
	components.PersistenceModule,
	EventsModule,
	components.UseCaseModule,
	components.HandlerModule,
)

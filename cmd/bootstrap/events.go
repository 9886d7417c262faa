package bootstrap

import (
	"context"

	"bookit/internal/infra/events"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		events.NewPublisher,
		events.NewRelay,
	),
	fx.Invoke(startRelay),
)

func startRelay(lc fx.Lifecycle, relay *events.Relay) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			relay.Start()
			return nil
		},
		OnStop: relay.Stop,
	})
}

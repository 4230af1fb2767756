package app

import (
	"fieldservice/internal/config"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// Module wires configuration, infrastructure, use cases and the HTTP server.
// The caller supplies the root context.Context.
func Module() fx.Option {
	return fx.Options(
		fx.Provide(config.Load),
		fx.Provide(newLogger),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
		InfrastructureModule,
		UseCaseModule,
		HTTPModule,
	)
}

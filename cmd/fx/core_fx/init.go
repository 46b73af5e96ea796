package core_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"baladi/internal/config"
	"baladi/internal/services"
	"baladi/pkg/logger"
)

var Module = fx.Provide(
	config.Load,
	ProvideLogger,
	ProvideNotifier,
)

func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(logger.Config{
		Level:    cfg.LogLevel,
		Encoding: cfg.LogEncoding,
	})
}

func ProvideNotifier(log *zap.Logger) services.Notifier {
	return services.NewZapNotifier(log)
}

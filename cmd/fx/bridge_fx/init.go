package bridge_fx

import (
	"go.uber.org/fx"

	"baladi/internal/bridge"
	"baladi/internal/config"
	"baladi/internal/infra"
)

var Module = fx.Provide(
	ProvideStore,
	bridge.NewMunicipalityBridge,
)

func ProvideStore(cfg *config.Config) bridge.Store {
	if cfg.BridgeBackend == "redis" {
		return bridge.NewRedisStore(infra.InitRedis(cfg), cfg.BridgeTTL)
	}
	return bridge.NewMemoryStore(cfg.BridgeTTL)
}

package subscriptions_fx

import (
	"go.uber.org/fx"

	"baladi/internal/services"
)

var Module = fx.Provide(
	services.NewSubscriptionService,
)

package activity_fx

import (
	"go.uber.org/fx"

	"baladi/internal/repositories"
	"baladi/internal/services"
)

var Module = fx.Provide(
	NewActivityRepo,
	services.NewActivityService,
)

func NewActivityRepo() repositories.ActivityRepository {
	return repositories.NewActivityRepository(repositories.DefaultActivities())
}

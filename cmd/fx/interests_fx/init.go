package interests_fx

import (
	"go.uber.org/fx"

	"baladi/internal/repositories"
	"baladi/internal/services"
)

var Module = fx.Provide(
	NewInterestRepo,
	services.NewInterestService,
)

func NewInterestRepo() repositories.InterestRepository {
	return repositories.NewInterestRepository(repositories.DefaultInterests())
}

package municipalities_fx

import (
	"go.uber.org/fx"

	"baladi/internal/repositories"
	"baladi/internal/services"
)

var Module = fx.Provide(
	NewMunicipalityRepo,
	services.NewMunicipalityService,
)

func NewMunicipalityRepo() repositories.MunicipalityRepository {
	return repositories.NewMunicipalityRepository(repositories.DefaultMunicipalities())
}

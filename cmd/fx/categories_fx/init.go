package categories_fx

import (
	"go.uber.org/fx"

	"baladi/internal/repositories"
	"baladi/internal/services"
)

var Module = fx.Provide(
	NewCategoryRepo,
	services.NewCategoryService,
)

func NewCategoryRepo() repositories.CategoryRepository {
	return repositories.NewCategoryRepository(repositories.DefaultCategories())
}

package controllers_fx

import (
	"go.uber.org/fx"

	"baladi/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewCategoriesController),
	fx.Provide(controllers.NewInterestsController),
	fx.Provide(controllers.NewMunicipalitiesController),
	fx.Provide(controllers.NewSubscriptionsController),
	fx.Provide(controllers.NewActivityController),
	fx.Provide(controllers.NewDashboardController),
)

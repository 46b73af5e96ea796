package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"baladi/cmd/fx/activity_fx"
	"baladi/cmd/fx/bridge_fx"
	"baladi/cmd/fx/categories_fx"
	"baladi/cmd/fx/controllers_fx"
	"baladi/cmd/fx/core_fx"
	"baladi/cmd/fx/dashboard_fx"
	"baladi/cmd/fx/interests_fx"
	"baladi/cmd/fx/municipalities_fx"
	"baladi/cmd/fx/subscriptions_fx"
	"baladi/internal/api/controllers"
	"baladi/internal/config"
	"baladi/pkg/middleware"
)

func main() {
	app := fx.New(
		core_fx.Module,
		bridge_fx.Module,
		activity_fx.Module,
		categories_fx.Module,
		interests_fx.Module,
		municipalities_fx.Module,
		subscriptions_fx.Module,
		dashboard_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	categoriesController *controllers.CategoriesController,
	interestsController *controllers.InterestsController,
	municipalitiesController *controllers.MunicipalitiesController,
	subscriptionsController *controllers.SubscriptionsController,
	activityController *controllers.ActivityController,
	dashboardController *controllers.DashboardController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		categoriesController,
		interestsController,
		municipalitiesController,
		subscriptionsController,
		activityController,
		dashboardController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	categoriesController *controllers.CategoriesController,
	interestsController *controllers.InterestsController,
	municipalitiesController *controllers.MunicipalitiesController,
	subscriptionsController *controllers.SubscriptionsController,
	activityController *controllers.ActivityController,
	dashboardController *controllers.DashboardController) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	categoriesGroup := r.Group("/categories")
	categoriesGroup.GET("", categoriesController.List)
	categoriesGroup.POST("", categoriesController.Create)
	categoriesGroup.PUT("/:id", categoriesController.Update)
	categoriesGroup.DELETE("/:id", categoriesController.Delete)
	categoriesGroup.POST("/:id/toggle-status", categoriesController.ToggleStatus)
	categoriesGroup.POST("/selection/:id/toggle", categoriesController.ToggleSelection)
	categoriesGroup.POST("/selection/toggle-all", categoriesController.ToggleAll)
	categoriesGroup.POST("/selection/clear", categoriesController.ClearSelection)
	categoriesGroup.POST("/bulk/activate", categoriesController.BulkActivate)
	categoriesGroup.POST("/bulk/deactivate", categoriesController.BulkDeactivate)
	categoriesGroup.POST("/bulk/delete", categoriesController.BulkDelete)

	interestsGroup := r.Group("/interests")
	interestsGroup.GET("", interestsController.List)
	interestsGroup.POST("", interestsController.Create)
	interestsGroup.PUT("/:id", interestsController.Update)
	interestsGroup.DELETE("/:id", interestsController.Delete)
	interestsGroup.POST("/:id/toggle-status", interestsController.ToggleStatus)
	interestsGroup.POST("/selection/:id/toggle", interestsController.ToggleSelection)
	interestsGroup.POST("/selection/toggle-all", interestsController.ToggleAll)
	interestsGroup.POST("/selection/clear", interestsController.ClearSelection)
	interestsGroup.POST("/bulk/activate", interestsController.BulkActivate)
	interestsGroup.POST("/bulk/deactivate", interestsController.BulkDeactivate)
	interestsGroup.POST("/bulk/delete", interestsController.BulkDelete)

	municipalitiesGroup := r.Group("/municipalities")
	municipalitiesGroup.GET("", municipalitiesController.List)
	municipalitiesGroup.GET("/regions", municipalitiesController.Regions)
	municipalitiesGroup.POST("", municipalitiesController.Create)
	municipalitiesGroup.PUT("/:id", municipalitiesController.Update)
	municipalitiesGroup.DELETE("/:id", municipalitiesController.Delete)
	municipalitiesGroup.POST("/:id/toggle-status", municipalitiesController.ToggleStatus)
	municipalitiesGroup.GET("/:id/view", municipalitiesController.View)
	municipalitiesGroup.GET("/:id/details", municipalitiesController.Details)
	municipalitiesGroup.POST("/selection/:id/toggle", municipalitiesController.ToggleSelection)
	municipalitiesGroup.POST("/selection/toggle-all", municipalitiesController.ToggleAll)
	municipalitiesGroup.POST("/selection/clear", municipalitiesController.ClearSelection)
	municipalitiesGroup.POST("/bulk/activate", municipalitiesController.BulkActivate)
	municipalitiesGroup.POST("/bulk/deactivate", municipalitiesController.BulkDeactivate)
	municipalitiesGroup.POST("/bulk/delete", municipalitiesController.BulkDelete)
	municipalitiesGroup.POST("/:id/subscription", municipalitiesController.CreateSubscription)
	municipalitiesGroup.POST("/:id/subscription/pause", municipalitiesController.PauseSubscription)
	municipalitiesGroup.POST("/:id/subscription/resume", municipalitiesController.ResumeSubscription)
	municipalitiesGroup.POST("/:id/subscription/cancel", municipalitiesController.CancelSubscription)
	municipalitiesGroup.PUT("/:id/subscription/plan", municipalitiesController.ChangePlan)

	subscriptionsGroup := r.Group("/subscriptions")
	subscriptionsGroup.GET("", subscriptionsController.Overview)
	subscriptionsGroup.GET("/stats", subscriptionsController.Stats)

	r.GET("/plans", subscriptionsController.Plans)
	r.GET("/activity", activityController.List)
	r.GET("/dashboard", dashboardController.Report)
}

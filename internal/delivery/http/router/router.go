// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mealplan/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProfileHandler *handler.ProfileHandler
	PlanHandler    *handler.PlanHandler
	CatalogHandler *handler.CatalogHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	profileHandler *handler.ProfileHandler
	planHandler    *handler.PlanHandler
	catalogHandler *handler.CatalogHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		profileHandler: params.ProfileHandler,
		planHandler:    params.PlanHandler,
		catalogHandler: params.CatalogHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/api/v1")

	profileGroup := v1.Group("/profiles/:userId")
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PUT("", r.profileHandler.SaveProfile)
		profileGroup.GET("/validation", r.profileHandler.ValidateProfile)
		profileGroup.GET("/targets", r.profileHandler.GetNutritionTargets)

		profileGroup.POST("/plans", r.planHandler.GenerateDailyPlan)
		profileGroup.POST("/plans/week", r.planHandler.GenerateWeekPlan)
		profileGroup.GET("/plans", r.planHandler.ListMealPlans)
		profileGroup.GET("/plans/:date", r.planHandler.GetMealPlan)
	}

	v1.POST("/plans/estimate", r.planHandler.EstimateGenerationTime)

	catalogGroup := v1.Group("/catalog")
	{
		catalogGroup.GET("/recipes", r.catalogHandler.ListRecipes)
		catalogGroup.GET("/foods", r.catalogHandler.ListFoods)
		catalogGroup.POST("/import", r.catalogHandler.ImportCatalog)
	}
}

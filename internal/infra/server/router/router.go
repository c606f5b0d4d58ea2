// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finz/backend/internal/integration/entrypoint/controller"
	"github.com/finz/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	categoryController    *controller.CategoryController
	transactionController *controller.TransactionController
	goalController        *controller.GoalController
	dashboardController   *controller.DashboardController
	advisorController     *controller.AdvisorController
	advisorRateLimiter    *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	categoryController *controller.CategoryController,
	transactionController *controller.TransactionController,
	goalController *controller.GoalController,
	dashboardController *controller.DashboardController,
	advisorController *controller.AdvisorController,
	advisorRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:      healthController,
		categoryController:    categoryController,
		transactionController: transactionController,
		goalController:        goalController,
		dashboardController:   dashboardController,
		advisorController:     advisorController,
		advisorRateLimiter:    advisorRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	v1.Use(middleware.ClientIdentity())
	{
		if r.categoryController != nil {
			v1.GET("/categories", r.categoryController.List)
		}

		if r.transactionController != nil {
			transactions := v1.Group("/transactions")
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		if r.goalController != nil {
			goals := v1.Group("/goals")
			{
				goals.GET("", r.goalController.List)
				goals.POST("", r.goalController.Create)
				goals.POST("/:id/contributions", r.goalController.Contribute)
				if r.categoryController != nil {
					goals.GET("/presets", r.categoryController.GoalPresets)
				}
			}
		}

		if r.dashboardController != nil {
			dashboard := v1.Group("/dashboard")
			{
				dashboard.GET("", r.dashboardController.GetSummary)
				dashboard.GET("/categories", r.dashboardController.GetCategoryBreakdown)
			}
		}

		if r.advisorController != nil {
			advisor := v1.Group("/advisor")
			{
				advisor.GET("/status", r.advisorController.Status)
				if r.advisorRateLimiter != nil {
					advisor.POST("/ask", r.advisorRateLimiter.Middleware(), r.advisorController.Ask)
				} else {
					advisor.POST("/ask", r.advisorController.Ask)
				}
			}
		}
	}
}

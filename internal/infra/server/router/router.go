// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/savings-tracker/backend/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	transactionController *controller.TransactionController
	profileController     *controller.ProfileController
	reportController      *controller.ReportController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	transactionController *controller.TransactionController,
	profileController *controller.ProfileController,
	reportController *controller.ReportController,
) *Router {
	return &Router{
		healthController:      healthController,
		transactionController: transactionController,
		profileController:     profileController,
		reportController:      reportController,
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
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		if r.transactionController != nil {
			transactions := v1.Group("/transactions")
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		if r.profileController != nil {
			profiles := v1.Group("/profile")
			{
				profiles.GET("", r.profileController.Get)
				profiles.PUT("", r.profileController.Upsert)
			}
		}

		if r.reportController != nil {
			reports := v1.Group("/reports")
			{
				reports.GET("/spending", r.reportController.GetSpendingAnalysis)
				reports.GET("/income-expense", r.reportController.GetIncomeExpense)
				reports.GET("/savings-growth", r.reportController.GetSavingsGrowth)
				reports.GET("/budget-variance", r.reportController.GetBudgetVariance)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

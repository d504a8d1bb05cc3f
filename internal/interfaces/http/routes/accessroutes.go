package routes

import (
	"github.com/gin-gonic/gin"

	"caseta/internal/interfaces/http/handlers"
)

// AccessRouteConfig holds dependencies for gate movement and report routes.
type AccessRouteConfig struct {
	AccessHandler    *handlers.AccessHandler
	DashboardHandler *handlers.DashboardHandler
}

// SetupAccessRoutes configures movement registration, report and dashboard routes.
func SetupAccessRoutes(engine *gin.Engine, cfg *AccessRouteConfig) {
	access := engine.Group("/access")
	{
		access.POST("/records", cfg.AccessHandler.RecordMovement)
	}

	reports := engine.Group("/reports")
	{
		reports.GET("/access", cfg.AccessHandler.GetReport)
	}

	engine.GET("/dashboard", cfg.DashboardHandler.GetDashboard)
}

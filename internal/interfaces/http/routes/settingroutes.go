package routes

import (
	"github.com/gin-gonic/gin"

	"caseta/internal/interfaces/http/handlers"
)

// SettingRouteConfig holds dependencies for site setting routes.
type SettingRouteConfig struct {
	SettingHandler *handlers.SettingHandler
}

// SetupSettingRoutes configures site setting routes.
func SetupSettingRoutes(engine *gin.Engine, cfg *SettingRouteConfig) {
	settings := engine.Group("/settings")
	{
		settings.GET("/site", cfg.SettingHandler.GetSiteSettings)
		settings.PUT("/site", cfg.SettingHandler.UpdateSiteSettings)
	}
}

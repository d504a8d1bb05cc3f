package routes

import (
	"github.com/gin-gonic/gin"

	"caseta/internal/interfaces/http/handlers"
)

// OwnerRouteConfig holds dependencies for owner management routes.
type OwnerRouteConfig struct {
	OwnerHandler *handlers.OwnerHandler
}

// SetupOwnerRoutes configures owner management routes.
func SetupOwnerRoutes(engine *gin.Engine, cfg *OwnerRouteConfig) {
	owners := engine.Group("/owners")
	{
		// Collection operations (no ID parameter)
		owners.POST("", cfg.OwnerHandler.CreateOwner)
		owners.GET("", cfg.OwnerHandler.ListOwners)

		// Generic parameterized routes (must come LAST)
		owners.GET("/:id", cfg.OwnerHandler.GetOwner)
		owners.PATCH("/:id", cfg.OwnerHandler.UpdateOwner)
		owners.DELETE("/:id", cfg.OwnerHandler.DeactivateOwner)
	}
}

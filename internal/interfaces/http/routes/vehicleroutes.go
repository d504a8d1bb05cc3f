package routes

import (
	"github.com/gin-gonic/gin"

	"caseta/internal/interfaces/http/handlers"
)

// VehicleRouteConfig holds dependencies for vehicle registry routes.
type VehicleRouteConfig struct {
	VehicleHandler *handlers.VehicleHandler
}

// SetupVehicleRoutes configures vehicle registry routes.
func SetupVehicleRoutes(engine *gin.Engine, cfg *VehicleRouteConfig) {
	vehicles := engine.Group("/vehicles")
	{
		// Collection operations (no ID parameter)
		vehicles.POST("", cfg.VehicleHandler.RegisterVehicle)
		vehicles.GET("", cfg.VehicleHandler.ListVehicles)

		// Specific named endpoints (must come BEFORE /:id to avoid conflicts)
		vehicles.GET("/lookup", cfg.VehicleHandler.LookupByPlate)

		// Generic parameterized routes (must come LAST)
		vehicles.GET("/:id", cfg.VehicleHandler.GetVehicle)
		vehicles.GET("/:id/log", cfg.VehicleHandler.GetVehicleLog)
		vehicles.PATCH("/:id", cfg.VehicleHandler.UpdateVehicle)
		vehicles.DELETE("/:id", cfg.VehicleHandler.DeactivateVehicle)
	}
}

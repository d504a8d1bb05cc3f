package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	accessUC "caseta/internal/application/access/usecases"
	ownerUC "caseta/internal/application/owner/usecases"
	settingUC "caseta/internal/application/setting/usecases"
	vehicleUC "caseta/internal/application/vehicle/usecases"
	"caseta/internal/infrastructure/config"
	"caseta/internal/infrastructure/repository"
	"caseta/internal/interfaces/http/handlers"
	"caseta/internal/interfaces/http/middleware"
	"caseta/internal/interfaces/http/routes"
	shareddb "caseta/internal/shared/db"
	"caseta/internal/shared/logger"
)

// Router wires repositories, use cases and handlers into a gin engine.
type Router struct {
	engine           *gin.Engine
	cfg              *config.Config
	logger           logger.Interface
	ownerHandler     *handlers.OwnerHandler
	vehicleHandler   *handlers.VehicleHandler
	accessHandler    *handlers.AccessHandler
	dashboardHandler *handlers.DashboardHandler
	settingHandler   *handlers.SettingHandler
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	txMgr := shareddb.NewTransactionManager(db)
	ownerRepo := repository.NewOwnerRepository(db, log.Named("owner_repo"))
	vehicleRepo := repository.NewVehicleRepository(db, log.Named("vehicle_repo"))
	accessRepo := repository.NewAccessRecordRepository(db, log.Named("access_repo"))
	settingRepo := repository.NewSiteSettingRepository(db, log.Named("setting_repo"))

	ownerHandler := handlers.NewOwnerHandler(
		ownerUC.NewCreateOwnerUseCase(ownerRepo, log),
		ownerUC.NewGetOwnerUseCase(ownerRepo, log),
		ownerUC.NewUpdateOwnerUseCase(ownerRepo, log),
		ownerUC.NewListOwnersUseCase(ownerRepo, log),
		ownerUC.NewDeactivateOwnerUseCase(ownerRepo, log),
		log.Named("owner_handler"),
	)

	vehicleHandler := handlers.NewVehicleHandler(
		vehicleUC.NewRegisterVehicleUseCase(vehicleRepo, ownerRepo, log),
		vehicleUC.NewGetVehicleUseCase(vehicleRepo, ownerRepo, accessRepo, log),
		vehicleUC.NewGetVehicleLogUseCase(vehicleRepo, accessRepo, log),
		vehicleUC.NewUpdateVehicleUseCase(vehicleRepo, ownerRepo, log),
		vehicleUC.NewListVehiclesUseCase(vehicleRepo, ownerRepo, log),
		vehicleUC.NewDeactivateVehicleUseCase(vehicleRepo, log),
		vehicleUC.NewLookupByPlateUseCase(vehicleRepo, ownerRepo, accessRepo, log),
		log.Named("vehicle_handler"),
	)

	accessHandler := handlers.NewAccessHandler(
		accessUC.NewRecordMovementUseCase(accessRepo, vehicleRepo, txMgr, log),
		accessUC.NewGetReportUseCase(accessRepo, vehicleRepo, log),
		log.Named("access_handler"),
	)

	dashboardHandler := handlers.NewDashboardHandler(
		accessUC.NewGetDashboardUseCase(accessRepo, vehicleRepo, ownerRepo, log),
		log.Named("dashboard_handler"),
	)

	settingHandler := handlers.NewSettingHandler(
		settingUC.NewGetSiteSettingsUseCase(settingRepo, log),
		settingUC.NewUpdateSiteSettingsUseCase(settingRepo, log),
		log.Named("setting_handler"),
	)

	return &Router{
		engine:           engine,
		cfg:              cfg,
		logger:           log,
		ownerHandler:     ownerHandler,
		vehicleHandler:   vehicleHandler,
		accessHandler:    accessHandler,
		dashboardHandler: dashboardHandler,
		settingHandler:   settingHandler,
	}
}

// SetupRoutes registers middleware and all route groups.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.ErrorHandler(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", r.healthCheck)

	routes.SetupOwnerRoutes(r.engine, &routes.OwnerRouteConfig{
		OwnerHandler: r.ownerHandler,
	})

	routes.SetupVehicleRoutes(r.engine, &routes.VehicleRouteConfig{
		VehicleHandler: r.vehicleHandler,
	})

	routes.SetupAccessRoutes(r.engine, &routes.AccessRouteConfig{
		AccessHandler:    r.accessHandler,
		DashboardHandler: r.dashboardHandler,
	})

	routes.SetupSettingRoutes(r.engine, &routes.SettingRouteConfig{
		SettingHandler: r.settingHandler,
	})
}

// GetEngine returns the underlying gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

func (r *Router) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

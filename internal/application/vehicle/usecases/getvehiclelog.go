package usecases

import (
	"context"
	"fmt"

	"caseta/internal/application/vehicle/dto"
	"caseta/internal/domain/access"
	domainVehicle "caseta/internal/domain/vehicle"
	"caseta/internal/shared/errors"
	"caseta/internal/shared/logger"
)

// GetVehicleLogUseCase returns a vehicle's full access log
type GetVehicleLogUseCase struct {
	vehicleRepo domainVehicle.Repository
	accessRepo  access.Repository
	logger      logger.Interface
}

// NewGetVehicleLogUseCase creates a new get vehicle log use case
func NewGetVehicleLogUseCase(
	vehicleRepo domainVehicle.Repository,
	accessRepo access.Repository,
	logger logger.Interface,
) *GetVehicleLogUseCase {
	return &GetVehicleLogUseCase{
		vehicleRepo: vehicleRepo,
		accessRepo:  accessRepo,
		logger:      logger,
	}
}

// Execute returns the vehicle's access records, newest first.
func (uc *GetVehicleLogUseCase) Execute(ctx context.Context, vehicleID uint) ([]*dto.AccessLogEntry, error) {
	entity, err := uc.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		uc.logger.Errorw("failed to get vehicle for log", "vehicle_id", vehicleID, "error", err)
		return nil, errors.NewInternalError("failed to retrieve vehicle")
	}
	if entity == nil {
		return nil, domainVehicle.NewVehicleNotFoundError(fmt.Sprintf("vehicle %d does not exist", vehicleID))
	}

	records, err := uc.accessRepo.ListForVehicle(ctx, vehicleID, 0)
	if err != nil {
		uc.logger.Errorw("failed to list vehicle log", "vehicle_id", vehicleID, "error", err)
		return nil, errors.NewInternalError("failed to retrieve access log")
	}

	return toAccessLogEntries(records), nil
}

package usecases

import (
	"context"
	"fmt"

	domainVehicle "caseta/internal/domain/vehicle"
	"caseta/internal/shared/logger"
)

// DeactivateVehicleUseCase handles soft-deleting a vehicle. The access log
// keeps pointing at the row and the plate stays reserved.
type DeactivateVehicleUseCase struct {
	vehicleRepo domainVehicle.Repository
	logger      logger.Interface
}

// NewDeactivateVehicleUseCase creates a new deactivate vehicle use case
func NewDeactivateVehicleUseCase(vehicleRepo domainVehicle.Repository, logger logger.Interface) *DeactivateVehicleUseCase {
	return &DeactivateVehicleUseCase{
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

// Execute executes the deactivate vehicle use case
func (uc *DeactivateVehicleUseCase) Execute(ctx context.Context, id uint) error {
	uc.logger.Infow("executing deactivate vehicle use case", "id", id)

	entity, err := uc.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get vehicle", "id", id, "error", err)
		return fmt.Errorf("failed to get vehicle: %w", err)
	}
	if entity == nil {
		return domainVehicle.NewVehicleNotFoundError(fmt.Sprintf("vehicle %d not found", id))
	}

	entity.Deactivate()

	if err := uc.vehicleRepo.Update(ctx, entity); err != nil {
		uc.logger.Errorw("failed to deactivate vehicle", "id", id, "error", err)
		return err
	}

	uc.logger.Infow("vehicle deactivated", "id", id, "plate", entity.Plate().String())
	return nil
}

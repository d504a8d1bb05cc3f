package usecases

import (
	"context"
	"fmt"

	"github.com/microcosm-cc/bluemonday"

	"caseta/internal/application/vehicle/dto"
	domainOwner "caseta/internal/domain/owner"
	domainVehicle "caseta/internal/domain/vehicle"
	vo "caseta/internal/domain/vehicle/valueobjects"
	"caseta/internal/shared/errors"
	"caseta/internal/shared/logger"
)

// UpdateVehicleUseCase handles editing a vehicle's mutable fields
type UpdateVehicleUseCase struct {
	vehicleRepo domainVehicle.Repository
	ownerRepo   domainOwner.Repository
	sanitizer   *bluemonday.Policy
	logger      logger.Interface
}

// NewUpdateVehicleUseCase creates a new update vehicle use case
func NewUpdateVehicleUseCase(
	vehicleRepo domainVehicle.Repository,
	ownerRepo domainOwner.Repository,
	logger logger.Interface,
) *UpdateVehicleUseCase {
	return &UpdateVehicleUseCase{
		vehicleRepo: vehicleRepo,
		ownerRepo:   ownerRepo,
		sanitizer:   bluemonday.StrictPolicy(),
		logger:      logger,
	}
}

// Execute executes the update vehicle use case
func (uc *UpdateVehicleUseCase) Execute(ctx context.Context, id uint, request dto.UpdateVehicleRequest) (*dto.VehicleResponse, error) {
	uc.logger.Infow("executing update vehicle use case", "id", id)

	entity, err := uc.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get vehicle", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	if entity == nil {
		return nil, domainVehicle.NewVehicleNotFoundError(fmt.Sprintf("vehicle %d not found", id))
	}

	ownerEntity, err := uc.ownerRepo.GetActiveByID(ctx, request.OwnerID)
	if err != nil {
		uc.logger.Errorw("failed to get owner", "owner_id", request.OwnerID, "error", err)
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}
	if ownerEntity == nil {
		return nil, domainOwner.NewOwnerNotFoundError(fmt.Sprintf("active owner %d not found", request.OwnerID))
	}

	year, err := vo.NewYear(request.Year)
	if err != nil {
		return nil, domainVehicle.NewYearRangeError(err.Error())
	}

	vehicleType := entity.VehicleType()
	if request.VehicleType != "" {
		vehicleType, err = vo.ParseVehicleType(request.VehicleType)
		if err != nil {
			return nil, errors.NewFieldValidationError("vehicle_type", "invalid vehicle type", err.Error())
		}
	}

	color := entity.Color()
	if request.Color != "" {
		color, err = vo.ParseColor(request.Color)
		if err != nil {
			return nil, errors.NewFieldValidationError("color", "invalid color", err.Error())
		}
	}

	notes := uc.sanitizer.Sanitize(request.Notes)

	if err := entity.UpdateDetails(vehicleType, request.Brand, request.Model, color, year, ownerEntity.ID(), notes); err != nil {
		return nil, errors.NewValidationError("invalid vehicle data", err.Error())
	}

	if err := uc.vehicleRepo.Update(ctx, entity); err != nil {
		uc.logger.Errorw("failed to update vehicle", "id", id, "error", err)
		return nil, err
	}

	uc.logger.Infow("vehicle updated successfully", "id", id)

	response := toVehicleResponse(entity)
	response.Owner = toOwnerSummary(ownerEntity)
	return response, nil
}

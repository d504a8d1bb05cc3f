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

// RegisterVehicleUseCase handles the business logic for registering a vehicle
type RegisterVehicleUseCase struct {
	vehicleRepo domainVehicle.Repository
	ownerRepo   domainOwner.Repository
	sanitizer   *bluemonday.Policy
	logger      logger.Interface
}

// NewRegisterVehicleUseCase creates a new register vehicle use case
func NewRegisterVehicleUseCase(
	vehicleRepo domainVehicle.Repository,
	ownerRepo domainOwner.Repository,
	logger logger.Interface,
) *RegisterVehicleUseCase {
	return &RegisterVehicleUseCase{
		vehicleRepo: vehicleRepo,
		ownerRepo:   ownerRepo,
		sanitizer:   bluemonday.StrictPolicy(),
		logger:      logger,
	}
}

// Execute executes the register vehicle use case
func (uc *RegisterVehicleUseCase) Execute(ctx context.Context, request dto.RegisterVehicleRequest) (*dto.VehicleResponse, error) {
	uc.logger.Infow("executing register vehicle use case", "plate", request.Plate)

	// Cross-field check before the per-field ones
	if request.Plate == "" || request.OwnerID == 0 {
		return nil, domainVehicle.NewMissingRequiredFieldsError("plate and owner_id are required")
	}

	plate, err := vo.NewPlate(request.Plate)
	if err != nil {
		return nil, domainVehicle.NewPlateFormatError(err.Error())
	}

	exists, err := uc.vehicleRepo.ExistsByPlate(ctx, plate.String())
	if err != nil {
		uc.logger.Errorw("failed to check existing plate", "plate", plate.String(), "error", err)
		return nil, fmt.Errorf("failed to check existing plate: %w", err)
	}
	if exists {
		uc.logger.Warnw("plate already registered", "plate", plate.String())
		return nil, domainVehicle.NewDuplicatePlateError(plate.String())
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

	vehicleType := vo.VehicleTypeCar
	if request.VehicleType != "" {
		vehicleType, err = vo.ParseVehicleType(request.VehicleType)
		if err != nil {
			return nil, errors.NewFieldValidationError("vehicle_type", "invalid vehicle type", err.Error())
		}
	}

	color := vo.ColorOther
	if request.Color != "" {
		color, err = vo.ParseColor(request.Color)
		if err != nil {
			return nil, errors.NewFieldValidationError("color", "invalid color", err.Error())
		}
	}

	notes := uc.sanitizer.Sanitize(request.Notes)

	entity, err := domainVehicle.NewVehicle(plate, vehicleType, request.Brand, request.Model, color, year, ownerEntity.ID(), notes)
	if err != nil {
		return nil, errors.NewValidationError("invalid vehicle data", err.Error())
	}

	// The unique index still guards the race between the snapshot check
	// above and this insert.
	if err := uc.vehicleRepo.Create(ctx, entity); err != nil {
		uc.logger.Errorw("failed to persist vehicle", "plate", plate.String(), "error", err)
		return nil, err
	}

	uc.logger.Infow("vehicle registered successfully", "id", entity.ID(), "plate", plate.String())

	response := toVehicleResponse(entity)
	response.Owner = toOwnerSummary(ownerEntity)
	return response, nil
}

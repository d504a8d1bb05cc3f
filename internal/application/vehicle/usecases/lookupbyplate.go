package usecases

import (
	"context"
	"fmt"

	"caseta/internal/application/vehicle/dto"
	"caseta/internal/domain/access"
	domainOwner "caseta/internal/domain/owner"
	domainVehicle "caseta/internal/domain/vehicle"
	vo "caseta/internal/domain/vehicle/valueobjects"
	"caseta/internal/shared/logger"
)

// LookupByPlateUseCase answers the gate question: is this plate registered,
// and is the vehicle currently inside?
type LookupByPlateUseCase struct {
	vehicleRepo domainVehicle.Repository
	ownerRepo   domainOwner.Repository
	accessRepo  access.Repository
	logger      logger.Interface
}

// NewLookupByPlateUseCase creates a new lookup by plate use case
func NewLookupByPlateUseCase(
	vehicleRepo domainVehicle.Repository,
	ownerRepo domainOwner.Repository,
	accessRepo access.Repository,
	logger logger.Interface,
) *LookupByPlateUseCase {
	return &LookupByPlateUseCase{
		vehicleRepo: vehicleRepo,
		ownerRepo:   ownerRepo,
		accessRepo:  accessRepo,
		logger:      logger,
	}
}

// Execute executes the plate lookup. An unknown plate is a normal answer,
// not an error; the gate screen shows "not registered" either way.
func (uc *LookupByPlateUseCase) Execute(ctx context.Context, plateValue string) (*dto.PlateLookupResponse, error) {
	plate, err := vo.NewPlate(plateValue)
	if err != nil {
		return nil, domainVehicle.NewPlateFormatError(err.Error())
	}

	entity, err := uc.vehicleRepo.GetActiveByPlate(ctx, plate.String())
	if err != nil {
		uc.logger.Errorw("failed to look up plate", "plate", plate.String(), "error", err)
		return nil, fmt.Errorf("failed to look up plate: %w", err)
	}
	if entity == nil {
		return &dto.PlateLookupResponse{Found: false}, nil
	}

	latest, err := uc.accessRepo.GetLatestForVehicle(ctx, entity.ID())
	if err != nil {
		uc.logger.Errorw("failed to get latest access record", "vehicle_id", entity.ID(), "error", err)
		return nil, fmt.Errorf("failed to get latest access record: %w", err)
	}

	inside := latest != nil && latest.Movement().IsEntry()

	response := toVehicleResponse(entity)
	response.Inside = &inside

	ownerEntity, err := uc.ownerRepo.GetByID(ctx, entity.OwnerID())
	if err != nil {
		uc.logger.Warnw("failed to load owner for plate lookup", "owner_id", entity.OwnerID(), "error", err)
	} else {
		response.Owner = toOwnerSummary(ownerEntity)
	}

	return &dto.PlateLookupResponse{
		Found:   true,
		Vehicle: response,
		Inside:  inside,
	}, nil
}

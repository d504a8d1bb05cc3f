package usecases

import (
	"context"
	"fmt"

	"caseta/internal/application/vehicle/dto"
	"caseta/internal/domain/access"
	domainOwner "caseta/internal/domain/owner"
	domainVehicle "caseta/internal/domain/vehicle"
	"caseta/internal/shared/logger"
)

// recentLogLimit caps the log slice on the vehicle detail view.
const recentLogLimit = 20

// GetVehicleUseCase handles the vehicle detail view: the vehicle, its
// owner, the inferred presence and the recent log.
type GetVehicleUseCase struct {
	vehicleRepo domainVehicle.Repository
	ownerRepo   domainOwner.Repository
	accessRepo  access.Repository
	logger      logger.Interface
}

// NewGetVehicleUseCase creates a new get vehicle use case
func NewGetVehicleUseCase(
	vehicleRepo domainVehicle.Repository,
	ownerRepo domainOwner.Repository,
	accessRepo access.Repository,
	logger logger.Interface,
) *GetVehicleUseCase {
	return &GetVehicleUseCase{
		vehicleRepo: vehicleRepo,
		ownerRepo:   ownerRepo,
		accessRepo:  accessRepo,
		logger:      logger,
	}
}

// Execute executes the get vehicle use case
func (uc *GetVehicleUseCase) Execute(ctx context.Context, id uint) (*dto.VehicleDetailResponse, error) {
	entity, err := uc.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get vehicle", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	if entity == nil {
		return nil, domainVehicle.NewVehicleNotFoundError(fmt.Sprintf("vehicle %d not found", id))
	}

	ownerEntity, err := uc.ownerRepo.GetByID(ctx, entity.OwnerID())
	if err != nil {
		uc.logger.Errorw("failed to get owner", "owner_id", entity.OwnerID(), "error", err)
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}

	latest, err := uc.accessRepo.GetLatestForVehicle(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get latest access record", "vehicle_id", id, "error", err)
		return nil, fmt.Errorf("failed to get latest access record: %w", err)
	}

	records, err := uc.accessRepo.ListForVehicle(ctx, id, recentLogLimit)
	if err != nil {
		uc.logger.Errorw("failed to list access records", "vehicle_id", id, "error", err)
		return nil, fmt.Errorf("failed to list access records: %w", err)
	}

	inside := latest != nil && latest.Movement().IsEntry()

	response := toVehicleResponse(entity)
	response.Owner = toOwnerSummary(ownerEntity)
	response.Inside = &inside

	return &dto.VehicleDetailResponse{
		Vehicle: response,
		Inside:  inside,
		Log:     toAccessLogEntries(records),
	}, nil
}

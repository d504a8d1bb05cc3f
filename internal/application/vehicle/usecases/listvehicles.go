package usecases

import (
	"context"
	"fmt"

	"caseta/internal/application/vehicle/dto"
	domainOwner "caseta/internal/domain/owner"
	domainVehicle "caseta/internal/domain/vehicle"
	"caseta/internal/shared/constants"
	"caseta/internal/shared/logger"
	"caseta/internal/shared/utils"
)

// ListVehiclesUseCase handles listing vehicles with search and pagination
type ListVehiclesUseCase struct {
	vehicleRepo domainVehicle.Repository
	ownerRepo   domainOwner.Repository
	logger      logger.Interface
}

// NewListVehiclesUseCase creates a new list vehicles use case
func NewListVehiclesUseCase(
	vehicleRepo domainVehicle.Repository,
	ownerRepo domainOwner.Repository,
	logger logger.Interface,
) *ListVehiclesUseCase {
	return &ListVehiclesUseCase{
		vehicleRepo: vehicleRepo,
		ownerRepo:   ownerRepo,
		logger:      logger,
	}
}

// Execute executes the list vehicles use case. Out-of-range pages are
// clamped to the nearest valid page instead of erroring.
func (uc *ListVehiclesUseCase) Execute(ctx context.Context, request dto.ListVehiclesRequest) (*dto.ListVehiclesResponse, error) {
	pageSize := constants.VehicleListPageSize

	filter := domainVehicle.ListFilter{
		Page:            1,
		PageSize:        pageSize,
		Search:          request.Search,
		VehicleType:     request.VehicleType,
		IncludeInactive: request.IncludeInactive,
	}

	_, total, err := uc.vehicleRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to count vehicles", "error", err)
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	page := utils.ClampPage(request.Page, total, pageSize)
	filter.Page = page

	vehicles, total, err := uc.vehicleRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list vehicles", "error", err)
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	responses := make([]*dto.VehicleResponse, 0, len(vehicles))
	for _, entity := range vehicles {
		response := toVehicleResponse(entity)

		ownerEntity, err := uc.ownerRepo.GetByID(ctx, entity.OwnerID())
		if err != nil {
			uc.logger.Warnw("failed to load owner for vehicle, skipping summary",
				"vehicle_id", entity.ID(), "owner_id", entity.OwnerID(), "error", err)
		} else {
			response.Owner = toOwnerSummary(ownerEntity)
		}

		responses = append(responses, response)
	}

	return &dto.ListVehiclesResponse{
		Vehicles: responses,
		Pagination: dto.PaginationResponse{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: utils.TotalPages(total, pageSize),
		},
	}, nil
}

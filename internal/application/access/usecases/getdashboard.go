package usecases

import (
	"context"
	"fmt"

	"caseta/internal/application/access/dto"
	"caseta/internal/domain/access"
	domainOwner "caseta/internal/domain/owner"
	domainVehicle "caseta/internal/domain/vehicle"
	"caseta/internal/shared/biztime"
	"caseta/internal/shared/logger"
)

// recentMovementsLimit caps the dashboard's latest-movements strip.
const recentMovementsLimit = 10

// GetDashboardUseCase assembles the landing-page statistics.
type GetDashboardUseCase struct {
	accessRepo  access.Repository
	vehicleRepo domainVehicle.Repository
	ownerRepo   domainOwner.Repository
	logger      logger.Interface
}

// NewGetDashboardUseCase creates a new get dashboard use case
func NewGetDashboardUseCase(
	accessRepo access.Repository,
	vehicleRepo domainVehicle.Repository,
	ownerRepo domainOwner.Repository,
	logger logger.Interface,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		accessRepo:  accessRepo,
		vehicleRepo: vehicleRepo,
		ownerRepo:   ownerRepo,
		logger:      logger,
	}
}

// Execute executes the get dashboard use case. "Today" is the business
// timezone's current day, not UTC's.
func (uc *GetDashboardUseCase) Execute(ctx context.Context) (*dto.DashboardResponse, error) {
	activeVehicles, err := uc.vehicleRepo.CountActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count active vehicles", "error", err)
		return nil, fmt.Errorf("failed to build dashboard: %w", err)
	}

	activeOwners, err := uc.ownerRepo.CountActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count active owners", "error", err)
		return nil, fmt.Errorf("failed to build dashboard: %w", err)
	}

	inside, err := uc.accessRepo.CountVehiclesInside(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count vehicles inside", "error", err)
		return nil, fmt.Errorf("failed to build dashboard: %w", err)
	}

	today, err := uc.accessRepo.CountSince(ctx, biztime.StartOfDayUTC(biztime.NowUTC()))
	if err != nil {
		uc.logger.Errorw("failed to count today's movements", "error", err)
		return nil, fmt.Errorf("failed to build dashboard: %w", err)
	}

	recent, err := uc.accessRepo.ListRecent(ctx, recentMovementsLimit)
	if err != nil {
		uc.logger.Errorw("failed to list recent movements", "error", err)
		return nil, fmt.Errorf("failed to build dashboard: %w", err)
	}

	plates := make(map[uint]string)
	recentResponses := make([]*dto.AccessRecordResponse, 0, len(recent))
	for _, r := range recent {
		plate, ok := plates[r.VehicleID()]
		if !ok {
			vehicleEntity, err := uc.vehicleRepo.GetByID(ctx, r.VehicleID())
			if err != nil {
				uc.logger.Warnw("failed to load vehicle for dashboard row", "vehicle_id", r.VehicleID(), "error", err)
			} else if vehicleEntity != nil {
				plate = vehicleEntity.Plate().String()
			}
			plates[r.VehicleID()] = plate
		}

		recentResponses = append(recentResponses, &dto.AccessRecordResponse{
			ID:           r.ID(),
			VehicleID:    r.VehicleID(),
			Plate:        plate,
			Movement:     r.Movement().String(),
			RecordedAt:   r.RecordedAt(),
			Notes:        r.Notes(),
			RegisteredBy: r.RegisteredBy(),
			Inside:       r.Movement().IsEntry(),
		})
	}

	return &dto.DashboardResponse{
		ActiveVehicles:  activeVehicles,
		ActiveOwners:    activeOwners,
		VehiclesInside:  inside,
		MovementsToday:  today,
		RecentMovements: recentResponses,
	}, nil
}

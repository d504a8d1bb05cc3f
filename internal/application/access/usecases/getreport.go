package usecases

import (
	"context"
	"fmt"

	"caseta/internal/application/access/dto"
	"caseta/internal/domain/access"
	domainVehicle "caseta/internal/domain/vehicle"
	"caseta/internal/shared/biztime"
	"caseta/internal/shared/constants"
	"caseta/internal/shared/errors"
	"caseta/internal/shared/logger"
	"caseta/internal/shared/utils"
)

// GetReportUseCase assembles the filtered access report: a page of records
// plus aggregate counts over the whole filtered set.
type GetReportUseCase struct {
	accessRepo  access.Repository
	vehicleRepo domainVehicle.Repository
	logger      logger.Interface
}

// NewGetReportUseCase creates a new get report use case
func NewGetReportUseCase(
	accessRepo access.Repository,
	vehicleRepo domainVehicle.Repository,
	logger logger.Interface,
) *GetReportUseCase {
	return &GetReportUseCase{
		accessRepo:  accessRepo,
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

// Execute executes the get report use case. Date bounds are inclusive whole
// days in the business timezone, each independently applicable.
func (uc *GetReportUseCase) Execute(ctx context.Context, request dto.ReportRequest) (*dto.ReportResponse, error) {
	pageSize := constants.ReportPageSize

	filter := access.ListFilter{
		Page:        1,
		PageSize:    pageSize,
		Movement:    request.Movement,
		VehicleType: request.VehicleType,
	}

	if request.StartDate != "" {
		day, err := biztime.ParseDateInBizTimezone(request.StartDate)
		if err != nil {
			return nil, errors.NewFieldValidationError("start_date", "invalid date, expected YYYY-MM-DD", err.Error())
		}
		from := biztime.StartOfDayUTC(day)
		filter.From = &from
	}

	if request.EndDate != "" {
		day, err := biztime.ParseDateInBizTimezone(request.EndDate)
		if err != nil {
			return nil, errors.NewFieldValidationError("end_date", "invalid date, expected YYYY-MM-DD", err.Error())
		}
		to := biztime.EndOfDayUTC(day)
		filter.To = &to
	}

	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, errors.NewValidationError("end_date cannot be before start_date")
	}

	entries, exits, err := uc.accessRepo.CountByMovement(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to aggregate report counts", "error", err)
		return nil, fmt.Errorf("failed to build report: %w", err)
	}

	_, total, err := uc.accessRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to count report records", "error", err)
		return nil, fmt.Errorf("failed to build report: %w", err)
	}

	page := utils.ClampPage(request.Page, total, pageSize)
	filter.Page = page

	records, total, err := uc.accessRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list report records", "error", err)
		return nil, fmt.Errorf("failed to build report: %w", err)
	}

	responses, err := uc.toRecordResponses(ctx, records)
	if err != nil {
		return nil, err
	}

	return &dto.ReportResponse{
		Records: responses,
		Totals: dto.ReportTotals{
			Total:   total,
			Entries: entries,
			Exits:   exits,
		},
		Pagination: dto.PaginationResponse{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: utils.TotalPages(total, pageSize),
		},
	}, nil
}

// toRecordResponses resolves plates for the page, caching vehicle lookups
// per request.
func (uc *GetReportUseCase) toRecordResponses(ctx context.Context, records []*access.Record) ([]*dto.AccessRecordResponse, error) {
	plates := make(map[uint]string)
	responses := make([]*dto.AccessRecordResponse, 0, len(records))

	for _, r := range records {
		plate, ok := plates[r.VehicleID()]
		if !ok {
			vehicleEntity, err := uc.vehicleRepo.GetByID(ctx, r.VehicleID())
			if err != nil {
				uc.logger.Warnw("failed to load vehicle for report row", "vehicle_id", r.VehicleID(), "error", err)
			} else if vehicleEntity != nil {
				plate = vehicleEntity.Plate().String()
			}
			plates[r.VehicleID()] = plate
		}

		responses = append(responses, &dto.AccessRecordResponse{
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

	return responses, nil
}

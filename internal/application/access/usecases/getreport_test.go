package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"caseta/internal/application/access/dto"
	"caseta/internal/domain/access"
	"caseta/internal/shared/errors"
	"caseta/internal/shared/logger"
)

func reportRecord(t *testing.T, id uint, movement access.Movement, at time.Time) *access.Record {
	t.Helper()
	record, err := access.ReconstructRecord(id, 6, movement, at, "", "")
	require.NoError(t, err)
	return record
}

func TestGetReport_AggregatesAndPage(t *testing.T) {
	accessRepo := new(mockAccessRepository)
	vehicleRepo := new(mockVehicleRepository)
	uc := NewGetReportUseCase(accessRepo, vehicleRepo, logger.NewLogger())

	at := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	records := []*access.Record{
		reportRecord(t, 2, access.MovementExit, at.Add(time.Hour)),
		reportRecord(t, 1, access.MovementEntry, at),
	}

	accessRepo.On("CountByMovement", mock.Anything, mock.Anything).Return(int64(5), int64(3), nil)
	accessRepo.On("List", mock.Anything, mock.Anything).Return(records, int64(8), nil)
	vehicleRepo.On("GetByID", mock.Anything, uint(6)).Return(testVehicle(t, 6, "DEF456"), nil)

	response, err := uc.Execute(context.Background(), dto.ReportRequest{Page: 1})

	require.NoError(t, err)
	assert.Equal(t, int64(8), response.Totals.Total)
	assert.Equal(t, int64(5), response.Totals.Entries)
	assert.Equal(t, int64(3), response.Totals.Exits)
	require.Len(t, response.Records, 2)
	assert.Equal(t, "DEF456", response.Records[0].Plate)
	assert.Equal(t, 1, response.Pagination.Page)
	assert.Equal(t, 20, response.Pagination.PageSize)
}

func TestGetReport_DateBounds(t *testing.T) {
	accessRepo := new(mockAccessRepository)
	vehicleRepo := new(mockVehicleRepository)
	uc := NewGetReportUseCase(accessRepo, vehicleRepo, logger.NewLogger())

	var captured access.ListFilter
	accessRepo.On("CountByMovement", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(access.ListFilter)
		}).
		Return(int64(0), int64(0), nil)
	accessRepo.On("List", mock.Anything, mock.Anything).Return([]*access.Record{}, int64(0), nil)

	_, err := uc.Execute(context.Background(), dto.ReportRequest{
		StartDate: "2026-02-01",
		EndDate:   "2026-02-01",
	})

	require.NoError(t, err)
	require.NotNil(t, captured.From)
	require.NotNil(t, captured.To)
	// a single day still spans a non-empty window
	assert.True(t, captured.From.Before(*captured.To))
}

func TestGetReport_InvalidDate(t *testing.T) {
	accessRepo := new(mockAccessRepository)
	vehicleRepo := new(mockVehicleRepository)
	uc := NewGetReportUseCase(accessRepo, vehicleRepo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), dto.ReportRequest{StartDate: "01/02/2026"})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "start_date", appErr.Field)
}

func TestGetReport_EndBeforeStart(t *testing.T) {
	accessRepo := new(mockAccessRepository)
	vehicleRepo := new(mockVehicleRepository)
	uc := NewGetReportUseCase(accessRepo, vehicleRepo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), dto.ReportRequest{
		StartDate: "2026-02-10",
		EndDate:   "2026-02-01",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestGetReport_PageClampedToLastPage(t *testing.T) {
	accessRepo := new(mockAccessRepository)
	vehicleRepo := new(mockVehicleRepository)
	uc := NewGetReportUseCase(accessRepo, vehicleRepo, logger.NewLogger())

	accessRepo.On("CountByMovement", mock.Anything, mock.Anything).Return(int64(25), int64(5), nil)

	var pages []int
	accessRepo.On("List", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			pages = append(pages, args.Get(1).(access.ListFilter).Page)
		}).
		Return([]*access.Record{}, int64(30), nil)

	response, err := uc.Execute(context.Background(), dto.ReportRequest{Page: 99})

	require.NoError(t, err)
	// 30 records at 20 per page means the last page is 2
	assert.Equal(t, 2, response.Pagination.Page)
	require.Len(t, pages, 2)
	assert.Equal(t, 2, pages[1])
}

func TestGetDashboard(t *testing.T) {
	accessRepo := new(mockAccessRepository)
	vehicleRepo := new(mockVehicleRepository)
	ownerRepo := new(mockOwnerRepository)
	uc := NewGetDashboardUseCase(accessRepo, vehicleRepo, ownerRepo, logger.NewLogger())

	at := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	vehicleRepo.On("CountActive", mock.Anything).Return(int64(12), nil)
	ownerRepo.On("CountActive", mock.Anything).Return(int64(9), nil)
	accessRepo.On("CountVehiclesInside", mock.Anything).Return(int64(4), nil)
	accessRepo.On("CountSince", mock.Anything, mock.Anything).Return(int64(7), nil)
	accessRepo.On("ListRecent", mock.Anything, 10).
		Return([]*access.Record{reportRecord(t, 1, access.MovementEntry, at)}, nil)
	vehicleRepo.On("GetByID", mock.Anything, uint(6)).Return(testVehicle(t, 6, "DEF456"), nil)

	response, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(12), response.ActiveVehicles)
	assert.Equal(t, int64(9), response.ActiveOwners)
	assert.Equal(t, int64(4), response.VehiclesInside)
	assert.Equal(t, int64(7), response.MovementsToday)
	require.Len(t, response.RecentMovements, 1)
	assert.Equal(t, "DEF456", response.RecentMovements[0].Plate)
}

package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"caseta/internal/application/access/dto"
	"caseta/internal/domain/access"
	domainVehicle "caseta/internal/domain/vehicle"
	vo "caseta/internal/domain/vehicle/valueobjects"
	"caseta/internal/shared/db"
	"caseta/internal/shared/errors"
	"caseta/internal/shared/logger"
)

func testTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db.NewTransactionManager(gormDB)
}

func testVehicle(t *testing.T, id uint, plateValue string) *domainVehicle.Vehicle {
	t.Helper()
	plate, err := vo.NewPlate(plateValue)
	require.NoError(t, err)
	year, err := vo.NewYear(2019)
	require.NoError(t, err)
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	entity, err := domainVehicle.ReconstructVehicle(
		id, plate, vo.VehicleTypeCar, "Chevrolet", "Spark", vo.ColorRed, year, 4, true, now, "", now)
	require.NoError(t, err)
	return entity
}

func TestRecordMovement_Entry(t *testing.T) {
	accessRepo := new(mockAccessRepository)
	vehicleRepo := new(mockVehicleRepository)
	uc := NewRecordMovementUseCase(accessRepo, vehicleRepo, testTxManager(t), logger.NewLogger())

	vehicleRepo.On("GetActiveByPlate", mock.Anything, "DEF456").Return(testVehicle(t, 6, "DEF456"), nil)
	accessRepo.On("Create", mock.Anything, mock.AnythingOfType("*access.Record")).
		Run(func(args mock.Arguments) {
			record := args.Get(1).(*access.Record)
			require.NoError(t, record.SetID(11))
		}).
		Return(nil)

	response, err := uc.Execute(context.Background(), dto.RecordMovementRequest{
		Plate:    "def456",
		Movement: "entry",
	}, "porter2")

	require.NoError(t, err)
	assert.Equal(t, uint(11), response.ID)
	assert.Equal(t, "DEF456", response.Plate)
	assert.Equal(t, "entry", response.Movement)
	assert.Equal(t, "porter2", response.RegisteredBy)
	assert.True(t, response.Inside)
	accessRepo.AssertExpectations(t)
}

func TestRecordMovement_UnknownPlate(t *testing.T) {
	accessRepo := new(mockAccessRepository)
	vehicleRepo := new(mockVehicleRepository)
	uc := NewRecordMovementUseCase(accessRepo, vehicleRepo, testTxManager(t), logger.NewLogger())

	vehicleRepo.On("GetActiveByPlate", mock.Anything, "NOP404").Return(nil, nil)

	_, err := uc.Execute(context.Background(), dto.RecordMovementRequest{
		Plate:    "NOP404",
		Movement: "entry",
	}, "")

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	accessRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRecordMovement_InvalidMovement(t *testing.T) {
	accessRepo := new(mockAccessRepository)
	vehicleRepo := new(mockVehicleRepository)
	uc := NewRecordMovementUseCase(accessRepo, vehicleRepo, testTxManager(t), logger.NewLogger())

	_, err := uc.Execute(context.Background(), dto.RecordMovementRequest{
		Plate:    "DEF456",
		Movement: "loitering",
	}, "")

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	vehicleRepo.AssertNotCalled(t, "GetActiveByPlate", mock.Anything, mock.Anything)
}

func TestRecordMovement_DuplicateConsecutiveAccepted(t *testing.T) {
	accessRepo := new(mockAccessRepository)
	vehicleRepo := new(mockVehicleRepository)
	uc := NewRecordMovementUseCase(accessRepo, vehicleRepo, testTxManager(t), logger.NewLogger())

	vehicleRepo.On("GetActiveByPlate", mock.Anything, "DEF456").Return(testVehicle(t, 6, "DEF456"), nil)

	ids := uint(20)
	accessRepo.On("Create", mock.Anything, mock.AnythingOfType("*access.Record")).
		Run(func(args mock.Arguments) {
			record := args.Get(1).(*access.Record)
			ids++
			require.NoError(t, record.SetID(ids))
		}).
		Return(nil).Twice()

	// Two entries in a row: the log records what happened at the gate
	request := dto.RecordMovementRequest{Plate: "DEF456", Movement: "entry"}
	_, err := uc.Execute(context.Background(), request, "")
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), request, "")
	require.NoError(t, err)

	accessRepo.AssertExpectations(t)
}

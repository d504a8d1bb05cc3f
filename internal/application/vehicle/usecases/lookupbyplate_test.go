package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"caseta/internal/domain/access"
	domainVehicle "caseta/internal/domain/vehicle"
	vo "caseta/internal/domain/vehicle/valueobjects"
	"caseta/internal/shared/errors"
	"caseta/internal/shared/logger"
)

func reconstructedVehicle(t *testing.T, id uint, plateValue string) *domainVehicle.Vehicle {
	t.Helper()
	plate, err := vo.NewPlate(plateValue)
	require.NoError(t, err)
	year, err := vo.NewYear(2020)
	require.NoError(t, err)
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	entity, err := domainVehicle.ReconstructVehicle(
		id, plate, vo.VehicleTypeCar, "Kia", "Rio", vo.ColorWhite, year, 7, true, now, "", now)
	require.NoError(t, err)
	return entity
}

func reconstructedRecord(t *testing.T, id, vehicleID uint, movement access.Movement) *access.Record {
	t.Helper()
	record, err := access.ReconstructRecord(id, vehicleID, movement,
		time.Date(2026, 1, 16, 9, 0, 0, 0, time.UTC), "", "")
	require.NoError(t, err)
	return record
}

func TestLookupByPlate_FoundInside(t *testing.T) {
	vehicleRepo := new(mockVehicleRepository)
	ownerRepo := new(mockOwnerRepository)
	accessRepo := new(mockAccessRepository)
	uc := NewLookupByPlateUseCase(vehicleRepo, ownerRepo, accessRepo, logger.NewLogger())

	entity := reconstructedVehicle(t, 5, "GHJ456")
	vehicleRepo.On("GetActiveByPlate", mock.Anything, "GHJ456").Return(entity, nil)
	accessRepo.On("GetLatestForVehicle", mock.Anything, uint(5)).
		Return(reconstructedRecord(t, 9, 5, access.MovementEntry), nil)
	ownerRepo.On("GetByID", mock.Anything, uint(7)).Return(activeTestOwner(t, 7), nil)

	response, err := uc.Execute(context.Background(), "ghj456")

	require.NoError(t, err)
	assert.True(t, response.Found)
	assert.True(t, response.Inside)
	require.NotNil(t, response.Vehicle)
	assert.Equal(t, "GHJ456", response.Vehicle.Plate)
}

func TestLookupByPlate_NoRecordsMeansOutside(t *testing.T) {
	vehicleRepo := new(mockVehicleRepository)
	ownerRepo := new(mockOwnerRepository)
	accessRepo := new(mockAccessRepository)
	uc := NewLookupByPlateUseCase(vehicleRepo, ownerRepo, accessRepo, logger.NewLogger())

	entity := reconstructedVehicle(t, 5, "GHJ456")
	vehicleRepo.On("GetActiveByPlate", mock.Anything, "GHJ456").Return(entity, nil)
	accessRepo.On("GetLatestForVehicle", mock.Anything, uint(5)).Return(nil, nil)
	ownerRepo.On("GetByID", mock.Anything, uint(7)).Return(activeTestOwner(t, 7), nil)

	response, err := uc.Execute(context.Background(), "GHJ456")

	require.NoError(t, err)
	assert.True(t, response.Found)
	assert.False(t, response.Inside)
}

func TestLookupByPlate_UnknownPlateIsNotAnError(t *testing.T) {
	vehicleRepo := new(mockVehicleRepository)
	ownerRepo := new(mockOwnerRepository)
	accessRepo := new(mockAccessRepository)
	uc := NewLookupByPlateUseCase(vehicleRepo, ownerRepo, accessRepo, logger.NewLogger())

	vehicleRepo.On("GetActiveByPlate", mock.Anything, "ZZZ999").Return(nil, nil)

	response, err := uc.Execute(context.Background(), "ZZZ999")

	require.NoError(t, err)
	assert.False(t, response.Found)
	assert.Nil(t, response.Vehicle)
	accessRepo.AssertNotCalled(t, "GetLatestForVehicle", mock.Anything, mock.Anything)
}

func TestLookupByPlate_MalformedPlate(t *testing.T) {
	vehicleRepo := new(mockVehicleRepository)
	ownerRepo := new(mockOwnerRepository)
	accessRepo := new(mockAccessRepository)
	uc := NewLookupByPlateUseCase(vehicleRepo, ownerRepo, accessRepo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), "!")

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

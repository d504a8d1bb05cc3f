package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"caseta/internal/application/vehicle/dto"
	domainOwner "caseta/internal/domain/owner"
	ownervo "caseta/internal/domain/owner/valueobjects"
	domainVehicle "caseta/internal/domain/vehicle"
	"caseta/internal/shared/errors"
	"caseta/internal/shared/logger"
)

func activeTestOwner(t *testing.T, id uint) *domainOwner.Owner {
	t.Helper()
	docNum, err := ownervo.NewDocumentNumber("1234567")
	require.NoError(t, err)
	fullName, err := ownervo.NewFullName("Ana Pérez")
	require.NoError(t, err)
	entity, err := domainOwner.NewOwner(ownervo.DocumentTypeCC, docNum, fullName, nil, "", ownervo.PersonTypeNatural)
	require.NoError(t, err)
	require.NoError(t, entity.SetID(id))
	return entity
}

func validRegisterRequest() dto.RegisterVehicleRequest {
	return dto.RegisterVehicleRequest{
		Plate:   "abc123",
		Brand:   "Mazda",
		Model:   "3",
		Year:    2021,
		OwnerID: 7,
	}
}

func TestRegisterVehicle_Success(t *testing.T) {
	vehicleRepo := new(mockVehicleRepository)
	ownerRepo := new(mockOwnerRepository)
	uc := NewRegisterVehicleUseCase(vehicleRepo, ownerRepo, logger.NewLogger())

	vehicleRepo.On("ExistsByPlate", mock.Anything, "ABC123").Return(false, nil)
	ownerRepo.On("GetActiveByID", mock.Anything, uint(7)).Return(activeTestOwner(t, 7), nil)
	vehicleRepo.On("Create", mock.Anything, mock.AnythingOfType("*vehicle.Vehicle")).
		Run(func(args mock.Arguments) {
			entity := args.Get(1).(*domainVehicle.Vehicle)
			require.NoError(t, entity.SetID(42))
		}).
		Return(nil)

	response, err := uc.Execute(context.Background(), validRegisterRequest())

	require.NoError(t, err)
	assert.Equal(t, uint(42), response.ID)
	assert.Equal(t, "ABC123", response.Plate)
	assert.Equal(t, "car", response.VehicleType)
	assert.Equal(t, "other", response.Color)
	require.NotNil(t, response.Owner)
	assert.Equal(t, "Ana Pérez", response.Owner.FullName)
	vehicleRepo.AssertExpectations(t)
	ownerRepo.AssertExpectations(t)
}

func TestRegisterVehicle_DuplicatePlate(t *testing.T) {
	vehicleRepo := new(mockVehicleRepository)
	ownerRepo := new(mockOwnerRepository)
	uc := NewRegisterVehicleUseCase(vehicleRepo, ownerRepo, logger.NewLogger())

	vehicleRepo.On("ExistsByPlate", mock.Anything, "ABC123").Return(true, nil)

	_, err := uc.Execute(context.Background(), validRegisterRequest())

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	vehicleRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterVehicle_InactiveOwnerRejected(t *testing.T) {
	vehicleRepo := new(mockVehicleRepository)
	ownerRepo := new(mockOwnerRepository)
	uc := NewRegisterVehicleUseCase(vehicleRepo, ownerRepo, logger.NewLogger())

	vehicleRepo.On("ExistsByPlate", mock.Anything, "ABC123").Return(false, nil)
	ownerRepo.On("GetActiveByID", mock.Anything, uint(7)).Return(nil, nil)

	_, err := uc.Execute(context.Background(), validRegisterRequest())

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestRegisterVehicle_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *dto.RegisterVehicleRequest)
		field   string
	}{
		{
			name:   "invalid plate",
			mutate: func(r *dto.RegisterVehicleRequest) { r.Plate = "X1" },
			field:  "plate",
		},
		{
			name:   "year too old",
			mutate: func(r *dto.RegisterVehicleRequest) { r.Year = 1890 },
			field:  "year",
		},
		{
			name:   "unknown vehicle type",
			mutate: func(r *dto.RegisterVehicleRequest) { r.VehicleType = "boat" },
			field:  "vehicle_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vehicleRepo := new(mockVehicleRepository)
			ownerRepo := new(mockOwnerRepository)
			uc := NewRegisterVehicleUseCase(vehicleRepo, ownerRepo, logger.NewLogger())

			vehicleRepo.On("ExistsByPlate", mock.Anything, mock.Anything).Return(false, nil).Maybe()
			ownerRepo.On("GetActiveByID", mock.Anything, mock.Anything).Return(activeTestOwner(t, 7), nil).Maybe()

			request := validRegisterRequest()
			tt.mutate(&request)

			_, err := uc.Execute(context.Background(), request)

			require.Error(t, err)
			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.field, appErr.Field)
			vehicleRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestRegisterVehicle_MissingRequiredFields(t *testing.T) {
	vehicleRepo := new(mockVehicleRepository)
	ownerRepo := new(mockOwnerRepository)
	uc := NewRegisterVehicleUseCase(vehicleRepo, ownerRepo, logger.NewLogger())

	request := validRegisterRequest()
	request.Plate = ""
	request.OwnerID = 0

	_, err := uc.Execute(context.Background(), request)

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	vehicleRepo.AssertNotCalled(t, "ExistsByPlate", mock.Anything, mock.Anything)
}

func TestRegisterVehicle_NotesSanitized(t *testing.T) {
	vehicleRepo := new(mockVehicleRepository)
	ownerRepo := new(mockOwnerRepository)
	uc := NewRegisterVehicleUseCase(vehicleRepo, ownerRepo, logger.NewLogger())

	vehicleRepo.On("ExistsByPlate", mock.Anything, "ABC123").Return(false, nil)
	ownerRepo.On("GetActiveByID", mock.Anything, uint(7)).Return(activeTestOwner(t, 7), nil)

	var stored *domainVehicle.Vehicle
	vehicleRepo.On("Create", mock.Anything, mock.AnythingOfType("*vehicle.Vehicle")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*domainVehicle.Vehicle)
			require.NoError(t, stored.SetID(1))
		}).
		Return(nil)

	request := validRegisterRequest()
	request.Notes = `visitor pass <script>alert("x")</script>`

	_, err := uc.Execute(context.Background(), request)

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotContains(t, stored.Notes(), "<script>")
	assert.Contains(t, stored.Notes(), "visitor pass")
}

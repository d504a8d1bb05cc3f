package usecases

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"caseta/internal/domain/access"
	domainOwner "caseta/internal/domain/owner"
	domainVehicle "caseta/internal/domain/vehicle"
)

type mockVehicleRepository struct {
	mock.Mock
}

func (m *mockVehicleRepository) Create(ctx context.Context, v *domainVehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *mockVehicleRepository) GetByID(ctx context.Context, id uint) (*domainVehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainVehicle.Vehicle), args.Error(1)
}

func (m *mockVehicleRepository) GetByPlate(ctx context.Context, plate string) (*domainVehicle.Vehicle, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainVehicle.Vehicle), args.Error(1)
}

func (m *mockVehicleRepository) GetActiveByPlate(ctx context.Context, plate string) (*domainVehicle.Vehicle, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainVehicle.Vehicle), args.Error(1)
}

func (m *mockVehicleRepository) Update(ctx context.Context, v *domainVehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *mockVehicleRepository) List(ctx context.Context, filter domainVehicle.ListFilter) ([]*domainVehicle.Vehicle, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domainVehicle.Vehicle), args.Get(1).(int64), args.Error(2)
}

func (m *mockVehicleRepository) ExistsByPlate(ctx context.Context, plate string) (bool, error) {
	args := m.Called(ctx, plate)
	return args.Bool(0), args.Error(1)
}

func (m *mockVehicleRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockOwnerRepository struct {
	mock.Mock
}

func (m *mockOwnerRepository) Create(ctx context.Context, o *domainOwner.Owner) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *mockOwnerRepository) GetByID(ctx context.Context, id uint) (*domainOwner.Owner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainOwner.Owner), args.Error(1)
}

func (m *mockOwnerRepository) GetActiveByID(ctx context.Context, id uint) (*domainOwner.Owner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainOwner.Owner), args.Error(1)
}

func (m *mockOwnerRepository) GetByDocumentNumber(ctx context.Context, documentNumber string) (*domainOwner.Owner, error) {
	args := m.Called(ctx, documentNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainOwner.Owner), args.Error(1)
}

func (m *mockOwnerRepository) Update(ctx context.Context, o *domainOwner.Owner) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *mockOwnerRepository) List(ctx context.Context, filter domainOwner.ListFilter) ([]*domainOwner.Owner, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domainOwner.Owner), args.Get(1).(int64), args.Error(2)
}

func (m *mockOwnerRepository) ExistsActiveWithDocument(ctx context.Context, documentNumber string, excludeID uint) (bool, error) {
	args := m.Called(ctx, documentNumber, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockOwnerRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockAccessRepository struct {
	mock.Mock
}

func (m *mockAccessRepository) Create(ctx context.Context, record *access.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *mockAccessRepository) GetLatestForVehicle(ctx context.Context, vehicleID uint) (*access.Record, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*access.Record), args.Error(1)
}

func (m *mockAccessRepository) ListForVehicle(ctx context.Context, vehicleID uint, limit int) ([]*access.Record, error) {
	args := m.Called(ctx, vehicleID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*access.Record), args.Error(1)
}

func (m *mockAccessRepository) List(ctx context.Context, filter access.ListFilter) ([]*access.Record, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*access.Record), args.Get(1).(int64), args.Error(2)
}

func (m *mockAccessRepository) CountByMovement(ctx context.Context, filter access.ListFilter) (int64, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *mockAccessRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAccessRepository) CountVehiclesInside(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAccessRepository) ListRecent(ctx context.Context, limit int) ([]*access.Record, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*access.Record), args.Error(1)
}

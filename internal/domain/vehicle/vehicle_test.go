package vehicle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "caseta/internal/domain/vehicle/valueobjects"
)

func validPlate(t *testing.T, raw string) *vo.Plate {
	t.Helper()
	plate, err := vo.NewPlate(raw)
	require.NoError(t, err)
	return plate
}

func validYear(t *testing.T, y int) *vo.Year {
	t.Helper()
	year, err := vo.NewYearAt(y, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return year
}

func newTestVehicle(t *testing.T) *Vehicle {
	t.Helper()
	v, err := NewVehicle(
		validPlate(t, "abc123"),
		vo.VehicleTypeCar,
		"Toyota",
		"Corolla",
		vo.ColorWhite,
		validYear(t, 2024),
		1,
		"",
	)
	require.NoError(t, err)
	return v
}

func TestNewVehicle(t *testing.T) {
	v := newTestVehicle(t)

	assert.Equal(t, "ABC123", v.Plate().String())
	assert.Equal(t, vo.VehicleTypeCar, v.VehicleType())
	assert.Equal(t, "Toyota", v.Brand())
	assert.Equal(t, 2024, v.Year().Int())
	assert.Equal(t, uint(1), v.OwnerID())
	assert.True(t, v.IsActive())
	assert.False(t, v.RegisteredAt().IsZero())
}

func TestNewVehicle_MissingFields(t *testing.T) {
	_, err := NewVehicle(nil, vo.VehicleTypeCar, "Toyota", "", vo.ColorWhite, validYear(t, 2024), 1, "")
	assert.Error(t, err)

	_, err = NewVehicle(validPlate(t, "abc123"), vo.VehicleTypeCar, "", "", vo.ColorWhite, validYear(t, 2024), 1, "")
	assert.Error(t, err)

	_, err = NewVehicle(validPlate(t, "abc123"), vo.VehicleTypeCar, "Toyota", "", vo.ColorWhite, nil, 1, "")
	assert.Error(t, err)

	_, err = NewVehicle(validPlate(t, "abc123"), vo.VehicleTypeCar, "Toyota", "", vo.ColorWhite, validYear(t, 2024), 0, "")
	assert.Error(t, err)
}

func TestVehicle_UpdateDetails_PlateImmutable(t *testing.T) {
	v := newTestVehicle(t)
	registeredAt := v.RegisteredAt()

	err := v.UpdateDetails(vo.VehicleTypeMotorcycle, "Yamaha", "YBR", vo.ColorRed, validYear(t, 2023), 2, "new owner")
	require.NoError(t, err)

	assert.Equal(t, "ABC123", v.Plate().String())
	assert.Equal(t, registeredAt, v.RegisteredAt())
	assert.Equal(t, vo.VehicleTypeMotorcycle, v.VehicleType())
	assert.Equal(t, "Yamaha", v.Brand())
	assert.Equal(t, uint(2), v.OwnerID())
}

func TestVehicle_Deactivate(t *testing.T) {
	v := newTestVehicle(t)
	require.True(t, v.IsActive())

	v.Deactivate()
	assert.False(t, v.IsActive())

	v.Activate()
	assert.True(t, v.IsActive())
}

func TestVehicle_SetID(t *testing.T) {
	v := newTestVehicle(t)

	require.NoError(t, v.SetID(42))
	assert.Equal(t, uint(42), v.ID())

	assert.Error(t, v.SetID(43))
	assert.Error(t, newTestVehicle(t).SetID(0))
}

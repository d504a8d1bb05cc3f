package vehicle

import (
	"fmt"
	"time"

	vo "caseta/internal/domain/vehicle/valueobjects"
	"caseta/internal/shared/biztime"
)

// Vehicle represents the registered vehicle aggregate root. The plate and
// the registration timestamp are immutable after creation; everything else
// can be edited in place.
type Vehicle struct {
	id           uint
	plate        *vo.Plate
	vehicleType  vo.VehicleType
	brand        string
	model        string
	color        vo.Color
	year         *vo.Year
	ownerID      uint
	active       bool
	registeredAt time.Time
	notes        string
	updatedAt    time.Time
}

// NewVehicle creates a new vehicle aggregate. Model and notes are optional.
func NewVehicle(
	plate *vo.Plate,
	vehicleType vo.VehicleType,
	brand string,
	model string,
	color vo.Color,
	year *vo.Year,
	ownerID uint,
	notes string,
) (*Vehicle, error) {
	if plate == nil {
		return nil, fmt.Errorf("plate is required")
	}
	if brand == "" {
		return nil, fmt.Errorf("brand is required")
	}
	if year == nil {
		return nil, fmt.Errorf("year is required")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner is required")
	}

	now := biztime.NowUTC()
	return &Vehicle{
		plate:        plate,
		vehicleType:  vehicleType,
		brand:        brand,
		model:        model,
		color:        color,
		year:         year,
		ownerID:      ownerID,
		active:       true,
		registeredAt: now,
		notes:        notes,
		updatedAt:    now,
	}, nil
}

// ReconstructVehicle reconstructs a vehicle from persistence.
func ReconstructVehicle(
	id uint,
	plate *vo.Plate,
	vehicleType vo.VehicleType,
	brand string,
	model string,
	color vo.Color,
	year *vo.Year,
	ownerID uint,
	active bool,
	registeredAt time.Time,
	notes string,
	updatedAt time.Time,
) (*Vehicle, error) {
	if id == 0 {
		return nil, fmt.Errorf("vehicle ID cannot be zero")
	}
	if plate == nil {
		return nil, fmt.Errorf("plate is required")
	}
	if year == nil {
		return nil, fmt.Errorf("year is required")
	}

	return &Vehicle{
		id:           id,
		plate:        plate,
		vehicleType:  vehicleType,
		brand:        brand,
		model:        model,
		color:        color,
		year:         year,
		ownerID:      ownerID,
		active:       active,
		registeredAt: registeredAt,
		notes:        notes,
		updatedAt:    updatedAt,
	}, nil
}

// ID returns the vehicle ID.
func (v *Vehicle) ID() uint { return v.id }

// SetID sets the ID after persistence assigns it.
func (v *Vehicle) SetID(id uint) error {
	if v.id != 0 {
		return fmt.Errorf("vehicle ID already set")
	}
	if id == 0 {
		return fmt.Errorf("vehicle ID cannot be zero")
	}
	v.id = id
	return nil
}

// Plate returns the vehicle plate.
func (v *Vehicle) Plate() *vo.Plate { return v.plate }

// VehicleType returns the vehicle type.
func (v *Vehicle) VehicleType() vo.VehicleType { return v.vehicleType }

// Brand returns the brand.
func (v *Vehicle) Brand() string { return v.brand }

// Model returns the model, empty when not provided.
func (v *Vehicle) Model() string { return v.model }

// Color returns the color.
func (v *Vehicle) Color() vo.Color { return v.color }

// Year returns the model year.
func (v *Vehicle) Year() *vo.Year { return v.year }

// OwnerID returns the owning owner's ID.
func (v *Vehicle) OwnerID() uint { return v.ownerID }

// IsActive reports whether the vehicle is active.
func (v *Vehicle) IsActive() bool { return v.active }

// RegisteredAt returns the immutable registration timestamp.
func (v *Vehicle) RegisteredAt() time.Time { return v.registeredAt }

// Notes returns the free-text notes.
func (v *Vehicle) Notes() string { return v.notes }

// UpdatedAt returns the last update timestamp.
func (v *Vehicle) UpdatedAt() time.Time { return v.updatedAt }

// UpdateDetails edits the mutable fields. The plate and registration
// timestamp never change after creation.
func (v *Vehicle) UpdateDetails(
	vehicleType vo.VehicleType,
	brand string,
	model string,
	color vo.Color,
	year *vo.Year,
	ownerID uint,
	notes string,
) error {
	if brand == "" {
		return fmt.Errorf("brand is required")
	}
	if year == nil {
		return fmt.Errorf("year is required")
	}
	if ownerID == 0 {
		return fmt.Errorf("owner is required")
	}

	v.vehicleType = vehicleType
	v.brand = brand
	v.model = model
	v.color = color
	v.year = year
	v.ownerID = ownerID
	v.notes = notes
	v.updatedAt = biztime.NowUTC()
	return nil
}

// Deactivate soft-deletes the vehicle. The plate stays reserved because the
// unique index covers inactive rows too.
func (v *Vehicle) Deactivate() {
	v.active = false
	v.updatedAt = biztime.NowUTC()
}

// Activate re-enables a previously deactivated vehicle.
func (v *Vehicle) Activate() {
	v.active = true
	v.updatedAt = biztime.NowUTC()
}

package models

import (
	"time"

	"caseta/internal/shared/constants"
)

// VehicleModel represents the database persistence model for vehicles.
// The plate unique index covers inactive rows too, so a deactivated
// vehicle still reserves its plate.
type VehicleModel struct {
	ID           uint      `gorm:"primarykey"`
	Plate        string    `gorm:"uniqueIndex;not null;size:10"`
	VehicleType  string    `gorm:"not null;default:car;size:20;index:idx_vehicle_type"`
	Brand        string    `gorm:"not null;size:50"`
	Model        string    `gorm:"size:50"`
	Color        string    `gorm:"not null;default:other;size:20"`
	Year         int       `gorm:"not null"`
	OwnerID      uint      `gorm:"not null;index:idx_vehicle_owner"`
	Active       bool      `gorm:"not null;default:true;index:idx_vehicle_active"`
	RegisteredAt time.Time `gorm:"not null"`
	Notes        string    `gorm:"type:text"`
	UpdatedAt    time.Time

	Owner *OwnerModel `gorm:"foreignKey:OwnerID"`
}

// TableName specifies the table name for GORM
func (VehicleModel) TableName() string {
	return constants.TableVehicles
}

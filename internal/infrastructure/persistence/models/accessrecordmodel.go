package models

import (
	"time"

	"caseta/internal/shared/constants"
)

// AccessRecordModel represents the database persistence model for entry
// and exit events. Rows are append-only.
type AccessRecordModel struct {
	ID           uint      `gorm:"primarykey"`
	VehicleID    uint      `gorm:"not null;index:idx_access_vehicle"`
	Movement     string    `gorm:"not null;size:10;index:idx_access_movement"`
	RecordedAt   time.Time `gorm:"not null;index:idx_access_recorded_at"`
	Notes        string    `gorm:"type:text"`
	RegisteredBy string    `gorm:"size:100"`

	Vehicle *VehicleModel `gorm:"foreignKey:VehicleID"`
}

// TableName specifies the table name for GORM
func (AccessRecordModel) TableName() string {
	return constants.TableAccessRecords
}

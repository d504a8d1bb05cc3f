package models

import (
	"time"

	"caseta/internal/shared/constants"
)

// OwnerModel represents the database persistence model for vehicle owners.
// This is the anti-corruption layer between domain and database.
type OwnerModel struct {
	ID           uint   `gorm:"primarykey"`
	DocumentType string `gorm:"not null;size:10"`
	// Document uniqueness holds among active owners only, checked by the
	// use cases; a deactivated owner's document can be registered again.
	DocumentNumber string  `gorm:"not null;size:20;index:idx_owner_document"`
	FullName       string  `gorm:"not null;size:150;index:idx_owner_full_name"`
	PersonType     string  `gorm:"not null;default:natural;size:20"`
	Phone          *string `gorm:"size:20"`
	Email          *string `gorm:"size:255"`
	Active         bool    `gorm:"not null;default:true;index:idx_owner_active"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (OwnerModel) TableName() string {
	return constants.TableOwners
}

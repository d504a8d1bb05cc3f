package models

import (
	"time"

	"caseta/internal/shared/constants"
)

// SiteSettingModel represents the single-row site settings table.
type SiteSettingModel struct {
	ID             uint   `gorm:"primarykey"`
	SiteName       string `gorm:"not null;size:150"`
	Address        string `gorm:"size:255"`
	OperatingHours string `gorm:"size:150"`
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (SiteSettingModel) TableName() string {
	return constants.TableSiteSettings
}

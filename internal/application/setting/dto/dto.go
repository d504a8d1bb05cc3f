package dto

import "time"

// UpdateSiteSettingsRequest represents the request to update site settings
type UpdateSiteSettingsRequest struct {
	SiteName       string `json:"site_name" binding:"required,max=150"`
	Address        string `json:"address,omitempty" binding:"omitempty,max=255"`
	OperatingHours string `json:"operating_hours,omitempty" binding:"omitempty,max=150"`
}

// SiteSettingsResponse represents the site settings
type SiteSettingsResponse struct {
	SiteName       string    `json:"site_name"`
	Address        string    `json:"address,omitempty"`
	OperatingHours string    `json:"operating_hours,omitempty"`
	UpdatedAt      time.Time `json:"updated_at"`
}

package setting

import (
	"fmt"
	"time"

	"caseta/internal/shared/biztime"
)

// SiteSettings holds the site reference data shown on screens and reports:
// the site name, its address and the operating-hours description. A single
// row exists and is only ever updated.
type SiteSettings struct {
	id             uint
	siteName       string
	address        string
	operatingHours string
	updatedAt      time.Time
}

// NewSiteSettings creates the settings record.
func NewSiteSettings(siteName, address, operatingHours string) (*SiteSettings, error) {
	if siteName == "" {
		return nil, fmt.Errorf("site name is required")
	}

	return &SiteSettings{
		siteName:       siteName,
		address:        address,
		operatingHours: operatingHours,
		updatedAt:      biztime.NowUTC(),
	}, nil
}

// ReconstructSiteSettings reconstructs the settings from persistence.
func ReconstructSiteSettings(id uint, siteName, address, operatingHours string, updatedAt time.Time) *SiteSettings {
	return &SiteSettings{
		id:             id,
		siteName:       siteName,
		address:        address,
		operatingHours: operatingHours,
		updatedAt:      updatedAt,
	}
}

// ID returns the settings row ID.
func (s *SiteSettings) ID() uint { return s.id }

// SetID sets the ID after persistence assigns it.
func (s *SiteSettings) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("settings ID already set")
	}
	s.id = id
	return nil
}

// SiteName returns the site name.
func (s *SiteSettings) SiteName() string { return s.siteName }

// Address returns the site address.
func (s *SiteSettings) Address() string { return s.address }

// OperatingHours returns the operating-hours description.
func (s *SiteSettings) OperatingHours() string { return s.operatingHours }

// UpdatedAt returns the last update timestamp.
func (s *SiteSettings) UpdatedAt() time.Time { return s.updatedAt }

// Update replaces the settings values.
func (s *SiteSettings) Update(siteName, address, operatingHours string) error {
	if siteName == "" {
		return fmt.Errorf("site name is required")
	}
	s.siteName = siteName
	s.address = address
	s.operatingHours = operatingHours
	s.updatedAt = biztime.NowUTC()
	return nil
}

package setting

import "context"

// Repository defines the interface for the site settings row.
type Repository interface {
	// Get returns the settings row, nil when none exists yet.
	Get(ctx context.Context) (*SiteSettings, error)

	// Save inserts or updates the settings row.
	Save(ctx context.Context, settings *SiteSettings) error
}

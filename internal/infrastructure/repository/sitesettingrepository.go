package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"caseta/internal/domain/setting"
	"caseta/internal/infrastructure/persistence/mappers"
	"caseta/internal/infrastructure/persistence/models"
	"caseta/internal/shared/db"
	"caseta/internal/shared/logger"
)

// SiteSettingRepository implements the site settings repository interface
type SiteSettingRepository struct {
	db     *gorm.DB
	mapper mappers.SiteSettingMapper
	logger logger.Interface
}

// NewSiteSettingRepository creates a new site setting repository
func NewSiteSettingRepository(database *gorm.DB, log logger.Interface) setting.Repository {
	return &SiteSettingRepository{
		db:     database,
		mapper: mappers.NewSiteSettingMapper(),
		logger: log,
	}
}

// Get returns the settings row, nil when none exists yet
func (r *SiteSettingRepository) Get(ctx context.Context) (*setting.SiteSettings, error) {
	var model models.SiteSettingModel

	if err := r.db.WithContext(ctx).Order("id ASC").First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get site settings", "error", err)
		return nil, fmt.Errorf("failed to get site settings: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

// Save inserts or updates the settings row
func (r *SiteSettingRepository) Save(ctx context.Context, settings *setting.SiteSettings) error {
	model := r.mapper.ToModel(settings)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Save(model).Error; err != nil {
		r.logger.Errorw("failed to save site settings", "error", err)
		return fmt.Errorf("failed to save site settings: %w", err)
	}

	if settings.ID() == 0 {
		if err := settings.SetID(model.ID); err != nil {
			return fmt.Errorf("failed to set site settings ID: %w", err)
		}
	}

	r.logger.Infow("site settings saved", "id", model.ID)
	return nil
}

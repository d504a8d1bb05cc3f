package usecases

import (
	"context"
	"fmt"

	"caseta/internal/application/setting/dto"
	"caseta/internal/domain/setting"
	"caseta/internal/shared/logger"
)

// Defaults shown before anyone saves settings for the first time.
const (
	defaultSiteName       = "Control de Acceso Vehicular"
	defaultOperatingHours = "Lunes a Viernes 6:00 - 22:00"
)

// GetSiteSettingsUseCase returns the site settings, falling back to the
// defaults when no row exists yet.
type GetSiteSettingsUseCase struct {
	settingRepo setting.Repository
	logger      logger.Interface
}

// NewGetSiteSettingsUseCase creates a new get site settings use case
func NewGetSiteSettingsUseCase(settingRepo setting.Repository, logger logger.Interface) *GetSiteSettingsUseCase {
	return &GetSiteSettingsUseCase{
		settingRepo: settingRepo,
		logger:      logger,
	}
}

// Execute executes the get site settings use case
func (uc *GetSiteSettingsUseCase) Execute(ctx context.Context) (*dto.SiteSettingsResponse, error) {
	settings, err := uc.settingRepo.Get(ctx)
	if err != nil {
		uc.logger.Errorw("failed to get site settings", "error", err)
		return nil, fmt.Errorf("failed to get site settings: %w", err)
	}

	if settings == nil {
		return &dto.SiteSettingsResponse{
			SiteName:       defaultSiteName,
			OperatingHours: defaultOperatingHours,
		}, nil
	}

	return &dto.SiteSettingsResponse{
		SiteName:       settings.SiteName(),
		Address:        settings.Address(),
		OperatingHours: settings.OperatingHours(),
		UpdatedAt:      settings.UpdatedAt(),
	}, nil
}

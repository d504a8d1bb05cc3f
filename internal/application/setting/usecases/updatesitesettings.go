package usecases

import (
	"context"
	"fmt"

	"caseta/internal/application/setting/dto"
	"caseta/internal/domain/setting"
	"caseta/internal/shared/errors"
	"caseta/internal/shared/logger"
)

// UpdateSiteSettingsUseCase upserts the single settings row.
type UpdateSiteSettingsUseCase struct {
	settingRepo setting.Repository
	logger      logger.Interface
}

// NewUpdateSiteSettingsUseCase creates a new update site settings use case
func NewUpdateSiteSettingsUseCase(settingRepo setting.Repository, logger logger.Interface) *UpdateSiteSettingsUseCase {
	return &UpdateSiteSettingsUseCase{
		settingRepo: settingRepo,
		logger:      logger,
	}
}

// Execute executes the update site settings use case
func (uc *UpdateSiteSettingsUseCase) Execute(ctx context.Context, request dto.UpdateSiteSettingsRequest) (*dto.SiteSettingsResponse, error) {
	uc.logger.Infow("executing update site settings use case", "site_name", request.SiteName)

	settings, err := uc.settingRepo.Get(ctx)
	if err != nil {
		uc.logger.Errorw("failed to get site settings", "error", err)
		return nil, fmt.Errorf("failed to get site settings: %w", err)
	}

	if settings == nil {
		settings, err = setting.NewSiteSettings(request.SiteName, request.Address, request.OperatingHours)
		if err != nil {
			return nil, errors.NewValidationError("invalid site settings", err.Error())
		}
	} else {
		if err := settings.Update(request.SiteName, request.Address, request.OperatingHours); err != nil {
			return nil, errors.NewValidationError("invalid site settings", err.Error())
		}
	}

	if err := uc.settingRepo.Save(ctx, settings); err != nil {
		uc.logger.Errorw("failed to save site settings", "error", err)
		return nil, err
	}

	uc.logger.Infow("site settings saved", "site_name", settings.SiteName())

	return &dto.SiteSettingsResponse{
		SiteName:       settings.SiteName(),
		Address:        settings.Address(),
		OperatingHours: settings.OperatingHours(),
		UpdatedAt:      settings.UpdatedAt(),
	}, nil
}

package mappers

import (
	"caseta/internal/domain/setting"
	"caseta/internal/infrastructure/persistence/models"
)

// SiteSettingMapper handles the conversion between the settings entity and its model
type SiteSettingMapper interface {
	ToEntity(model *models.SiteSettingModel) *setting.SiteSettings
	ToModel(entity *setting.SiteSettings) *models.SiteSettingModel
}

// SiteSettingMapperImpl is the concrete implementation of SiteSettingMapper
type SiteSettingMapperImpl struct{}

// NewSiteSettingMapper creates a new site setting mapper
func NewSiteSettingMapper() SiteSettingMapper {
	return &SiteSettingMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *SiteSettingMapperImpl) ToEntity(model *models.SiteSettingModel) *setting.SiteSettings {
	if model == nil {
		return nil
	}
	return setting.ReconstructSiteSettings(
		model.ID,
		model.SiteName,
		model.Address,
		model.OperatingHours,
		model.UpdatedAt,
	)
}

// ToModel converts a domain entity to a persistence model
func (m *SiteSettingMapperImpl) ToModel(entity *setting.SiteSettings) *models.SiteSettingModel {
	if entity == nil {
		return nil
	}
	return &models.SiteSettingModel{
		ID:             entity.ID(),
		SiteName:       entity.SiteName(),
		Address:        entity.Address(),
		OperatingHours: entity.OperatingHours(),
		UpdatedAt:      entity.UpdatedAt(),
	}
}

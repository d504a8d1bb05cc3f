package migration

import (
	"caseta/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.OwnerModel{},
		&models.VehicleModel{},
		&models.AccessRecordModel{},
		&models.SiteSettingModel{},
	}
}

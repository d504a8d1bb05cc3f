package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"caseta/internal/domain/vehicle"
	"caseta/internal/infrastructure/persistence/mappers"
	"caseta/internal/infrastructure/persistence/models"
	"caseta/internal/shared/db"
	"caseta/internal/shared/errors"
	"caseta/internal/shared/logger"
)

// VehicleRepository implements the vehicle repository interface
type VehicleRepository struct {
	db     *gorm.DB
	mapper mappers.VehicleMapper
	logger logger.Interface
}

// NewVehicleRepository creates a new vehicle repository
func NewVehicleRepository(database *gorm.DB, log logger.Interface) vehicle.Repository {
	return &VehicleRepository{
		db:     database,
		mapper: mappers.NewVehicleMapper(),
		logger: log,
	}
}

// Create creates a new vehicle. The unique index on plate catches the race
// the use-case level existence check cannot.
func (r *VehicleRepository) Create(ctx context.Context, entity *vehicle.Vehicle) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map vehicle entity to model", "error", err)
		return fmt.Errorf("failed to map vehicle entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return vehicle.NewDuplicatePlateError(model.Plate)
		}
		r.logger.Errorw("failed to create vehicle in database", "error", err)
		return fmt.Errorf("failed to create vehicle: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set vehicle ID: %w", err)
	}

	r.logger.Infow("vehicle created", "id", model.ID, "plate", model.Plate)
	return nil
}

// GetByID retrieves a vehicle by ID
func (r *VehicleRepository) GetByID(ctx context.Context, id uint) (*vehicle.Vehicle, error) {
	var model models.VehicleModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get vehicle by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetByPlate retrieves a vehicle by its normalized plate
func (r *VehicleRepository) GetByPlate(ctx context.Context, plate string) (*vehicle.Vehicle, error) {
	var model models.VehicleModel

	if err := r.db.WithContext(ctx).Where("plate = ?", plate).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get vehicle by plate", "plate", plate, "error", err)
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetActiveByPlate retrieves a vehicle by plate only when active
func (r *VehicleRepository) GetActiveByPlate(ctx context.Context, plate string) (*vehicle.Vehicle, error) {
	var model models.VehicleModel

	if err := r.db.WithContext(ctx).Scopes(db.Active()).Where("plate = ?", plate).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get active vehicle by plate", "plate", plate, "error", err)
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// Update updates an existing vehicle. The plate column is deliberately not
// in the update set.
func (r *VehicleRepository) Update(ctx context.Context, entity *vehicle.Vehicle) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map vehicle entity to model", "error", err)
		return fmt.Errorf("failed to map vehicle entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.VehicleModel{}).
		Where("id = ?", model.ID).
		Select("vehicle_type", "brand", "model", "color", "year", "owner_id", "active", "notes", "updated_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update vehicle", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update vehicle: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return vehicle.NewVehicleNotFoundError(fmt.Sprintf("vehicle %d not found", model.ID))
	}

	return nil
}

// List retrieves a paginated list of vehicles ordered by plate. Search
// matches the vehicle's plate, brand and model plus the owner's full name
// and document number.
func (r *VehicleRepository) List(ctx context.Context, filter vehicle.ListFilter) ([]*vehicle.Vehicle, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.VehicleModel{})

	if !filter.IncludeInactive {
		query = query.Scopes(db.ActiveWithAlias("vehicles"))
	}

	if filter.VehicleType != "" {
		query = query.Where("vehicles.vehicle_type = ?", filter.VehicleType)
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.
			Joins("LEFT JOIN owners ON owners.id = vehicles.owner_id").
			Where("vehicles.plate LIKE ? OR vehicles.brand LIKE ? OR vehicles.model LIKE ? OR owners.full_name LIKE ? OR owners.document_number LIKE ?",
				pattern, pattern, pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count vehicles", "error", err)
		return nil, 0, fmt.Errorf("failed to count vehicles: %w", err)
	}

	var vehicleModels []*models.VehicleModel
	offset := (filter.Page - 1) * filter.PageSize
	if err := query.Order("vehicles.plate ASC").Offset(offset).Limit(filter.PageSize).Find(&vehicleModels).Error; err != nil {
		r.logger.Errorw("failed to list vehicles", "error", err)
		return nil, 0, fmt.Errorf("failed to list vehicles: %w", err)
	}

	entities, err := r.mapper.ToEntities(vehicleModels)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map vehicles: %w", err)
	}

	return entities, total, nil
}

// ExistsByPlate checks whether any vehicle, active or not, uses the plate
func (r *VehicleRepository) ExistsByPlate(ctx context.Context, plate string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.VehicleModel{}).Where("plate = ?", plate).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check plate existence", "plate", plate, "error", err)
		return false, fmt.Errorf("failed to check plate: %w", err)
	}
	return count > 0, nil
}

// CountActive returns the number of active vehicles
func (r *VehicleRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.VehicleModel{}).Scopes(db.Active()).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count active vehicles", "error", err)
		return 0, fmt.Errorf("failed to count vehicles: %w", err)
	}
	return count, nil
}

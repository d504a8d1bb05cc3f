package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"caseta/internal/domain/access"
	"caseta/internal/infrastructure/persistence/mappers"
	"caseta/internal/infrastructure/persistence/models"
	"caseta/internal/shared/db"
	"caseta/internal/shared/logger"
)

// AccessRecordRepository implements the access record repository interface.
// The table is append-only; nothing here updates or deletes rows.
type AccessRecordRepository struct {
	db     *gorm.DB
	mapper mappers.AccessRecordMapper
	logger logger.Interface
}

// NewAccessRecordRepository creates a new access record repository
func NewAccessRecordRepository(database *gorm.DB, log logger.Interface) access.Repository {
	return &AccessRecordRepository{
		db:     database,
		mapper: mappers.NewAccessRecordMapper(),
		logger: log,
	}
}

// Create appends a new access record
func (r *AccessRecordRepository) Create(ctx context.Context, entity *access.Record) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map access record entity to model", "error", err)
		return fmt.Errorf("failed to map access record entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create access record", "vehicle_id", model.VehicleID, "error", err)
		return fmt.Errorf("failed to create access record: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set access record ID: %w", err)
	}

	r.logger.Infow("access record created",
		"id", model.ID,
		"vehicle_id", model.VehicleID,
		"movement", model.Movement)
	return nil
}

// GetLatestForVehicle returns the most recent record for a vehicle.
// Timestamp ties go to the row inserted later, hence the ID tiebreak.
func (r *AccessRecordRepository) GetLatestForVehicle(ctx context.Context, vehicleID uint) (*access.Record, error) {
	var model models.AccessRecordModel

	err := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("recorded_at DESC, id DESC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get latest access record", "vehicle_id", vehicleID, "error", err)
		return nil, fmt.Errorf("failed to get latest access record: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// ListForVehicle returns a vehicle's records, newest first
func (r *AccessRecordRepository) ListForVehicle(ctx context.Context, vehicleID uint, limit int) ([]*access.Record, error) {
	query := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("recorded_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var recordModels []*models.AccessRecordModel
	if err := query.Find(&recordModels).Error; err != nil {
		r.logger.Errorw("failed to list access records for vehicle", "vehicle_id", vehicleID, "error", err)
		return nil, fmt.Errorf("failed to list access records: %w", err)
	}

	return r.mapper.ToEntities(recordModels)
}

// List retrieves a filtered, paginated slice of the log, newest first
func (r *AccessRecordRepository) List(ctx context.Context, filter access.ListFilter) ([]*access.Record, int64, error) {
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.AccessRecordModel{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count access records", "error", err)
		return nil, 0, fmt.Errorf("failed to count access records: %w", err)
	}

	var recordModels []*models.AccessRecordModel
	offset := (filter.Page - 1) * filter.PageSize
	err := query.
		Order("access_records.recorded_at DESC, access_records.id DESC").
		Offset(offset).
		Limit(filter.PageSize).
		Find(&recordModels).Error
	if err != nil {
		r.logger.Errorw("failed to list access records", "error", err)
		return nil, 0, fmt.Errorf("failed to list access records: %w", err)
	}

	entities, err := r.mapper.ToEntities(recordModels)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map access records: %w", err)
	}

	return entities, total, nil
}

// CountByMovement counts records in the filtered set per movement type
func (r *AccessRecordRepository) CountByMovement(ctx context.Context, filter access.ListFilter) (int64, int64, error) {
	type movementCount struct {
		Movement string
		Total    int64
	}

	var counts []movementCount
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.AccessRecordModel{}), filter)
	err := query.
		Select("access_records.movement AS movement, COUNT(*) AS total").
		Group("access_records.movement").
		Scan(&counts).Error
	if err != nil {
		r.logger.Errorw("failed to count access records by movement", "error", err)
		return 0, 0, fmt.Errorf("failed to count access records by movement: %w", err)
	}

	var entries, exits int64
	for _, c := range counts {
		switch c.Movement {
		case access.MovementEntry.String():
			entries = c.Total
		case access.MovementExit.String():
			exits = c.Total
		}
	}

	return entries, exits, nil
}

// CountSince counts records at or after the given instant
func (r *AccessRecordRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.AccessRecordModel{}).
		Where("recorded_at >= ?", since).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to count access records since", "since", since, "error", err)
		return 0, fmt.Errorf("failed to count access records: %w", err)
	}
	return count, nil
}

// CountVehiclesInside counts active vehicles whose latest record is an
// entry. The correlated subquery applies the same ordering the presence
// inference uses, newest timestamp with the higher ID breaking ties.
func (r *AccessRecordRepository) CountVehiclesInside(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.AccessRecordModel{}).
		Joins("JOIN vehicles ON vehicles.id = access_records.vehicle_id").
		Where("vehicles.active = ?", true).
		Where("access_records.movement = ?", access.MovementEntry.String()).
		Where(`access_records.id = (
			SELECT ar2.id FROM access_records ar2
			WHERE ar2.vehicle_id = access_records.vehicle_id
			ORDER BY ar2.recorded_at DESC, ar2.id DESC
			LIMIT 1
		)`).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to count vehicles inside", "error", err)
		return 0, fmt.Errorf("failed to count vehicles inside: %w", err)
	}
	return count, nil
}

// ListRecent returns the newest records across all vehicles
func (r *AccessRecordRepository) ListRecent(ctx context.Context, limit int) ([]*access.Record, error) {
	var recordModels []*models.AccessRecordModel
	err := r.db.WithContext(ctx).
		Order("recorded_at DESC, id DESC").
		Limit(limit).
		Find(&recordModels).Error
	if err != nil {
		r.logger.Errorw("failed to list recent access records", "error", err)
		return nil, fmt.Errorf("failed to list recent access records: %w", err)
	}

	return r.mapper.ToEntities(recordModels)
}

// applyFilter translates the list filter into WHERE clauses. The vehicle
// type filter needs a join onto vehicles.
func (r *AccessRecordRepository) applyFilter(query *gorm.DB, filter access.ListFilter) *gorm.DB {
	if filter.VehicleID != 0 {
		query = query.Where("access_records.vehicle_id = ?", filter.VehicleID)
	}
	if filter.Movement != "" {
		query = query.Where("access_records.movement = ?", filter.Movement)
	}
	if filter.From != nil {
		query = query.Where("access_records.recorded_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("access_records.recorded_at <= ?", *filter.To)
	}
	if filter.VehicleType != "" {
		query = query.
			Joins("JOIN vehicles ON vehicles.id = access_records.vehicle_id").
			Where("vehicles.vehicle_type = ?", filter.VehicleType)
	}
	return query
}

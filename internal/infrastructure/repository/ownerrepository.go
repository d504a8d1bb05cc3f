package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"caseta/internal/domain/owner"
	"caseta/internal/infrastructure/persistence/mappers"
	"caseta/internal/infrastructure/persistence/models"
	"caseta/internal/shared/db"
	"caseta/internal/shared/logger"
)

// OwnerRepository implements the owner repository interface
type OwnerRepository struct {
	db     *gorm.DB
	mapper mappers.OwnerMapper
	logger logger.Interface
}

// NewOwnerRepository creates a new owner repository
func NewOwnerRepository(database *gorm.DB, log logger.Interface) owner.Repository {
	return &OwnerRepository{
		db:     database,
		mapper: mappers.NewOwnerMapper(),
		logger: log,
	}
}

// Create creates a new owner
func (r *OwnerRepository) Create(ctx context.Context, entity *owner.Owner) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map owner entity to model", "error", err)
		return fmt.Errorf("failed to map owner entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create owner in database", "error", err)
		return fmt.Errorf("failed to create owner: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set owner ID: %w", err)
	}

	r.logger.Infow("owner created", "id", model.ID, "document_number", model.DocumentNumber)
	return nil
}

// GetByID retrieves an owner by ID
func (r *OwnerRepository) GetByID(ctx context.Context, id uint) (*owner.Owner, error) {
	var model models.OwnerModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get owner by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetActiveByID retrieves an owner by ID only when active
func (r *OwnerRepository) GetActiveByID(ctx context.Context, id uint) (*owner.Owner, error) {
	var model models.OwnerModel

	if err := r.db.WithContext(ctx).Scopes(db.Active()).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get active owner by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetByDocumentNumber retrieves an owner by document number
func (r *OwnerRepository) GetByDocumentNumber(ctx context.Context, documentNumber string) (*owner.Owner, error) {
	var model models.OwnerModel

	if err := r.db.WithContext(ctx).Where("document_number = ?", documentNumber).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get owner by document number", "document_number", documentNumber, "error", err)
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// Update updates an existing owner
func (r *OwnerRepository) Update(ctx context.Context, entity *owner.Owner) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map owner entity to model", "error", err)
		return fmt.Errorf("failed to map owner entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.OwnerModel{}).
		Where("id = ?", model.ID).
		Select("document_type", "document_number", "full_name", "person_type", "phone", "email", "active", "updated_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update owner", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update owner: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return owner.NewOwnerNotFoundError(fmt.Sprintf("owner %d not found", model.ID))
	}

	return nil
}

// List retrieves a paginated list of owners
func (r *OwnerRepository) List(ctx context.Context, filter owner.ListFilter) ([]*owner.Owner, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.OwnerModel{})

	if !filter.IncludeInactive {
		query = query.Scopes(db.Active())
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("full_name LIKE ? OR document_number LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count owners", "error", err)
		return nil, 0, fmt.Errorf("failed to count owners: %w", err)
	}

	var ownerModels []*models.OwnerModel
	offset := (filter.Page - 1) * filter.PageSize
	if err := query.Order("full_name ASC").Offset(offset).Limit(filter.PageSize).Find(&ownerModels).Error; err != nil {
		r.logger.Errorw("failed to list owners", "error", err)
		return nil, 0, fmt.Errorf("failed to list owners: %w", err)
	}

	entities, err := r.mapper.ToEntities(ownerModels)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map owners: %w", err)
	}

	return entities, total, nil
}

// ExistsActiveWithDocument checks whether an active owner uses the document number
func (r *OwnerRepository) ExistsActiveWithDocument(ctx context.Context, documentNumber string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.OwnerModel{}).
		Scopes(db.Active()).
		Where("document_number = ?", documentNumber)
	if excludeID != 0 {
		query = query.Where("id != ?", excludeID)
	}

	if err := query.Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check document number existence", "document_number", documentNumber, "error", err)
		return false, fmt.Errorf("failed to check document number: %w", err)
	}

	return count > 0, nil
}

// CountActive returns the number of active owners
func (r *OwnerRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.OwnerModel{}).Scopes(db.Active()).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count active owners", "error", err)
		return 0, fmt.Errorf("failed to count owners: %w", err)
	}
	return count, nil
}

package mappers

import (
	"fmt"

	"caseta/internal/domain/access"
	"caseta/internal/infrastructure/persistence/models"
)

// AccessRecordMapper handles the conversion between domain entities and persistence models
type AccessRecordMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.AccessRecordModel) (*access.Record, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *access.Record) (*models.AccessRecordModel, error)

	// ToEntities converts multiple persistence models to domain entities
	ToEntities(models []*models.AccessRecordModel) ([]*access.Record, error)
}

// AccessRecordMapperImpl is the concrete implementation of AccessRecordMapper
type AccessRecordMapperImpl struct{}

// NewAccessRecordMapper creates a new access record mapper
func NewAccessRecordMapper() AccessRecordMapper {
	return &AccessRecordMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *AccessRecordMapperImpl) ToEntity(model *models.AccessRecordModel) (*access.Record, error) {
	if model == nil {
		return nil, nil
	}

	movement, err := access.ParseMovement(model.Movement)
	if err != nil {
		return nil, fmt.Errorf("failed to parse movement: %w", err)
	}

	entity, err := access.ReconstructRecord(
		model.ID,
		model.VehicleID,
		movement,
		model.RecordedAt,
		model.Notes,
		model.RegisteredBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct access record entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *AccessRecordMapperImpl) ToModel(entity *access.Record) (*models.AccessRecordModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.AccessRecordModel{
		ID:           entity.ID(),
		VehicleID:    entity.VehicleID(),
		Movement:     entity.Movement().String(),
		RecordedAt:   entity.RecordedAt(),
		Notes:        entity.Notes(),
		RegisteredBy: entity.RegisteredBy(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *AccessRecordMapperImpl) ToEntities(recordModels []*models.AccessRecordModel) ([]*access.Record, error) {
	entities := make([]*access.Record, 0, len(recordModels))
	for _, model := range recordModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to convert access record model %d: %w", model.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

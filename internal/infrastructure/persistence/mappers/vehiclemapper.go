package mappers

import (
	"fmt"

	"caseta/internal/domain/vehicle"
	vo "caseta/internal/domain/vehicle/valueobjects"
	"caseta/internal/infrastructure/persistence/models"
)

// VehicleMapper handles the conversion between domain entities and persistence models
type VehicleMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.VehicleModel) (*vehicle.Vehicle, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *vehicle.Vehicle) (*models.VehicleModel, error)

	// ToEntities converts multiple persistence models to domain entities
	ToEntities(models []*models.VehicleModel) ([]*vehicle.Vehicle, error)
}

// VehicleMapperImpl is the concrete implementation of VehicleMapper
type VehicleMapperImpl struct{}

// NewVehicleMapper creates a new vehicle mapper
func NewVehicleMapper() VehicleMapper {
	return &VehicleMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *VehicleMapperImpl) ToEntity(model *models.VehicleModel) (*vehicle.Vehicle, error) {
	if model == nil {
		return nil, nil
	}

	plate, err := vo.NewPlate(model.Plate)
	if err != nil {
		return nil, fmt.Errorf("failed to create plate value object: %w", err)
	}

	vehicleType, err := vo.ParseVehicleType(model.VehicleType)
	if err != nil {
		return nil, fmt.Errorf("failed to parse vehicle type: %w", err)
	}

	color, err := vo.ParseColor(model.Color)
	if err != nil {
		return nil, fmt.Errorf("failed to parse color: %w", err)
	}

	year, err := vo.NewYear(model.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to create year value object: %w", err)
	}

	entity, err := vehicle.ReconstructVehicle(
		model.ID,
		plate,
		vehicleType,
		model.Brand,
		model.Model,
		color,
		year,
		model.OwnerID,
		model.Active,
		model.RegisteredAt,
		model.Notes,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct vehicle entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *VehicleMapperImpl) ToModel(entity *vehicle.Vehicle) (*models.VehicleModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.VehicleModel{
		ID:           entity.ID(),
		Plate:        entity.Plate().String(),
		VehicleType:  entity.VehicleType().String(),
		Brand:        entity.Brand(),
		Model:        entity.Model(),
		Color:        entity.Color().String(),
		Year:         entity.Year().Int(),
		OwnerID:      entity.OwnerID(),
		Active:       entity.IsActive(),
		RegisteredAt: entity.RegisteredAt(),
		Notes:        entity.Notes(),
		UpdatedAt:    entity.UpdatedAt(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *VehicleMapperImpl) ToEntities(vehicleModels []*models.VehicleModel) ([]*vehicle.Vehicle, error) {
	entities := make([]*vehicle.Vehicle, 0, len(vehicleModels))
	for _, model := range vehicleModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to convert vehicle model %d: %w", model.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

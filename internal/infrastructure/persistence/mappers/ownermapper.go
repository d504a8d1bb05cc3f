package mappers

import (
	"fmt"

	"caseta/internal/domain/owner"
	vo "caseta/internal/domain/owner/valueobjects"
	"caseta/internal/infrastructure/persistence/models"
)

// OwnerMapper handles the conversion between domain entities and persistence models
type OwnerMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.OwnerModel) (*owner.Owner, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *owner.Owner) (*models.OwnerModel, error)

	// ToEntities converts multiple persistence models to domain entities
	ToEntities(models []*models.OwnerModel) ([]*owner.Owner, error)
}

// OwnerMapperImpl is the concrete implementation of OwnerMapper
type OwnerMapperImpl struct{}

// NewOwnerMapper creates a new owner mapper
func NewOwnerMapper() OwnerMapper {
	return &OwnerMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *OwnerMapperImpl) ToEntity(model *models.OwnerModel) (*owner.Owner, error) {
	if model == nil {
		return nil, nil
	}

	documentType, err := vo.ParseDocumentType(model.DocumentType)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document type: %w", err)
	}

	documentNumber, err := vo.NewDocumentNumber(model.DocumentNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to create document number value object: %w", err)
	}

	fullName, err := vo.NewFullName(model.FullName)
	if err != nil {
		return nil, fmt.Errorf("failed to create full name value object: %w", err)
	}

	personType, err := vo.ParsePersonType(model.PersonType)
	if err != nil {
		return nil, fmt.Errorf("failed to parse person type: %w", err)
	}

	var phone *vo.Phone
	if model.Phone != nil && *model.Phone != "" {
		phone, err = vo.NewPhone(*model.Phone)
		if err != nil {
			return nil, fmt.Errorf("failed to create phone value object: %w", err)
		}
	}

	email := ""
	if model.Email != nil {
		email = *model.Email
	}

	entity, err := owner.ReconstructOwner(
		model.ID,
		documentType,
		documentNumber,
		fullName,
		phone,
		email,
		personType,
		model.Active,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct owner entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *OwnerMapperImpl) ToModel(entity *owner.Owner) (*models.OwnerModel, error) {
	if entity == nil {
		return nil, nil
	}

	model := &models.OwnerModel{
		ID:             entity.ID(),
		DocumentType:   entity.DocumentType().String(),
		DocumentNumber: entity.DocumentNumber().String(),
		FullName:       entity.FullName().String(),
		PersonType:     entity.PersonType().String(),
		Active:         entity.IsActive(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}

	if entity.Phone() != nil {
		phone := entity.Phone().String()
		model.Phone = &phone
	}
	if entity.Email() != "" {
		email := entity.Email()
		model.Email = &email
	}

	return model, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *OwnerMapperImpl) ToEntities(ownerModels []*models.OwnerModel) ([]*owner.Owner, error) {
	entities := make([]*owner.Owner, 0, len(ownerModels))
	for _, model := range ownerModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to convert owner model %d: %w", model.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

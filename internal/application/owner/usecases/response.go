package usecases

import (
	"caseta/internal/application/owner/dto"
	domainOwner "caseta/internal/domain/owner"
)

func toOwnerResponse(entity *domainOwner.Owner) *dto.OwnerResponse {
	response := &dto.OwnerResponse{
		ID:             entity.ID(),
		DocumentType:   entity.DocumentType().String(),
		DocumentNumber: entity.DocumentNumber().String(),
		FullName:       entity.FullName().String(),
		DisplayName:    entity.FullName().DisplayName(),
		Email:          entity.Email(),
		PersonType:     entity.PersonType().String(),
		Active:         entity.IsActive(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}
	if entity.Phone() != nil {
		response.Phone = entity.Phone().String()
	}
	return response
}

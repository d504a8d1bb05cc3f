package usecases

import (
	"context"
	"fmt"

	"caseta/internal/application/owner/dto"
	domainOwner "caseta/internal/domain/owner"
	"caseta/internal/shared/logger"
)

// GetOwnerUseCase handles retrieving a single owner
type GetOwnerUseCase struct {
	ownerRepo domainOwner.Repository
	logger    logger.Interface
}

// NewGetOwnerUseCase creates a new get owner use case
func NewGetOwnerUseCase(ownerRepo domainOwner.Repository, logger logger.Interface) *GetOwnerUseCase {
	return &GetOwnerUseCase{
		ownerRepo: ownerRepo,
		logger:    logger,
	}
}

// Execute executes the get owner use case
func (uc *GetOwnerUseCase) Execute(ctx context.Context, id uint) (*dto.OwnerResponse, error) {
	entity, err := uc.ownerRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get owner", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}
	if entity == nil {
		return nil, domainOwner.NewOwnerNotFoundError(fmt.Sprintf("owner %d not found", id))
	}

	return toOwnerResponse(entity), nil
}

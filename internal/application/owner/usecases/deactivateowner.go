package usecases

import (
	"context"
	"fmt"

	domainOwner "caseta/internal/domain/owner"
	"caseta/internal/shared/logger"
)

// DeactivateOwnerUseCase handles soft-deleting an owner. The row stays in
// place so vehicles keep a valid reference.
type DeactivateOwnerUseCase struct {
	ownerRepo domainOwner.Repository
	logger    logger.Interface
}

// NewDeactivateOwnerUseCase creates a new deactivate owner use case
func NewDeactivateOwnerUseCase(ownerRepo domainOwner.Repository, logger logger.Interface) *DeactivateOwnerUseCase {
	return &DeactivateOwnerUseCase{
		ownerRepo: ownerRepo,
		logger:    logger,
	}
}

// Execute executes the deactivate owner use case
func (uc *DeactivateOwnerUseCase) Execute(ctx context.Context, id uint) error {
	uc.logger.Infow("executing deactivate owner use case", "id", id)

	entity, err := uc.ownerRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get owner", "id", id, "error", err)
		return fmt.Errorf("failed to get owner: %w", err)
	}
	if entity == nil {
		return domainOwner.NewOwnerNotFoundError(fmt.Sprintf("owner %d not found", id))
	}

	entity.Deactivate()

	if err := uc.ownerRepo.Update(ctx, entity); err != nil {
		uc.logger.Errorw("failed to deactivate owner", "id", id, "error", err)
		return err
	}

	uc.logger.Infow("owner deactivated", "id", id)
	return nil
}

package usecases

import (
	"context"
	"fmt"

	"caseta/internal/application/owner/dto"
	domainOwner "caseta/internal/domain/owner"
	vo "caseta/internal/domain/owner/valueobjects"
	"caseta/internal/shared/errors"
	"caseta/internal/shared/logger"
)

// UpdateOwnerUseCase handles the business logic for updating an owner's
// contact data. The document identity never changes.
type UpdateOwnerUseCase struct {
	ownerRepo domainOwner.Repository
	logger    logger.Interface
}

// NewUpdateOwnerUseCase creates a new update owner use case
func NewUpdateOwnerUseCase(ownerRepo domainOwner.Repository, logger logger.Interface) *UpdateOwnerUseCase {
	return &UpdateOwnerUseCase{
		ownerRepo: ownerRepo,
		logger:    logger,
	}
}

// Execute executes the update owner use case
func (uc *UpdateOwnerUseCase) Execute(ctx context.Context, id uint, request dto.UpdateOwnerRequest) (*dto.OwnerResponse, error) {
	uc.logger.Infow("executing update owner use case", "id", id)

	entity, err := uc.ownerRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get owner", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}
	if entity == nil {
		return nil, domainOwner.NewOwnerNotFoundError(fmt.Sprintf("owner %d not found", id))
	}

	fullName, err := vo.NewFullName(request.FullName)
	if err != nil {
		return nil, errors.NewFieldValidationError("full_name", "invalid full name", err.Error())
	}

	var phone *vo.Phone
	if request.Phone != "" {
		phone, err = vo.NewPhone(request.Phone)
		if err != nil {
			return nil, domainOwner.NewPhoneFormatError(err.Error())
		}
	}

	if err := entity.UpdateContact(fullName, phone, request.Email); err != nil {
		return nil, errors.NewValidationError("invalid owner data", err.Error())
	}

	if err := uc.ownerRepo.Update(ctx, entity); err != nil {
		uc.logger.Errorw("failed to update owner", "id", id, "error", err)
		return nil, err
	}

	uc.logger.Infow("owner updated successfully", "id", id)
	return toOwnerResponse(entity), nil
}

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

// CreateOwnerUseCase handles the business logic for registering an owner
type CreateOwnerUseCase struct {
	ownerRepo domainOwner.Repository
	logger    logger.Interface
}

// NewCreateOwnerUseCase creates a new create owner use case
func NewCreateOwnerUseCase(ownerRepo domainOwner.Repository, logger logger.Interface) *CreateOwnerUseCase {
	return &CreateOwnerUseCase{
		ownerRepo: ownerRepo,
		logger:    logger,
	}
}

// Execute executes the create owner use case
func (uc *CreateOwnerUseCase) Execute(ctx context.Context, request dto.CreateOwnerRequest) (*dto.OwnerResponse, error) {
	uc.logger.Infow("executing create owner use case", "document_number", request.DocumentNumber)

	documentNumber, err := vo.NewDocumentNumber(request.DocumentNumber)
	if err != nil {
		return nil, domainOwner.NewDocumentFormatError(err.Error())
	}

	exists, err := uc.ownerRepo.ExistsActiveWithDocument(ctx, documentNumber.String(), 0)
	if err != nil {
		uc.logger.Errorw("failed to check existing owner", "document_number", documentNumber.String(), "error", err)
		return nil, fmt.Errorf("failed to check existing owner: %w", err)
	}
	if exists {
		uc.logger.Warnw("document number already registered", "document_number", documentNumber.String())
		return nil, domainOwner.NewDuplicateDocumentError(documentNumber.String())
	}

	documentType := vo.DocumentTypeCC
	if request.DocumentType != "" {
		documentType, err = vo.ParseDocumentType(request.DocumentType)
		if err != nil {
			return nil, domainOwner.NewDocumentFormatError(err.Error())
		}
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

	personType, err := vo.ParsePersonType(request.PersonType)
	if err != nil {
		return nil, errors.NewFieldValidationError("person_type", "invalid person type", err.Error())
	}

	entity, err := domainOwner.NewOwner(documentType, documentNumber, fullName, phone, request.Email, personType)
	if err != nil {
		uc.logger.Errorw("failed to create owner entity", "error", err)
		return nil, fmt.Errorf("failed to create owner: %w", err)
	}

	if err := uc.ownerRepo.Create(ctx, entity); err != nil {
		uc.logger.Errorw("failed to persist owner", "error", err)
		return nil, err
	}

	uc.logger.Infow("owner created successfully", "id", entity.ID(), "document_number", documentNumber.String())
	return toOwnerResponse(entity), nil
}

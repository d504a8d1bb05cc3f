package usecases

import (
	"context"
	"fmt"

	"caseta/internal/application/owner/dto"
	domainOwner "caseta/internal/domain/owner"
	"caseta/internal/shared/constants"
	"caseta/internal/shared/logger"
	"caseta/internal/shared/utils"
)

// ListOwnersUseCase handles listing owners with search and pagination
type ListOwnersUseCase struct {
	ownerRepo domainOwner.Repository
	logger    logger.Interface
}

// NewListOwnersUseCase creates a new list owners use case
func NewListOwnersUseCase(ownerRepo domainOwner.Repository, logger logger.Interface) *ListOwnersUseCase {
	return &ListOwnersUseCase{
		ownerRepo: ownerRepo,
		logger:    logger,
	}
}

// Execute executes the list owners use case. Out-of-range pages are clamped
// to the nearest valid page instead of erroring.
func (uc *ListOwnersUseCase) Execute(ctx context.Context, request dto.ListOwnersRequest) (*dto.ListOwnersResponse, error) {
	pageSize := constants.DefaultPageSize

	filter := domainOwner.ListFilter{
		Page:            1,
		PageSize:        pageSize,
		Search:          request.Search,
		IncludeInactive: request.IncludeInactive,
	}

	_, total, err := uc.ownerRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to count owners", "error", err)
		return nil, fmt.Errorf("failed to list owners: %w", err)
	}

	page := utils.ClampPage(request.Page, total, pageSize)
	filter.Page = page

	owners, total, err := uc.ownerRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list owners", "error", err)
		return nil, fmt.Errorf("failed to list owners: %w", err)
	}

	responses := make([]*dto.OwnerResponse, 0, len(owners))
	for _, entity := range owners {
		responses = append(responses, toOwnerResponse(entity))
	}

	return &dto.ListOwnersResponse{
		Owners: responses,
		Pagination: dto.PaginationResponse{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: utils.TotalPages(total, pageSize),
		},
	}, nil
}

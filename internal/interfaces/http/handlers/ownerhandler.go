package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"caseta/internal/application/owner/dto"
	"caseta/internal/application/owner/usecases"
	"caseta/internal/shared/logger"
	"caseta/internal/shared/utils"
)

// OwnerHandler handles HTTP requests for owner operations
type OwnerHandler struct {
	createOwnerUC     *usecases.CreateOwnerUseCase
	getOwnerUC        *usecases.GetOwnerUseCase
	updateOwnerUC     *usecases.UpdateOwnerUseCase
	listOwnersUC      *usecases.ListOwnersUseCase
	deactivateOwnerUC *usecases.DeactivateOwnerUseCase
	logger            logger.Interface
}

// NewOwnerHandler creates a new owner handler
func NewOwnerHandler(
	createOwnerUC *usecases.CreateOwnerUseCase,
	getOwnerUC *usecases.GetOwnerUseCase,
	updateOwnerUC *usecases.UpdateOwnerUseCase,
	listOwnersUC *usecases.ListOwnersUseCase,
	deactivateOwnerUC *usecases.DeactivateOwnerUseCase,
	log logger.Interface,
) *OwnerHandler {
	return &OwnerHandler{
		createOwnerUC:     createOwnerUC,
		getOwnerUC:        getOwnerUC,
		updateOwnerUC:     updateOwnerUC,
		listOwnersUC:      listOwnersUC,
		deactivateOwnerUC: deactivateOwnerUC,
		logger:            log,
	}
}

// CreateOwner handles POST /owners
func (h *OwnerHandler) CreateOwner(c *gin.Context) {
	var req dto.CreateOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create owner", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	resp, err := h.createOwnerUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, resp, "Owner created successfully")
}

// GetOwner handles GET /owners/:id
func (h *OwnerHandler) GetOwner(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp, err := h.getOwnerUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// UpdateOwner handles PATCH /owners/:id
func (h *OwnerHandler) UpdateOwner(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update owner", "owner_id", id, "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	resp, err := h.updateOwnerUC.Execute(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Owner updated successfully", resp)
}

// ListOwners handles GET /owners
func (h *OwnerHandler) ListOwners(c *gin.Context) {
	var req dto.ListOwnersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.logger.Warnw("invalid query for list owners", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	resp, err := h.listOwnersUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// DeactivateOwner handles DELETE /owners/:id
func (h *OwnerHandler) DeactivateOwner(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deactivateOwnerUC.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

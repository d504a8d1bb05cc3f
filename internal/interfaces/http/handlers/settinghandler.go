package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"caseta/internal/application/setting/dto"
	"caseta/internal/application/setting/usecases"
	"caseta/internal/shared/logger"
	"caseta/internal/shared/utils"
)

// SettingHandler handles HTTP requests for site settings
type SettingHandler struct {
	getSiteSettingsUC    *usecases.GetSiteSettingsUseCase
	updateSiteSettingsUC *usecases.UpdateSiteSettingsUseCase
	logger               logger.Interface
}

// NewSettingHandler creates a new setting handler
func NewSettingHandler(
	getSiteSettingsUC *usecases.GetSiteSettingsUseCase,
	updateSiteSettingsUC *usecases.UpdateSiteSettingsUseCase,
	log logger.Interface,
) *SettingHandler {
	return &SettingHandler{
		getSiteSettingsUC:    getSiteSettingsUC,
		updateSiteSettingsUC: updateSiteSettingsUC,
		logger:               log,
	}
}

// GetSiteSettings handles GET /settings/site
func (h *SettingHandler) GetSiteSettings(c *gin.Context) {
	resp, err := h.getSiteSettingsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// UpdateSiteSettings handles PUT /settings/site
func (h *SettingHandler) UpdateSiteSettings(c *gin.Context) {
	var req dto.UpdateSiteSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update site settings", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	resp, err := h.updateSiteSettingsUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Site settings updated successfully", resp)
}

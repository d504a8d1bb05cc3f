package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"caseta/internal/application/access/usecases"
	"caseta/internal/shared/logger"
	"caseta/internal/shared/utils"
)

// DashboardHandler handles the admin dashboard summary endpoint
type DashboardHandler struct {
	getDashboardUC *usecases.GetDashboardUseCase
	logger         logger.Interface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(getDashboardUC *usecases.GetDashboardUseCase, log logger.Interface) *DashboardHandler {
	return &DashboardHandler{
		getDashboardUC: getDashboardUC,
		logger:         log,
	}
}

// GetDashboard handles GET /dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	resp, err := h.getDashboardUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

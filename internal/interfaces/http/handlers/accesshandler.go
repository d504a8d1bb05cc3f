package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"caseta/internal/application/access/dto"
	"caseta/internal/application/access/usecases"
	"caseta/internal/shared/constants"
	"caseta/internal/shared/logger"
	"caseta/internal/shared/utils"
)

// AccessHandler handles HTTP requests for gate movement registration and
// access reporting.
type AccessHandler struct {
	recordMovementUC *usecases.RecordMovementUseCase
	getReportUC      *usecases.GetReportUseCase
	logger           logger.Interface
}

// NewAccessHandler creates a new access handler
func NewAccessHandler(
	recordMovementUC *usecases.RecordMovementUseCase,
	getReportUC *usecases.GetReportUseCase,
	log logger.Interface,
) *AccessHandler {
	return &AccessHandler{
		recordMovementUC: recordMovementUC,
		getReportUC:      getReportUC,
		logger:           log,
	}
}

// RecordMovement handles POST /access/records
func (h *AccessHandler) RecordMovement(c *gin.Context) {
	var req dto.RecordMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for record movement", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	registeredBy := c.GetHeader(constants.HeaderRegisteredBy)

	resp, err := h.recordMovementUC.Execute(c.Request.Context(), req, registeredBy)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, resp, "Movement recorded successfully")
}

// GetReport handles GET /reports/access
func (h *AccessHandler) GetReport(c *gin.Context) {
	var req dto.ReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.logger.Warnw("invalid query for access report", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	resp, err := h.getReportUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

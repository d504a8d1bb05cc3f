package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"caseta/internal/application/vehicle/dto"
	"caseta/internal/application/vehicle/usecases"
	"caseta/internal/shared/logger"
	"caseta/internal/shared/utils"
)

// VehicleHandler handles HTTP requests for vehicle operations
type VehicleHandler struct {
	registerVehicleUC   *usecases.RegisterVehicleUseCase
	getVehicleUC        *usecases.GetVehicleUseCase
	getVehicleLogUC     *usecases.GetVehicleLogUseCase
	updateVehicleUC     *usecases.UpdateVehicleUseCase
	listVehiclesUC      *usecases.ListVehiclesUseCase
	deactivateVehicleUC *usecases.DeactivateVehicleUseCase
	lookupByPlateUC     *usecases.LookupByPlateUseCase
	logger              logger.Interface
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(
	registerVehicleUC *usecases.RegisterVehicleUseCase,
	getVehicleUC *usecases.GetVehicleUseCase,
	getVehicleLogUC *usecases.GetVehicleLogUseCase,
	updateVehicleUC *usecases.UpdateVehicleUseCase,
	listVehiclesUC *usecases.ListVehiclesUseCase,
	deactivateVehicleUC *usecases.DeactivateVehicleUseCase,
	lookupByPlateUC *usecases.LookupByPlateUseCase,
	log logger.Interface,
) *VehicleHandler {
	return &VehicleHandler{
		registerVehicleUC:   registerVehicleUC,
		getVehicleUC:        getVehicleUC,
		getVehicleLogUC:     getVehicleLogUC,
		updateVehicleUC:     updateVehicleUC,
		listVehiclesUC:      listVehiclesUC,
		deactivateVehicleUC: deactivateVehicleUC,
		lookupByPlateUC:     lookupByPlateUC,
		logger:              log,
	}
}

// RegisterVehicle handles POST /vehicles
func (h *VehicleHandler) RegisterVehicle(c *gin.Context) {
	var req dto.RegisterVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register vehicle", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	resp, err := h.registerVehicleUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, resp, "Vehicle registered successfully")
}

// GetVehicle handles GET /vehicles/:id
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp, err := h.getVehicleUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// GetVehicleLog handles GET /vehicles/:id/log
func (h *VehicleHandler) GetVehicleLog(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	entries, err := h.getVehicleLogUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", entries)
}

// UpdateVehicle handles PATCH /vehicles/:id
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update vehicle", "vehicle_id", id, "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	resp, err := h.updateVehicleUC.Execute(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Vehicle updated successfully", resp)
}

// ListVehicles handles GET /vehicles
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	var req dto.ListVehiclesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.logger.Warnw("invalid query for list vehicles", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	resp, err := h.listVehiclesUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// DeactivateVehicle handles DELETE /vehicles/:id
func (h *VehicleHandler) DeactivateVehicle(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deactivateVehicleUC.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// LookupByPlate handles GET /vehicles/lookup?plate=...
// The gate screen polls this on every few keystrokes; an unregistered plate
// answers 404 with a normal payload so the UI can render "not registered".
func (h *VehicleHandler) LookupByPlate(c *gin.Context) {
	plate := c.Query("plate")

	resp, err := h.lookupByPlateUC.Execute(c.Request.Context(), plate)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if !resp.Found {
		utils.SuccessResponse(c, http.StatusNotFound, "Vehicle not registered", resp)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

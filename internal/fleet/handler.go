package fleet

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/richxcame/fleet-admin/pkg/common"
	"github.com/richxcame/fleet-admin/pkg/validation"
)

// Handler handles HTTP requests for the vehicle fleet
type Handler struct {
	service *Service
}

// NewHandler creates a new fleet handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListVehicles returns the full fleet inventory
func (h *Handler) ListVehicles(c *gin.Context) {
	vehicles, err := h.service.ViewInventory(c.Request.Context())
	if err != nil {
		common.RespondError(c, err)
		return
	}

	common.SuccessResponse(c, vehicles)
}

// GetVehicle returns a single vehicle
func (h *Handler) GetVehicle(c *gin.Context) {
	vehicle, err := h.service.GetVehicle(c.Request.Context(), c.Param("vehicle_id"))
	if err != nil {
		common.RespondError(c, err)
		return
	}

	common.SuccessResponse(c, vehicle)
}

// AddVehicle registers a new vehicle
func (h *Handler) AddVehicle(c *gin.Context) {
	var req AddVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			common.ErrorResponse(c, http.StatusBadRequest, validation.NewValidationError(verrs).Error())
			return
		}
		common.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	vehicle, err := h.service.AddVehicle(c.Request.Context(), &req)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	common.CreatedResponse(c, vehicle)
}

// UpdateAvailability flips a vehicle's availability flag
func (h *Handler) UpdateAvailability(c *gin.Context) {
	var req UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.UpdateAvailability(c.Request.Context(), c.Param("vehicle_id"), *req.Available); err != nil {
		common.RespondError(c, err)
		return
	}

	common.SuccessResponse(c, gin.H{"vehicle_id": c.Param("vehicle_id"), "available": *req.Available})
}

// RegisterRoutes registers fleet routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/vehicles", h.ListVehicles)
	rg.GET("/vehicles/:vehicle_id", h.GetVehicle)
	rg.POST("/vehicles", h.AddVehicle)
	rg.PATCH("/vehicles/:vehicle_id/availability", h.UpdateAvailability)
}

package maintenance

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/richxcame/fleet-admin/pkg/common"
)

// Handler handles HTTP requests for maintenance scheduling
type Handler struct {
	service *Service
}

// NewHandler creates a new maintenance handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Schedule runs a maintenance sweep over the whole fleet
func (h *Handler) Schedule(c *gin.Context) {
	var req ScheduleRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			common.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	events, err := h.service.ScheduleMaintenance(c.Request.Context(), req.ThresholdKM)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	common.SuccessResponse(c, events)
}

// Complete marks a serviced vehicle available again
func (h *Handler) Complete(c *gin.Context) {
	vehicleID := c.Param("vehicle_id")
	if err := h.service.CompleteMaintenance(c.Request.Context(), vehicleID); err != nil {
		common.RespondError(c, err)
		return
	}

	common.SuccessResponse(c, gin.H{"vehicle_id": vehicleID, "available": true})
}

// ListLog returns the full maintenance history
func (h *Handler) ListLog(c *gin.Context) {
	entries, err := h.service.ViewLog(c.Request.Context())
	if err != nil {
		common.RespondError(c, err)
		return
	}

	common.SuccessResponse(c, entries)
}

// RegisterRoutes registers maintenance routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/maintenance/schedule", h.Schedule)
	rg.POST("/maintenance/:vehicle_id/complete", h.Complete)
	rg.GET("/maintenance/log", h.ListLog)
}

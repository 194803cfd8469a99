package booking

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/richxcame/fleet-admin/pkg/common"
	"github.com/richxcame/fleet-admin/pkg/validation"
)

// Handler handles HTTP requests for bookings
type Handler struct {
	service *Service
}

// NewHandler creates a new booking handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreateBooking books a vehicle
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			common.ErrorResponse(c, http.StatusBadRequest, validation.NewValidationError(verrs).Error())
			return
		}
		common.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), &req)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	common.CreatedResponse(c, b)
}

// ListBookings returns all bookings
func (h *Handler) ListBookings(c *gin.Context) {
	bookings, err := h.service.ViewBookings(c.Request.Context())
	if err != nil {
		common.RespondError(c, err)
		return
	}

	common.SuccessResponse(c, bookings)
}

// RegisterRoutes registers booking routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings", h.ListBookings)
}

package returns

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/richxcame/fleet-admin/pkg/common"
	"github.com/richxcame/fleet-admin/pkg/validation"
)

// Handler handles HTTP requests for returns
type Handler struct {
	service *Service
}

// NewHandler creates a new returns handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ProcessReturn closes a booking and reports the incurred fees
func (h *Handler) ProcessReturn(c *gin.Context) {
	var req ProcessReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			common.ErrorResponse(c, http.StatusBadRequest, validation.NewValidationError(verrs).Error())
			return
		}
		common.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := h.service.ProcessReturn(c.Request.Context(), &req)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	common.CreatedResponse(c, summary)
}

// ListReturns returns all processed returns
func (h *Handler) ListReturns(c *gin.Context) {
	results, err := h.service.ViewReturns(c.Request.Context())
	if err != nil {
		common.RespondError(c, err)
		return
	}

	common.SuccessResponse(c, results)
}

// RegisterRoutes registers return routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/returns", h.ProcessReturn)
	rg.GET("/returns", h.ListReturns)
}

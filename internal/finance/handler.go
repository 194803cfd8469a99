package finance

import (
	"github.com/gin-gonic/gin"
	"github.com/richxcame/fleet-admin/pkg/common"
)

// Handler handles HTTP requests for financial reports
type Handler struct {
	service *Service
}

// NewHandler creates a new finance handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetReport returns the consolidated financial report
func (h *Handler) GetReport(c *gin.Context) {
	report, err := h.service.GenerateFullReport(c.Request.Context())
	if err != nil {
		common.RespondError(c, err)
		return
	}

	common.SuccessResponse(c, report)
}

// RegisterRoutes registers finance routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/reports/financial", h.GetReport)
}

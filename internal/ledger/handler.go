package ledger

import (
	"github.com/gin-gonic/gin"
	"github.com/richxcame/fleet-admin/pkg/common"
)

// Handler handles HTTP requests for the transaction log
type Handler struct {
	service *Service
}

// NewHandler creates a new ledger handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListTransactions returns the full transaction log
func (h *Handler) ListTransactions(c *gin.Context) {
	transactions, err := h.service.ViewTransactions(c.Request.Context())
	if err != nil {
		common.RespondError(c, err)
		return
	}

	common.SuccessResponse(c, transactions)
}

// RegisterRoutes registers ledger routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/transactions", h.ListTransactions)
}

package handlers

import (
	"net/http"

	"condo-maintenance-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the condominium overview
type DashboardHandler struct {
	service service.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service service.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Summary handles GET /api/v1/dashboard
// @Summary Dashboard counters
// @Description Open tickets and work orders, overdue conformity items and plans due within 7 days
// @Tags dashboard
// @Produce json
// @Success 200 {object} service.DashboardSummary
// @Failure 503 {object} map[string]interface{} "Temporarily unavailable"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}

	sum, err := h.service.Summary(c.Request.Context(), condo)
	if err != nil {
		respondError(c, err, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, sum)
}

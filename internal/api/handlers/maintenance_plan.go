package handlers

import (
	"net/http"

	"condo-maintenance-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MaintenancePlanHandler handles HTTP requests for preventive maintenance plans
type MaintenancePlanHandler struct {
	service service.MaintenancePlanServiceInterface
}

// NewMaintenancePlanHandler creates a new maintenance plan handler
func NewMaintenancePlanHandler(service service.MaintenancePlanServiceInterface) *MaintenancePlanHandler {
	return &MaintenancePlanHandler{service: service}
}

// ListPlans handles GET /api/v1/manutencoes
// @Summary List maintenance plans
// @Description List plans ordered by next execution
// @Tags manutencoes
// @Produce json
// @Param ativo_id query string false "Asset ID"
// @Param vence_em_dias query int false "Only plans due within this many days"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.Page[models.MaintenancePlan]
// @Security BearerAuth
// @Router /manutencoes [get]
func (h *MaintenancePlanHandler) ListPlans(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}
	var q service.MaintenancePlanQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters", "details": err.Error()})
		return
	}
	if q.AssetID, ok = queryID(c, "ativo_id"); !ok {
		return
	}

	page, err := h.service.List(c.Request.Context(), condo, q)
	if err != nil {
		respondError(c, err, "Failed to list maintenance plans")
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetPlan handles GET /api/v1/manutencoes/:id
// @Summary Get maintenance plan
// @Tags manutencoes
// @Produce json
// @Param id path string true "Plan ID (UUID)"
// @Success 200 {object} models.MaintenancePlan
// @Failure 404 {object} map[string]interface{} "Plan not found"
// @Security BearerAuth
// @Router /manutencoes/{id} [get]
func (h *MaintenancePlanHandler) GetPlan(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "maintenance plan")
	if !ok {
		return
	}

	plan, err := h.service.Get(c.Request.Context(), condo, id)
	if err != nil {
		respondError(c, err, "Failed to get maintenance plan")
		return
	}
	c.JSON(http.StatusOK, plan)
}

// CreatePlan handles POST /api/v1/manutencoes
// @Summary Create maintenance plan
// @Tags manutencoes
// @Accept json
// @Produce json
// @Param plan body service.MaintenancePlanRequest true "Plan data"
// @Success 201 {object} models.MaintenancePlan
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Security BearerAuth
// @Router /manutencoes [post]
func (h *MaintenancePlanHandler) CreatePlan(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}
	var req service.MaintenancePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	plan, err := h.service.Create(c.Request.Context(), condo, &req)
	if err != nil {
		respondError(c, err, "Failed to create maintenance plan")
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// UpdatePlan handles PUT /api/v1/manutencoes/:id
// @Summary Update maintenance plan
// @Tags manutencoes
// @Accept json
// @Produce json
// @Param id path string true "Plan ID (UUID)"
// @Param plan body service.MaintenancePlanRequest true "Plan data"
// @Success 200 {object} models.MaintenancePlan
// @Security BearerAuth
// @Router /manutencoes/{id} [put]
func (h *MaintenancePlanHandler) UpdatePlan(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "maintenance plan")
	if !ok {
		return
	}
	var req service.MaintenancePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	plan, err := h.service.Update(c.Request.Context(), condo, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update maintenance plan")
		return
	}
	c.JSON(http.StatusOK, plan)
}

// DeletePlan handles DELETE /api/v1/manutencoes/:id
// @Summary Delete maintenance plan
// @Tags manutencoes
// @Param id path string true "Plan ID (UUID)"
// @Success 204 "Deleted"
// @Security BearerAuth
// @Router /manutencoes/{id} [delete]
func (h *MaintenancePlanHandler) DeletePlan(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "maintenance plan")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), condo, id); err != nil {
		respondError(c, err, "Failed to delete maintenance plan")
		return
	}
	c.Status(http.StatusNoContent)
}

// RegisterExecution handles POST /api/v1/manutencoes/:id/execucoes
// @Summary Register plan execution
// @Description Record an execution and schedule the next one a period later
// @Tags manutencoes
// @Accept json
// @Produce json
// @Param id path string true "Plan ID (UUID)"
// @Param execution body service.ExecutionRequest false "Execution date and notes; defaults to now"
// @Success 200 {object} models.MaintenancePlan
// @Security BearerAuth
// @Router /manutencoes/{id}/execucoes [post]
func (h *MaintenancePlanHandler) RegisterExecution(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "maintenance plan")
	if !ok {
		return
	}
	var req service.ExecutionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
	}

	plan, err := h.service.RegisterExecution(c.Request.Context(), condo, id, &req)
	if err != nil {
		respondError(c, err, "Failed to register execution")
		return
	}
	c.JSON(http.StatusOK, plan)
}

package handlers

import (
	"net/http"

	"condo-maintenance-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkOrderHandler handles HTTP requests for ordens de servico
type WorkOrderHandler struct {
	service service.WorkOrderServiceInterface
}

// NewWorkOrderHandler creates a new work order handler
func NewWorkOrderHandler(service service.WorkOrderServiceInterface) *WorkOrderHandler {
	return &WorkOrderHandler{service: service}
}

// ListWorkOrders handles GET /api/v1/os
// @Summary List work orders
// @Tags os
// @Produce json
// @Param status query string false "Status"
// @Param prioridade query string false "Priority"
// @Param chamado_id query string false "Originating ticket"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.Page[models.WorkOrder]
// @Security BearerAuth
// @Router /os [get]
func (h *WorkOrderHandler) ListWorkOrders(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}
	var q service.WorkOrderQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters", "details": err.Error()})
		return
	}
	if q.TicketID, ok = queryID(c, "chamado_id"); !ok {
		return
	}

	page, err := h.service.List(c.Request.Context(), condo, q)
	if err != nil {
		respondError(c, err, "Failed to list work orders")
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetWorkOrder handles GET /api/v1/os/:id
// @Summary Get work order
// @Tags os
// @Produce json
// @Param id path string true "Work order ID (UUID)"
// @Success 200 {object} models.WorkOrder
// @Failure 404 {object} map[string]interface{} "Work order not found"
// @Security BearerAuth
// @Router /os/{id} [get]
func (h *WorkOrderHandler) GetWorkOrder(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "work order")
	if !ok {
		return
	}

	order, err := h.service.Get(c.Request.Context(), condo, id)
	if err != nil {
		respondError(c, err, "Failed to get work order")
		return
	}
	c.JSON(http.StatusOK, order)
}

// CreateWorkOrder handles POST /api/v1/os
// @Summary Create work order
// @Description The server assigns the next OS-YYYY-NNNN number of the condominium
// @Tags os
// @Accept json
// @Produce json
// @Param order body service.CreateWorkOrderRequest true "Work order data"
// @Success 201 {object} models.WorkOrder
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Referenced ticket, asset or plan not in this condominium"
// @Failure 409 {object} map[string]interface{} "Ticket already has a work order"
// @Security BearerAuth
// @Router /os [post]
func (h *WorkOrderHandler) CreateWorkOrder(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}
	var req service.CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	order, err := h.service.Create(c.Request.Context(), condo, &req)
	if err != nil {
		respondError(c, err, "Failed to create work order")
		return
	}
	c.JSON(http.StatusCreated, order)
}

// UpdateWorkOrder handles PUT /api/v1/os/:id
// @Summary Update work order
// @Tags os
// @Accept json
// @Produce json
// @Param id path string true "Work order ID (UUID)"
// @Param order body service.UpdateWorkOrderRequest true "Work order data"
// @Success 200 {object} models.WorkOrder
// @Failure 400 {object} map[string]interface{} "Work order is closed"
// @Security BearerAuth
// @Router /os/{id} [put]
func (h *WorkOrderHandler) UpdateWorkOrder(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "work order")
	if !ok {
		return
	}
	var req service.UpdateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	order, err := h.service.Update(c.Request.Context(), condo, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update work order")
		return
	}
	c.JSON(http.StatusOK, order)
}

// TransitionWorkOrder handles PATCH /api/v1/os/:id/status
// @Summary Change work order status
// @Tags os
// @Accept json
// @Produce json
// @Param id path string true "Work order ID (UUID)"
// @Param transition body service.TransitionRequest true "Target status"
// @Success 200 {object} models.WorkOrder
// @Failure 400 {object} map[string]interface{} "Transition not allowed"
// @Security BearerAuth
// @Router /os/{id}/status [patch]
func (h *WorkOrderHandler) TransitionWorkOrder(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "work order")
	if !ok {
		return
	}
	var req service.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	order, err := h.service.Transition(c.Request.Context(), condo, id, &req)
	if err != nil {
		respondError(c, err, "Failed to change work order status")
		return
	}
	c.JSON(http.StatusOK, order)
}

// DeleteWorkOrder handles DELETE /api/v1/os/:id
// @Summary Delete work order
// @Tags os
// @Param id path string true "Work order ID (UUID)"
// @Success 204 "Deleted"
// @Security BearerAuth
// @Router /os/{id} [delete]
func (h *WorkOrderHandler) DeleteWorkOrder(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "work order")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), condo, id); err != nil {
		respondError(c, err, "Failed to delete work order")
		return
	}
	c.Status(http.StatusNoContent)
}

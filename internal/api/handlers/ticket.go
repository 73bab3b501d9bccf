package handlers

import (
	"net/http"

	"condo-maintenance-backend/internal/access"
	"condo-maintenance-backend/internal/database/models"
	"condo-maintenance-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TicketHandler handles HTTP requests for chamados
type TicketHandler struct {
	service service.TicketServiceInterface
}

// NewTicketHandler creates a new ticket handler
func NewTicketHandler(service service.TicketServiceInterface) *TicketHandler {
	return &TicketHandler{service: service}
}

// ListTickets handles GET /api/v1/chamados
// @Summary List tickets
// @Description Residents only see their own tickets; staff may pass mine=true for the same view
// @Tags chamados
// @Produce json
// @Param status query string false "Ticket status"
// @Param prioridade query string false "Priority"
// @Param mine query bool false "Only tickets opened by the caller"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.Page[service.TicketView]
// @Security BearerAuth
// @Router /chamados [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var q service.TicketQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters", "details": err.Error()})
		return
	}
	role, _ := access.GetRole(c)
	if c.Query("mine") == "true" || (role == models.RoleMorador && !access.IsGlobalAdmin(c)) {
		q.OpenedBy = &user
	}

	page, err := h.service.List(c.Request.Context(), condo, q)
	if err != nil {
		respondError(c, err, "Failed to list tickets")
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetTicket handles GET /api/v1/chamados/:id
// @Summary Get ticket
// @Tags chamados
// @Produce json
// @Param id path string true "Ticket ID (UUID)"
// @Success 200 {object} service.TicketView
// @Failure 404 {object} map[string]interface{} "Ticket not found"
// @Security BearerAuth
// @Router /chamados/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "ticket")
	if !ok {
		return
	}

	t, err := h.service.Get(c.Request.Context(), condo, id)
	if err != nil {
		respondError(c, err, "Failed to get ticket")
		return
	}
	c.JSON(http.StatusOK, t)
}

// OpenTicket handles POST /api/v1/chamados
// @Summary Open ticket
// @Description Open a chamado; the SLA deadline follows from its priority
// @Tags chamados
// @Accept json
// @Produce json
// @Param ticket body service.OpenTicketRequest true "Ticket data"
// @Success 201 {object} service.TicketView
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Security BearerAuth
// @Router /chamados [post]
func (h *TicketHandler) OpenTicket(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.OpenTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	t, err := h.service.Open(c.Request.Context(), condo, user, &req)
	if err != nil {
		respondError(c, err, "Failed to open ticket")
		return
	}
	c.JSON(http.StatusCreated, t)
}

// UpdateTicketStatus handles PATCH /api/v1/chamados/:id/status
// @Summary Change ticket status
// @Tags chamados
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID (UUID)"
// @Param status body service.TicketStatusRequest true "New status"
// @Success 200 {object} service.TicketView
// @Failure 400 {object} map[string]interface{} "Invalid status"
// @Security BearerAuth
// @Router /chamados/{id}/status [patch]
func (h *TicketHandler) UpdateTicketStatus(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "ticket")
	if !ok {
		return
	}
	var req service.TicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	t, err := h.service.UpdateStatus(c.Request.Context(), condo, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update ticket")
		return
	}
	c.JSON(http.StatusOK, t)
}

// ConvertTicket handles POST /api/v1/chamados/:id/converter
// @Summary Convert ticket into a work order
// @Description Create a numbered OS from an open ticket and move the ticket to em_andamento
// @Tags chamados
// @Produce json
// @Param id path string true "Ticket ID (UUID)"
// @Success 201 {object} models.WorkOrder
// @Failure 409 {object} map[string]interface{} "Ticket already has a work order"
// @Security BearerAuth
// @Router /chamados/{id}/converter [post]
func (h *TicketHandler) ConvertTicket(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "ticket")
	if !ok {
		return
	}

	order, err := h.service.ConvertToWorkOrder(c.Request.Context(), condo, id)
	if err != nil {
		respondError(c, err, "Failed to convert ticket")
		return
	}
	c.JSON(http.StatusCreated, order)
}

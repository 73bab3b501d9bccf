package handlers

import (
	"net/http"

	"condo-maintenance-backend/internal/access"
	"condo-maintenance-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ConformityHandler handles HTTP requests for NBR conformity items and checklist templates
type ConformityHandler struct {
	service   service.ConformityServiceInterface
	templates service.ChecklistTemplateServiceInterface
}

// NewConformityHandler creates a new conformity handler
func NewConformityHandler(service service.ConformityServiceInterface, templates service.ChecklistTemplateServiceInterface) *ConformityHandler {
	return &ConformityHandler{service: service, templates: templates}
}

// ListItems handles GET /api/v1/conformidade
// @Summary List conformity items
// @Description Items carry a derived status: verde, amarelo (due within 30 days), vermelho (overdue) or cinza (never scheduled)
// @Tags conformidade
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.Page[service.ConformityItemView]
// @Security BearerAuth
// @Router /conformidade [get]
func (h *ConformityHandler) ListItems(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}
	var p service.Pagination
	if err := c.ShouldBindQuery(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters", "details": err.Error()})
		return
	}

	page, err := h.service.List(c.Request.Context(), condo, p)
	if err != nil {
		respondError(c, err, "Failed to list conformity items")
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetItem handles GET /api/v1/conformidade/:id
// @Summary Get conformity item
// @Tags conformidade
// @Produce json
// @Param id path string true "Item ID (UUID)"
// @Success 200 {object} service.ConformityItemView
// @Security BearerAuth
// @Router /conformidade/{id} [get]
func (h *ConformityHandler) GetItem(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "conformity item")
	if !ok {
		return
	}

	item, err := h.service.Get(c.Request.Context(), condo, id)
	if err != nil {
		respondError(c, err, "Failed to get conformity item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateItem handles POST /api/v1/conformidade
// @Summary Create conformity item
// @Tags conformidade
// @Accept json
// @Produce json
// @Param item body service.ConformityItemRequest true "Item data"
// @Success 201 {object} service.ConformityItemView
// @Security BearerAuth
// @Router /conformidade [post]
func (h *ConformityHandler) CreateItem(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}
	var req service.ConformityItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	item, err := h.service.Create(c.Request.Context(), condo, &req)
	if err != nil {
		respondError(c, err, "Failed to create conformity item")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateItem handles PUT /api/v1/conformidade/:id
// @Summary Update conformity item
// @Tags conformidade
// @Accept json
// @Produce json
// @Param id path string true "Item ID (UUID)"
// @Param item body service.ConformityItemRequest true "Item data"
// @Success 200 {object} service.ConformityItemView
// @Security BearerAuth
// @Router /conformidade/{id} [put]
func (h *ConformityHandler) UpdateItem(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "conformity item")
	if !ok {
		return
	}
	var req service.ConformityItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	item, err := h.service.Update(c.Request.Context(), condo, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update conformity item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteItem handles DELETE /api/v1/conformidade/:id
// @Summary Delete conformity item
// @Tags conformidade
// @Param id path string true "Item ID (UUID)"
// @Success 204 "Deleted"
// @Security BearerAuth
// @Router /conformidade/{id} [delete]
func (h *ConformityHandler) DeleteItem(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "conformity item")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), condo, id); err != nil {
		respondError(c, err, "Failed to delete conformity item")
		return
	}
	c.Status(http.StatusNoContent)
}

// RegisterExecution handles POST /api/v1/conformidade/:id/execucoes
// @Summary Register inspection
// @Tags conformidade
// @Accept json
// @Produce json
// @Param id path string true "Item ID (UUID)"
// @Param execution body service.ExecutionRequest false "Execution date and notes"
// @Success 200 {object} service.ConformityItemView
// @Security BearerAuth
// @Router /conformidade/{id}/execucoes [post]
func (h *ConformityHandler) RegisterExecution(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "conformity item")
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

	item, err := h.service.RegisterExecution(c.Request.Context(), condo, id, &req)
	if err != nil {
		respondError(c, err, "Failed to register inspection")
		return
	}
	c.JSON(http.StatusOK, item)
}

// ListTemplates handles GET /api/v1/templates
// @Summary List checklist templates
// @Description Global templates plus the condominium's own
// @Tags conformidade
// @Produce json
// @Success 200 {array} models.ChecklistTemplate
// @Security BearerAuth
// @Router /templates [get]
func (h *ConformityHandler) ListTemplates(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}

	tpls, err := h.templates.List(c.Request.Context(), condo)
	if err != nil {
		respondError(c, err, "Failed to list templates")
		return
	}
	c.JSON(http.StatusOK, tpls)
}

// CreateTemplate handles POST /api/v1/templates
// @Summary Create checklist template
// @Description Only global administrators may create global templates
// @Tags conformidade
// @Accept json
// @Produce json
// @Param template body service.ChecklistTemplateRequest true "Template data"
// @Success 201 {object} models.ChecklistTemplate
// @Failure 403 {object} map[string]interface{} "Global template without global role"
// @Security BearerAuth
// @Router /templates [post]
func (h *ConformityHandler) CreateTemplate(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}
	var req service.ChecklistTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	tpl, err := h.templates.Create(c.Request.Context(), condo, access.IsGlobalAdmin(c), &req)
	if err != nil {
		respondError(c, err, "Failed to create template")
		return
	}
	c.JSON(http.StatusCreated, tpl)
}

// DeleteTemplate handles DELETE /api/v1/templates/:id
// @Summary Delete checklist template
// @Tags conformidade
// @Param id path string true "Template ID (UUID)"
// @Success 204 "Deleted"
// @Security BearerAuth
// @Router /templates/{id} [delete]
func (h *ConformityHandler) DeleteTemplate(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "template")
	if !ok {
		return
	}

	if err := h.templates.Delete(c.Request.Context(), condo, id); err != nil {
		respondError(c, err, "Failed to delete template")
		return
	}
	c.Status(http.StatusNoContent)
}

// InstantiateTemplate handles POST /api/v1/templates/:id/instanciar
// @Summary Create a conformity item from a template
// @Tags conformidade
// @Accept json
// @Produce json
// @Param id path string true "Template ID (UUID)"
// @Param item body service.InstantiateTemplateRequest false "Optional asset and dates"
// @Success 201 {object} service.ConformityItemView
// @Security BearerAuth
// @Router /templates/{id}/instanciar [post]
func (h *ConformityHandler) InstantiateTemplate(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "template")
	if !ok {
		return
	}
	var req service.InstantiateTemplateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
	}

	item, err := h.service.InstantiateTemplate(c.Request.Context(), condo, id, &req)
	if err != nil {
		respondError(c, err, "Failed to instantiate template")
		return
	}
	c.JSON(http.StatusCreated, item)
}

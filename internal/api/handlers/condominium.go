package handlers

import (
	"net/http"

	"condo-maintenance-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CondominiumHandler handles HTTP requests for condominiums
type CondominiumHandler struct {
	service service.CondominiumServiceInterface
}

// NewCondominiumHandler creates a new condominium handler
func NewCondominiumHandler(service service.CondominiumServiceInterface) *CondominiumHandler {
	return &CondominiumHandler{service: service}
}

// ListCondominiums handles GET /api/v1/condominios
// @Summary List the caller's condominiums
// @Description Global owners and admins see every condominium
// @Tags condominios
// @Produce json
// @Success 200 {array} models.Condominium
// @Security BearerAuth
// @Router /condominios [get]
func (h *CondominiumHandler) ListCondominiums(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	list, err := h.service.ListForUser(c.Request.Context(), user)
	if err != nil {
		respondError(c, err, "Failed to list condominiums")
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetActive handles GET /api/v1/condominio
// @Summary Get the active condominium
// @Tags condominios
// @Produce json
// @Success 200 {object} models.Condominium
// @Security BearerAuth
// @Router /condominio [get]
func (h *CondominiumHandler) GetActive(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}

	result, err := h.service.Get(c.Request.Context(), condo)
	if err != nil {
		respondError(c, err, "Failed to get condominium")
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpdateActive handles PUT /api/v1/condominio
// @Summary Update the active condominium
// @Tags condominios
// @Accept json
// @Produce json
// @Param condominium body service.CondominiumRequest true "Condominium data"
// @Success 200 {object} models.Condominium
// @Security BearerAuth
// @Router /condominio [put]
func (h *CondominiumHandler) UpdateActive(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}
	var req service.CondominiumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.service.Update(c.Request.Context(), condo, &req)
	if err != nil {
		respondError(c, err, "Failed to update condominium")
		return
	}
	c.JSON(http.StatusOK, result)
}

// CreateCondominium handles POST /api/v1/condominios
// @Summary Create condominium
// @Description Global owners and admins only
// @Tags condominios
// @Accept json
// @Produce json
// @Param condominium body service.CondominiumRequest true "Condominium data"
// @Success 201 {object} models.Condominium
// @Failure 403 {object} map[string]interface{} "Not a global administrator"
// @Security BearerAuth
// @Router /condominios [post]
func (h *CondominiumHandler) CreateCondominium(c *gin.Context) {
	var req service.CondominiumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create condominium")
		return
	}
	c.JSON(http.StatusCreated, result)
}

// DeleteCondominium handles DELETE /api/v1/condominios/:id
// @Summary Delete condominium
// @Description Global owners and admins only. Members lose access immediately.
// @Tags condominios
// @Param id path string true "Condominium ID (UUID)"
// @Success 204 "Deleted"
// @Security BearerAuth
// @Router /condominios/{id} [delete]
func (h *CondominiumHandler) DeleteCondominium(c *gin.Context) {
	id, ok := pathID(c, "id", "condominium")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete condominium")
		return
	}
	c.Status(http.StatusNoContent)
}

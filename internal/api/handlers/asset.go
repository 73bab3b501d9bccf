package handlers

import (
	"net/http"

	"condo-maintenance-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AssetHandler handles HTTP requests for assets
type AssetHandler struct {
	service service.AssetServiceInterface
}

// NewAssetHandler creates a new asset handler
func NewAssetHandler(service service.AssetServiceInterface) *AssetHandler {
	return &AssetHandler{service: service}
}

// ListAssets handles GET /api/v1/ativos
// @Summary List assets
// @Description List the active condominium's assets with optional filters
// @Tags ativos
// @Produce json
// @Param X-Condominio-ID header string false "Condominium ID; defaults to the active selection"
// @Param tipo query string false "Asset type"
// @Param status query string false "Asset status"
// @Param q query string false "Search by name or location"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.Page[models.Asset] "Assets"
// @Failure 403 {object} map[string]interface{} "Condominium not accessible"
// @Security BearerAuth
// @Router /ativos [get]
func (h *AssetHandler) ListAssets(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}
	var q service.AssetQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters", "details": err.Error()})
		return
	}

	page, err := h.service.List(c.Request.Context(), condo, q)
	if err != nil {
		respondError(c, err, "Failed to list assets")
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetAsset handles GET /api/v1/ativos/:id
// @Summary Get asset
// @Tags ativos
// @Produce json
// @Param id path string true "Asset ID (UUID)"
// @Success 200 {object} models.Asset
// @Failure 404 {object} map[string]interface{} "Asset not found"
// @Security BearerAuth
// @Router /ativos/{id} [get]
func (h *AssetHandler) GetAsset(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "asset")
	if !ok {
		return
	}

	asset, err := h.service.Get(c.Request.Context(), condo, id)
	if err != nil {
		respondError(c, err, "Failed to get asset")
		return
	}
	c.JSON(http.StatusOK, asset)
}

// CreateAsset handles POST /api/v1/ativos
// @Summary Create asset
// @Tags ativos
// @Accept json
// @Produce json
// @Param asset body service.AssetRequest true "Asset data"
// @Success 201 {object} models.Asset
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Security BearerAuth
// @Router /ativos [post]
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}
	var req service.AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	asset, err := h.service.Create(c.Request.Context(), condo, &req)
	if err != nil {
		respondError(c, err, "Failed to create asset")
		return
	}
	c.JSON(http.StatusCreated, asset)
}

// UpdateAsset handles PUT /api/v1/ativos/:id
// @Summary Update asset
// @Tags ativos
// @Accept json
// @Produce json
// @Param id path string true "Asset ID (UUID)"
// @Param asset body service.AssetRequest true "Asset data"
// @Success 200 {object} models.Asset
// @Failure 404 {object} map[string]interface{} "Asset not found"
// @Security BearerAuth
// @Router /ativos/{id} [put]
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "asset")
	if !ok {
		return
	}
	var req service.AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	asset, err := h.service.Update(c.Request.Context(), condo, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update asset")
		return
	}
	c.JSON(http.StatusOK, asset)
}

// DeleteAsset handles DELETE /api/v1/ativos/:id
// @Summary Delete asset
// @Tags ativos
// @Param id path string true "Asset ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]interface{} "Asset not found"
// @Security BearerAuth
// @Router /ativos/{id} [delete]
func (h *AssetHandler) DeleteAsset(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "asset")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), condo, id); err != nil {
		respondError(c, err, "Failed to delete asset")
		return
	}
	c.Status(http.StatusNoContent)
}

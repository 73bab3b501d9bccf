package handlers

import (
	"context"
	"io"
	"net/http"
	"time"

	"condo-maintenance-backend/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TenantManager is the part of tenant.Manager the handler uses
type TenantManager interface {
	Get(ctx context.Context, userID uuid.UUID) (tenant.State, error)
	Refresh(ctx context.Context, userID uuid.UUID) (tenant.State, error)
	Switch(ctx context.Context, userID, condominiumID uuid.UUID) (tenant.State, error)
	Subscribe(userID uuid.UUID) (<-chan tenant.State, func())
}

// SwitchRequest selects the active condominium
type SwitchRequest struct {
	CondominiumID uuid.UUID `json:"condominio_id" binding:"required"`
}

// TenantHandler exposes the caller's tenant context
type TenantHandler struct {
	manager   TenantManager
	keepAlive time.Duration
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(manager TenantManager) *TenantHandler {
	return &TenantHandler{manager: manager, keepAlive: 25 * time.Second}
}

// GetState handles GET /api/v1/tenant
// @Summary Tenant context
// @Description Accessible condominiums and the active selection
// @Tags tenant
// @Produce json
// @Success 200 {object} tenant.State
// @Failure 503 {object} map[string]interface{} "Temporarily unavailable"
// @Security BearerAuth
// @Router /tenant [get]
func (h *TenantHandler) GetState(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	st, err := h.manager.Get(c.Request.Context(), user)
	if err != nil {
		respondError(c, err, "Failed to load tenant context")
		return
	}
	c.JSON(http.StatusOK, st)
}

// RefreshState handles POST /api/v1/tenant/refresh
// @Summary Reload tenant context
// @Tags tenant
// @Produce json
// @Success 200 {object} tenant.State
// @Security BearerAuth
// @Router /tenant/refresh [post]
func (h *TenantHandler) RefreshState(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	st, err := h.manager.Refresh(c.Request.Context(), user)
	if err != nil {
		respondError(c, err, "Failed to reload tenant context")
		return
	}
	c.JSON(http.StatusOK, st)
}

// Switch handles POST /api/v1/tenant/switch
// @Summary Switch active condominium
// @Description The selection is persisted and restored on the next session
// @Tags tenant
// @Accept json
// @Produce json
// @Param request body SwitchRequest true "Condominium to activate"
// @Success 200 {object} tenant.State
// @Failure 400 {object} map[string]interface{} "Condominium not accessible"
// @Failure 503 {object} map[string]interface{} "Selection could not be saved"
// @Security BearerAuth
// @Router /tenant/switch [post]
func (h *TenantHandler) Switch(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var req SwitchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	st, err := h.manager.Switch(c.Request.Context(), user, req.CondominiumID)
	if err != nil {
		respondError(c, err, "Failed to switch condominium")
		return
	}
	c.JSON(http.StatusOK, st)
}

// Stream handles GET /api/v1/tenant/stream
// @Summary Tenant context events
// @Description Server-sent events with the full state after every change. Slow readers only see the latest state.
// @Tags tenant
// @Produce text/event-stream
// @Success 200 {object} tenant.State
// @Security BearerAuth
// @Router /tenant/stream [get]
func (h *TenantHandler) Stream(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	updates, cancel := h.manager.Subscribe(user)
	defer cancel()

	if st, err := h.manager.Get(c.Request.Context(), user); err == nil {
		c.SSEvent("state", st)
		c.Writer.Flush()
	}

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case st, ok := <-updates:
			if !ok {
				return false
			}
			c.SSEvent("state", st)
			return true
		case <-ticker.C:
			c.SSEvent("ping", time.Now().Unix())
			return true
		}
	})
}

package handlers

import (
	"net/http"

	"condo-maintenance-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MembershipHandler handles the caller's profile and condominium members
type MembershipHandler struct {
	service service.MembershipServiceInterface
}

// NewMembershipHandler creates a new membership handler
func NewMembershipHandler(service service.MembershipServiceInterface) *MembershipHandler {
	return &MembershipHandler{service: service}
}

// GetProfile handles GET /api/v1/me
// @Summary Current profile
// @Tags perfil
// @Produce json
// @Success 200 {object} models.UserProfile
// @Security BearerAuth
// @Router /me [get]
func (h *MembershipHandler) GetProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	profile, err := h.service.Profile(c.Request.Context(), user)
	if err != nil {
		respondError(c, err, "Failed to get profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile handles PUT /api/v1/me
// @Summary Update profile
// @Tags perfil
// @Accept json
// @Produce json
// @Param profile body service.UpdateProfileRequest true "Name and phone"
// @Success 200 {object} models.UserProfile
// @Security BearerAuth
// @Router /me [put]
func (h *MembershipHandler) UpdateProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	profile, err := h.service.UpdateProfile(c.Request.Context(), user, &req)
	if err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// MyLinks handles GET /api/v1/me/vinculos
// @Summary The caller's condominium links
// @Tags perfil
// @Produce json
// @Success 200 {array} models.CondominiumLink
// @Security BearerAuth
// @Router /me/vinculos [get]
func (h *MembershipHandler) MyLinks(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	links, err := h.service.MyLinks(c.Request.Context(), user)
	if err != nil {
		respondError(c, err, "Failed to list links")
		return
	}
	c.JSON(http.StatusOK, links)
}

// SetPrincipal handles PUT /api/v1/me/vinculos/:id/principal
// @Summary Make a link principal
// @Description The principal condominium is selected when no other selection applies
// @Tags perfil
// @Param id path string true "Link ID (UUID)"
// @Success 204 "Updated"
// @Failure 404 {object} map[string]interface{} "Link not found"
// @Security BearerAuth
// @Router /me/vinculos/{id}/principal [put]
func (h *MembershipHandler) SetPrincipal(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "link")
	if !ok {
		return
	}

	if err := h.service.SetPrincipal(c.Request.Context(), user, id); err != nil {
		respondError(c, err, "Failed to set principal condominium")
		return
	}
	c.Status(http.StatusNoContent)
}

// ListMembers handles GET /api/v1/membros
// @Summary List condominium members
// @Tags membros
// @Produce json
// @Success 200 {array} service.MemberResponse
// @Security BearerAuth
// @Router /membros [get]
func (h *MembershipHandler) ListMembers(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}

	members, err := h.service.ListMembers(c.Request.Context(), condo)
	if err != nil {
		respondError(c, err, "Failed to list members")
		return
	}
	c.JSON(http.StatusOK, members)
}

// AddMember handles POST /api/v1/membros
// @Summary Link a registered user to the condominium
// @Tags membros
// @Accept json
// @Produce json
// @Param member body service.AddMemberRequest true "Email and role"
// @Success 201 {object} models.CondominiumLink
// @Failure 404 {object} map[string]interface{} "No user with this email"
// @Failure 409 {object} map[string]interface{} "Already a member"
// @Security BearerAuth
// @Router /membros [post]
func (h *MembershipHandler) AddMember(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}
	var req service.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	link, err := h.service.AddMember(c.Request.Context(), condo, &req)
	if err != nil {
		respondError(c, err, "Failed to add member")
		return
	}
	c.JSON(http.StatusCreated, link)
}

// UpdateMemberRole handles PATCH /api/v1/membros/:id
// @Summary Change a member's role
// @Tags membros
// @Accept json
// @Produce json
// @Param id path string true "Link ID (UUID)"
// @Param role body service.UpdateRoleRequest true "New role"
// @Success 200 {object} models.CondominiumLink
// @Security BearerAuth
// @Router /membros/{id} [patch]
func (h *MembershipHandler) UpdateMemberRole(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "link")
	if !ok {
		return
	}
	var req service.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	link, err := h.service.UpdateRole(c.Request.Context(), condo, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update member")
		return
	}
	c.JSON(http.StatusOK, link)
}

// RemoveMember handles DELETE /api/v1/membros/:id
// @Summary Remove a member
// @Tags membros
// @Param id path string true "Link ID (UUID)"
// @Success 204 "Removed"
// @Security BearerAuth
// @Router /membros/{id} [delete]
func (h *MembershipHandler) RemoveMember(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "link")
	if !ok {
		return
	}

	if err := h.service.RemoveMember(c.Request.Context(), condo, id); err != nil {
		respondError(c, err, "Failed to remove member")
		return
	}
	c.Status(http.StatusNoContent)
}

package tenant

import (
	"net/http"

	"condo-maintenance-backend/internal/auth"
	apperrors "condo-maintenance-backend/internal/errors"
	"condo-maintenance-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderName carries an explicitly requested condominium
const HeaderName = "X-Condominio-ID"

const contextKey = "condominio_id"

// RequestedID parses the condominium header. ok is false when absent; an
// unparsable header is an error.
func RequestedID(c *gin.Context) (id uuid.UUID, ok bool, err error) {
	raw := c.GetHeader(HeaderName)
	if raw == "" {
		return uuid.Nil, false, nil
	}
	id, err = uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false, apperrors.NewValidationError(HeaderName, "must be a UUID")
	}
	return id, true, nil
}

// RequireTenant resolves the condominium for the request: the header when it
// names an accessible condominium, else the user's active selection.
func RequireTenant(m *Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			auth.AbortWithRedirect(c, http.StatusUnauthorized, auth.LoginPath, apperrors.ErrSessionRequired.Error())
			return
		}

		requested, hasHeader, err := RequestedID(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		state, err := m.Get(c.Request.Context(), userID)
		if err != nil {
			logger.WithContext(c.Request.Context()).WithError(err).Error("failed to load tenant context")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"error":     "tenant context unavailable",
				"redirect":  auth.HomePath,
				"retryable": true,
			})
			return
		}

		var active uuid.UUID
		switch {
		case hasHeader:
			if !state.Has(requested) {
				auth.AbortWithRedirect(c, http.StatusForbidden, auth.HomePath, apperrors.ErrTenantNotAccessible.Error())
				return
			}
			active = requested
		case state.ActiveID != nil:
			active = *state.ActiveID
		default:
			auth.AbortWithRedirect(c, http.StatusForbidden, auth.HomePath, apperrors.ErrNoActiveCondominium.Error())
			return
		}

		SetCondominiumID(c, active)
		c.Next()
	}
}

// SetCondominiumID marks id as the request's active condominium
func SetCondominiumID(c *gin.Context, id uuid.UUID) {
	c.Set(contextKey, id)
	c.Request = c.Request.WithContext(logger.ContextWithCondominium(c.Request.Context(), id.String()))
}

// GetCondominiumID returns the condominium resolved by RequireTenant
func GetCondominiumID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(contextKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

package access

import (
	"net/http"

	"condo-maintenance-backend/internal/auth"
	"condo-maintenance-backend/internal/database/models"
	"condo-maintenance-backend/internal/logger"
	"condo-maintenance-backend/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Guard turns resolver decisions into gin middleware
type Guard struct {
	resolver *Resolver
}

// NewGuard creates a guard
func NewGuard(resolver *Resolver) *Guard {
	return &Guard{resolver: resolver}
}

// RequireRole admits global admins and users whose role on the active
// condominium is in allow. Everyone else is sent home.
func (g *Guard) RequireRole(allow ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := auth.GetUserID(c)

		var requested *uuid.UUID
		if id, ok := tenant.GetCondominiumID(c); ok {
			requested = &id
		} else {
			id, ok, err := tenant.RequestedID(c)
			if err != nil {
				auth.AbortWithRedirect(c, http.StatusForbidden, auth.HomePath, err.Error())
				return
			}
			if ok {
				requested = &id
			}
		}

		d := g.resolver.Check(c.Request.Context(), userID, requested, allow...)
		switch d.Outcome {
		case Granted:
			c.Set("role", d.Role)
			c.Set("global_admin", d.GlobalAdmin)
			c.Next()
		case Unauthenticated:
			auth.AbortWithRedirect(c, http.StatusUnauthorized, auth.LoginPath, "Authentication required")
		case TransientError:
			logger.WithContext(c.Request.Context()).WithError(d.Err).Warn("role check failed")
			if auth.WantsHTML(c) {
				c.Redirect(http.StatusFound, auth.HomePath)
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"error":     "access check temporarily unavailable",
				"redirect":  auth.HomePath,
				"retryable": true,
			})
		default:
			msg := "Access denied"
			if d.Err != nil {
				msg = d.Err.Error()
			}
			auth.AbortWithRedirect(c, http.StatusForbidden, auth.HomePath, msg)
		}
	}
}

// RequireOwner admits global owners and admins only
func (g *Guard) RequireOwner() gin.HandlerFunc {
	return g.RequireRole()
}

// GetRole returns the scoped role set by a granted guard
func GetRole(c *gin.Context) (models.Role, bool) {
	v, ok := c.Get("role")
	if !ok {
		return "", false
	}
	r, ok := v.(models.Role)
	return r, ok
}

// IsGlobalAdmin reports whether a granted guard admitted a global admin
func IsGlobalAdmin(c *gin.Context) bool {
	return c.GetBool("global_admin")
}

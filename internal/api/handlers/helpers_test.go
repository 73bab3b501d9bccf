package handlers

import (
	"condo-maintenance-backend/internal/database/models"
	"condo-maintenance-backend/internal/tenant"
	"condo-maintenance-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// scopedHTTP returns a router whose requests look like they passed RequireAuth,
// RequireTenant and a role guard for role on condo.
func scopedHTTP(user, condo uuid.UUID, role models.Role) *testutils.HTTPTestSuite {
	h := testutils.SetupHTTPTest()
	h.Router.Use(func(c *gin.Context) {
		c.Set("user_id", user)
		if condo != uuid.Nil {
			tenant.SetCondominiumID(c, condo)
		}
		if role != "" {
			c.Set("role", role)
		}
		c.Next()
	})
	return h
}

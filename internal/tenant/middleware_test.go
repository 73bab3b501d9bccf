package tenant

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"condo-maintenance-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tenantRouter(m *Manager, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != uuid.Nil {
			c.Set("user_id", userID)
		}
		c.Next()
	})
	r.GET("/scoped", RequireTenant(m), func(c *gin.Context) {
		id, _ := GetCondominiumID(c)
		c.JSON(http.StatusOK, gin.H{"condominio_id": id.String()})
	})
	return r
}

func serve(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/scoped", nil)
	if header != "" {
		req.Header.Set(HeaderName, header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRequireTenant(t *testing.T) {
	db := newMemoryDB()
	user := db.addUser(models.GlobalRoleNone)
	a, b := db.addCondo("Alfa"), db.addCondo("Beta")
	db.link(user, a, models.RoleSindico, true)
	db.link(user, b, models.RoleMorador, false)
	foreign := db.addCondo("Outro")

	lonely := db.addUser(models.GlobalRoleNone)
	m := NewManager(db.source())

	t.Run("uses the active selection", func(t *testing.T) {
		w := serve(tenantRouter(m, user), "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, a.String(), decode(t, w)["condominio_id"])
	})

	t.Run("header names an accessible condominium", func(t *testing.T) {
		w := serve(tenantRouter(m, user), b.String())
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, b.String(), decode(t, w)["condominio_id"])
	})

	t.Run("header names a foreign condominium", func(t *testing.T) {
		w := serve(tenantRouter(m, user), foreign.String())
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "/", decode(t, w)["redirect"])
	})

	t.Run("header is not a uuid", func(t *testing.T) {
		w := serve(tenantRouter(m, user), "abc")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("user without condominiums", func(t *testing.T) {
		w := serve(tenantRouter(m, lonely), "")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("no session", func(t *testing.T) {
		w := serve(tenantRouter(m, uuid.Nil), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "/login", decode(t, w)["redirect"])
	})
}

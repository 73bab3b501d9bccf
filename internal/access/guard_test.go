package access

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"condo-maintenance-backend/internal/database/models"
	"condo-maintenance-backend/internal/mocks"
	"condo-maintenance-backend/internal/tenant"
	"condo-maintenance-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type guardFixture struct {
	users     *mocks.MockUserRepositoryInterface
	links     *mocks.MockCondominiumLinkRepositoryInterface
	guard     *Guard
	factories *testutils.FactorySet
}

func newGuardFixture(t *testing.T) *guardFixture {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	f := &guardFixture{
		users:     mocks.NewMockUserRepositoryInterface(ctrl),
		links:     mocks.NewMockCondominiumLinkRepositoryInterface(ctrl),
		factories: testutils.NewFactorySet(),
	}
	f.guard = NewGuard(NewResolver(f.users, f.links))
	return f
}

// router sets user_id like RequireAuth would and routes /x through handler
func (f *guardFixture) router(userID uuid.UUID, handler gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != uuid.Nil {
			c.Set("user_id", userID)
		}
		c.Next()
	})
	r.GET("/x", handler, func(c *gin.Context) {
		role, _ := GetRole(c)
		c.JSON(http.StatusOK, gin.H{"role": role, "global_admin": IsGlobalAdmin(c)})
	})
	return r
}

func do(r http.Handler, condo uuid.UUID, accept string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if condo != uuid.Nil {
		req.Header.Set(tenant.HeaderName, condo.String())
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func body(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestRequireRole(t *testing.T) {
	condo := uuid.New()

	t.Run("sindico granted", func(t *testing.T) {
		f := newGuardFixture(t)
		user := f.factories.User.Create()
		f.users.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)
		f.links.EXPECT().GetByUserAndCondominium(gomock.Any(), user.ID, condo).
			Return(f.factories.Link.Create(user.ID, condo, models.RoleSindico), nil)

		w := do(f.router(user.ID, f.guard.RequireRole(models.RoleSindico, models.RoleAdmin)), condo, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "sindico", body(t, w)["role"])
	})

	t.Run("morador sent home", func(t *testing.T) {
		f := newGuardFixture(t)
		user := f.factories.User.Create()
		f.users.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)
		f.links.EXPECT().GetByUserAndCondominium(gomock.Any(), user.ID, condo).
			Return(f.factories.Link.Create(user.ID, condo, models.RoleMorador), nil)

		w := do(f.router(user.ID, f.guard.RequireRole(models.RoleSindico, models.RoleFuncionario)), condo, "")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "/", body(t, w)["redirect"])
	})

	t.Run("browser redirected", func(t *testing.T) {
		f := newGuardFixture(t)
		user := f.factories.User.Create()
		f.users.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)
		f.links.EXPECT().GetByUserAndCondominium(gomock.Any(), user.ID, condo).
			Return(f.factories.Link.Create(user.ID, condo, models.RoleFornecedor), nil)

		w := do(f.router(user.ID, f.guard.RequireRole(models.ManagementRoles...)), condo, "text/html,application/xhtml+xml")
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})

	t.Run("owner passes RequireOwner", func(t *testing.T) {
		f := newGuardFixture(t)
		owner := f.factories.User.WithGlobalRole(models.GlobalRoleOwner)
		f.users.EXPECT().GetByID(gomock.Any(), owner.ID).Return(owner, nil)

		w := do(f.router(owner.ID, f.guard.RequireOwner()), condo, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, body(t, w)["global_admin"])
	})

	t.Run("sindico fails RequireOwner", func(t *testing.T) {
		f := newGuardFixture(t)
		user := f.factories.User.Create()
		f.users.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)
		f.links.EXPECT().GetByUserAndCondominium(gomock.Any(), user.ID, condo).
			Return(f.factories.Link.Create(user.ID, condo, models.RoleSindico), nil)

		w := do(f.router(user.ID, f.guard.RequireOwner()), condo, "")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("lookup failure is retryable", func(t *testing.T) {
		f := newGuardFixture(t)
		userID := uuid.New()
		f.users.EXPECT().GetByID(gomock.Any(), userID).Return(nil, errors.New("too many connections"))

		w := do(f.router(userID, f.guard.RequireRole(models.TicketRoles...)), condo, "")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, true, body(t, w)["retryable"])
	})

	t.Run("no session goes to login", func(t *testing.T) {
		f := newGuardFixture(t)

		w := do(f.router(uuid.Nil, f.guard.RequireRole(models.TicketRoles...)), condo, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "/login", body(t, w)["redirect"])
	})

	t.Run("malformed tenant header", func(t *testing.T) {
		f := newGuardFixture(t)
		r := f.router(uuid.New(), f.guard.RequireRole(models.TicketRoles...))
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(tenant.HeaderName, "nao-e-uuid")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"condo-maintenance-backend/internal/database/models"
	apperrors "condo-maintenance-backend/internal/errors"
	"condo-maintenance-backend/internal/mocks"
	"condo-maintenance-backend/internal/service"
	"condo-maintenance-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCondominiumHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockCondominiumServiceInterface(ctrl)
	factories := testutils.NewFactorySet()
	user, condo := uuid.New(), uuid.New()

	handler := NewCondominiumHandler(svc)
	h := scopedHTTP(user, condo, models.RoleSindico)
	h.Router.GET("/api/v1/condominios", handler.ListCondominiums)
	h.Router.POST("/api/v1/condominios", handler.CreateCondominium)
	h.Router.DELETE("/api/v1/condominios/:id", handler.DeleteCondominium)
	h.Router.GET("/api/v1/condominio", handler.GetActive)
	h.Router.PUT("/api/v1/condominio", handler.UpdateActive)

	t.Run("list is per caller", func(t *testing.T) {
		svc.EXPECT().ListForUser(gomock.Any(), user).Return([]models.Condominium{*factories.Condominium.Create()}, nil)

		var list []models.Condominium
		testutils.AssertJSONResponse(t, h.MakeRequest("GET", "/api/v1/condominios", nil), http.StatusOK, &list)
		assert.Len(t, list, 1)
	})

	t.Run("active condominium", func(t *testing.T) {
		c := factories.Condominium.Create()
		c.ID = condo
		svc.EXPECT().Get(gomock.Any(), condo).Return(c, nil)

		var got models.Condominium
		testutils.AssertJSONResponse(t, h.MakeRequest("GET", "/api/v1/condominio", nil), http.StatusOK, &got)
		assert.Equal(t, condo, got.ID)
	})

	t.Run("update active", func(t *testing.T) {
		svc.EXPECT().Update(gomock.Any(), condo, &service.CondominiumRequest{Name: "Aurora II", State: "SP"}).
			Return(&models.Condominium{Name: "Aurora II"}, nil)

		recorder := h.MakeRequest("PUT", "/api/v1/condominio", map[string]string{"nome": "Aurora II", "estado": "SP"})
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("create", func(t *testing.T) {
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&models.Condominium{Name: "Novo"}, nil)

		recorder := h.MakeRequest("POST", "/api/v1/condominios", map[string]string{"nome": "Novo"})
		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	t.Run("delete unknown", func(t *testing.T) {
		id := uuid.New()
		svc.EXPECT().Delete(gomock.Any(), id).Return(apperrors.ErrCondominiumNotFound)

		testutils.AssertErrorResponse(t, h.MakeRequest("DELETE", "/api/v1/condominios/"+id.String(), nil), http.StatusNotFound, "condominium")
	})

	t.Run("delete malformed id", func(t *testing.T) {
		testutils.AssertErrorResponse(t, h.MakeRequest("DELETE", "/api/v1/condominios/nope", nil), http.StatusBadRequest, "Invalid condominium ID")
	})
}

func TestDashboardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockDashboardServiceInterface(ctrl)
	condo := uuid.New()

	h := scopedHTTP(uuid.New(), condo, models.RoleZelador)
	h.Router.GET("/api/v1/dashboard", NewDashboardHandler(svc).Summary)

	t.Run("summary", func(t *testing.T) {
		svc.EXPECT().Summary(gomock.Any(), condo).Return(&service.DashboardSummary{
			OpenTickets: 3, OpenWorkOrders: 2, OverdueConformity: 1, PlansDueSoon: 4, GeneratedAt: time.Now(),
		}, nil)

		var body map[string]interface{}
		testutils.AssertJSONResponse(t, h.MakeRequest("GET", "/api/v1/dashboard", nil), http.StatusOK, &body)
		assert.EqualValues(t, 3, body["chamados_abertos"])
		assert.EqualValues(t, 2, body["os_abertas"])
		assert.EqualValues(t, 1, body["conformidade_vencida"])
		assert.EqualValues(t, 4, body["manutencoes_proximas"])
	})

	t.Run("partial failure fails the summary", func(t *testing.T) {
		svc.EXPECT().Summary(gomock.Any(), condo).Return(nil, errors.New("counting open tickets: boom"))

		recorder := h.MakeRequest("GET", "/api/v1/dashboard", nil)
		require.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Failed to build dashboard")
	})
}

package handlers

import (
	"context"
	"net/http"
	"testing"

	"condo-maintenance-backend/internal/database/models"
	apperrors "condo-maintenance-backend/internal/errors"
	"condo-maintenance-backend/internal/mocks"
	"condo-maintenance-backend/internal/service"
	"condo-maintenance-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WorkOrderHandlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	orders    *mocks.MockWorkOrderServiceInterface
	plans     *mocks.MockMaintenancePlanServiceInterface
	httpSuite *testutils.HTTPTestSuite
	factories *testutils.FactorySet
	condo     uuid.UUID
}

func (suite *WorkOrderHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.orders = mocks.NewMockWorkOrderServiceInterface(suite.ctrl)
	suite.plans = mocks.NewMockMaintenancePlanServiceInterface(suite.ctrl)
	suite.factories = testutils.NewFactorySet()
	suite.condo = uuid.New()

	orders := NewWorkOrderHandler(suite.orders)
	plans := NewMaintenancePlanHandler(suite.plans)
	suite.httpSuite = scopedHTTP(uuid.New(), suite.condo, models.RoleSindico)
	r := suite.httpSuite.Router
	r.POST("/api/v1/os", orders.CreateWorkOrder)
	r.GET("/api/v1/os/:id", orders.GetWorkOrder)
	r.PUT("/api/v1/os/:id", orders.UpdateWorkOrder)
	r.PATCH("/api/v1/os/:id/status", orders.TransitionWorkOrder)
	r.DELETE("/api/v1/os/:id", orders.DeleteWorkOrder)
	r.GET("/api/v1/manutencoes", plans.ListPlans)
	r.POST("/api/v1/manutencoes", plans.CreatePlan)
	r.POST("/api/v1/manutencoes/:id/execucoes", plans.RegisterExecution)
}

func (suite *WorkOrderHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *WorkOrderHandlerTestSuite) TestCreateAssignsNumber() {
	suite.orders.EXPECT().
		Create(gomock.Any(), suite.condo, gomock.Any()).
		DoAndReturn(func(_ context.Context, condo uuid.UUID, req *service.CreateWorkOrderRequest) (*models.WorkOrder, error) {
			wo := suite.factories.WorkOrder.Create(condo)
			wo.Title = req.Title
			wo.Number = "OS-2025-0007"
			return wo, nil
		})

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/os", map[string]interface{}{
		"titulo":     "Vazamento na garagem",
		"prioridade": "alta",
	})

	var wo models.WorkOrder
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &wo)
	assert.Equal(suite.T(), "OS-2025-0007", wo.Number)
}

func (suite *WorkOrderHandlerTestSuite) TestCreateForConvertedTicketConflicts() {
	ticketID := uuid.New()
	suite.orders.EXPECT().
		Create(gomock.Any(), suite.condo, gomock.Any()).
		Return(nil, apperrors.ErrWorkOrderExists)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/os", map[string]interface{}{
		"titulo":     "Reparo do portao",
		"chamado_id": ticketID.String(),
	})
	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

func (suite *WorkOrderHandlerTestSuite) TestGetFromAnotherCondominium() {
	id := uuid.New()
	suite.orders.EXPECT().Get(gomock.Any(), suite.condo, id).Return(nil, apperrors.ErrWorkOrderNotFound)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/os/"+id.String(), nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "work order")
}

func (suite *WorkOrderHandlerTestSuite) TestTransition() {
	id := uuid.New()
	cost := 320.5
	suite.orders.EXPECT().
		Transition(gomock.Any(), suite.condo, id, &service.TransitionRequest{Status: models.WorkOrderStatusDone, ActualCost: &cost}).
		Return(&models.WorkOrder{Status: models.WorkOrderStatusDone}, nil)

	recorder := suite.httpSuite.MakeRequest("PATCH", "/api/v1/os/"+id.String()+"/status", map[string]interface{}{
		"status":          "concluida",
		"custo_realizado": cost,
	})
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *WorkOrderHandlerTestSuite) TestTransitionFromTerminal() {
	id := uuid.New()
	suite.orders.EXPECT().
		Transition(gomock.Any(), suite.condo, id, gomock.Any()).
		Return(nil, apperrors.ErrInvalidStatusTransition)

	recorder := suite.httpSuite.MakeRequest("PATCH", "/api/v1/os/"+id.String()+"/status", map[string]interface{}{"status": "aberta"})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid status transition")
}

func (suite *WorkOrderHandlerTestSuite) TestDelete() {
	id := uuid.New()
	suite.orders.EXPECT().Delete(gomock.Any(), suite.condo, id).Return(nil)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/os/"+id.String(), nil)
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

func (suite *WorkOrderHandlerTestSuite) TestListPlansFilters() {
	asset := uuid.New()
	plan := suite.factories.MaintenancePlan.Create(suite.condo)
	suite.plans.EXPECT().
		List(gomock.Any(), suite.condo, service.MaintenancePlanQuery{AssetID: &asset, DueWithinDays: 15}).
		Return(&service.Page[models.MaintenancePlan]{Items: []models.MaintenancePlan{*plan}, Total: 1}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/manutencoes?ativo_id="+asset.String()+"&vence_em_dias=15", nil)

	var page service.Page[models.MaintenancePlan]
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &page)
	assert.Equal(suite.T(), plan.Title, page.Items[0].Title)
}

func (suite *WorkOrderHandlerTestSuite) TestListPlansBadAsset() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/manutencoes?ativo_id=x", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

func (suite *WorkOrderHandlerTestSuite) TestCreatePlanValidation() {
	suite.plans.EXPECT().
		Create(gomock.Any(), suite.condo, gomock.Any()).
		Return(nil, apperrors.NewValidationError("periodicidade_dias", "must be positive"))

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/manutencoes", map[string]interface{}{"titulo": "Bombas"})
	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

func (suite *WorkOrderHandlerTestSuite) TestRegisterPlanExecution() {
	id := uuid.New()
	suite.plans.EXPECT().
		RegisterExecution(gomock.Any(), suite.condo, id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, req *service.ExecutionRequest) (*models.MaintenancePlan, error) {
			assert.Equal(suite.T(), "Troca do oleo", req.Notes)
			return suite.factories.MaintenancePlan.Create(suite.condo), nil
		})

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/manutencoes/"+id.String()+"/execucoes", map[string]interface{}{"observacoes": "Troca do oleo"})
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func TestWorkOrderHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WorkOrderHandlerTestSuite))
}

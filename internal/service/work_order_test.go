package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"condo-maintenance-backend/internal/database/models"
	apperrors "condo-maintenance-backend/internal/errors"
	"condo-maintenance-backend/internal/events"
	"condo-maintenance-backend/internal/mocks"
	"condo-maintenance-backend/internal/repository"
	"condo-maintenance-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type WorkOrderServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockOrders *mocks.MockWorkOrderRepositoryInterface
	mockTix    *mocks.MockTicketRepositoryInterface
	mockAssets *mocks.MockAssetRepositoryInterface
	mockPlans  *mocks.MockMaintenancePlanRepositoryInterface
	publisher  *recordingPublisher
	orders     *service.WorkOrderService
	tickets    *service.TicketService
	condo      uuid.UUID
	ctx        context.Context
}

func (suite *WorkOrderServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrders = mocks.NewMockWorkOrderRepositoryInterface(suite.ctrl)
	suite.mockTix = mocks.NewMockTicketRepositoryInterface(suite.ctrl)
	suite.mockAssets = mocks.NewMockAssetRepositoryInterface(suite.ctrl)
	suite.mockPlans = mocks.NewMockMaintenancePlanRepositoryInterface(suite.ctrl)
	suite.publisher = &recordingPublisher{}
	deps := service.Deps{Events: suite.publisher, Now: clock}
	suite.orders = service.NewWorkOrderService(suite.mockOrders, suite.mockTix, suite.mockAssets, suite.mockPlans, deps)
	suite.tickets = service.NewTicketService(suite.mockTix, suite.mockOrders, suite.mockAssets, suite.orders, deps)
	suite.condo = uuid.New()
	suite.ctx = context.Background()
}

func (suite *WorkOrderServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *WorkOrderServiceTestSuite) expectNumbered(number string) {
	suite.mockOrders.EXPECT().CreateNumbered(gomock.Any(), gomock.Any(), 2025).
		DoAndReturn(func(_ context.Context, o *models.WorkOrder, _ int) error {
			o.ID = uuid.New()
			o.Number = number
			return nil
		})
}

func (suite *WorkOrderServiceTestSuite) TestCreate_ReturnsGeneratedNumberUnmodified() {
	suite.expectNumbered("OS-2025-0007")

	order, err := suite.orders.Create(suite.ctx, suite.condo, &service.CreateWorkOrderRequest{Title: "Troca de lampada"})
	suite.Require().NoError(err)

	assert.Equal(suite.T(), "OS-2025-0007", order.Number)
	assert.Equal(suite.T(), models.PriorityMedium, order.Priority)
	assert.Equal(suite.T(), models.WorkOrderStatusOpen, order.Status)
	assert.Eventually(suite.T(), func() bool {
		return assert.ObjectsAreEqual([]string{events.WorkOrderCreated}, suite.publisher.types())
	}, time.Second, 10*time.Millisecond)
}

func (suite *WorkOrderServiceTestSuite) TestCreate_ScheduledWhenDateGiven() {
	suite.expectNumbered("OS-2025-0001")
	when := fixedNow.Add(48 * time.Hour)

	order, err := suite.orders.Create(suite.ctx, suite.condo, &service.CreateWorkOrderRequest{Title: "Pintura", ScheduledFor: &when})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.WorkOrderStatusScheduled, order.Status)
}

func (suite *WorkOrderServiceTestSuite) TestCreate_RejectsMalformedNumber() {
	suite.expectNumbered("OS-25-7")

	_, err := suite.orders.Create(suite.ctx, suite.condo, &service.CreateWorkOrderRequest{Title: "Troca"})
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidWorkOrderNumber)
}

func (suite *WorkOrderServiceTestSuite) TestCreate_InvalidPriority() {
	_, err := suite.orders.Create(suite.ctx, suite.condo, &service.CreateWorkOrderRequest{Title: "Troca", Priority: "maxima"})
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *WorkOrderServiceTestSuite) TestCreate_TicketFromAnotherCondominium() {
	ticketID := uuid.New()
	suite.mockTix.EXPECT().GetByID(gomock.Any(), suite.condo, ticketID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.orders.Create(suite.ctx, suite.condo, &service.CreateWorkOrderRequest{Title: "Reparo", TicketID: &ticketID})
	assert.ErrorIs(suite.T(), err, apperrors.ErrTicketNotFound)
}

func (suite *WorkOrderServiceTestSuite) TestCreate_TicketAlreadyConverted() {
	ticketID := uuid.New()
	suite.mockTix.EXPECT().GetByID(gomock.Any(), suite.condo, ticketID).Return(&models.Ticket{}, nil)
	suite.mockOrders.EXPECT().GetByTicket(gomock.Any(), suite.condo, ticketID).Return(&models.WorkOrder{Number: "OS-2025-0001"}, nil)

	_, err := suite.orders.Create(suite.ctx, suite.condo, &service.CreateWorkOrderRequest{Title: "Reparo", TicketID: &ticketID})
	assert.ErrorIs(suite.T(), err, apperrors.ErrWorkOrderExists)
}

func (suite *WorkOrderServiceTestSuite) TestCreate_AssetFromAnotherCondominium() {
	assetID := uuid.New()
	suite.mockAssets.EXPECT().GetByID(gomock.Any(), suite.condo, assetID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.orders.Create(suite.ctx, suite.condo, &service.CreateWorkOrderRequest{Title: "Reparo", AssetID: &assetID})
	assert.ErrorIs(suite.T(), err, apperrors.ErrAssetNotFound)
}

func (suite *WorkOrderServiceTestSuite) TestCreate_PlanFromAnotherCondominium() {
	planID := uuid.New()
	suite.mockPlans.EXPECT().GetByID(gomock.Any(), suite.condo, planID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.orders.Create(suite.ctx, suite.condo, &service.CreateWorkOrderRequest{Title: "Reparo", MaintenancePlanID: &planID})
	assert.ErrorIs(suite.T(), err, apperrors.ErrMaintenancePlanNotFound)
}

func (suite *WorkOrderServiceTestSuite) TestCreate_WithReferencesInCondominium() {
	ticketID, assetID, planID := uuid.New(), uuid.New(), uuid.New()
	suite.mockTix.EXPECT().GetByID(gomock.Any(), suite.condo, ticketID).Return(&models.Ticket{}, nil)
	suite.mockOrders.EXPECT().GetByTicket(gomock.Any(), suite.condo, ticketID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockAssets.EXPECT().GetByID(gomock.Any(), suite.condo, assetID).Return(&models.Asset{}, nil)
	suite.mockPlans.EXPECT().GetByID(gomock.Any(), suite.condo, planID).Return(&models.MaintenancePlan{}, nil)
	suite.expectNumbered("OS-2025-0003")

	order, err := suite.orders.Create(suite.ctx, suite.condo, &service.CreateWorkOrderRequest{
		Title: "Reparo", TicketID: &ticketID, AssetID: &assetID, MaintenancePlanID: &planID,
	})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "OS-2025-0003", order.Number)
}

func (suite *WorkOrderServiceTestSuite) TestTransition_FollowsLifecycle() {
	id := uuid.New()
	order := &models.WorkOrder{BaseModel: models.BaseModel{ID: id}, CondominiumID: suite.condo, Number: "OS-2025-0003", Status: models.WorkOrderStatusInProgress}
	suite.mockOrders.EXPECT().GetByID(gomock.Any(), suite.condo, id).Return(order, nil)
	suite.mockOrders.EXPECT().Update(gomock.Any(), order).Return(nil)

	cost := 320.5
	got, err := suite.orders.Transition(suite.ctx, suite.condo, id, &service.TransitionRequest{Status: models.WorkOrderStatusDone, ActualCost: &cost})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.WorkOrderStatusDone, got.Status)
	assert.Equal(suite.T(), cost, got.ActualCost)
	suite.Require().NotNil(got.CompletedAt)
	assert.Equal(suite.T(), fixedNow, *got.CompletedAt)
}

func (suite *WorkOrderServiceTestSuite) TestTransition_RejectsSkippingStates() {
	id := uuid.New()
	order := &models.WorkOrder{BaseModel: models.BaseModel{ID: id}, Status: models.WorkOrderStatusDone}
	suite.mockOrders.EXPECT().GetByID(gomock.Any(), suite.condo, id).Return(order, nil)

	_, err := suite.orders.Transition(suite.ctx, suite.condo, id, &service.TransitionRequest{Status: models.WorkOrderStatusOpen})
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatusTransition)
}

func (suite *WorkOrderServiceTestSuite) TestUpdate_TerminalOrderIsReadOnly() {
	id := uuid.New()
	suite.mockOrders.EXPECT().GetByID(gomock.Any(), suite.condo, id).
		Return(&models.WorkOrder{Status: models.WorkOrderStatusCancelled}, nil)

	_, err := suite.orders.Update(suite.ctx, suite.condo, id, &service.UpdateWorkOrderRequest{Title: "X", Priority: models.PriorityLow})
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *WorkOrderServiceTestSuite) TestOpenTicket_ComputesSLA() {
	opener := uuid.New()
	cases := map[models.Priority]time.Duration{
		models.PriorityUrgent: 4 * time.Hour,
		models.PriorityHigh:   24 * time.Hour,
		models.PriorityMedium: 72 * time.Hour,
		models.PriorityLow:    168 * time.Hour,
	}
	for priority, window := range cases {
		suite.mockTix.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		t, err := suite.tickets.Open(suite.ctx, suite.condo, opener, &service.OpenTicketRequest{
			Title: "Vazamento", Description: "Garagem alagada", Priority: priority,
		})
		suite.Require().NoError(err)
		assert.Equal(suite.T(), fixedNow.Add(window), t.SLADeadline, string(priority))
		assert.Equal(suite.T(), models.TicketStatusOpen, t.Status)
		assert.False(suite.T(), t.Overdue)
	}
}

func (suite *WorkOrderServiceTestSuite) TestOpenTicket_AssetFromAnotherCondominium() {
	assetID := uuid.New()
	suite.mockAssets.EXPECT().GetByID(gomock.Any(), suite.condo, assetID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.tickets.Open(suite.ctx, suite.condo, uuid.New(), &service.OpenTicketRequest{
		Title: "Elevador parado", Description: "Bloco B", AssetID: &assetID,
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrAssetNotFound)
}

func (suite *WorkOrderServiceTestSuite) TestConvertToWorkOrder() {
	id := uuid.New()
	ticket := &models.Ticket{
		BaseModel:    models.BaseModel{ID: id},
		TenantScoped: models.TenantScoped{CondominiumID: suite.condo},
		Title:        "Portao travado",
		Priority:     models.PriorityHigh,
		Status:       models.TicketStatusOpen,
	}
	suite.mockTix.EXPECT().GetByID(gomock.Any(), suite.condo, id).Return(ticket, nil)
	suite.mockOrders.EXPECT().GetByTicket(gomock.Any(), suite.condo, id).Return(nil, gorm.ErrRecordNotFound)
	suite.mockOrders.EXPECT().ConvertTicket(gomock.Any(), ticket, gomock.Any(), 2025).
		DoAndReturn(func(_ context.Context, t *models.Ticket, o *models.WorkOrder, _ int) error {
			assert.Equal(suite.T(), models.TicketStatusInProgress, t.Status)
			o.ID = uuid.New()
			o.Number = "OS-2025-0012"
			return nil
		})

	order, err := suite.tickets.ConvertToWorkOrder(suite.ctx, suite.condo, id)
	suite.Require().NoError(err)

	assert.Equal(suite.T(), "OS-2025-0012", order.Number)
	suite.Require().NotNil(order.TicketID)
	assert.Equal(suite.T(), id, *order.TicketID)
	assert.Equal(suite.T(), models.PriorityHigh, order.Priority)
	assert.Equal(suite.T(), models.TicketStatusInProgress, ticket.Status)
	assert.Eventually(suite.T(), func() bool { return len(suite.publisher.types()) == 2 }, time.Second, 10*time.Millisecond)
	assert.ElementsMatch(suite.T(), []string{events.WorkOrderCreated, events.TicketConverted}, suite.publisher.types())
}

func (suite *WorkOrderServiceTestSuite) TestConvertToWorkOrder_OnlyOnce() {
	id := uuid.New()
	suite.mockTix.EXPECT().GetByID(gomock.Any(), suite.condo, id).
		Return(&models.Ticket{BaseModel: models.BaseModel{ID: id}, Status: models.TicketStatusInProgress}, nil)
	suite.mockOrders.EXPECT().GetByTicket(gomock.Any(), suite.condo, id).Return(&models.WorkOrder{}, nil)

	_, err := suite.tickets.ConvertToWorkOrder(suite.ctx, suite.condo, id)
	assert.ErrorIs(suite.T(), err, apperrors.ErrWorkOrderExists)
}

func (suite *WorkOrderServiceTestSuite) TestConvertToWorkOrder_ConcurrentConversionLoses() {
	id := uuid.New()
	suite.mockTix.EXPECT().GetByID(gomock.Any(), suite.condo, id).
		Return(&models.Ticket{BaseModel: models.BaseModel{ID: id}, Status: models.TicketStatusOpen}, nil)
	suite.mockOrders.EXPECT().GetByTicket(gomock.Any(), suite.condo, id).Return(nil, gorm.ErrRecordNotFound)
	suite.mockOrders.EXPECT().ConvertTicket(gomock.Any(), gomock.Any(), gomock.Any(), 2025).Return(repository.ErrTicketConverted)

	_, err := suite.tickets.ConvertToWorkOrder(suite.ctx, suite.condo, id)
	assert.ErrorIs(suite.T(), err, apperrors.ErrWorkOrderExists)
	assert.Empty(suite.T(), suite.publisher.types())
}

func (suite *WorkOrderServiceTestSuite) TestConvertToWorkOrder_FailureCreatesNothing() {
	id := uuid.New()
	suite.mockTix.EXPECT().GetByID(gomock.Any(), suite.condo, id).
		Return(&models.Ticket{BaseModel: models.BaseModel{ID: id}, Status: models.TicketStatusOpen}, nil)
	suite.mockOrders.EXPECT().GetByTicket(gomock.Any(), suite.condo, id).Return(nil, gorm.ErrRecordNotFound)
	suite.mockOrders.EXPECT().ConvertTicket(gomock.Any(), gomock.Any(), gomock.Any(), 2025).Return(errors.New("connection reset"))

	_, err := suite.tickets.ConvertToWorkOrder(suite.ctx, suite.condo, id)
	suite.Require().Error(err)
	assert.False(suite.T(), apperrors.IsNotFound(err))
	assert.Empty(suite.T(), suite.publisher.types())
}

func (suite *WorkOrderServiceTestSuite) TestConvertToWorkOrder_LookupFailure() {
	id := uuid.New()
	suite.mockTix.EXPECT().GetByID(gomock.Any(), suite.condo, id).Return(nil, errors.New("timeout"))

	_, err := suite.tickets.ConvertToWorkOrder(suite.ctx, suite.condo, id)
	suite.Require().Error(err)
	assert.False(suite.T(), apperrors.IsNotFound(err))
}

func (suite *WorkOrderServiceTestSuite) TestTicketOverdueIsDerived() {
	id := uuid.New()
	suite.mockTix.EXPECT().GetByID(gomock.Any(), suite.condo, id).Return(&models.Ticket{
		Status:      models.TicketStatusOpen,
		SLADeadline: fixedNow.Add(-time.Minute),
	}, nil)

	v, err := suite.tickets.Get(suite.ctx, suite.condo, id)
	suite.Require().NoError(err)
	assert.True(suite.T(), v.Overdue)
}

func TestWorkOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WorkOrderServiceTestSuite))
}

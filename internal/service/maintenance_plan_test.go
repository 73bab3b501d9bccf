package service_test

import (
	"context"
	"testing"
	"time"

	"condo-maintenance-backend/internal/database/models"
	apperrors "condo-maintenance-backend/internal/errors"
	"condo-maintenance-backend/internal/mocks"
	"condo-maintenance-backend/internal/repository"
	"condo-maintenance-backend/internal/service"
	"condo-maintenance-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type MaintenancePlanServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockPlans  *mocks.MockMaintenancePlanRepositoryInterface
	mockAssets *mocks.MockAssetRepositoryInterface
	service    *service.MaintenancePlanService
	factories  *testutils.FactorySet
	condo      uuid.UUID
	ctx        context.Context
}

func (suite *MaintenancePlanServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPlans = mocks.NewMockMaintenancePlanRepositoryInterface(suite.ctrl)
	suite.mockAssets = mocks.NewMockAssetRepositoryInterface(suite.ctrl)
	suite.service = service.NewMaintenancePlanService(suite.mockPlans, suite.mockAssets, service.Deps{Now: clock})
	suite.factories = testutils.NewFactorySet()
	suite.condo = uuid.New()
	suite.ctx = context.Background()
}

func (suite *MaintenancePlanServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MaintenancePlanServiceTestSuite) TestCreate_NextFromLastExecution() {
	last := fixedNow.AddDate(0, 0, -10)
	suite.mockPlans.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	plan, err := suite.service.Create(suite.ctx, suite.condo, &service.MaintenancePlanRequest{
		Title: "Limpeza de caixa d'agua", PeriodDays: 180, LastExecutedAt: &last,
	})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), last.AddDate(0, 0, 180), *plan.NextExecutionAt)
	assert.True(suite.T(), plan.Active)
}

func (suite *MaintenancePlanServiceTestSuite) TestCreate_NeverExecutedIsDueNow() {
	suite.mockPlans.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	plan, err := suite.service.Create(suite.ctx, suite.condo, &service.MaintenancePlanRequest{Title: "Bombas", PeriodDays: 30})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), fixedNow, *plan.NextExecutionAt)
}

func (suite *MaintenancePlanServiceTestSuite) TestCreate_AssetFromOtherCondominium() {
	assetID := uuid.New()
	suite.mockAssets.EXPECT().GetByID(gomock.Any(), suite.condo, assetID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Create(suite.ctx, suite.condo, &service.MaintenancePlanRequest{AssetID: &assetID, Title: "Elevador", PeriodDays: 30})
	assert.ErrorIs(suite.T(), err, apperrors.ErrAssetNotFound)
}

func (suite *MaintenancePlanServiceTestSuite) TestRegisterExecution() {
	plan := suite.factories.MaintenancePlan.Create(suite.condo)
	executed := fixedNow.Add(-48 * time.Hour)
	suite.mockPlans.EXPECT().GetByID(gomock.Any(), suite.condo, plan.ID).Return(plan, nil)
	suite.mockPlans.EXPECT().Update(gomock.Any(), plan).Return(nil)

	got, err := suite.service.RegisterExecution(suite.ctx, suite.condo, plan.ID, &service.ExecutionRequest{ExecutedAt: &executed})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), executed, *got.LastExecutedAt)
	assert.Equal(suite.T(), executed.AddDate(0, 0, 30), *got.NextExecutionAt)
}

func (suite *MaintenancePlanServiceTestSuite) TestList_DueWithinDays() {
	suite.mockPlans.EXPECT().List(gomock.Any(), suite.condo, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, f repository.MaintenancePlanFilter) ([]models.MaintenancePlan, int64, error) {
			suite.Require().NotNil(f.DueBefore)
			assert.Equal(suite.T(), fixedNow.AddDate(0, 0, 7), *f.DueBefore)
			return nil, 0, nil
		})

	page, err := suite.service.List(suite.ctx, suite.condo, service.MaintenancePlanQuery{DueWithinDays: 7})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), 20, page.PageSize)
}

func TestMaintenancePlanServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MaintenancePlanServiceTestSuite))
}

package service_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"condo-maintenance-backend/internal/database/models"
	apperrors "condo-maintenance-backend/internal/errors"
	"condo-maintenance-backend/internal/mocks"
	"condo-maintenance-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestConformityStatusAt(t *testing.T) {
	day := 24 * time.Hour
	at := func(d time.Duration) *time.Time { v := fixedNow.Add(d); return &v }

	assert.Equal(t, models.ConformityStatusGray, service.ConformityStatusAt(nil, fixedNow))
	assert.Equal(t, models.ConformityStatusRed, service.ConformityStatusAt(at(-day), fixedNow))
	assert.Equal(t, models.ConformityStatusYellow, service.ConformityStatusAt(at(day), fixedNow))
	assert.Equal(t, models.ConformityStatusYellow, service.ConformityStatusAt(at(30*day), fixedNow))
	assert.Equal(t, models.ConformityStatusGreen, service.ConformityStatusAt(at(31*day), fixedNow))
}

type ConformityServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockItems     *mocks.MockConformityItemRepositoryInterface
	mockTemplates *mocks.MockChecklistTemplateRepositoryInterface
	mockAssets    *mocks.MockAssetRepositoryInterface
	service       *service.ConformityService
	templates     *service.ChecklistTemplateService
	condo         uuid.UUID
	ctx           context.Context
}

func (suite *ConformityServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockItems = mocks.NewMockConformityItemRepositoryInterface(suite.ctrl)
	suite.mockTemplates = mocks.NewMockChecklistTemplateRepositoryInterface(suite.ctrl)
	suite.mockAssets = mocks.NewMockAssetRepositoryInterface(suite.ctrl)
	deps := service.Deps{Now: clock}
	suite.service = service.NewConformityService(suite.mockItems, suite.mockTemplates, suite.mockAssets, deps)
	suite.templates = service.NewChecklistTemplateService(suite.mockTemplates, deps)
	suite.condo = uuid.New()
	suite.ctx = context.Background()
}

func (suite *ConformityServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ConformityServiceTestSuite) TestList_DerivesStatus() {
	overdue := fixedNow.Add(-time.Hour)
	suite.mockItems.EXPECT().List(gomock.Any(), suite.condo, 20, 0).Return([]models.ConformityItem{
		{Description: "Extintores", DueAt: &overdue},
		{Description: "SPDA"},
	}, int64(2), nil)

	page, err := suite.service.List(suite.ctx, suite.condo, service.Pagination{})
	suite.Require().NoError(err)
	suite.Require().Len(page.Items, 2)
	assert.Equal(suite.T(), models.ConformityStatusRed, page.Items[0].Status)
	assert.Equal(suite.T(), models.ConformityStatusGray, page.Items[1].Status)
}

func (suite *ConformityServiceTestSuite) TestRegisterExecution_MovesDueDate() {
	id := uuid.New()
	item := &models.ConformityItem{PeriodDays: 365}
	suite.mockItems.EXPECT().GetByID(gomock.Any(), suite.condo, id).Return(item, nil)
	suite.mockItems.EXPECT().Update(gomock.Any(), item).Return(nil)

	v, err := suite.service.RegisterExecution(suite.ctx, suite.condo, id, &service.ExecutionRequest{Notes: "laudo anexado"})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), fixedNow, *v.LastExecutedAt)
	assert.Equal(suite.T(), fixedNow.AddDate(0, 0, 365), *v.DueAt)
	assert.Equal(suite.T(), models.ConformityStatusGreen, v.Status)
	assert.Equal(suite.T(), "laudo anexado", v.Notes)
}

func (suite *ConformityServiceTestSuite) TestRegisterExecution_RejectsFutureDate() {
	id := uuid.New()
	suite.mockItems.EXPECT().GetByID(gomock.Any(), suite.condo, id).Return(&models.ConformityItem{PeriodDays: 30}, nil)
	future := fixedNow.Add(time.Hour)

	_, err := suite.service.RegisterExecution(suite.ctx, suite.condo, id, &service.ExecutionRequest{ExecutedAt: &future})
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ConformityServiceTestSuite) TestInstantiateTemplate() {
	tplID := uuid.New()
	suite.mockTemplates.EXPECT().GetVisible(gomock.Any(), suite.condo, tplID).Return(&models.ChecklistTemplate{
		Name: "Inspecao de extintores", NBR: "NBR 12962", PeriodDays: 365,
	}, nil)
	suite.mockItems.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, item *models.ConformityItem) error {
		assert.Equal(suite.T(), suite.condo, item.CondominiumID)
		assert.Equal(suite.T(), "NBR 12962", item.NBR)
		assert.Nil(suite.T(), item.DueAt)
		return nil
	})

	v, err := suite.service.InstantiateTemplate(suite.ctx, suite.condo, tplID, nil)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.ConformityStatusGray, v.Status)
}

func (suite *ConformityServiceTestSuite) TestInstantiateTemplate_NotVisible() {
	tplID := uuid.New()
	suite.mockTemplates.EXPECT().GetVisible(gomock.Any(), suite.condo, tplID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.InstantiateTemplate(suite.ctx, suite.condo, tplID, nil)
	assert.ErrorIs(suite.T(), err, apperrors.ErrChecklistTemplateNotFound)
}

func (suite *ConformityServiceTestSuite) TestInstantiateTemplate_AssetFromAnotherCondominium() {
	tplID, assetID := uuid.New(), uuid.New()
	suite.mockTemplates.EXPECT().GetVisible(gomock.Any(), suite.condo, tplID).Return(&models.ChecklistTemplate{
		Name: "SPDA", NBR: "NBR 5419", PeriodDays: 365,
	}, nil)
	suite.mockAssets.EXPECT().GetByID(gomock.Any(), suite.condo, assetID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.InstantiateTemplate(suite.ctx, suite.condo, tplID, &service.InstantiateTemplateRequest{AssetID: &assetID})
	assert.ErrorIs(suite.T(), err, apperrors.ErrAssetNotFound)
}

func (suite *ConformityServiceTestSuite) TestUpdate_AssetFromAnotherCondominium() {
	id, assetID := uuid.New(), uuid.New()
	suite.mockItems.EXPECT().GetByID(gomock.Any(), suite.condo, id).Return(&models.ConformityItem{PeriodDays: 30}, nil)
	suite.mockAssets.EXPECT().GetByID(gomock.Any(), suite.condo, assetID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Update(suite.ctx, suite.condo, id, &service.ConformityItemRequest{
		AssetID: &assetID, Description: "Limpeza de caixa d'agua", PeriodDays: 180,
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrAssetNotFound)
}

func (suite *ConformityServiceTestSuite) TestCreateTemplate_GlobalNeedsGlobalAdmin() {
	req := &service.ChecklistTemplateRequest{Name: "SPDA", NBR: "NBR 5419", PeriodDays: 365, Global: true}

	_, err := suite.templates.Create(suite.ctx, suite.condo, false, req)
	assert.True(suite.T(), apperrors.IsAuthorization(err))

	suite.mockTemplates.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tpl *models.ChecklistTemplate) error {
		assert.Nil(suite.T(), tpl.CondominiumID)
		assert.JSONEq(suite.T(), "[]", string(tpl.Items))
		return nil
	})
	_, err = suite.templates.Create(suite.ctx, suite.condo, true, req)
	assert.NoError(suite.T(), err)
}

func (suite *ConformityServiceTestSuite) TestCreateTemplate_OwnedByCondominium() {
	suite.mockTemplates.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tpl *models.ChecklistTemplate) error {
		suite.Require().NotNil(tpl.CondominiumID)
		assert.Equal(suite.T(), suite.condo, *tpl.CondominiumID)
		return nil
	})

	_, err := suite.templates.Create(suite.ctx, suite.condo, false, &service.ChecklistTemplateRequest{
		Name: "Piscina", NBR: "NBR 10339", PeriodDays: 30, Items: json.RawMessage(`["pH","cloro"]`),
	})
	assert.NoError(suite.T(), err)
}

func TestConformityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConformityServiceTestSuite))
}

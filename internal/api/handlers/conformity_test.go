package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"condo-maintenance-backend/internal/database/models"
	apperrors "condo-maintenance-backend/internal/errors"
	"condo-maintenance-backend/internal/mocks"
	"condo-maintenance-backend/internal/service"
	"condo-maintenance-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ConformityHandlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	items     *mocks.MockConformityServiceInterface
	templates *mocks.MockChecklistTemplateServiceInterface
	handler   *ConformityHandler
	factories *testutils.FactorySet
	condo     uuid.UUID
}

func (suite *ConformityHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.items = mocks.NewMockConformityServiceInterface(suite.ctrl)
	suite.templates = mocks.NewMockChecklistTemplateServiceInterface(suite.ctrl)
	suite.handler = NewConformityHandler(suite.items, suite.templates)
	suite.factories = testutils.NewFactorySet()
	suite.condo = uuid.New()
}

func (suite *ConformityHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ConformityHandlerTestSuite) router(globalAdmin bool) *testutils.HTTPTestSuite {
	h := scopedHTTP(uuid.New(), suite.condo, models.RoleSindico)
	h.Router.Use(func(c *gin.Context) {
		c.Set("global_admin", globalAdmin)
		c.Next()
	})
	h.Router.GET("/api/v1/conformidade", suite.handler.ListItems)
	h.Router.POST("/api/v1/conformidade", suite.handler.CreateItem)
	h.Router.POST("/api/v1/conformidade/:id/execucoes", suite.handler.RegisterExecution)
	h.Router.POST("/api/v1/templates", suite.handler.CreateTemplate)
	h.Router.POST("/api/v1/templates/:id/instanciar", suite.handler.InstantiateTemplate)
	return h
}

func (suite *ConformityHandlerTestSuite) TestListItemsCarriesStatus() {
	due := time.Now().Add(-24 * time.Hour)
	item := suite.factories.ConformityItem.Create(suite.condo, &due)
	suite.items.EXPECT().
		List(gomock.Any(), suite.condo, service.Pagination{Page: 1, PageSize: 10}).
		Return(&service.Page[service.ConformityItemView]{
			Items: []service.ConformityItemView{{ConformityItem: *item, Status: models.ConformityStatusRed}},
			Total: 1, Page: 1, PageSize: 10,
		}, nil)

	recorder := suite.router(false).MakeRequest("GET", "/api/v1/conformidade?page=1&page_size=10", nil)

	var page struct {
		Items []map[string]interface{} `json:"items"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &page)
	suite.Require().Len(page.Items, 1)
	assert.Equal(suite.T(), "vermelho", page.Items[0]["status"])
}

func (suite *ConformityHandlerTestSuite) TestRegisterExecutionWithoutBody() {
	id := uuid.New()
	suite.items.EXPECT().
		RegisterExecution(gomock.Any(), suite.condo, id, &service.ExecutionRequest{}).
		Return(&service.ConformityItemView{Status: models.ConformityStatusGreen}, nil)

	recorder := suite.router(false).MakeRequest("POST", "/api/v1/conformidade/"+id.String()+"/execucoes", nil)
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *ConformityHandlerTestSuite) TestRegisterExecutionFutureDate() {
	id := uuid.New()
	suite.items.EXPECT().
		RegisterExecution(gomock.Any(), suite.condo, id, gomock.Any()).
		Return(nil, apperrors.NewValidationError("executado_em", "execution date cannot be in the future"))

	recorder := suite.router(false).MakeRequest("POST", "/api/v1/conformidade/"+id.String()+"/execucoes",
		map[string]interface{}{"executado_em": time.Now().Add(48 * time.Hour)})
	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

func (suite *ConformityHandlerTestSuite) TestCreateTemplatePassesGlobalAdmin() {
	for _, admin := range []bool{false, true} {
		suite.templates.EXPECT().
			Create(gomock.Any(), suite.condo, admin, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ bool, req *service.ChecklistTemplateRequest) (*models.ChecklistTemplate, error) {
				assert.Equal(suite.T(), "NBR 5674", req.NBR)
				return &models.ChecklistTemplate{Name: req.Name, NBR: req.NBR}, nil
			})

		recorder := suite.router(admin).MakeRequest("POST", "/api/v1/templates", map[string]interface{}{
			"nome":               "Preventiva anual",
			"nbr":                "NBR 5674",
			"periodicidade_dias": 365,
		})
		assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
	}
}

func (suite *ConformityHandlerTestSuite) TestCreateGlobalTemplateForbidden() {
	suite.templates.EXPECT().
		Create(gomock.Any(), suite.condo, false, gomock.Any()).
		Return(nil, apperrors.NewAuthorizationError("only global administrators can create global templates"))

	recorder := suite.router(false).MakeRequest("POST", "/api/v1/templates", map[string]interface{}{
		"nome": "Global", "nbr": "NBR 12962", "periodicidade_dias": 365, "global": true,
	})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "")
}

func (suite *ConformityHandlerTestSuite) TestInstantiateTemplate() {
	tpl := uuid.New()
	suite.items.EXPECT().
		InstantiateTemplate(gomock.Any(), suite.condo, tpl, gomock.Any()).
		Return(&service.ConformityItemView{Status: models.ConformityStatusGray}, nil)

	recorder := suite.router(false).MakeRequest("POST", "/api/v1/templates/"+tpl.String()+"/instanciar", nil)
	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
}

func (suite *ConformityHandlerTestSuite) TestInstantiateUnknownTemplate() {
	tpl := uuid.New()
	suite.items.EXPECT().
		InstantiateTemplate(gomock.Any(), suite.condo, tpl, gomock.Any()).
		Return(nil, apperrors.ErrChecklistTemplateNotFound)

	recorder := suite.router(false).MakeRequest("POST", "/api/v1/templates/"+tpl.String()+"/instanciar", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "checklist template")
}

func TestConformityHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ConformityHandlerTestSuite))
}

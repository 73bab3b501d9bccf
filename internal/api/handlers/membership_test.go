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

type MembershipHandlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	service   *mocks.MockMembershipServiceInterface
	httpSuite *testutils.HTTPTestSuite
	factories *testutils.FactorySet
	user      uuid.UUID
	condo     uuid.UUID
}

func (suite *MembershipHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.service = mocks.NewMockMembershipServiceInterface(suite.ctrl)
	suite.factories = testutils.NewFactorySet()
	suite.user = uuid.New()
	suite.condo = uuid.New()

	handler := NewMembershipHandler(suite.service)
	suite.httpSuite = scopedHTTP(suite.user, suite.condo, models.RoleSindico)
	r := suite.httpSuite.Router
	r.GET("/api/v1/me", handler.GetProfile)
	r.PUT("/api/v1/me", handler.UpdateProfile)
	r.GET("/api/v1/me/vinculos", handler.MyLinks)
	r.PUT("/api/v1/me/vinculos/:id/principal", handler.SetPrincipal)
	r.GET("/api/v1/membros", handler.ListMembers)
	r.POST("/api/v1/membros", handler.AddMember)
	r.PATCH("/api/v1/membros/:id", handler.UpdateMemberRole)
	r.DELETE("/api/v1/membros/:id", handler.RemoveMember)
}

func (suite *MembershipHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MembershipHandlerTestSuite) TestGetProfileUsesCaller() {
	profile := suite.factories.User.Create()
	suite.service.EXPECT().Profile(gomock.Any(), suite.user).Return(profile, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/me", nil)

	var got models.UserProfile
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	assert.Equal(suite.T(), profile.Email, got.Email)
	assert.NotContains(suite.T(), recorder.Body.String(), "senha")
}

func (suite *MembershipHandlerTestSuite) TestUpdateProfileInvalidBody() {
	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/me", "not an object")
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid request body")
}

func (suite *MembershipHandlerTestSuite) TestMyLinks() {
	link := suite.factories.Link.Principal(suite.user, suite.condo, models.RoleMorador)
	suite.service.EXPECT().MyLinks(gomock.Any(), suite.user).Return([]models.CondominiumLink{*link}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/me/vinculos", nil)

	var links []models.CondominiumLink
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &links)
	suite.Require().Len(links, 1)
	assert.True(suite.T(), links[0].IsPrincipal)
}

func (suite *MembershipHandlerTestSuite) TestSetPrincipal() {
	link := uuid.New()
	suite.service.EXPECT().SetPrincipal(gomock.Any(), suite.user, link).Return(nil)

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/me/vinculos/"+link.String()+"/principal", nil)
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

func (suite *MembershipHandlerTestSuite) TestSetPrincipalForeignLink() {
	link := uuid.New()
	suite.service.EXPECT().SetPrincipal(gomock.Any(), suite.user, link).Return(apperrors.ErrCondominiumLinkNotFound)

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/me/vinculos/"+link.String()+"/principal", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "condominium link")
}

func (suite *MembershipHandlerTestSuite) TestListMembers() {
	suite.service.EXPECT().ListMembers(gomock.Any(), suite.condo).Return([]service.MemberResponse{
		{LinkID: uuid.New(), Email: "zelador@aurora.com", Role: models.RoleZelador},
	}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/membros", nil)

	var members []service.MemberResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &members)
	assert.Equal(suite.T(), models.RoleZelador, members[0].Role)
}

func (suite *MembershipHandlerTestSuite) TestAddMember() {
	suite.service.EXPECT().
		AddMember(gomock.Any(), suite.condo, gomock.Any()).
		DoAndReturn(func(_ context.Context, condo uuid.UUID, req *service.AddMemberRequest) (*models.CondominiumLink, error) {
			assert.Equal(suite.T(), "novo@aurora.com", req.Email)
			assert.Equal(suite.T(), models.RoleFuncionario, req.Role)
			return suite.factories.Link.Create(uuid.New(), condo, req.Role), nil
		})

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/membros", map[string]interface{}{
		"email": "novo@aurora.com",
		"papel": "funcionario",
	})
	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
}

func (suite *MembershipHandlerTestSuite) TestAddMemberTwice() {
	suite.service.EXPECT().AddMember(gomock.Any(), suite.condo, gomock.Any()).Return(nil, apperrors.ErrCondominiumLinkExists)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/membros", map[string]interface{}{
		"email": "novo@aurora.com",
		"papel": "funcionario",
	})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already exists")
}

func (suite *MembershipHandlerTestSuite) TestUpdateMemberRoleInvalidID() {
	recorder := suite.httpSuite.MakeRequest("PATCH", "/api/v1/membros/abc", map[string]interface{}{"papel": "zelador"})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid link ID")
}

func (suite *MembershipHandlerTestSuite) TestRemoveMember() {
	link := uuid.New()
	suite.service.EXPECT().RemoveMember(gomock.Any(), suite.condo, link).Return(nil)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/membros/"+link.String(), nil)
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

func TestMembershipHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipHandlerTestSuite))
}

package access

import (
	"context"
	"errors"
	"testing"

	"condo-maintenance-backend/internal/database/models"
	apperrors "condo-maintenance-backend/internal/errors"
	"condo-maintenance-backend/internal/mocks"
	"condo-maintenance-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type ResolverTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	users     *mocks.MockUserRepositoryInterface
	links     *mocks.MockCondominiumLinkRepositoryInterface
	resolver  *Resolver
	factories *testutils.FactorySet
	condo     uuid.UUID
	ctx       context.Context
}

func (suite *ResolverTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.users = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.links = mocks.NewMockCondominiumLinkRepositoryInterface(suite.ctrl)
	suite.resolver = NewResolver(suite.users, suite.links)
	suite.factories = testutils.NewFactorySet()
	suite.condo = uuid.New()
	suite.ctx = context.Background()
}

func (suite *ResolverTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ResolverTestSuite) member(role models.Role) *models.UserProfile {
	user := suite.factories.User.Create()
	suite.users.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)
	suite.links.EXPECT().GetByUserAndCondominium(gomock.Any(), user.ID, suite.condo).
		Return(suite.factories.Link.Create(user.ID, suite.condo, role), nil)
	return user
}

func (suite *ResolverTestSuite) TestSindicoGranted() {
	user := suite.member(models.RoleSindico)

	d := suite.resolver.Check(suite.ctx, user.ID, &suite.condo, models.RoleSindico, models.RoleAdmin)
	assert.Equal(suite.T(), Granted, d.Outcome)
	assert.Equal(suite.T(), models.RoleSindico, d.Role)
	assert.False(suite.T(), d.GlobalAdmin)
	assert.Equal(suite.T(), suite.condo, d.CondominiumID)
}

func (suite *ResolverTestSuite) TestMoradorDenied() {
	user := suite.member(models.RoleMorador)

	d := suite.resolver.Check(suite.ctx, user.ID, &suite.condo, models.RoleSindico, models.RoleFuncionario)
	assert.Equal(suite.T(), Denied, d.Outcome)
	assert.ErrorIs(suite.T(), d.Err, apperrors.ErrRoleNotAllowed)
}

func (suite *ResolverTestSuite) TestGlobalRolesBypassAllowList() {
	for _, role := range []models.GlobalRole{models.GlobalRoleOwner, models.GlobalRoleAdmin} {
		user := suite.factories.User.WithGlobalRole(role)
		suite.users.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)

		d := suite.resolver.Check(suite.ctx, user.ID, &suite.condo)
		assert.Equal(suite.T(), Granted, d.Outcome, string(role))
		assert.True(suite.T(), d.GlobalAdmin)
	}
}

func (suite *ResolverTestSuite) TestEmptyAllowListDeniesScopedRoles() {
	user := suite.member(models.RoleSindico)

	d := suite.resolver.Check(suite.ctx, user.ID, &suite.condo)
	assert.Equal(suite.T(), Denied, d.Outcome)
}

func (suite *ResolverTestSuite) TestNoLinkIsDenied() {
	user := suite.factories.User.Create()
	suite.users.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)
	suite.links.EXPECT().GetByUserAndCondominium(gomock.Any(), user.ID, suite.condo).Return(nil, gorm.ErrRecordNotFound)

	d := suite.resolver.Check(suite.ctx, user.ID, &suite.condo, models.TicketRoles...)
	assert.Equal(suite.T(), Denied, d.Outcome)
}

func (suite *ResolverTestSuite) TestPrincipalUsedWithoutRequestedCondominium() {
	user := suite.factories.User.Create()
	suite.users.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)
	suite.links.EXPECT().GetPrincipal(gomock.Any(), user.ID).
		Return(suite.factories.Link.Principal(user.ID, suite.condo, models.RoleZelador), nil)

	d := suite.resolver.Check(suite.ctx, user.ID, nil, models.StaffRoles...)
	assert.Equal(suite.T(), Granted, d.Outcome)
	assert.Equal(suite.T(), suite.condo, d.CondominiumID)
}

func (suite *ResolverTestSuite) TestLookupFailureIsTransient() {
	userID := uuid.New()
	suite.users.EXPECT().GetByID(gomock.Any(), userID).Return(nil, errors.New("connection reset"))

	d := suite.resolver.Check(suite.ctx, userID, &suite.condo, models.TicketRoles...)
	assert.Equal(suite.T(), TransientError, d.Outcome)
	assert.True(suite.T(), apperrors.IsTransient(d.Err))
}

func (suite *ResolverTestSuite) TestMissingUser() {
	d := suite.resolver.Check(suite.ctx, uuid.Nil, &suite.condo, models.TicketRoles...)
	assert.Equal(suite.T(), Unauthenticated, d.Outcome)
}

func TestResolverTestSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

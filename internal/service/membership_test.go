package service_test

import (
	"context"
	"errors"
	"sync"
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
	"gorm.io/gorm"
)

// reloadRecorder remembers which users had their tenant context refreshed
type reloadRecorder struct {
	mu    sync.Mutex
	users []uuid.UUID
}

func (r *reloadRecorder) Reload(_ context.Context, userID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, userID)
}

type MembershipServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUsers    *mocks.MockUserRepositoryInterface
	mockLinks    *mocks.MockCondominiumLinkRepositoryInterface
	mockCondos   *mocks.MockCondominiumRepositoryInterface
	reloads      *reloadRecorder
	members      *service.MembershipService
	condominiums *service.CondominiumService
	factories    *testutils.FactorySet
	condo        uuid.UUID
	ctx          context.Context
}

func (suite *MembershipServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUsers = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockLinks = mocks.NewMockCondominiumLinkRepositoryInterface(suite.ctrl)
	suite.mockCondos = mocks.NewMockCondominiumRepositoryInterface(suite.ctrl)
	suite.reloads = &reloadRecorder{}
	deps := service.Deps{Now: clock}
	suite.members = service.NewMembershipService(suite.mockUsers, suite.mockLinks, suite.reloads, deps)
	suite.condominiums = service.NewCondominiumService(suite.mockCondos, suite.mockUsers, suite.mockLinks, suite.reloads, deps)
	suite.factories = testutils.NewFactorySet()
	suite.condo = uuid.New()
	suite.ctx = context.Background()
}

func (suite *MembershipServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MembershipServiceTestSuite) TestAddMember_LinksAndReloads() {
	user := suite.factories.User.WithEmail("joao@condo.test")
	suite.mockUsers.EXPECT().GetByEmail(gomock.Any(), "joao@condo.test").Return(user, nil)
	suite.mockLinks.EXPECT().GetByUserAndCondominium(gomock.Any(), user.ID, suite.condo).Return(nil, gorm.ErrRecordNotFound)
	suite.mockLinks.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, l *models.CondominiumLink) error {
		assert.Equal(suite.T(), models.RoleZelador, l.Role)
		return nil
	})

	link, err := suite.members.AddMember(suite.ctx, suite.condo, &service.AddMemberRequest{Email: "joao@condo.test", Role: models.RoleZelador})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), suite.condo, link.CondominiumID)
	assert.Equal(suite.T(), []uuid.UUID{user.ID}, suite.reloads.users)
}

func (suite *MembershipServiceTestSuite) TestAddMember_Duplicate() {
	user := suite.factories.User.Create()
	suite.mockUsers.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
	suite.mockLinks.EXPECT().GetByUserAndCondominium(gomock.Any(), user.ID, suite.condo).
		Return(suite.factories.Link.Create(user.ID, suite.condo, models.RoleMorador), nil)

	_, err := suite.members.AddMember(suite.ctx, suite.condo, &service.AddMemberRequest{Email: user.Email, Role: models.RoleMorador})
	assert.ErrorIs(suite.T(), err, apperrors.ErrCondominiumLinkExists)
	assert.Empty(suite.T(), suite.reloads.users)
}

func (suite *MembershipServiceTestSuite) TestAddMember_UnknownEmail() {
	suite.mockUsers.EXPECT().GetByEmail(gomock.Any(), "ninguem@condo.test").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.members.AddMember(suite.ctx, suite.condo, &service.AddMemberRequest{Email: "ninguem@condo.test", Role: models.RoleMorador})
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

func (suite *MembershipServiceTestSuite) TestAddMember_UnknownRole() {
	_, err := suite.members.AddMember(suite.ctx, suite.condo, &service.AddMemberRequest{Email: "a@condo.test", Role: "porteiro"})
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *MembershipServiceTestSuite) TestUpdateRole_ForeignLinkIsNotFound() {
	link := suite.factories.Link.Create(uuid.New(), uuid.New(), models.RoleMorador)
	suite.mockLinks.EXPECT().GetByID(gomock.Any(), link.ID).Return(link, nil)

	_, err := suite.members.UpdateRole(suite.ctx, suite.condo, link.ID, &service.UpdateRoleRequest{Role: models.RoleSindico})
	assert.ErrorIs(suite.T(), err, apperrors.ErrCondominiumLinkNotFound)
}

func (suite *MembershipServiceTestSuite) TestRemoveMember_Reloads() {
	link := suite.factories.Link.Create(uuid.New(), suite.condo, models.RoleMorador)
	suite.mockLinks.EXPECT().GetByID(gomock.Any(), link.ID).Return(link, nil)
	suite.mockLinks.EXPECT().Delete(gomock.Any(), link.ID).Return(nil)

	suite.Require().NoError(suite.members.RemoveMember(suite.ctx, suite.condo, link.ID))
	assert.Equal(suite.T(), []uuid.UUID{link.UserID}, suite.reloads.users)
}

func (suite *MembershipServiceTestSuite) TestListForUser_GlobalAdminSeesAll() {
	admin := suite.factories.User.WithGlobalRole(models.GlobalRoleAdmin)
	all := []models.Condominium{*suite.factories.Condominium.Create(), *suite.factories.Condominium.Create()}
	suite.mockUsers.EXPECT().GetByID(gomock.Any(), admin.ID).Return(admin, nil)
	suite.mockCondos.EXPECT().GetAll(gomock.Any()).Return(all, nil)

	got, err := suite.condominiums.ListForUser(suite.ctx, admin.ID)
	suite.Require().NoError(err)
	assert.Len(suite.T(), got, 2)
}

func (suite *MembershipServiceTestSuite) TestListForUser_MemberSeesLinked() {
	user := suite.factories.User.Create()
	condo := suite.factories.Condominium.WithName("Edificio Aurora")
	link := suite.factories.Link.Principal(user.ID, condo.ID, models.RoleMorador)
	link.Condominium = condo
	suite.mockUsers.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)
	suite.mockLinks.EXPECT().ListByUser(gomock.Any(), user.ID).Return([]models.CondominiumLink{*link}, nil)

	got, err := suite.condominiums.ListForUser(suite.ctx, user.ID)
	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	assert.Equal(suite.T(), "Edificio Aurora", got[0].Name)
}

func (suite *MembershipServiceTestSuite) TestDeleteCondominium_ReloadsMembers() {
	a, b := uuid.New(), uuid.New()
	suite.mockLinks.EXPECT().ListByCondominium(gomock.Any(), suite.condo).Return([]models.CondominiumLink{
		*suite.factories.Link.Create(a, suite.condo, models.RoleSindico),
		*suite.factories.Link.Create(b, suite.condo, models.RoleMorador),
	}, nil)
	suite.mockCondos.EXPECT().Delete(gomock.Any(), suite.condo).Return(nil)

	suite.Require().NoError(suite.condominiums.Delete(suite.ctx, suite.condo))
	assert.ElementsMatch(suite.T(), []uuid.UUID{a, b}, suite.reloads.users)
}

func (suite *MembershipServiceTestSuite) TestDeleteCondominium_NotFound() {
	suite.mockLinks.EXPECT().ListByCondominium(gomock.Any(), suite.condo).Return(nil, nil)
	suite.mockCondos.EXPECT().Delete(gomock.Any(), suite.condo).Return(gorm.ErrRecordNotFound)

	err := suite.condominiums.Delete(suite.ctx, suite.condo)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCondominiumNotFound)
}

func (suite *MembershipServiceTestSuite) TestSetPrincipal() {
	userID, linkID := uuid.New(), uuid.New()
	suite.mockLinks.EXPECT().SetPrincipal(gomock.Any(), userID, linkID).Return(errors.New("deadlock detected"))

	err := suite.members.SetPrincipal(suite.ctx, userID, linkID)
	assert.ErrorContains(suite.T(), err, "deadlock detected")
	assert.Empty(suite.T(), suite.reloads.users)
}

func TestMembershipServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipServiceTestSuite))
}

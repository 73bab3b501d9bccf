//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"condo-maintenance-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *UserRepositoryTestSuite) TestCreateAndGetByEmailIgnoresCase() {
	user := suite.factories.User.WithEmail("Sindico@Condo.Test")
	suite.Require().NoError(suite.repo.Create(suite.ctx, user))

	found, err := suite.repo.GetByEmail(suite.ctx, "SINDICO@condo.test")
	suite.Require().NoError(err)
	suite.Equal(user.ID, found.ID)
	suite.Equal("sindico@condo.test", found.Email)
}

func (suite *UserRepositoryTestSuite) TestCreateDuplicateEmail() {
	suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.User.WithEmail("dup@condo.test")))

	err := suite.repo.Create(suite.ctx, suite.factories.User.WithEmail("dup@condo.test"))
	suite.Error(err)
}

func (suite *UserRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(suite.ctx, suite.factories.User.Create().ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *UserRepositoryTestSuite) TestUpdate() {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, user))

	user.Name = "Joao Pereira"
	suite.Require().NoError(suite.repo.Update(suite.ctx, user))

	found, err := suite.repo.GetByID(suite.ctx, user.ID)
	suite.Require().NoError(err)
	suite.Equal("Joao Pereira", found.Name)
}

func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}

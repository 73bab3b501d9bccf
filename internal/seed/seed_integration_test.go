//go:build integration
// +build integration

package seed

import (
	"context"
	"testing"

	"condo-maintenance-backend/internal/auth"
	"condo-maintenance-backend/internal/database/models"
	"condo-maintenance-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

type SeedTestSuite struct {
	suite.Suite
	base *testutils.BaseTestSuite
}

func (s *SeedTestSuite) SetupSuite()    { s.base = testutils.SetupTestSuite(s.T()) }
func (s *SeedTestSuite) TearDownSuite() { s.base.TeardownTestSuite() }
func (s *SeedTestSuite) SetupTest()     { s.base.SetupTest() }

func (s *SeedTestSuite) TestApplyIsIdempotent() {
	data, err := Parse([]byte(sample))
	s.Require().NoError(err)
	hasher := auth.NewArgon2Hasher(&auth.Argon2Params{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32})

	first, err := Apply(context.Background(), s.base.DB, hasher, data)
	s.Require().NoError(err)
	s.Equal(Result{Condominiums: 1, Users: 1, Links: 1, Templates: 1}, first)

	second, err := Apply(context.Background(), s.base.DB, hasher, data)
	s.Require().NoError(err)
	s.Equal(Result{}, second)

	var user models.UserProfile
	s.Require().NoError(s.base.DB.Where("email = ?", "sindico@aurora.com").First(&user).Error)
	ok, err := hasher.VerifyPassword("segredo123", user.PasswordHash)
	s.Require().NoError(err)
	s.True(ok)

	var condo models.Condominium
	s.Require().NoError(s.base.DB.First(&condo).Error)
	s.Equal("PR", condo.State)
}

func TestSeedTestSuite(t *testing.T) {
	suite.Run(t, new(SeedTestSuite))
}

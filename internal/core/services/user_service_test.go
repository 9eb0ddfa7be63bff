package services_test

import (
	"context"
	"testing"

	"github.com/abuyamnglobal-com/tajheez/internal/apperrors"
	"github.com/abuyamnglobal-com/tajheez/internal/core/domain"
	portssvc "github.com/abuyamnglobal-com/tajheez/internal/core/ports/services"
	"github.com/abuyamnglobal-com/tajheez/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (suite *UserServiceTestSuite) TestGetUserByID_Success() {
	expected := &domain.User{UserID: 7, FullName: "Carol", Email: "carol@example.com", Role: domain.RoleAdmin, IsActive: true}
	suite.mockUserRepo.On("FindUserByID", mock.Anything, int64(7)).Return(expected, nil).Once()

	user, err := suite.service.GetUserByID(context.Background(), 7)

	suite.Require().NoError(err)
	suite.Equal(expected, user)
}

func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	suite.mockUserRepo.On("FindUserByID", mock.Anything, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.GetUserByID(context.Background(), 99)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(user)
}

func (suite *UserServiceTestSuite) TestGetUserByID_InactiveIsNotFound() {
	inactive := &domain.User{UserID: 3, FullName: "Bob", IsActive: false}
	suite.mockUserRepo.On("FindUserByID", mock.Anything, int64(3)).Return(inactive, nil).Once()

	user, err := suite.service.GetUserByID(context.Background(), 3)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(user)
}

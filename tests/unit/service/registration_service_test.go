package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"reelshelf/internal/domain"
	"reelshelf/internal/service"
	"reelshelf/mocks"
)

func newRegistrationService() (service.RegistrationService, *mocks.MockUserRepo, *mocks.MockAuthService, *mocks.MockEmailSender) {
	userRepo := new(mocks.MockUserRepo)
	authSvc := new(mocks.MockAuthService)
	emailSender := new(mocks.MockEmailSender)
	svc := service.NewRegistrationService(userRepo, authSvc, emailSender)
	return svc, userRepo, authSvc, emailSender
}

func TestRegistrationService_Register_Success(t *testing.T) {
	svc, userRepo, authSvc, emailSender := newRegistrationService()

	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		if u.Email != "new@test.com" || u.DisplayName != "New User" {
			return false
		}
		if u.AuthProvider != domain.ProviderPassword || !u.IsActive {
			return false
		}
		return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password123")) == nil
	})).Return(nil)
	emailSender.On("SendWelcomeEmail", mock.Anything, "new@test.com", "New User").Return(nil)
	authSvc.On("GenerateTokenPairForUser", mock.Anything).Return(&service.TokenPair{
		AccessToken:  "access",
		RefreshToken: "refresh",
		ExpiresAt:    time.Now().Add(15 * time.Minute),
	}, nil)

	result, err := svc.Register(context.Background(), service.RegisterInput{
		Email:       "New@Test.com",
		Password:    "password123",
		DisplayName: " New User ",
	})

	require.NoError(t, err)
	assert.Equal(t, "new@test.com", result.User.Email)
	assert.Equal(t, "access", result.Tokens.AccessToken)
	userRepo.AssertExpectations(t)
	emailSender.AssertExpectations(t)
}

func TestRegistrationService_Register_DuplicateEmail(t *testing.T) {
	svc, userRepo, _, emailSender := newRegistrationService()

	userRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateEmail)

	_, err := svc.Register(context.Background(), service.RegisterInput{
		Email:       "taken@test.com",
		Password:    "password123",
		DisplayName: "Someone",
	})

	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	emailSender.AssertNotCalled(t, "SendWelcomeEmail", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegistrationService_Register_WelcomeEmailFailureIgnored(t *testing.T) {
	svc, userRepo, authSvc, emailSender := newRegistrationService()

	userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	emailSender.On("SendWelcomeEmail", mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)
	authSvc.On("GenerateTokenPairForUser", mock.Anything).Return(&service.TokenPair{
		AccessToken: "access",
	}, nil)

	result, err := svc.Register(context.Background(), service.RegisterInput{
		Email:       "new@test.com",
		Password:    "password123",
		DisplayName: "New User",
	})

	require.NoError(t, err)
	assert.Equal(t, "new@test.com", result.User.Email)
	assert.Equal(t, "access", result.Tokens.AccessToken)
}

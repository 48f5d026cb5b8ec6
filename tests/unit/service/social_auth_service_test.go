package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"reelshelf/internal/domain"
	"reelshelf/internal/port"
	"reelshelf/internal/service"
	"reelshelf/mocks"
)

func newSocialAuthService(verifier *mocks.MockSocialTokenVerifier) (service.SocialAuthService, *mocks.MockUserRepo, *mocks.MockAuthService, *mocks.MockEmailSender) {
	userRepo := new(mocks.MockUserRepo)
	authSvc := new(mocks.MockAuthService)
	emailSender := new(mocks.MockEmailSender)
	verifier.On("Provider").Return("google")
	svc := service.NewSocialAuthService(userRepo, authSvc, emailSender, verifier)
	return svc, userRepo, authSvc, emailSender
}

func TestSocialAuthService_Login_NewUser(t *testing.T) {
	verifier := new(mocks.MockSocialTokenVerifier)
	svc, userRepo, authSvc, emailSender := newSocialAuthService(verifier)

	verifier.On("VerifyIDToken", mock.Anything, "good-token").Return(&port.SocialAuthClaims{
		Subject:       "google-sub-1",
		Email:         "New@Gmail.com",
		EmailVerified: true,
		FullName:      "New Person",
	}, nil)
	userRepo.On("GetByEmail", mock.Anything, "new@gmail.com").Return(nil, domain.ErrNotFound)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "new@gmail.com" &&
			u.AuthProvider == domain.AuthProvider("google") &&
			u.PasswordHash == "" && u.IsActive
	})).Return(nil)
	emailSender.On("SendWelcomeEmail", mock.Anything, "new@gmail.com", "New Person").Return(nil)
	authSvc.On("GenerateTokenPairForUser", mock.Anything).Return(&service.TokenPair{AccessToken: "access"}, nil)

	result, err := svc.Login(context.Background(), service.SocialLoginInput{
		Provider: "google",
		IDToken:  "good-token",
	})

	require.NoError(t, err)
	assert.Equal(t, "new@gmail.com", result.User.Email)
	userRepo.AssertExpectations(t)
}

func TestSocialAuthService_Login_ExistingUser(t *testing.T) {
	verifier := new(mocks.MockSocialTokenVerifier)
	svc, userRepo, authSvc, _ := newSocialAuthService(verifier)

	existing := &domain.User{
		ID:           uuid.New(),
		Email:        "known@gmail.com",
		AuthProvider: domain.ProviderPassword,
		PasswordHash: "some-hash",
		IsActive:     true,
	}

	verifier.On("VerifyIDToken", mock.Anything, "good-token").Return(&port.SocialAuthClaims{
		Email:         "known@gmail.com",
		EmailVerified: true,
	}, nil)
	userRepo.On("GetByEmail", mock.Anything, "known@gmail.com").Return(existing, nil)
	authSvc.On("GenerateTokenPairForUser", existing).Return(&service.TokenPair{AccessToken: "access"}, nil)

	result, err := svc.Login(context.Background(), service.SocialLoginInput{
		Provider: "google",
		IDToken:  "good-token",
	})

	require.NoError(t, err)
	assert.Equal(t, existing.ID, result.User.ID)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSocialAuthService_Login_InvalidToken(t *testing.T) {
	verifier := new(mocks.MockSocialTokenVerifier)
	svc, userRepo, _, _ := newSocialAuthService(verifier)

	verifier.On("VerifyIDToken", mock.Anything, "bad-token").Return(nil, domain.ErrSocialAuthTokenInvalid)

	_, err := svc.Login(context.Background(), service.SocialLoginInput{
		Provider: "google",
		IDToken:  "bad-token",
	})

	assert.ErrorIs(t, err, domain.ErrSocialAuthTokenInvalid)
	userRepo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
}

func TestSocialAuthService_Login_UnverifiedEmail(t *testing.T) {
	verifier := new(mocks.MockSocialTokenVerifier)
	svc, userRepo, _, _ := newSocialAuthService(verifier)

	verifier.On("VerifyIDToken", mock.Anything, "token").Return(&port.SocialAuthClaims{
		Email:         "sketchy@gmail.com",
		EmailVerified: false,
	}, nil)

	_, err := svc.Login(context.Background(), service.SocialLoginInput{
		Provider: "google",
		IDToken:  "token",
	})

	assert.ErrorIs(t, err, domain.ErrSocialAuthTokenInvalid)
	userRepo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
}

func TestSocialAuthService_Login_UnknownProvider(t *testing.T) {
	verifier := new(mocks.MockSocialTokenVerifier)
	svc, _, _, _ := newSocialAuthService(verifier)

	_, err := svc.Login(context.Background(), service.SocialLoginInput{
		Provider: "myspace",
		IDToken:  "token",
	})

	assert.ErrorIs(t, err, domain.ErrSocialAuthTokenInvalid)
}

func TestSocialAuthService_Login_InactiveUser(t *testing.T) {
	verifier := new(mocks.MockSocialTokenVerifier)
	svc, userRepo, _, _ := newSocialAuthService(verifier)

	verifier.On("VerifyIDToken", mock.Anything, "token").Return(&port.SocialAuthClaims{
		Email:         "banned@gmail.com",
		EmailVerified: true,
	}, nil)
	userRepo.On("GetByEmail", mock.Anything, "banned@gmail.com").Return(&domain.User{
		ID:       uuid.New(),
		Email:    "banned@gmail.com",
		IsActive: false,
	}, nil)

	_, err := svc.Login(context.Background(), service.SocialLoginInput{
		Provider: "google",
		IDToken:  "token",
	})

	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

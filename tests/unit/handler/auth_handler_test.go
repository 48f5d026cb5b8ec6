package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"reelshelf/internal/domain"
	"reelshelf/internal/handler"
	"reelshelf/internal/service"
	"reelshelf/mocks"
)

func TestAuthHandler_Login_Success(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth, nil, nil)

	pair := &service.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresAt:    time.Now().Add(15 * time.Minute),
	}
	mockAuth.On("Login", mock.Anything, mock.MatchedBy(func(in service.LoginInput) bool {
		return in.Email == "user@test.com"
	})).Return(pair, nil)

	c, w := newJSONRequest(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "user@test.com",
		"password": "password123",
	})

	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	mockAuth.AssertExpectations(t)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth, nil, nil)

	mockAuth.On("Login", mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidCredentials)

	c, w := newJSONRequest(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "user@test.com",
		"password": "wrong-password",
	})

	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_CREDENTIALS", resp.Error.Code)
}

func TestAuthHandler_Login_ShortPassword(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth, nil, nil)

	c, w := newJSONRequest(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "user@test.com",
		"password": "short",
	})

	h.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockAuth.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestAuthHandler_Register_Success(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	mockReg := new(mocks.MockRegistrationService)
	h := handler.NewAuthHandler(mockAuth, mockReg, nil)

	result := &service.AuthResult{
		User:   &domain.User{Email: "new@test.com", DisplayName: "New User"},
		Tokens: &service.TokenPair{AccessToken: "access"},
	}
	mockReg.On("Register", mock.Anything, mock.MatchedBy(func(in service.RegisterInput) bool {
		return in.Email == "new@test.com" && in.DisplayName == "New User"
	})).Return(result, nil)

	c, w := newJSONRequest(t, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"email":        "new@test.com",
		"password":     "password123",
		"display_name": "New User",
	})

	h.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockReg.AssertExpectations(t)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	mockReg := new(mocks.MockRegistrationService)
	h := handler.NewAuthHandler(mockAuth, mockReg, nil)

	mockReg.On("Register", mock.Anything, mock.Anything).Return(nil, domain.ErrDuplicateEmail)

	c, w := newJSONRequest(t, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"email":        "taken@test.com",
		"password":     "password123",
		"display_name": "Someone",
	})

	h.Register(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_RefreshToken_Success(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth, nil, nil)

	pair := &service.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}
	mockAuth.On("RefreshToken", mock.Anything, "old-refresh").Return(pair, nil)

	c, w := newJSONRequest(t, http.MethodPost, "/api/v1/auth/refresh", map[string]string{
		"refresh_token": "old-refresh",
	})

	h.RefreshToken(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockAuth.AssertExpectations(t)
}

func TestAuthHandler_SocialLogin_NotEnabled(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth, nil, nil)

	c, w := newJSONRequest(t, http.MethodPost, "/api/v1/auth/social-login", map[string]string{
		"provider": "google",
		"id_token": "token",
	})

	h.SocialLogin(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

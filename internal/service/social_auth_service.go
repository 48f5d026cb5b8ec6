package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"reelshelf/internal/domain"
	"reelshelf/internal/port"
)

// SocialLoginInput is the DTO for social sign-in requests.
type SocialLoginInput struct {
	Provider string `json:"provider" binding:"required"`
	IDToken  string `json:"id_token" binding:"required"`
}

// SocialAuthService signs users in via external identity providers.
type SocialAuthService interface {
	Login(ctx context.Context, input SocialLoginInput) (*AuthResult, error)
}

type socialAuthService struct {
	userRepo    port.UserRepository
	authService AuthService
	emailSender port.EmailSender
	verifiers   map[string]port.SocialTokenVerifier
}

// NewSocialAuthService creates a new SocialAuthService implementation.
func NewSocialAuthService(
	userRepo port.UserRepository,
	authService AuthService,
	emailSender port.EmailSender,
	verifiers ...port.SocialTokenVerifier,
) SocialAuthService {
	byProvider := make(map[string]port.SocialTokenVerifier, len(verifiers))
	for _, v := range verifiers {
		byProvider[v.Provider()] = v
	}
	return &socialAuthService{
		userRepo:    userRepo,
		authService: authService,
		emailSender: emailSender,
		verifiers:   byProvider,
	}
}

func (s *socialAuthService) Login(ctx context.Context, input SocialLoginInput) (*AuthResult, error) {
	verifier, ok := s.verifiers[strings.ToLower(input.Provider)]
	if !ok {
		return nil, domain.ErrSocialAuthTokenInvalid
	}

	claims, err := verifier.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		log.Printf("socialAuthService.Login: token verification failed: %v", err)
		return nil, domain.ErrSocialAuthTokenInvalid
	}
	if !claims.EmailVerified {
		return nil, domain.ErrSocialAuthTokenInvalid
	}

	user, err := s.resolveUser(ctx, verifier.Provider(), claims)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}

	tokens, err := s.authService.GenerateTokenPairForUser(user)
	if err != nil {
		return nil, fmt.Errorf("issuing tokens: %w", err)
	}
	return &AuthResult{User: user, Tokens: tokens}, nil
}

// resolveUser finds the account for the verified claims: an existing account
// with the same email is linked to the provider, otherwise a passwordless
// account is created.
func (s *socialAuthService) resolveUser(ctx context.Context, provider string, claims *port.SocialAuthClaims) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(claims.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		if user.AuthProvider == domain.ProviderPassword {
			// Auto-link: the verified provider email matches a password account.
			log.Printf("socialAuthService: linking user %s to provider %s", user.ID, provider)
		}
		return user, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("looking up social user: %w", err)
	}

	displayName := strings.TrimSpace(claims.FullName)
	if displayName == "" {
		displayName = email
	}
	user = &domain.User{
		Email:        email,
		DisplayName:  displayName,
		AuthProvider: domain.AuthProvider(provider),
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating social user: %w", err)
	}
	log.Printf("socialAuthService: created user %s via %s", user.ID, provider)

	if err := s.emailSender.SendWelcomeEmail(ctx, user.Email, user.DisplayName); err != nil {
		log.Printf("socialAuthService: failed to send welcome email to %s: %v", user.Email, err)
	}
	return user, nil
}

package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"reelshelf/internal/domain"
	"reelshelf/internal/port"
)

const bcryptCost = 12

// RegisterInput is the DTO for account creation.
type RegisterInput struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name" binding:"required"`
}

// AuthResult is what every sign-in path returns: the account plus tokens.
type AuthResult struct {
	User   *domain.User `json:"user"`
	Tokens *TokenPair   `json:"tokens"`
}

// RegistrationService creates password-based accounts.
type RegistrationService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
}

type registrationService struct {
	userRepo    port.UserRepository
	authService AuthService
	emailSender port.EmailSender
}

// NewRegistrationService creates a new RegistrationService implementation.
func NewRegistrationService(userRepo port.UserRepository, authService AuthService, emailSender port.EmailSender) RegistrationService {
	return &registrationService{
		userRepo:    userRepo,
		authService: authService,
		emailSender: emailSender,
	}
}

func (s *registrationService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  strings.TrimSpace(input.DisplayName),
		AuthProvider: domain.ProviderPassword,
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err // ErrDuplicateEmail propagates
	}

	log.Printf("registrationService.Register: created user %s (%s)", user.ID, user.Email)

	// Welcome email is best effort.
	if err := s.emailSender.SendWelcomeEmail(ctx, user.Email, user.DisplayName); err != nil {
		log.Printf("registrationService.Register: failed to send welcome email to %s: %v", user.Email, err)
	}

	tokens, err := s.authService.GenerateTokenPairForUser(user)
	if err != nil {
		return nil, fmt.Errorf("issuing tokens: %w", err)
	}

	return &AuthResult{User: user, Tokens: tokens}, nil
}

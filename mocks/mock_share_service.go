package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"reelshelf/internal/domain"
	"reelshelf/internal/service"
)

// MockShareService is a mock implementation of service.ShareService.
type MockShareService struct {
	mock.Mock
}

func (m *MockShareService) Share(ctx context.Context, ownerID uuid.UUID, input *service.ShareInput) (*domain.ShareGrant, error) {
	args := m.Called(ctx, ownerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShareGrant), args.Error(1)
}

func (m *MockShareService) ListGrants(ctx context.Context, ownerID uuid.UUID) ([]domain.GrantView, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GrantView), args.Error(1)
}

func (m *MockShareService) Revoke(ctx context.Context, ownerID, sharedWithID uuid.UUID) error {
	args := m.Called(ctx, ownerID, sharedWithID)
	return args.Error(0)
}

func (m *MockShareService) ListSharedWithMe(ctx context.Context, userID uuid.UUID) (*domain.SharedCollections, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SharedCollections), args.Error(1)
}

func (m *MockShareService) UpdateShared(ctx context.Context, userID, movieID uuid.UUID, input *service.UpdateMovieInput) (*domain.MovieWithGenres, error) {
	args := m.Called(ctx, userID, movieID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MovieWithGenres), args.Error(1)
}

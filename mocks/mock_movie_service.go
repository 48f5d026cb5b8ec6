package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"reelshelf/internal/domain"
	"reelshelf/internal/service"
)

// MockMovieService is a mock implementation of service.MovieService.
type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) ListOwned(ctx context.Context, userID uuid.UUID) ([]domain.MovieWithGenres, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MovieWithGenres), args.Error(1)
}

func (m *MockMovieService) Create(ctx context.Context, userID uuid.UUID, input *service.CreateMovieInput) (*domain.MovieWithGenres, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MovieWithGenres), args.Error(1)
}

func (m *MockMovieService) Update(ctx context.Context, userID, movieID uuid.UUID, input *service.UpdateMovieInput) (*domain.MovieWithGenres, error) {
	args := m.Called(ctx, userID, movieID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MovieWithGenres), args.Error(1)
}

func (m *MockMovieService) Delete(ctx context.Context, userID, movieID uuid.UUID) error {
	args := m.Called(ctx, userID, movieID)
	return args.Error(0)
}

func (m *MockMovieService) BulkImport(ctx context.Context, userID uuid.UUID, inputs []service.CreateMovieInput) (*service.BulkImportResult, error) {
	args := m.Called(ctx, userID, inputs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BulkImportResult), args.Error(1)
}

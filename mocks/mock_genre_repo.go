package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"reelshelf/internal/domain"
)

// MockGenreRepo is a mock implementation of port.GenreRepository.
type MockGenreRepo struct {
	mock.Mock
}

func (m *MockGenreRepo) GetOrCreate(ctx context.Context, name string) (*domain.Genre, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Genre), args.Error(1)
}

func (m *MockGenreRepo) Attach(ctx context.Context, movieID, genreID uuid.UUID) error {
	args := m.Called(ctx, movieID, genreID)
	return args.Error(0)
}

func (m *MockGenreRepo) DetachAll(ctx context.Context, movieID uuid.UUID) error {
	args := m.Called(ctx, movieID)
	return args.Error(0)
}

func (m *MockGenreRepo) ListNamesByMovie(ctx context.Context, movieID uuid.UUID) ([]string, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

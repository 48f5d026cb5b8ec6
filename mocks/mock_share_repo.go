package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"reelshelf/internal/domain"
)

// MockShareRepo is a mock implementation of port.ShareRepository.
type MockShareRepo struct {
	mock.Mock
}

func (m *MockShareRepo) Create(ctx context.Context, grant *domain.ShareGrant) error {
	args := m.Called(ctx, grant)
	return args.Error(0)
}

func (m *MockShareRepo) Get(ctx context.Context, ownerID, sharedWithID uuid.UUID) (*domain.ShareGrant, error) {
	args := m.Called(ctx, ownerID, sharedWithID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShareGrant), args.Error(1)
}

func (m *MockShareRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.ShareGrant, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShareGrant), args.Error(1)
}

func (m *MockShareRepo) ListBySharedWith(ctx context.Context, sharedWithID uuid.UUID) ([]domain.ShareGrant, error) {
	args := m.Called(ctx, sharedWithID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShareGrant), args.Error(1)
}

func (m *MockShareRepo) Delete(ctx context.Context, ownerID, sharedWithID uuid.UUID) error {
	args := m.Called(ctx, ownerID, sharedWithID)
	return args.Error(0)
}

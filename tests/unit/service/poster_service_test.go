package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"reelshelf/internal/config"
	"reelshelf/internal/domain"
	"reelshelf/internal/port"
	"reelshelf/internal/service"
	"reelshelf/mocks"
)

func newPosterService() (service.PosterService, *mocks.MockObjectStorage, *mocks.MockMovieRepo, *mocks.MockGenreRepo) {
	storage := new(mocks.MockObjectStorage)
	movieRepo := new(mocks.MockMovieRepo)
	genreRepo := new(mocks.MockGenreRepo)
	cfg := config.S3Config{Bucket: "test-posters", MaxFileSizeMB: 5}
	svc := service.NewPosterService(storage, movieRepo, genreRepo, cfg)
	return svc, storage, movieRepo, genreRepo
}

func TestPosterService_Upload_Success(t *testing.T) {
	svc, storage, movieRepo, genreRepo := newPosterService()

	userID := uuid.New()
	movieID := uuid.New()
	location := "https://test-posters.s3.amazonaws.com/posters/x.jpg"

	movieRepo.On("GetByID", mock.Anything, movieID).Return(&domain.Movie{
		ID: movieID, UserID: userID, Title: "Dune",
	}, nil)
	storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		return in.Bucket == "test-posters" && in.ContentType == "image/jpeg"
	})).Return(&port.UploadOutput{Location: location}, nil)
	movieRepo.On("Update", mock.Anything, mock.MatchedBy(func(m *domain.Movie) bool {
		return m.PosterURL != nil && *m.PosterURL == location
	})).Return(nil)
	genreRepo.On("ListNamesByMovie", mock.Anything, movieID).Return([]string{"Sci-Fi"}, nil)

	result, err := svc.Upload(context.Background(), userID, movieID, &service.UploadPosterInput{
		FileName:    "dune.jpg",
		ContentType: "image/jpeg",
		Size:        1024,
		Body:        strings.NewReader("fake image bytes"),
	})

	require.NoError(t, err)
	require.NotNil(t, result.PosterURL)
	assert.Equal(t, location, *result.PosterURL)
	storage.AssertExpectations(t)
	movieRepo.AssertExpectations(t)
}

func TestPosterService_Upload_UnsupportedType(t *testing.T) {
	svc, storage, _, _ := newPosterService()

	_, err := svc.Upload(context.Background(), uuid.New(), uuid.New(), &service.UploadPosterInput{
		ContentType: "image/gif",
		Size:        1024,
	})

	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestPosterService_Upload_TooLarge(t *testing.T) {
	svc, storage, _, _ := newPosterService()

	_, err := svc.Upload(context.Background(), uuid.New(), uuid.New(), &service.UploadPosterInput{
		ContentType: "image/png",
		Size:        6 * 1024 * 1024,
	})

	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestPosterService_Upload_NotOwner(t *testing.T) {
	svc, storage, movieRepo, _ := newPosterService()

	movieID := uuid.New()
	movieRepo.On("GetByID", mock.Anything, movieID).Return(&domain.Movie{
		ID: movieID, UserID: uuid.New(),
	}, nil)

	_, err := svc.Upload(context.Background(), uuid.New(), movieID, &service.UploadPosterInput{
		ContentType: "image/png",
		Size:        1024,
	})

	assert.ErrorIs(t, err, domain.ErrAccessDenied)
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

package service

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"

	"reelshelf/internal/config"
	"reelshelf/internal/domain"
	"reelshelf/internal/port"
)

// UploadPosterInput carries an uploaded poster image stream.
type UploadPosterInput struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// PosterService stores poster images and attaches their URLs to movies.
type PosterService interface {
	Upload(ctx context.Context, userID, movieID uuid.UUID, input *UploadPosterInput) (*domain.MovieWithGenres, error)
}

type posterService struct {
	storage   port.ObjectStorage
	movieRepo port.MovieRepository
	genreRepo port.GenreRepository
	cfg       config.S3Config
}

// NewPosterService creates a new PosterService implementation.
func NewPosterService(storage port.ObjectStorage, movieRepo port.MovieRepository, genreRepo port.GenreRepository, cfg config.S3Config) PosterService {
	return &posterService{storage: storage, movieRepo: movieRepo, genreRepo: genreRepo, cfg: cfg}
}

func (s *posterService) Upload(ctx context.Context, userID, movieID uuid.UUID, input *UploadPosterInput) (*domain.MovieWithGenres, error) {
	posterType, ok := domain.AllowedPosterContentTypes[input.ContentType]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}
	if input.Size > s.cfg.MaxFileSizeMB*1024*1024 {
		return nil, domain.ErrFileTooLarge
	}

	movie, err := s.movieRepo.GetByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie.UserID != userID {
		return nil, domain.ErrAccessDenied
	}

	key := fmt.Sprintf("posters/%s/%s.%s", userID, movieID, posterType)
	out, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         key,
		Body:        input.Body,
		ContentType: input.ContentType,
		Size:        input.Size,
	})
	if err != nil {
		return nil, fmt.Errorf("uploading poster: %w", err)
	}
	log.Printf("posterService.Upload: stored poster for movie %s at %s", movieID, out.Location)

	movie.PosterURL = &out.Location
	if err := s.movieRepo.Update(ctx, movie); err != nil {
		return nil, fmt.Errorf("attaching poster url: %w", err)
	}

	genres, err := s.genreRepo.ListNamesByMovie(ctx, movie.ID)
	if err != nil {
		return nil, fmt.Errorf("loading genre names: %w", err)
	}
	return &domain.MovieWithGenres{Movie: *movie, Genres: genres}, nil
}

package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"reelshelf/internal/domain"
	"reelshelf/internal/port"
)

// CreateMovieInput is the DTO for adding a movie to a collection.
type CreateMovieInput struct {
	Title       string     `json:"title" binding:"required"`
	Year        *int       `json:"year" binding:"omitempty,gt=0"`
	Director    *string    `json:"director"`
	UserRating  *float64   `json:"user_rating" binding:"omitempty,gte=0,lte=10"`
	PosterURL   *string    `json:"poster_url"`
	Watched     bool       `json:"watched"`
	WatchedDate *time.Time `json:"watched_date"`
	Notes       *string    `json:"notes"`
	ImdbID      *string    `json:"imdb_id"`
	Genres      []string   `json:"genres"`
}

// UpdateMovieInput is the DTO for partially updating a movie. Nil fields are
// left untouched; a non-nil Genres slice replaces all associations (an empty
// slice clears them).
type UpdateMovieInput struct {
	Title       *string    `json:"title"`
	Year        *int       `json:"year" binding:"omitempty,gt=0"`
	Director    *string    `json:"director"`
	UserRating  *float64   `json:"user_rating" binding:"omitempty,gte=0,lte=10"`
	PosterURL   *string    `json:"poster_url"`
	Watched     *bool      `json:"watched"`
	WatchedDate *time.Time `json:"watched_date"`
	Notes       *string    `json:"notes"`
	ImdbID      *string    `json:"imdb_id"`
	Genres      []string   `json:"genres"`
}

// ImportFailure records one skipped item of a bulk import.
type ImportFailure struct {
	Index int    `json:"index"`
	Title string `json:"title"`
	Error string `json:"error"`
}

// BulkImportResult contains per-item results from a bulk import.
type BulkImportResult struct {
	Imported []domain.MovieWithGenres `json:"imported"`
	Failures []ImportFailure          `json:"failures"`
}

// MovieService mediates all reads and writes of a user's own collection.
type MovieService interface {
	ListOwned(ctx context.Context, userID uuid.UUID) ([]domain.MovieWithGenres, error)
	Create(ctx context.Context, userID uuid.UUID, input *CreateMovieInput) (*domain.MovieWithGenres, error)
	Update(ctx context.Context, userID, movieID uuid.UUID, input *UpdateMovieInput) (*domain.MovieWithGenres, error)
	Delete(ctx context.Context, userID, movieID uuid.UUID) error
	BulkImport(ctx context.Context, userID uuid.UUID, inputs []CreateMovieInput) (*BulkImportResult, error)
}

type movieService struct {
	movieRepo port.MovieRepository
	genreRepo port.GenreRepository
}

// NewMovieService creates a new MovieService implementation.
func NewMovieService(movieRepo port.MovieRepository, genreRepo port.GenreRepository) MovieService {
	return &movieService{movieRepo: movieRepo, genreRepo: genreRepo}
}

func (s *movieService) ListOwned(ctx context.Context, userID uuid.UUID) ([]domain.MovieWithGenres, error) {
	movies, err := s.movieRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing movies: %w", err)
	}
	return movies, nil
}

func (s *movieService) Create(ctx context.Context, userID uuid.UUID, input *CreateMovieInput) (*domain.MovieWithGenres, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.ErrTitleRequired
	}

	movie := &domain.Movie{
		UserID:      userID,
		Title:       title,
		Year:        input.Year,
		Director:    input.Director,
		UserRating:  input.UserRating,
		PosterURL:   input.PosterURL,
		Watched:     input.Watched,
		WatchedDate: input.WatchedDate,
		Notes:       input.Notes,
		ImdbID:      input.ImdbID,
	}

	// The movie insert is the atomic part: if it fails, nothing happened.
	if err := s.movieRepo.Create(ctx, movie); err != nil {
		return nil, fmt.Errorf("creating movie: %w", err)
	}

	// Genre steps are per-item best effort: a failed genre is logged and
	// skipped, the movie and the other genres persist.
	confirmed := applyGenreSet(ctx, s.genreRepo, movie.ID, input.Genres)

	return &domain.MovieWithGenres{Movie: *movie, Genres: confirmed}, nil
}

func (s *movieService) Update(ctx context.Context, userID, movieID uuid.UUID, input *UpdateMovieInput) (*domain.MovieWithGenres, error) {
	movie, err := s.movieRepo.GetByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	// Ownership is enforced here, not left to database access rules.
	if movie.UserID != userID {
		return nil, domain.ErrAccessDenied
	}
	return applyMovieUpdate(ctx, s.movieRepo, s.genreRepo, movie, input)
}

func (s *movieService) Delete(ctx context.Context, userID, movieID uuid.UUID) error {
	movie, err := s.movieRepo.GetByID(ctx, movieID)
	if err != nil {
		return err
	}
	if movie.UserID != userID {
		return domain.ErrAccessDenied
	}
	log.Printf("movieService.Delete: deleting movie %s for user %s", movieID, userID)
	return s.movieRepo.Delete(ctx, movieID)
}

func (s *movieService) BulkImport(ctx context.Context, userID uuid.UUID, inputs []CreateMovieInput) (*BulkImportResult, error) {
	result := &BulkImportResult{
		Imported: make([]domain.MovieWithGenres, 0, len(inputs)),
		Failures: []ImportFailure{},
	}

	for i := range inputs {
		created, err := s.Create(ctx, userID, &inputs[i])
		if err != nil {
			log.Printf("movieService.BulkImport: item %d (%q) failed: %v", i, inputs[i].Title, err)
			result.Failures = append(result.Failures, ImportFailure{
				Index: i,
				Title: inputs[i].Title,
				Error: err.Error(),
			})
			continue
		}
		result.Imported = append(result.Imported, *created)
	}

	return result, nil
}

// applyMovieUpdate is the single update path for movie rows; both owner
// updates and grant-authorized shared updates go through it.
func applyMovieUpdate(
	ctx context.Context,
	movieRepo port.MovieRepository,
	genreRepo port.GenreRepository,
	movie *domain.Movie,
	input *UpdateMovieInput,
) (*domain.MovieWithGenres, error) {
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, domain.ErrTitleRequired
		}
		movie.Title = title
	}
	if input.Year != nil {
		movie.Year = input.Year
	}
	if input.Director != nil {
		movie.Director = input.Director
	}
	if input.UserRating != nil {
		movie.UserRating = input.UserRating
	}
	if input.PosterURL != nil {
		movie.PosterURL = input.PosterURL
	}
	if input.Watched != nil {
		movie.Watched = *input.Watched
	}
	if input.WatchedDate != nil {
		movie.WatchedDate = input.WatchedDate
	}
	if input.Notes != nil {
		movie.Notes = input.Notes
	}
	if input.ImdbID != nil {
		movie.ImdbID = input.ImdbID
	}

	if err := movieRepo.Update(ctx, movie); err != nil {
		return nil, fmt.Errorf("updating movie: %w", err)
	}

	var genres []string
	if input.Genres != nil {
		if err := genreRepo.DetachAll(ctx, movie.ID); err != nil {
			return nil, fmt.Errorf("clearing genre associations: %w", err)
		}
		genres = applyGenreSet(ctx, genreRepo, movie.ID, input.Genres)
	} else {
		existing, err := genreRepo.ListNamesByMovie(ctx, movie.ID)
		if err != nil {
			return nil, fmt.Errorf("loading genre names: %w", err)
		}
		genres = existing
	}

	return &domain.MovieWithGenres{Movie: *movie, Genres: genres}, nil
}

// applyGenreSet upserts each genre by exact name and attaches it to the
// movie. Failed steps are logged and skipped; the returned slice holds only
// the genres whose association was confirmed.
func applyGenreSet(ctx context.Context, genreRepo port.GenreRepository, movieID uuid.UUID, names []string) []string {
	confirmed := make([]string, 0, len(names))
	for _, name := range normalizeGenreNames(names) {
		genre, err := genreRepo.GetOrCreate(ctx, name)
		if err != nil {
			log.Printf("movieService: skipping genre %q for movie %s: %v", name, movieID, err)
			continue
		}
		if err := genreRepo.Attach(ctx, movieID, genre.ID); err != nil {
			log.Printf("movieService: skipping genre %q for movie %s: %v", name, movieID, err)
			continue
		}
		confirmed = append(confirmed, genre.Name)
	}
	return confirmed
}

// normalizeGenreNames trims entries, drops empties, and collapses duplicates
// within one submission while preserving order. Matching stays case-sensitive.
func normalizeGenreNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

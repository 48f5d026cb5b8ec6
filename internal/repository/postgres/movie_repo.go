package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"reelshelf/internal/domain"
	"reelshelf/internal/port"
)

type movieRepo struct {
	db *sqlx.DB
}

// NewMovieRepo creates a new PostgreSQL-backed MovieRepository.
func NewMovieRepo(db *sqlx.DB) port.MovieRepository {
	return &movieRepo{db: db}
}

func (r *movieRepo) Create(ctx context.Context, movie *domain.Movie) error {
	movie.ID = uuid.New()
	now := time.Now().UTC()
	movie.CreatedAt = now
	movie.UpdatedAt = now

	query := `INSERT INTO movies (id, user_id, title, year, director, user_rating, poster_url,
		watched, watched_date, notes, imdb_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.ExecContext(ctx, query,
		movie.ID, movie.UserID, movie.Title, movie.Year, movie.Director,
		movie.UserRating, movie.PosterURL, movie.Watched, movie.WatchedDate,
		movie.Notes, movie.ImdbID, movie.CreatedAt, movie.UpdatedAt)
	if err != nil {
		return fmt.Errorf("movieRepo.Create: %w", err)
	}
	return nil
}

func (r *movieRepo) GetByID(ctx context.Context, movieID uuid.UUID) (*domain.Movie, error) {
	var movie domain.Movie
	err := r.db.GetContext(ctx, &movie, "SELECT * FROM movies WHERE id = $1", movieID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("movieRepo.GetByID: %w", err)
	}
	return &movie, nil
}

func (r *movieRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.MovieWithGenres, error) {
	return r.listByOwners(ctx, []uuid.UUID{ownerID})
}

func (r *movieRepo) ListByOwners(ctx context.Context, ownerIDs []uuid.UUID) ([]domain.MovieWithGenres, error) {
	if len(ownerIDs) == 0 {
		return []domain.MovieWithGenres{}, nil
	}
	return r.listByOwners(ctx, ownerIDs)
}

// listByOwners fetches the movie rows for the given owners ordered by watch
// date (unwatched entries sort last), then joins genre names in a single
// batch query over the result set.
func (r *movieRepo) listByOwners(ctx context.Context, ownerIDs []uuid.UUID) ([]domain.MovieWithGenres, error) {
	placeholders := make([]string, len(ownerIDs))
	args := make([]interface{}, len(ownerIDs))
	for i, id := range ownerIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := fmt.Sprintf(
		`SELECT * FROM movies WHERE user_id IN (%s)
		 ORDER BY watched_date DESC NULLS LAST, created_at DESC`,
		strings.Join(placeholders, ", "))

	var movies []domain.Movie
	if err := r.db.SelectContext(ctx, &movies, query, args...); err != nil {
		return nil, fmt.Errorf("movieRepo.listByOwners: %w", err)
	}
	if len(movies) == 0 {
		return []domain.MovieWithGenres{}, nil
	}

	genresByMovie, err := r.genreNamesByMovie(ctx, movies)
	if err != nil {
		return nil, err
	}

	result := make([]domain.MovieWithGenres, 0, len(movies))
	for _, m := range movies {
		genres := genresByMovie[m.ID]
		if genres == nil {
			genres = []string{}
		}
		result = append(result, domain.MovieWithGenres{Movie: m, Genres: genres})
	}
	return result, nil
}

func (r *movieRepo) genreNamesByMovie(ctx context.Context, movies []domain.Movie) (map[uuid.UUID][]string, error) {
	placeholders := make([]string, len(movies))
	args := make([]interface{}, len(movies))
	for i, m := range movies {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = m.ID
	}

	query := fmt.Sprintf(
		`SELECT mg.movie_id, g.name
		 FROM movie_genres mg
		 INNER JOIN genres g ON g.id = mg.genre_id
		 WHERE mg.movie_id IN (%s)
		 ORDER BY g.name`,
		strings.Join(placeholders, ", "))

	var rows []struct {
		MovieID uuid.UUID `db:"movie_id"`
		Name    string    `db:"name"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("movieRepo.genreNamesByMovie: %w", err)
	}

	byMovie := make(map[uuid.UUID][]string, len(movies))
	for _, row := range rows {
		byMovie[row.MovieID] = append(byMovie[row.MovieID], row.Name)
	}
	return byMovie, nil
}

func (r *movieRepo) Update(ctx context.Context, movie *domain.Movie) error {
	movie.UpdatedAt = time.Now().UTC()
	query := `UPDATE movies SET title = $1, year = $2, director = $3, user_rating = $4,
		poster_url = $5, watched = $6, watched_date = $7, notes = $8, imdb_id = $9, updated_at = $10
		WHERE id = $11`
	result, err := r.db.ExecContext(ctx, query,
		movie.Title, movie.Year, movie.Director, movie.UserRating, movie.PosterURL,
		movie.Watched, movie.WatchedDate, movie.Notes, movie.ImdbID, movie.UpdatedAt, movie.ID)
	if err != nil {
		return fmt.Errorf("movieRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *movieRepo) Delete(ctx context.Context, movieID uuid.UUID) error {
	// Genre associations cascade via the movie_genres FK.
	result, err := r.db.ExecContext(ctx, "DELETE FROM movies WHERE id = $1", movieID)
	if err != nil {
		return fmt.Errorf("movieRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

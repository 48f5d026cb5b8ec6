package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"reelshelf/internal/domain"
	"reelshelf/internal/port"
)

type genreRepo struct {
	db *sqlx.DB
}

// NewGenreRepo creates a new PostgreSQL-backed GenreRepository.
func NewGenreRepo(db *sqlx.DB) port.GenreRepository {
	return &genreRepo{db: db}
}

func (r *genreRepo) GetOrCreate(ctx context.Context, name string) (*domain.Genre, error) {
	var genre domain.Genre
	err := r.db.GetContext(ctx, &genre, "SELECT * FROM genres WHERE name = $1", name)
	if err == nil {
		return &genre, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("genreRepo.GetOrCreate lookup: %w", err)
	}

	// Concurrent submissions can race to insert the same name; the upsert
	// makes whichever insert lands first authoritative and returns its row.
	err = r.db.GetContext(ctx, &genre,
		`INSERT INTO genres (id, name) VALUES ($1, $2)
		 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id, name`,
		uuid.New(), name)
	if err != nil {
		return nil, fmt.Errorf("genreRepo.GetOrCreate insert: %w", err)
	}
	return &genre, nil
}

func (r *genreRepo) Attach(ctx context.Context, movieID, genreID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO movie_genres (movie_id, genre_id) VALUES ($1, $2)
		 ON CONFLICT (movie_id, genre_id) DO NOTHING`,
		movieID, genreID)
	if err != nil {
		return fmt.Errorf("genreRepo.Attach: %w", err)
	}
	return nil
}

func (r *genreRepo) ListNamesByMovie(ctx context.Context, movieID uuid.UUID) ([]string, error) {
	var names []string
	err := r.db.SelectContext(ctx, &names,
		`SELECT g.name FROM movie_genres mg
		 INNER JOIN genres g ON g.id = mg.genre_id
		 WHERE mg.movie_id = $1
		 ORDER BY g.name`,
		movieID)
	if err != nil {
		return nil, fmt.Errorf("genreRepo.ListNamesByMovie: %w", err)
	}
	return names, nil
}

func (r *genreRepo) DetachAll(ctx context.Context, movieID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM movie_genres WHERE movie_id = $1", movieID)
	if err != nil {
		return fmt.Errorf("genreRepo.DetachAll: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"reelshelf/internal/domain"
	"reelshelf/internal/port"
)

type watchlistRepo struct {
	db *sqlx.DB
}

// NewWatchlistRepo creates a new PostgreSQL-backed WatchlistRepository.
func NewWatchlistRepo(db *sqlx.DB) port.WatchlistRepository {
	return &watchlistRepo{db: db}
}

func (r *watchlistRepo) Create(ctx context.Context, item *domain.WatchlistItem) error {
	item.ID = uuid.New()
	item.AddedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO watchlist_items (id, user_id, title, year, director, poster_url, imdb_id, imdb_rating, added_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		item.ID, item.UserID, item.Title, item.Year, item.Director,
		item.PosterURL, item.ImdbID, item.ImdbRating, item.AddedAt)
	if err != nil {
		return fmt.Errorf("watchlistRepo.Create: %w", err)
	}
	return nil
}

func (r *watchlistRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.WatchlistItem, error) {
	var items []domain.WatchlistItem
	err := r.db.SelectContext(ctx, &items,
		"SELECT * FROM watchlist_items WHERE user_id = $1 ORDER BY added_at DESC",
		userID)
	if err != nil {
		return nil, fmt.Errorf("watchlistRepo.ListByUser: %w", err)
	}
	return items, nil
}

func (r *watchlistRepo) Delete(ctx context.Context, userID, itemID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM watchlist_items WHERE id = $1 AND user_id = $2", itemID, userID)
	if err != nil {
		return fmt.Errorf("watchlistRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"reelshelf/internal/domain"
	"reelshelf/internal/port"
)

// AddWatchlistInput is the DTO for adding a watchlist entry.
type AddWatchlistInput struct {
	Title      string   `json:"title" binding:"required"`
	Year       *int     `json:"year" binding:"omitempty,gt=0"`
	Director   *string  `json:"director"`
	PosterURL  *string  `json:"poster_url"`
	ImdbID     *string  `json:"imdb_id"`
	ImdbRating *float64 `json:"imdb_rating" binding:"omitempty,gte=0,lte=10"`
}

// WatchlistService manages the movies a user intends to watch.
type WatchlistService interface {
	Add(ctx context.Context, userID uuid.UUID, input *AddWatchlistInput) (*domain.WatchlistItem, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.WatchlistItem, error)
	Remove(ctx context.Context, userID, itemID uuid.UUID) error
	// MoveToCollection deletes the watchlist item and creates a collection
	// entry from it, marked watched.
	MoveToCollection(ctx context.Context, userID, itemID uuid.UUID, movieSvc MovieService) (*domain.MovieWithGenres, error)
}

type watchlistService struct {
	watchlistRepo port.WatchlistRepository
}

// NewWatchlistService creates a new WatchlistService implementation.
func NewWatchlistService(watchlistRepo port.WatchlistRepository) WatchlistService {
	return &watchlistService{watchlistRepo: watchlistRepo}
}

func (s *watchlistService) Add(ctx context.Context, userID uuid.UUID, input *AddWatchlistInput) (*domain.WatchlistItem, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.ErrTitleRequired
	}

	item := &domain.WatchlistItem{
		UserID:     userID,
		Title:      title,
		Year:       input.Year,
		Director:   input.Director,
		PosterURL:  input.PosterURL,
		ImdbID:     input.ImdbID,
		ImdbRating: input.ImdbRating,
	}
	if err := s.watchlistRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("adding watchlist item: %w", err)
	}
	return item, nil
}

func (s *watchlistService) List(ctx context.Context, userID uuid.UUID) ([]domain.WatchlistItem, error) {
	items, err := s.watchlistRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing watchlist: %w", err)
	}
	return items, nil
}

func (s *watchlistService) Remove(ctx context.Context, userID, itemID uuid.UUID) error {
	return s.watchlistRepo.Delete(ctx, userID, itemID)
}

func (s *watchlistService) MoveToCollection(ctx context.Context, userID, itemID uuid.UUID, movieSvc MovieService) (*domain.MovieWithGenres, error) {
	items, err := s.watchlistRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading watchlist: %w", err)
	}
	var item *domain.WatchlistItem
	for i := range items {
		if items[i].ID == itemID {
			item = &items[i]
			break
		}
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	movie, err := movieSvc.Create(ctx, userID, &CreateMovieInput{
		Title:     item.Title,
		Year:      item.Year,
		Director:  item.Director,
		PosterURL: item.PosterURL,
		ImdbID:    item.ImdbID,
		Watched:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("moving watchlist item to collection: %w", err)
	}

	if err := s.watchlistRepo.Delete(ctx, userID, itemID); err != nil {
		// The movie exists either way; a stale watchlist row is recoverable.
		log.Printf("watchlistService.MoveToCollection: failed to delete item %s: %v", itemID, err)
	}
	return movie, nil
}

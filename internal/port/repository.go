package port

import (
	"context"

	"github.com/google/uuid"

	"reelshelf/internal/domain"
)

// UserRepository defines the contract for user persistence.
// GetIDByEmail and GetEmailByID are the only cross-user identity resolution
// paths; the sharing layer depends on them by name.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetIDByEmail(ctx context.Context, email string) (uuid.UUID, error)
	GetEmailByID(ctx context.Context, userID uuid.UUID) (string, error)
	Update(ctx context.Context, user *domain.User) error
}

// MovieRepository defines the contract for movie persistence.
// List methods return movies already joined with their genre names.
type MovieRepository interface {
	Create(ctx context.Context, movie *domain.Movie) error
	GetByID(ctx context.Context, movieID uuid.UUID) (*domain.Movie, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.MovieWithGenres, error)
	ListByOwners(ctx context.Context, ownerIDs []uuid.UUID) ([]domain.MovieWithGenres, error)
	Update(ctx context.Context, movie *domain.Movie) error
	Delete(ctx context.Context, movieID uuid.UUID) error
}

// GenreRepository defines the contract for genre and association persistence.
type GenreRepository interface {
	// GetOrCreate returns the genre with the given name, inserting it first
	// if absent. Name matching is exact (case-sensitive).
	GetOrCreate(ctx context.Context, name string) (*domain.Genre, error)
	Attach(ctx context.Context, movieID, genreID uuid.UUID) error
	DetachAll(ctx context.Context, movieID uuid.UUID) error
	ListNamesByMovie(ctx context.Context, movieID uuid.UUID) ([]string, error)
}

// ShareRepository defines the contract for share grant persistence.
type ShareRepository interface {
	// Create inserts a grant. A uniqueness violation on the
	// (owner, shared-with) pair surfaces as domain.ErrDuplicateGrant.
	Create(ctx context.Context, grant *domain.ShareGrant) error
	Get(ctx context.Context, ownerID, sharedWithID uuid.UUID) (*domain.ShareGrant, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.ShareGrant, error)
	ListBySharedWith(ctx context.Context, sharedWithID uuid.UUID) ([]domain.ShareGrant, error)
	// Delete removes a grant. Deleting an absent grant is not an error.
	Delete(ctx context.Context, ownerID, sharedWithID uuid.UUID) error
}

// WatchlistRepository defines the contract for watchlist persistence.
type WatchlistRepository interface {
	Create(ctx context.Context, item *domain.WatchlistItem) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.WatchlistItem, error)
	Delete(ctx context.Context, userID, itemID uuid.UUID) error
}

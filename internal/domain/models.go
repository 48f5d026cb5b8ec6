package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account.
type User struct {
	ID           uuid.UUID    `db:"id" json:"id"`
	Email        string       `db:"email" json:"email"`
	PasswordHash string       `db:"password_hash" json:"-"`
	DisplayName  string       `db:"display_name" json:"display_name"`
	AuthProvider AuthProvider `db:"auth_provider" json:"auth_provider"`
	IsActive     bool         `db:"is_active" json:"is_active"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at" json:"updated_at"`
}

// Movie represents a single entry in a user's collection.
// Optional columns are pointers so absent values round-trip as NULL.
type Movie struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	UserID      uuid.UUID  `db:"user_id" json:"user_id"`
	Title       string     `db:"title" json:"title"`
	Year        *int       `db:"year" json:"year,omitempty"`
	Director    *string    `db:"director" json:"director,omitempty"`
	UserRating  *float64   `db:"user_rating" json:"user_rating,omitempty"`
	PosterURL   *string    `db:"poster_url" json:"poster_url,omitempty"`
	Watched     bool       `db:"watched" json:"watched"`
	WatchedDate *time.Time `db:"watched_date" json:"watched_date,omitempty"`
	Notes       *string    `db:"notes" json:"notes,omitempty"`
	ImdbID      *string    `db:"imdb_id" json:"imdb_id,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// Genre is a globally deduplicated genre name. Names are case-sensitive:
// "Drama" and "drama" are distinct rows.
type Genre struct {
	ID   uuid.UUID `db:"id" json:"id"`
	Name string    `db:"name" json:"name"`
}

// MovieGenre links a movie to a genre. At most one row per pair.
type MovieGenre struct {
	MovieID uuid.UUID `db:"movie_id" json:"movie_id"`
	GenreID uuid.UUID `db:"genre_id" json:"genre_id"`
}

// ShareGrant gives another user access to the owner's entire collection.
// At most one grant per (owner, shared-with) pair; permission changes
// require revoke followed by a fresh share.
type ShareGrant struct {
	ID           uuid.UUID       `db:"id" json:"id"`
	OwnerID      uuid.UUID       `db:"owner_id" json:"owner_id"`
	SharedWithID uuid.UUID       `db:"shared_with_id" json:"shared_with_id"`
	Permission   PermissionLevel `db:"permission" json:"permission"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
}

// WatchlistItem is a movie the user intends to watch.
type WatchlistItem struct {
	ID         uuid.UUID `db:"id" json:"id"`
	UserID     uuid.UUID `db:"user_id" json:"user_id"`
	Title      string    `db:"title" json:"title"`
	Year       *int      `db:"year" json:"year,omitempty"`
	Director   *string   `db:"director" json:"director,omitempty"`
	PosterURL  *string   `db:"poster_url" json:"poster_url,omitempty"`
	ImdbID     *string   `db:"imdb_id" json:"imdb_id,omitempty"`
	ImdbRating *float64  `db:"imdb_rating" json:"imdb_rating,omitempty"`
	AddedAt    time.Time `db:"added_at" json:"added_at"`
}

// MovieWithGenres is the denormalized view of a movie with its flattened
// genre names. OwnerEmail is populated only when the movie is read through
// a sharing grant.
type MovieWithGenres struct {
	Movie
	Genres     []string `json:"genres"`
	OwnerEmail string   `json:"owner_email,omitempty"`
}

// GrantView is a share grant with the counterpart's email resolved at read
// time. Which side is "counterpart" depends on the query: the grantee when
// listing as owner, the owner when listing grants received.
type GrantView struct {
	ShareGrant
	CounterpartEmail string `json:"counterpart_email"`
}

// SharedCollections bundles everything visible to a grantee: the grants
// naming who shared with them and the aggregated movies of those owners.
type SharedCollections struct {
	Grants []GrantView       `json:"grants"`
	Movies []MovieWithGenres `json:"movies"`
}

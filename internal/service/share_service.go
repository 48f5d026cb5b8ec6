package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"reelshelf/internal/domain"
	"reelshelf/internal/port"
)

// unknownCounterpart is the placeholder shown when a grant references a user
// whose email can no longer be resolved.
const unknownCounterpart = "Unknown"

// ShareInput is the DTO for sharing a collection.
type ShareInput struct {
	SharedWithEmail string                 `json:"shared_with_email" binding:"required,email"`
	Permission      domain.PermissionLevel `json:"permission" binding:"required"`
}

// ShareService mediates sharing grants and all access to non-owned
// collections.
type ShareService interface {
	Share(ctx context.Context, ownerID uuid.UUID, input *ShareInput) (*domain.ShareGrant, error)
	ListGrants(ctx context.Context, ownerID uuid.UUID) ([]domain.GrantView, error)
	Revoke(ctx context.Context, ownerID, sharedWithID uuid.UUID) error
	ListSharedWithMe(ctx context.Context, userID uuid.UUID) (*domain.SharedCollections, error)
	UpdateShared(ctx context.Context, userID, movieID uuid.UUID, input *UpdateMovieInput) (*domain.MovieWithGenres, error)
}

type shareService struct {
	shareRepo   port.ShareRepository
	userRepo    port.UserRepository
	movieRepo   port.MovieRepository
	genreRepo   port.GenreRepository
	emailSender port.EmailSender
}

// NewShareService creates a new ShareService implementation.
func NewShareService(
	shareRepo port.ShareRepository,
	userRepo port.UserRepository,
	movieRepo port.MovieRepository,
	genreRepo port.GenreRepository,
	emailSender port.EmailSender,
) ShareService {
	return &shareService{
		shareRepo:   shareRepo,
		userRepo:    userRepo,
		movieRepo:   movieRepo,
		genreRepo:   genreRepo,
		emailSender: emailSender,
	}
}

func (s *shareService) Share(ctx context.Context, ownerID uuid.UUID, input *ShareInput) (*domain.ShareGrant, error) {
	if !domain.ValidPermissionLevels[input.Permission] {
		return nil, domain.ErrInvalidPermission
	}

	targetID, err := s.userRepo.GetIDByEmail(ctx, input.SharedWithEmail)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("resolving target email: %w", err)
	}
	if targetID == ownerID {
		return nil, domain.ErrSelfShare
	}

	grant := &domain.ShareGrant{
		OwnerID:      ownerID,
		SharedWithID: targetID,
		Permission:   input.Permission,
	}
	if err := s.shareRepo.Create(ctx, grant); err != nil {
		return nil, err // ErrDuplicateGrant propagates naturally
	}

	log.Printf("shareService.Share: user %s shared collection with %s at %s level",
		ownerID, targetID, input.Permission)

	// Notification is best effort; a delivery failure never unwinds the grant.
	ownerEmail, err := s.userRepo.GetEmailByID(ctx, ownerID)
	if err != nil {
		ownerEmail = unknownCounterpart
	}
	if err := s.emailSender.SendShareNotification(ctx, input.SharedWithEmail, ownerEmail, input.Permission); err != nil {
		log.Printf("shareService.Share: failed to send notification to %s: %v", input.SharedWithEmail, err)
	}

	return grant, nil
}

func (s *shareService) ListGrants(ctx context.Context, ownerID uuid.UUID) ([]domain.GrantView, error) {
	grants, err := s.shareRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing grants: %w", err)
	}

	// Resolve counterpart emails concurrently: launch all, await all, slot
	// results by input index so ordering never depends on completion order.
	views := make([]domain.GrantView, len(grants))
	errs := make([]error, len(grants))
	var wg sync.WaitGroup
	for i, grant := range grants {
		wg.Add(1)
		go func(i int, grant domain.ShareGrant) {
			defer wg.Done()
			email, err := s.userRepo.GetEmailByID(ctx, grant.SharedWithID)
			if errors.Is(err, domain.ErrUserNotFound) {
				email, err = unknownCounterpart, nil
			}
			views[i] = domain.GrantView{ShareGrant: grant, CounterpartEmail: email}
			errs[i] = err
		}(i, grant)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("resolving grantee email: %w", err)
		}
	}
	return views, nil
}

func (s *shareService) Revoke(ctx context.Context, ownerID, sharedWithID uuid.UUID) error {
	log.Printf("shareService.Revoke: user %s revoking access for %s", ownerID, sharedWithID)
	return s.shareRepo.Delete(ctx, ownerID, sharedWithID)
}

func (s *shareService) ListSharedWithMe(ctx context.Context, userID uuid.UUID) (*domain.SharedCollections, error) {
	grants, err := s.shareRepo.ListBySharedWith(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing received grants: %w", err)
	}

	// No grants means no movie query at all.
	if len(grants) == 0 {
		return &domain.SharedCollections{
			Grants: []domain.GrantView{},
			Movies: []domain.MovieWithGenres{},
		}, nil
	}

	ownerIDs := make([]uuid.UUID, 0, len(grants))
	seen := make(map[uuid.UUID]bool, len(grants))
	for _, grant := range grants {
		if !seen[grant.OwnerID] {
			seen[grant.OwnerID] = true
			ownerIDs = append(ownerIDs, grant.OwnerID)
		}
	}

	emailByOwner, err := s.resolveOwnerEmails(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}

	views := make([]domain.GrantView, 0, len(grants))
	for _, grant := range grants {
		views = append(views, domain.GrantView{
			ShareGrant:       grant,
			CounterpartEmail: emailByOwner[grant.OwnerID],
		})
	}

	movies, err := s.movieRepo.ListByOwners(ctx, ownerIDs)
	if err != nil {
		return nil, fmt.Errorf("listing shared movies: %w", err)
	}
	for i := range movies {
		movies[i].OwnerEmail = emailByOwner[movies[i].UserID]
	}

	return &domain.SharedCollections{Grants: views, Movies: movies}, nil
}

// resolveOwnerEmails resolves each distinct owner once, concurrently.
// An unresolvable owner degrades to the placeholder rather than failing.
func (s *shareService) resolveOwnerEmails(ctx context.Context, ownerIDs []uuid.UUID) (map[uuid.UUID]string, error) {
	emails := make([]string, len(ownerIDs))
	errs := make([]error, len(ownerIDs))
	var wg sync.WaitGroup
	for i, ownerID := range ownerIDs {
		wg.Add(1)
		go func(i int, ownerID uuid.UUID) {
			defer wg.Done()
			email, err := s.userRepo.GetEmailByID(ctx, ownerID)
			if errors.Is(err, domain.ErrUserNotFound) {
				email, err = unknownCounterpart, nil
			}
			emails[i] = email
			errs[i] = err
		}(i, ownerID)
	}
	wg.Wait()

	byOwner := make(map[uuid.UUID]string, len(ownerIDs))
	for i, ownerID := range ownerIDs {
		if errs[i] != nil {
			return nil, fmt.Errorf("resolving owner email: %w", errs[i])
		}
		byOwner[ownerID] = emails[i]
	}
	return byOwner, nil
}

// UpdateShared is the authorization gate for writes to non-owned movies.
// The grant is re-read on every call; permission is never cached, so a
// revoke takes effect on the next write attempt.
func (s *shareService) UpdateShared(ctx context.Context, userID, movieID uuid.UUID, input *UpdateMovieInput) (*domain.MovieWithGenres, error) {
	movie, err := s.movieRepo.GetByID(ctx, movieID)
	if err != nil {
		return nil, err
	}

	grant, err := s.shareRepo.Get(ctx, movie.UserID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrAccessDenied
		}
		return nil, fmt.Errorf("checking grant: %w", err)
	}
	if grant.Permission != domain.PermissionEdit {
		return nil, domain.ErrInsufficientPermission
	}

	return applyMovieUpdate(ctx, s.movieRepo, s.genreRepo, movie, input)
}

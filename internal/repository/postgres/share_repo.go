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

type shareRepo struct {
	db *sqlx.DB
}

// NewShareRepo creates a new PostgreSQL-backed ShareRepository.
func NewShareRepo(db *sqlx.DB) port.ShareRepository {
	return &shareRepo{db: db}
}

func (r *shareRepo) Create(ctx context.Context, grant *domain.ShareGrant) error {
	if grant.ID == uuid.Nil {
		grant.ID = uuid.New()
	}
	grant.CreatedAt = time.Now().UTC()

	// No pre-check for an existing grant: the unique constraint on
	// (owner_id, shared_with_id) is the authoritative duplicate detector,
	// so a check-then-insert race cannot create two grants.
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO collection_shares (id, owner_id, shared_with_id, permission, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		grant.ID, grant.OwnerID, grant.SharedWithID, grant.Permission, grant.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateGrant
		}
		return fmt.Errorf("shareRepo.Create: %w", err)
	}
	return nil
}

func (r *shareRepo) Get(ctx context.Context, ownerID, sharedWithID uuid.UUID) (*domain.ShareGrant, error) {
	var grant domain.ShareGrant
	err := r.db.GetContext(ctx, &grant,
		"SELECT * FROM collection_shares WHERE owner_id = $1 AND shared_with_id = $2",
		ownerID, sharedWithID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("shareRepo.Get: %w", err)
	}
	return &grant, nil
}

func (r *shareRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.ShareGrant, error) {
	var grants []domain.ShareGrant
	err := r.db.SelectContext(ctx, &grants,
		"SELECT * FROM collection_shares WHERE owner_id = $1 ORDER BY created_at ASC",
		ownerID)
	if err != nil {
		return nil, fmt.Errorf("shareRepo.ListByOwner: %w", err)
	}
	return grants, nil
}

func (r *shareRepo) ListBySharedWith(ctx context.Context, sharedWithID uuid.UUID) ([]domain.ShareGrant, error) {
	var grants []domain.ShareGrant
	err := r.db.SelectContext(ctx, &grants,
		"SELECT * FROM collection_shares WHERE shared_with_id = $1 ORDER BY created_at ASC",
		sharedWithID)
	if err != nil {
		return nil, fmt.Errorf("shareRepo.ListBySharedWith: %w", err)
	}
	return grants, nil
}

func (r *shareRepo) Delete(ctx context.Context, ownerID, sharedWithID uuid.UUID) error {
	// Revoking an absent grant is a no-op, not an error.
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM collection_shares WHERE owner_id = $1 AND shared_with_id = $2",
		ownerID, sharedWithID)
	if err != nil {
		return fmt.Errorf("shareRepo.Delete: %w", err)
	}
	return nil
}

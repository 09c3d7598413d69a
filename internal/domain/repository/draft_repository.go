package repository

import (
	"context"

	"comanda/internal/domain/entity"
	"comanda/internal/errors"

	"github.com/google/uuid"
)

// ErrDraftNotFound is returned when a draft is not in the store.
var ErrDraftNotFound = errors.New("draft not found")

// DraftRepository holds the in-progress orders. Implementations persist the
// full state after every mutation; callers are responsible for stamping
// UpdatedAt before saving.
type DraftRepository interface {
	// SaveDraft inserts or replaces a draft by id.
	SaveDraft(ctx context.Context, draft *entity.OrderDraft) error

	// FindDraftByID retrieves a draft by its id.
	// Returns ErrDraftNotFound when no such draft exists.
	FindDraftByID(ctx context.Context, id uuid.UUID) (*entity.OrderDraft, error)

	// ListDrafts returns all drafts ordered by UpdatedAt descending
	// (most recently touched first).
	ListDrafts(ctx context.Context) ([]*entity.OrderDraft, error)

	// DeleteDraft removes a draft by id.
	// Returns ErrDraftNotFound when no such draft exists.
	DeleteDraft(ctx context.Context, id uuid.UUID) error
}

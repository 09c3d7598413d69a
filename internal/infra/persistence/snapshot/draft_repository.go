package snapshot

import (
	"context"
	"sort"

	"comanda/internal/domain/entity"
	"comanda/internal/domain/repository"

	"github.com/google/uuid"
)

// DraftRepository implements repository.DraftRepository over the store.
type DraftRepository struct {
	store *Store
}

// NewDraftRepository builds the draft repository.
func NewDraftRepository(store *Store) repository.DraftRepository {
	return &DraftRepository{store: store}
}

// SaveDraft implements repository.DraftRepository. The draft is deep-copied
// on the way in so later caller mutations never reach the stored state.
func (r *DraftRepository) SaveDraft(_ context.Context, draft *entity.OrderDraft) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	clone := draft.Clone()
	for i, d := range r.store.state.Drafts {
		if d.ID == draft.ID {
			r.store.state.Drafts[i] = clone

			return r.store.persist()
		}
	}
	r.store.state.Drafts = append(r.store.state.Drafts, clone)

	return r.store.persist()
}

// FindDraftByID implements repository.DraftRepository.
func (r *DraftRepository) FindDraftByID(_ context.Context, id uuid.UUID) (*entity.OrderDraft, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, d := range r.store.state.Drafts {
		if d.ID == id {
			return d.Clone(), nil
		}
	}

	return nil, repository.ErrDraftNotFound
}

// ListDrafts implements repository.DraftRepository.
func (r *DraftRepository) ListDrafts(_ context.Context) ([]*entity.OrderDraft, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*entity.OrderDraft, 0, len(r.store.state.Drafts))
	for _, d := range r.store.state.Drafts {
		out = append(out, d.Clone())
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})

	return out, nil
}

// DeleteDraft implements repository.DraftRepository.
func (r *DraftRepository) DeleteDraft(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, d := range r.store.state.Drafts {
		if d.ID == id {
			r.store.state.Drafts = append(r.store.state.Drafts[:i], r.store.state.Drafts[i+1:]...)

			return r.store.persist()
		}
	}

	return repository.ErrDraftNotFound
}

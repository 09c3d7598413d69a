package snapshot

import (
	"context"

	"comanda/internal/domain/entity"
	"comanda/internal/domain/repository"

	"github.com/google/uuid"
)

// OrderRepository implements repository.OrderRepository over the store.
// History order is maintained structurally: new orders go to the front.
type OrderRepository struct {
	store *Store
}

// NewOrderRepository builds the order history repository.
func NewOrderRepository(store *Store) repository.OrderRepository {
	return &OrderRepository{store: store}
}

// PrependOrder implements repository.OrderRepository. The order is
// deep-copied on the way in so the stored history stays isolated.
func (r *OrderRepository) PrependOrder(_ context.Context, order *entity.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.state.Orders = append([]*entity.Order{order.Clone()}, r.store.state.Orders...)

	return r.store.persist()
}

// FindOrderByID implements repository.OrderRepository.
func (r *OrderRepository) FindOrderByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, o := range r.store.state.Orders {
		if o.ID == id {
			return o.Clone(), nil
		}
	}

	return nil, repository.ErrOrderNotFound
}

// ListOrders implements repository.OrderRepository.
func (r *OrderRepository) ListOrders(_ context.Context) ([]*entity.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*entity.Order, 0, len(r.store.state.Orders))
	for _, o := range r.store.state.Orders {
		out = append(out, o.Clone())
	}

	return out, nil
}

// DeleteOrder implements repository.OrderRepository.
func (r *OrderRepository) DeleteOrder(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, o := range r.store.state.Orders {
		if o.ID == id {
			r.store.state.Orders = append(r.store.state.Orders[:i], r.store.state.Orders[i+1:]...)

			return r.store.persist()
		}
	}

	return repository.ErrOrderNotFound
}

package repository

import (
	"context"

	"comanda/internal/domain/entity"
	"comanda/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not in the history.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository holds the finalized order history, most recent first.
// Orders are immutable; the only mutations are prepend and delete.
type OrderRepository interface {
	// PrependOrder adds a freshly finalized order to the front of the history.
	PrependOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order by its id.
	// Returns ErrOrderNotFound when no such order exists.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListOrders returns the history, most recent first.
	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// DeleteOrder removes an order by id (used when a past order is reopened
	// for editing). Returns ErrOrderNotFound when no such order exists.
	DeleteOrder(ctx context.Context, id uuid.UUID) error
}

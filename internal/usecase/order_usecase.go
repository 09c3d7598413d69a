package usecase

import (
	"context"

	"comanda/internal/domain/entity"
	"comanda/internal/domain/service"

	"github.com/google/uuid"
)

// OrderUsecase finalizes drafts and manages the order history.
type OrderUsecase interface {
	// Finalize validates the draft's customer data, freezes the total
	// (delivery fee included), commits the order to history, retires the
	// draft and triggers printing. Printing failures never undo the order.
	Finalize(ctx context.Context, draftID uuid.UUID) (*entity.Order, error)

	// ListOrders returns the history, most recent first.
	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// GetOrder fetches an order by id.
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// Receipt formats an order into its printable document.
	Receipt(ctx context.Context, id uuid.UUID) (*service.ReceiptDocument, error)

	// Print reprints an order through the printing collaborator.
	Print(ctx context.Context, id uuid.UUID) error

	// Reopen deletes a past order and seeds a new draft with its customer
	// and items, so it can be edited and finalized again.
	Reopen(ctx context.Context, orderID uuid.UUID) (*entity.OrderDraft, error)
}

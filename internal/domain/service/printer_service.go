package service

import (
	"context"

	"comanda/internal/domain/entity"
)

// PrinterService hands finalized orders to the printing collaborator.
// Printing is fire-and-forget from the core's perspective: a failure on the
// primary path degrades to a fallback channel and never blocks finalization.
type PrinterService interface {
	// Connect reports whether the primary printing path is reachable.
	Connect(ctx context.Context) bool

	// PrintOrder formats and prints an order. An error is returned only when
	// both the primary path and the fallback fail.
	PrintOrder(ctx context.Context, order *entity.Order) error
}

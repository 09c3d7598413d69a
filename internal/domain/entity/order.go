package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of a finalized order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Order is a finalized, immutable order. Total is frozen at finalization time
// (delivery fee included) and is never recomputed from the items, so it
// survives later price list changes. Editing a past order is modeled as
// deleting it and seeding a fresh draft with its data.
type Order struct {
	ID        uuid.UUID       `json:"id"`
	Customer  CustomerInfo    `json:"customer"`
	Items     []CartItem      `json:"items"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"createdAt"`
	Status    OrderStatus     `json:"status"`
}

// Clone returns a deep copy; mutating the clone's items never reaches o.
func (o *Order) Clone() *Order {
	clone := *o
	clone.Items = CloneItems(o.Items)

	return &clone
}

// Subtotal sums the item line totals without the delivery fee.
func (o *Order) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for i := range o.Items {
		total = total.Add(o.Items[i].LineTotal())
	}

	return total
}

// ShortID returns the last four characters of the order id, the reference
// printed on tickets.
func (o *Order) ShortID() string {
	s := o.ID.String()

	return s[len(s)-4:]
}

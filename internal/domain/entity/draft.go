package entity

import (
	"time"

	domainerrors "comanda/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Step is the position of a draft inside the ordering flow.
type Step string

const (
	StepMenu    Step = "MENU"    // Browsing the catalog, mutating the cart.
	StepForm    Step = "FORM"    // Editing customer data.
	StepSummary Step = "SUMMARY" // Review; the only step finalization is allowed from.
)

// OrderDraft is one unfinished order. Several drafts may coexist; each is
// independently addressable and resumable. UpdatedAt is refreshed on every
// mutation and drives most-recently-touched-first listing.
type OrderDraft struct {
	ID        uuid.UUID    `json:"id"`
	Customer  CustomerInfo `json:"customer"`
	Cart      []CartItem   `json:"cart"`
	Step      Step         `json:"step"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// NewOrderDraft creates an empty draft positioned at the menu step.
func NewOrderDraft() *OrderDraft {
	return &OrderDraft{
		ID:        uuid.New(),
		Customer:  CustomerInfo{OrderType: OrderTypeCounter, PaymentMethod: PaymentPix},
		Cart:      []CartItem{},
		Step:      StepMenu,
		UpdatedAt: time.Now(),
	}
}

// Clone returns a deep copy; mutating the clone's cart never reaches d.
func (d *OrderDraft) Clone() *OrderDraft {
	clone := *d
	clone.Cart = CloneItems(d.Cart)

	return &clone
}

// Touch stamps the draft as just mutated.
func (d *OrderDraft) Touch() {
	d.UpdatedAt = time.Now()
}

// Subtotal sums the cart line totals, excluding any delivery fee.
func (d *OrderDraft) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for i := range d.Cart {
		total = total.Add(d.Cart[i].LineTotal())
	}

	return total
}

// AddItem appends a cart line.
func (d *OrderDraft) AddItem(item CartItem) {
	d.Cart = append(d.Cart, item)
}

// RemoveItem deletes the line with the given cart id.
// Returns false when no such line exists.
func (d *OrderDraft) RemoveItem(cartID uuid.UUID) bool {
	for i := range d.Cart {
		if d.Cart[i].CartID == cartID {
			d.Cart = append(d.Cart[:i], d.Cart[i+1:]...)

			return true
		}
	}

	return false
}

// Advance moves the draft one step forward: MENU -> FORM -> SUMMARY.
// The MENU -> FORM transition requires a non-empty cart, and FORM -> SUMMARY
// requires the customer data to validate for the chosen order type.
func (d *OrderDraft) Advance() error {
	switch d.Step {
	case StepMenu:
		if len(d.Cart) == 0 {
			return domainerrors.ErrEmptyCart
		}
		d.Step = StepForm
	case StepForm:
		if err := d.Customer.Validate(); err != nil {
			return err
		}
		d.Step = StepSummary
	default:
		return domainerrors.ErrInvalidStep.WithDetails("cannot advance past the summary step")
	}

	return nil
}

// Retreat moves the draft one step back: SUMMARY -> FORM -> MENU.
func (d *OrderDraft) Retreat() error {
	switch d.Step {
	case StepSummary:
		d.Step = StepForm
	case StepForm:
		d.Step = StepMenu
	default:
		return domainerrors.ErrInvalidStep.WithDetails("cannot retreat before the menu step")
	}

	return nil
}

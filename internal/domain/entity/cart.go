package entity

import (
	"slices"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Choices captures the customization picked for a single cart line.
// The semantics of Additions depend on the product's category: paid add-ons
// for lanches, required side dishes for franguinho, free and paid extras for
// açaí. The pools never overlap within one line.
type Choices struct {
	RemovedIngredients []string `json:"removedIngredients,omitempty"`
	Additions          []string `json:"additions,omitempty"`
	Packaging          string   `json:"packaging,omitempty"`
	Observation        string   `json:"observation,omitempty"`
}

// CartItem is a snapshot of a product at selection time, priced after
// customization. Immutable once created; re-customizing produces a new line.
// CartID identifies the line inside its cart and is unrelated to the product id.
type CartItem struct {
	ID                 string          `json:"id"` // Product id, or a synthetic id for manual items.
	CartID             uuid.UUID       `json:"cartId"`
	Name               string          `json:"name"`
	Price              decimal.Decimal `json:"price"` // Final unit price after customization.
	CategoryID         string          `json:"categoryId"`
	Quantity           int             `json:"quantity"`
	RemovedIngredients []string        `json:"removedIngredients,omitempty"`
	Additions          []string        `json:"additions,omitempty"`
	Packaging          string          `json:"packaging,omitempty"`
	Observation        string          `json:"observation,omitempty"`
}

// LineTotal returns the unit price multiplied by the quantity.
func (i *CartItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// HasCustomizations reports whether the line carries removal or addition
// sub-lines that a summary or receipt should render.
func (i *CartItem) HasCustomizations() bool {
	return len(i.RemovedIngredients) > 0 || len(i.Additions) > 0
}

// Clone returns a copy whose string slices share no backing storage with i.
func (i CartItem) Clone() CartItem {
	clone := i
	clone.RemovedIngredients = slices.Clone(i.RemovedIngredients)
	clone.Additions = slices.Clone(i.Additions)

	return clone
}

// CloneItems deep-copies a line slice.
func CloneItems(items []CartItem) []CartItem {
	if items == nil {
		return nil
	}

	out := make([]CartItem, len(items))
	for i := range items {
		out[i] = items[i].Clone()
	}

	return out
}

package entity

import "github.com/shopspring/decimal"

// Product is a catalog entry. Immutable; owned by the catalog.
// Ingredients is only meaningful for lanches (removable default composition),
// MaxSides only for franguinho (required side-dish count).
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"` // Base unit price before customization.
	CategoryID  string          `json:"categoryId"`
	Description string          `json:"description,omitempty"`
	Ingredients []string        `json:"ingredients,omitempty"`
	MaxSides    int             `json:"maxSides,omitempty"`
}

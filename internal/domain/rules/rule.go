// Package rules implements the per-category customization policies: which
// choices a product offers, how the chosen extras move the price, and when a
// line is complete enough to be confirmed. Adding a category means adding one
// Rule variant; nothing outside this package branches on category ids.
package rules

import (
	"comanda/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// PricedOption is a named extra with a surcharge.
type PricedOption struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ChoiceMenu describes everything a product offers for customization. Only
// the fields relevant to the product's category are populated.
type ChoiceMenu struct {
	RemovableIngredients []string            `json:"removableIngredients,omitempty"`
	PaidAddOns           []PricedOption      `json:"paidAddOns,omitempty"`
	Sides                []string            `json:"sides,omitempty"`
	MaxSides             int                 `json:"maxSides,omitempty"`
	Packaging            []string            `json:"packaging,omitempty"`
	FreeExtras           map[string][]string `json:"freeExtras,omitempty"`
	PaidExtras           []PricedOption      `json:"paidExtras,omitempty"`
	FlavorPrompt         bool                `json:"flavorPrompt,omitempty"`
}

// Rule is the customization policy for one category.
type Rule interface {
	// CategoryID returns the category this rule applies to.
	CategoryID() string

	// OfferedChoices lists the choices the product exposes.
	OfferedChoices(product *entity.Product) *ChoiceMenu

	// PriceDelta returns the surcharge the choices add to the base price.
	PriceDelta(choices *entity.Choices) decimal.Decimal

	// IsComplete reports whether the choices satisfy the category's
	// completeness constraint; confirmation is blocked while false.
	IsComplete(product *entity.Product, choices *entity.Choices) bool

	// Validate rejects choices that violate a hard constraint even if the UI
	// gate was bypassed (e.g. more sides than the product allows).
	Validate(product *entity.Product, choices *entity.Choices) error
}

// Registry dispatches to the rule variant for a product's category.
// Unknown categories, including manual items, get the no-rules variant.
type Registry struct {
	rules    map[string]Rule
	fallback Rule
}

// NewRegistry builds the registry with every category variant installed.
func NewRegistry() *Registry {
	reg := &Registry{
		rules:    make(map[string]Rule),
		fallback: &manualRule{},
	}
	for _, r := range []Rule{
		&lanchesRule{},
		&franguinhoRule{},
		&acaiRule{},
		&bebidasRule{},
	} {
		reg.rules[r.CategoryID()] = r
	}

	return reg
}

// For returns the rule for a category id.
func (r *Registry) For(categoryID string) Rule {
	if rule, ok := r.rules[categoryID]; ok {
		return rule
	}

	return r.fallback
}

// UnitPrice computes the final unit price of a product under the given
// choices: base price plus the category rule's delta. Manual items bypass
// this entirely; their price is the staff-entered literal.
func (r *Registry) UnitPrice(product *entity.Product, choices *entity.Choices) decimal.Decimal {
	return product.Price.Add(r.For(product.CategoryID).PriceDelta(choices))
}

// Toggle flips the presence of name in the selection: selecting an
// already-selected choice removes it. Order of the surviving entries is kept.
// This is the selection-editing contract for terminal clients, which build a
// choice list through repeated toggles and submit it whole; Validate then
// re-checks the resulting list server-side.
func Toggle(selection []string, name string) []string {
	for i, s := range selection {
		if s == name {
			return append(selection[:i:i], selection[i+1:]...)
		}
	}

	return append(selection, name)
}

// contains reports whether name is in the selection.
func contains(selection []string, name string) bool {
	for _, s := range selection {
		if s == name {
			return true
		}
	}

	return false
}

// sumSelected adds up the prices of the options whose names were selected.
// Names outside the option pool contribute nothing.
func sumSelected(pool []PricedOption, selected []string) decimal.Decimal {
	total := decimal.Zero
	for _, opt := range pool {
		if contains(selected, opt.Name) {
			total = total.Add(opt.Price)
		}
	}

	return total
}

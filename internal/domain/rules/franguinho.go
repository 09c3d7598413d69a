package rules

import (
	"fmt"

	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// franguinhoRule: a fixed-portion dish that must leave with exactly
// product.MaxSides side dishes. Sides never change the price; the constraint
// is purely about completeness.
type franguinhoRule struct{}

func (r *franguinhoRule) CategoryID() string {
	return entity.CategoryFranguinho
}

func (r *franguinhoRule) OfferedChoices(product *entity.Product) *ChoiceMenu {
	return &ChoiceMenu{
		Sides:    FranguinhoSides,
		MaxSides: product.MaxSides,
	}
}

func (r *franguinhoRule) PriceDelta(_ *entity.Choices) decimal.Decimal {
	return decimal.Zero
}

// IsComplete requires the side count to hit the product's limit exactly.
func (r *franguinhoRule) IsComplete(product *entity.Product, choices *entity.Choices) bool {
	return len(choices.Additions) == product.MaxSides
}

// Validate rejects over- and under-selection even when the UI gate was
// bypassed. The UI disables the control at the limit, but the rule holds the
// invariant on its own.
func (r *franguinhoRule) Validate(product *entity.Product, choices *entity.Choices) error {
	selected := len(choices.Additions)
	if selected > product.MaxSides {
		return domainerrors.ErrSidesOverLimit.WithDetails(
			fmt.Sprintf("%d sides selected, product allows %d", selected, product.MaxSides))
	}
	if selected < product.MaxSides {
		return domainerrors.ErrSidesIncomplete.WithDetails(
			fmt.Sprintf("select %d more side dish(es)", product.MaxSides-selected))
	}

	return nil
}

// ToggleSide flips a side selection while holding the size cap: selecting a
// new side at the limit is a no-op, deselecting always works. Like Toggle,
// this is the editing contract for clients assembling the side list; the
// rule's Validate holds the cap regardless of how the list was built.
func ToggleSide(selected []string, side string, maxSides int) []string {
	if contains(selected, side) {
		return Toggle(selected, side)
	}
	if len(selected) >= maxSides {
		return selected
	}

	return append(selected, side)
}

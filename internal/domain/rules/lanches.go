package rules

import (
	"comanda/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// lanchesRule: any listed ingredient can be removed for free, and any number
// of paid add-ons can be stacked on top. The unit price grows by the sum of
// the selected add-on prices.
type lanchesRule struct{}

func (r *lanchesRule) CategoryID() string {
	return entity.CategoryLanches
}

func (r *lanchesRule) OfferedChoices(product *entity.Product) *ChoiceMenu {
	return &ChoiceMenu{
		RemovableIngredients: product.Ingredients,
		PaidAddOns:           LancheAddOns,
	}
}

func (r *lanchesRule) PriceDelta(choices *entity.Choices) decimal.Decimal {
	return sumSelected(LancheAddOns, choices.Additions)
}

// IsComplete is always true: a plain sandwich is a valid line.
func (r *lanchesRule) IsComplete(_ *entity.Product, _ *entity.Choices) bool {
	return true
}

func (r *lanchesRule) Validate(_ *entity.Product, _ *entity.Choices) error {
	return nil
}

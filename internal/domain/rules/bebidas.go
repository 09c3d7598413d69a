package rules

import (
	"strings"

	"comanda/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// bebidasRule: drinks have no structured customization. Names containing a
// flavor keyword ("suco", "uai") prompt for a free-text flavor, stored as the
// line observation. No price effect.
type bebidasRule struct{}

func (r *bebidasRule) CategoryID() string {
	return entity.CategoryBebidas
}

func (r *bebidasRule) OfferedChoices(product *entity.Product) *ChoiceMenu {
	return &ChoiceMenu{FlavorPrompt: NeedsFlavor(product)}
}

func (r *bebidasRule) PriceDelta(_ *entity.Choices) decimal.Decimal {
	return decimal.Zero
}

func (r *bebidasRule) IsComplete(_ *entity.Product, _ *entity.Choices) bool {
	return true
}

func (r *bebidasRule) Validate(_ *entity.Product, _ *entity.Choices) error {
	return nil
}

// NeedsFlavor reports whether a drink's name asks for a flavor entry.
func NeedsFlavor(product *entity.Product) bool {
	name := strings.ToLower(product.Name)
	for _, kw := range FlavorKeywords {
		if strings.Contains(name, kw) {
			return true
		}
	}

	return false
}

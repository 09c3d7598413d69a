package rules

import (
	"comanda/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// manualRule is the no-rules variant for manual items and any category the
// registry does not know. No structured choices, no price effect, always
// complete; the staff-entered name and price are taken verbatim.
type manualRule struct{}

func (r *manualRule) CategoryID() string {
	return entity.CategoryManual
}

func (r *manualRule) OfferedChoices(_ *entity.Product) *ChoiceMenu {
	return &ChoiceMenu{}
}

func (r *manualRule) PriceDelta(_ *entity.Choices) decimal.Decimal {
	return decimal.Zero
}

func (r *manualRule) IsComplete(_ *entity.Product, _ *entity.Choices) bool {
	return true
}

func (r *manualRule) Validate(_ *entity.Product, _ *entity.Choices) error {
	return nil
}

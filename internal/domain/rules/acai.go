package rules

import (
	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"

	"github.com/shopspring/decimal"
)

// acaiRule: exactly one packaging choice, any number of free complements,
// toppings and fruits, and any number of paid extras. Free and paid picks end
// up in the same additions list; only the paid ones move the price.
type acaiRule struct{}

func (r *acaiRule) CategoryID() string {
	return entity.CategoryAcai
}

func (r *acaiRule) OfferedChoices(_ *entity.Product) *ChoiceMenu {
	return &ChoiceMenu{
		Packaging: AcaiPackaging,
		FreeExtras: map[string][]string{
			"complementos": AcaiComplements,
			"coberturas":   AcaiToppings,
			"frutas":       AcaiFruits,
		},
		PaidExtras: AcaiPaidExtras,
	}
}

// PriceDelta sums only the additions that are in the paid-extra catalog;
// free extras share the list but never contribute.
func (r *acaiRule) PriceDelta(choices *entity.Choices) decimal.Decimal {
	return sumSelected(AcaiPaidExtras, choices.Additions)
}

// IsComplete requires a packaging choice; everything else is optional.
func (r *acaiRule) IsComplete(_ *entity.Product, choices *entity.Choices) bool {
	return choices.Packaging != ""
}

func (r *acaiRule) Validate(_ *entity.Product, choices *entity.Choices) error {
	if choices.Packaging == "" {
		return nil // Defaulted by the caller to the first packaging option.
	}
	for _, p := range AcaiPackaging {
		if p == choices.Packaging {
			return nil
		}
	}

	return domainerrors.ErrValidationFailed.WithDetails("unknown packaging: " + choices.Packaging)
}

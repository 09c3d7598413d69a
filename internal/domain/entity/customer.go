package entity

import (
	"strings"

	domainerrors "comanda/internal/domain/errors"

	"github.com/shopspring/decimal"
)

// OrderType tells how the customer receives the order.
type OrderType string

const (
	OrderTypeCounter  OrderType = "COUNTER"
	OrderTypeTable    OrderType = "TABLE"
	OrderTypeDelivery OrderType = "DELIVERY"
)

// PaymentMethod is the payment channel announced on the receipt.
// Values match what the counter prints, hence the Portuguese labels.
type PaymentMethod string

const (
	PaymentPix  PaymentMethod = "PIX"
	PaymentCash PaymentMethod = "DINHEIRO"
	PaymentCard PaymentMethod = "CARTÃO"
)

// CustomerInfo holds the customer and delivery data attached to a draft.
// Mutable; edited through the form step until the order is finalized.
type CustomerInfo struct {
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	OrderType     OrderType       `json:"orderType"`
	TableNumber   string          `json:"tableNumber,omitempty"`
	Address       string          `json:"address,omitempty"`
	AddressNumber string          `json:"addressNumber,omitempty"`
	Reference     string          `json:"reference,omitempty"`
	DeliveryFee   decimal.Decimal `json:"deliveryFee"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Observation   string          `json:"observation,omitempty"`
	UsePaidStamp  bool            `json:"usePaidStamp,omitempty"`
}

// Validate checks the fields required for the chosen order type.
// Name and phone are always required; the table number only for TABLE;
// address and house number only for DELIVERY. A required field is never
// silently defaulted.
func (c *CustomerInfo) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("customer name is required")
	}
	if strings.TrimSpace(c.Phone) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("customer phone is required")
	}

	switch c.OrderType {
	case OrderTypeTable:
		if strings.TrimSpace(c.TableNumber) == "" {
			return domainerrors.ErrValidationFailed.WithDetails("table number is required for table orders")
		}
	case OrderTypeDelivery:
		if strings.TrimSpace(c.Address) == "" {
			return domainerrors.ErrValidationFailed.WithDetails("address is required for delivery orders")
		}
		if strings.TrimSpace(c.AddressNumber) == "" {
			return domainerrors.ErrValidationFailed.WithDetails("address number is required for delivery orders")
		}
	case OrderTypeCounter:
		// Nothing beyond name and phone.
	default:
		return domainerrors.ErrValidationFailed.WithDetails("unknown order type: " + string(c.OrderType))
	}

	return nil
}

// EffectiveDeliveryFee returns the delivery fee when the order type is
// DELIVERY and zero otherwise. The fee is applied to a total if and only if
// the order actually leaves the counter.
func (c *CustomerInfo) EffectiveDeliveryFee() decimal.Decimal {
	if c.OrderType == OrderTypeDelivery {
		return c.DeliveryFee
	}

	return decimal.Zero
}

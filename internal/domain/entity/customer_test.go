package entity

import (
	"testing"

	domainerrors "comanda/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCustomerInfo_ValidatePerOrderType(t *testing.T) {
	base := CustomerInfo{Name: "Maria", Phone: "11 99999-0000", PaymentMethod: PaymentPix}

	tests := []struct {
		name    string
		mutate  func(*CustomerInfo)
		wantErr bool
	}{
		{name: "counter needs only name and phone", mutate: func(c *CustomerInfo) {
			c.OrderType = OrderTypeCounter
		}},
		{name: "missing name", wantErr: true, mutate: func(c *CustomerInfo) {
			c.OrderType = OrderTypeCounter
			c.Name = "  "
		}},
		{name: "missing phone", wantErr: true, mutate: func(c *CustomerInfo) {
			c.OrderType = OrderTypeCounter
			c.Phone = ""
		}},
		{name: "table needs table number", wantErr: true, mutate: func(c *CustomerInfo) {
			c.OrderType = OrderTypeTable
		}},
		{name: "table with number", mutate: func(c *CustomerInfo) {
			c.OrderType = OrderTypeTable
			c.TableNumber = "7"
		}},
		{name: "delivery needs address", wantErr: true, mutate: func(c *CustomerInfo) {
			c.OrderType = OrderTypeDelivery
			c.AddressNumber = "123"
		}},
		{name: "delivery needs address number", wantErr: true, mutate: func(c *CustomerInfo) {
			c.OrderType = OrderTypeDelivery
			c.Address = "Rua das Flores"
		}},
		{name: "delivery complete", mutate: func(c *CustomerInfo) {
			c.OrderType = OrderTypeDelivery
			c.Address = "Rua das Flores"
			c.AddressNumber = "123"
		}},
		{name: "unknown order type", wantErr: true, mutate: func(c *CustomerInfo) {
			c.OrderType = OrderType("DRIVE_THRU")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)

			err := c.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCustomerInfo_EffectiveDeliveryFee(t *testing.T) {
	c := CustomerInfo{OrderType: OrderTypeCounter, DeliveryFee: decimal.NewFromFloat(5.00)}
	assert.True(t, c.EffectiveDeliveryFee().IsZero())

	c.OrderType = OrderTypeDelivery
	assert.True(t, c.EffectiveDeliveryFee().Equal(decimal.NewFromFloat(5.00)))
}

func TestOrder_ShortID(t *testing.T) {
	o := Order{ID: uuid.MustParse("3b241101-e2bb-4255-8caf-4136c566a962")}
	assert.Equal(t, "a962", o.ShortID())
}

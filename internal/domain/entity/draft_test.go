package entity

import (
	"testing"
	"time"

	domainerrors "comanda/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartLine(price float64, qty int) CartItem {
	return CartItem{
		ID: "lanche-x-burguer", CartID: uuid.New(), Name: "X-Burguer",
		Price: decimal.NewFromFloat(price), CategoryID: CategoryLanches, Quantity: qty,
	}
}

func TestNewOrderDraft_Defaults(t *testing.T) {
	draft := NewOrderDraft()

	assert.Equal(t, StepMenu, draft.Step)
	assert.Equal(t, OrderTypeCounter, draft.Customer.OrderType)
	assert.Equal(t, PaymentPix, draft.Customer.PaymentMethod)
	assert.Empty(t, draft.Cart)
	assert.NotEqual(t, uuid.Nil, draft.ID)
}

func TestOrderDraft_AdvanceRequiresCartThenCustomer(t *testing.T) {
	draft := NewOrderDraft()

	assert.ErrorIs(t, draft.Advance(), domainerrors.ErrEmptyCart)
	assert.Equal(t, StepMenu, draft.Step)

	draft.AddItem(cartLine(18.00, 1))
	require.NoError(t, draft.Advance())
	assert.Equal(t, StepForm, draft.Step)

	// Customer data still empty, cannot reach the summary.
	assert.ErrorIs(t, draft.Advance(), domainerrors.ErrValidationFailed)
	assert.Equal(t, StepForm, draft.Step)

	draft.Customer.Name = "Maria"
	draft.Customer.Phone = "11 99999-0000"
	require.NoError(t, draft.Advance())
	assert.Equal(t, StepSummary, draft.Step)

	assert.ErrorIs(t, draft.Advance(), domainerrors.ErrInvalidStep)
}

func TestOrderDraft_RetreatWalksBackToMenu(t *testing.T) {
	draft := NewOrderDraft()
	draft.Step = StepSummary

	require.NoError(t, draft.Retreat())
	assert.Equal(t, StepForm, draft.Step)
	require.NoError(t, draft.Retreat())
	assert.Equal(t, StepMenu, draft.Step)
	assert.ErrorIs(t, draft.Retreat(), domainerrors.ErrInvalidStep)
}

func TestOrderDraft_SubtotalSumsLineTotals(t *testing.T) {
	draft := NewOrderDraft()
	draft.AddItem(cartLine(18.00, 1))
	draft.AddItem(cartLine(6.00, 2))

	assert.True(t, draft.Subtotal().Equal(decimal.NewFromFloat(30.00)),
		"got %s", draft.Subtotal())
}

func TestOrderDraft_RemoveItem(t *testing.T) {
	draft := NewOrderDraft()
	line := cartLine(18.00, 1)
	draft.AddItem(line)

	assert.False(t, draft.RemoveItem(uuid.New()))
	assert.Len(t, draft.Cart, 1)

	assert.True(t, draft.RemoveItem(line.CartID))
	assert.Empty(t, draft.Cart)
}

func TestOrderDraft_TouchAdvancesUpdatedAt(t *testing.T) {
	draft := NewOrderDraft()
	before := draft.UpdatedAt

	time.Sleep(time.Millisecond)
	draft.Touch()
	assert.True(t, draft.UpdatedAt.After(before))
}

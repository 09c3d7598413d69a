package usecase

import (
	"context"

	"comanda/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddItemInput carries the product selection and customization for a new
// cart line. Quantity is fixed at 1; a repeat purchase adds a second line.
type AddItemInput struct {
	ProductID string         `json:"product_id"`
	Choices   entity.Choices `json:"choices"`
}

// AddManualItemInput is a free-form line entered by staff: arbitrary name
// and price, no category rules.
type AddManualItemInput struct {
	Name  string          `json:"name" validate:"required"`
	Price decimal.Decimal `json:"price"`
}

// UpdateCustomerInput patches the draft's customer data. Nil fields are left
// untouched.
type UpdateCustomerInput struct {
	Name          *string               `json:"name,omitempty"`
	Phone         *string               `json:"phone,omitempty"`
	OrderType     *entity.OrderType     `json:"order_type,omitempty"`
	TableNumber   *string               `json:"table_number,omitempty"`
	Address       *string               `json:"address,omitempty"`
	AddressNumber *string               `json:"address_number,omitempty"`
	Reference     *string               `json:"reference,omitempty"`
	DeliveryFee   *decimal.Decimal      `json:"delivery_fee,omitempty"`
	PaymentMethod *entity.PaymentMethod `json:"payment_method,omitempty"`
	Observation   *string               `json:"observation,omitempty"`
	UsePaidStamp  *bool                 `json:"use_paid_stamp,omitempty"`
}

// DraftUsecase drives the draft lifecycle: creation, cart mutation, customer
// editing, step navigation and deletion. Every mutation stamps UpdatedAt and
// persists the full state.
type DraftUsecase interface {
	// StartDraft creates a fresh empty draft at the menu step.
	StartDraft(ctx context.Context) (*entity.OrderDraft, error)

	// GetDraft fetches a draft by id.
	GetDraft(ctx context.Context, id uuid.UUID) (*entity.OrderDraft, error)

	// ListDrafts lists drafts, most recently touched first.
	ListDrafts(ctx context.Context) ([]*entity.OrderDraft, error)

	// DeleteDraft discards a draft.
	DeleteDraft(ctx context.Context, id uuid.UUID) error

	// AddItem prices and appends a customized cart line. The category rule
	// must report the choices complete and within constraints.
	AddItem(ctx context.Context, draftID uuid.UUID, input *AddItemInput) (*entity.OrderDraft, error)

	// AddManualItem appends a staff-entered line with a literal price.
	AddManualItem(ctx context.Context, draftID uuid.UUID, input *AddManualItemInput) (*entity.OrderDraft, error)

	// RemoveItem deletes a cart line by its cart id.
	RemoveItem(ctx context.Context, draftID, cartID uuid.UUID) (*entity.OrderDraft, error)

	// UpdateCustomer patches customer fields.
	UpdateCustomer(ctx context.Context, draftID uuid.UUID, input *UpdateCustomerInput) (*entity.OrderDraft, error)

	// AdvanceStep moves MENU -> FORM -> SUMMARY, validating the customer
	// data on the FORM -> SUMMARY transition.
	AdvanceStep(ctx context.Context, draftID uuid.UUID) (*entity.OrderDraft, error)

	// RetreatStep moves SUMMARY -> FORM -> MENU.
	RetreatStep(ctx context.Context, draftID uuid.UUID) (*entity.OrderDraft, error)
}

package handler

import (
	"log/slog"
	"net/http"

	"comanda/internal/delivery/http/response"
	"comanda/internal/domain/entity"
	"comanda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// DraftHandlerParams holds dependencies for DraftHandler, injected by Fx.
type DraftHandlerParams struct {
	fx.In

	DraftUC usecase.DraftUsecase
	Logger  *slog.Logger
}

// DraftHandler serves the draft lifecycle endpoints.
type DraftHandler struct {
	draftUC usecase.DraftUsecase
	logger  *slog.Logger
}

// NewDraftHandler is the constructor for DraftHandler
func NewDraftHandler(params DraftHandlerParams) *DraftHandler {
	return &DraftHandler{
		draftUC: params.DraftUC,
		logger:  params.Logger,
	}
}

// AddItemRequest represents the request body for adding a catalog item
type AddItemRequest struct {
	ProductID          string   `json:"product_id" validate:"required"`
	RemovedIngredients []string `json:"removed_ingredients,omitempty"`
	Additions          []string `json:"additions,omitempty"`
	Packaging          string   `json:"packaging,omitempty"`
	Observation        string   `json:"observation,omitempty"`
}

// AddManualItemRequest represents the request body for adding a manual item
type AddManualItemRequest struct {
	Name  string          `json:"name" validate:"required"`
	Price decimal.Decimal `json:"price"`
}

// UpdateCustomerRequest represents the request body for patching customer data
type UpdateCustomerRequest struct {
	Name          *string          `json:"name,omitempty"`
	Phone         *string          `json:"phone,omitempty"`
	OrderType     *string          `json:"order_type,omitempty" validate:"omitempty,oneof=COUNTER TABLE DELIVERY"`
	TableNumber   *string          `json:"table_number,omitempty"`
	Address       *string          `json:"address,omitempty"`
	AddressNumber *string          `json:"address_number,omitempty"`
	Reference     *string          `json:"reference,omitempty"`
	DeliveryFee   *decimal.Decimal `json:"delivery_fee,omitempty"`
	PaymentMethod *string          `json:"payment_method,omitempty" validate:"omitempty,oneof=PIX DINHEIRO CARTÃO"`
	Observation   *string          `json:"observation,omitempty"`
	UsePaidStamp  *bool            `json:"use_paid_stamp,omitempty"`
}

// StartDraft handles POST /drafts
func (h *DraftHandler) StartDraft(c echo.Context) error {
	draft, err := h.draftUC.StartDraft(c.Request().Context())
	if err != nil {
		return handleAppError(err)
	}

	return response.Success(c, http.StatusCreated, draft, "Draft created successfully")
}

// ListDrafts handles GET /drafts
func (h *DraftHandler) ListDrafts(c echo.Context) error {
	drafts, err := h.draftUC.ListDrafts(c.Request().Context())
	if err != nil {
		return handleAppError(err)
	}

	return response.Success(c, http.StatusOK, drafts, "Drafts retrieved successfully")
}

// GetDraft handles GET /drafts/:id
func (h *DraftHandler) GetDraft(c echo.Context) error {
	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid draft ID")
	}

	draft, err := h.draftUC.GetDraft(c.Request().Context(), draftID)
	if err != nil {
		return handleAppError(err)
	}

	return response.Success(c, http.StatusOK, draft, "Draft retrieved successfully")
}

// DeleteDraft handles DELETE /drafts/:id
func (h *DraftHandler) DeleteDraft(c echo.Context) error {
	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid draft ID")
	}

	if err := h.draftUC.DeleteDraft(c.Request().Context(), draftID); err != nil {
		return handleAppError(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Draft deleted successfully"}, "Draft deleted successfully")
}

// AddItem handles POST /drafts/:id/items
func (h *DraftHandler) AddItem(c echo.Context) error {
	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid draft ID")
	}

	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.AddItemInput{
		ProductID: req.ProductID,
		Choices: entity.Choices{
			RemovedIngredients: req.RemovedIngredients,
			Additions:          req.Additions,
			Packaging:          req.Packaging,
			Observation:        req.Observation,
		},
	}

	draft, err := h.draftUC.AddItem(c.Request().Context(), draftID, input)
	if err != nil {
		return handleAppError(err)
	}

	return response.Success(c, http.StatusOK, draft, "Item added successfully")
}

// AddManualItem handles POST /drafts/:id/items/manual
func (h *DraftHandler) AddManualItem(c echo.Context) error {
	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid draft ID")
	}

	var req AddManualItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	draft, err := h.draftUC.AddManualItem(c.Request().Context(), draftID, &usecase.AddManualItemInput{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		return handleAppError(err)
	}

	return response.Success(c, http.StatusOK, draft, "Item added successfully")
}

// RemoveItem handles DELETE /drafts/:id/items/:cartId
func (h *DraftHandler) RemoveItem(c echo.Context) error {
	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid draft ID")
	}
	cartID, err := uuid.Parse(c.Param("cartId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cart line ID")
	}

	draft, err := h.draftUC.RemoveItem(c.Request().Context(), draftID, cartID)
	if err != nil {
		return handleAppError(err)
	}

	return response.Success(c, http.StatusOK, draft, "Item removed successfully")
}

// UpdateCustomer handles PATCH /drafts/:id/customer
func (h *DraftHandler) UpdateCustomer(c echo.Context) error {
	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid draft ID")
	}

	var req UpdateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateCustomerInput{
		Name:          req.Name,
		Phone:         req.Phone,
		TableNumber:   req.TableNumber,
		Address:       req.Address,
		AddressNumber: req.AddressNumber,
		Reference:     req.Reference,
		DeliveryFee:   req.DeliveryFee,
		Observation:   req.Observation,
		UsePaidStamp:  req.UsePaidStamp,
	}
	if req.OrderType != nil {
		orderType := entity.OrderType(*req.OrderType)
		input.OrderType = &orderType
	}
	if req.PaymentMethod != nil {
		payment := entity.PaymentMethod(*req.PaymentMethod)
		input.PaymentMethod = &payment
	}

	draft, err := h.draftUC.UpdateCustomer(c.Request().Context(), draftID, input)
	if err != nil {
		return handleAppError(err)
	}

	return response.Success(c, http.StatusOK, draft, "Customer updated successfully")
}

// AdvanceStep handles POST /drafts/:id/advance
func (h *DraftHandler) AdvanceStep(c echo.Context) error {
	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid draft ID")
	}

	draft, err := h.draftUC.AdvanceStep(c.Request().Context(), draftID)
	if err != nil {
		return handleAppError(err)
	}

	return response.Success(c, http.StatusOK, draft, "Draft advanced successfully")
}

// RetreatStep handles POST /drafts/:id/retreat
func (h *DraftHandler) RetreatStep(c echo.Context) error {
	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid draft ID")
	}

	draft, err := h.draftUC.RetreatStep(c.Request().Context(), draftID)
	if err != nil {
		return handleAppError(err)
	}

	return response.Success(c, http.StatusOK, draft, "Draft moved back successfully")
}

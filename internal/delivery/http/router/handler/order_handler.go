package handler

import (
	"log/slog"
	"net/http"

	"comanda/internal/delivery/http/response"
	"comanda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	DraftUC usecase.DraftUsecase
	Logger  *slog.Logger
}

// OrderHandler serves the finalization and history endpoints.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	draftUC usecase.DraftUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		draftUC: params.DraftUC,
		logger:  params.Logger,
	}
}

// Finalize handles POST /drafts/:id/finalize
func (h *OrderHandler) Finalize(c echo.Context) error {
	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid draft ID")
	}

	order, err := h.orderUC.Finalize(c.Request().Context(), draftID)
	if err != nil {
		return handleAppError(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order finalized successfully")
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderUC.ListOrders(c.Request().Context())
	if err != nil {
		return handleAppError(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		return handleAppError(err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// GetReceipt handles GET /orders/:id/receipt
func (h *OrderHandler) GetReceipt(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	doc, err := h.orderUC.Receipt(c.Request().Context(), orderID)
	if err != nil {
		return handleAppError(err)
	}

	return response.Success(c, http.StatusOK, doc, "Receipt retrieved successfully")
}

// Print handles POST /orders/:id/print
func (h *OrderHandler) Print(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	if err := h.orderUC.Print(c.Request().Context(), orderID); err != nil {
		return handleAppError(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Receipt printed"}, "Receipt printed successfully")
}

// Reopen handles POST /orders/:id/reopen
func (h *OrderHandler) Reopen(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	draft, err := h.orderUC.Reopen(c.Request().Context(), orderID)
	if err != nil {
		return handleAppError(err)
	}

	return response.Success(c, http.StatusCreated, draft, "Order reopened as draft")
}

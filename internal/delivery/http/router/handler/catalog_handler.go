package handler

import (
	"log/slog"
	"net/http"

	"comanda/internal/delivery/http/response"
	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the read-only menu endpoints.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListCategories handles GET /catalog/categories
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return handleAppError(err)
	}

	return response.Success(c, http.StatusOK, categories, "Categories retrieved successfully")
}

// ListProducts handles GET /catalog/products?category=&q=
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products, err := h.catalogUC.ListProducts(c.Request().Context(),
		c.QueryParam("category"), c.QueryParam("q"))
	if err != nil {
		return handleAppError(err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// GetProduct handles GET /catalog/products/:id
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	detail, err := h.catalogUC.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleAppError(err)
	}

	return response.Success(c, http.StatusOK, detail, "Product retrieved successfully")
}

// handleAppError passes application errors through to the error middleware
// and annotates everything else with a stack.
func handleAppError(err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	return errors.WithStack(err)
}

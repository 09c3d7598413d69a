package router

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"comanda/config"
	deliverymw "comanda/internal/delivery/http/middleware"
	"comanda/internal/delivery/http/response"
	"comanda/internal/delivery/http/router/handler"
	"comanda/internal/delivery/http/validator"
	"comanda/internal/domain/entity"
	"comanda/internal/domain/rules"
	"comanda/internal/infra/catalog"
	"comanda/internal/infra/persistence/snapshot"
	"comanda/internal/infra/printer"
	"comanda/internal/infra/receipt"
	"comanda/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	cfg := &config.Config{}
	cfg.Business = config.BusinessConfig{Name: "Cantinho da Sandra"}
	cfg.Printer = &config.PrinterConfig{SpoolDir: t.TempDir()}

	store := snapshot.New("", logger)
	draftRepo := snapshot.NewDraftRepository(store)
	orderRepo := snapshot.NewOrderRepository(store)
	catalogRepo := catalog.New(cfg)
	registry := rules.NewRegistry()
	formatter := receipt.New(receipt.Params{Config: cfg, Logger: logger})
	printerSvc := printer.New(printer.Params{Config: cfg, Logger: logger, Formatter: formatter})

	catalogUC := impl.NewCatalogService(impl.CatalogParams{Catalog: catalogRepo, Registry: registry})
	draftUC := impl.NewDraftService(impl.DraftParams{Drafts: draftRepo, Catalog: catalogRepo, Registry: registry})
	orderUC := impl.NewOrderService(impl.OrderParams{
		Orders: orderRepo, Drafts: draftRepo, Formatter: formatter, Printer: printerSvc, Logger: logger,
	})

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = deliverymw.NewErrorMiddleware(logger).HandleHTTPError

	r := NewRouter(RouterParams{
		CatalogHandler: handler.NewCatalogHandler(handler.CatalogHandlerParams{CatalogUC: catalogUC, Logger: logger}),
		DraftHandler:   handler.NewDraftHandler(handler.DraftHandlerParams{DraftUC: draftUC, Logger: logger}),
		OrderHandler:   handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: orderUC, DraftUC: draftUC, Logger: logger}),
	})
	r.RegisterRoutes(e)

	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return rec, envelope
}

func TestRouter_HealthCheck(t *testing.T) {
	e := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestRouter_CatalogEndpoints(t *testing.T) {
	e := newTestServer(t)

	rec, envelope := doJSON(t, e, http.MethodGet, "/catalog/categories", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, envelope.Success)

	rec, envelope = doJSON(t, e, http.MethodGet, "/catalog/products?category=bebidas&q=suco", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, envelope.Success)

	rec, envelope = doJSON(t, e, http.MethodGet, "/catalog/products/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "PRODUCT_NOT_FOUND", envelope.Error.Code)
}

func TestRouter_DraftFlowToOrder(t *testing.T) {
	e := newTestServer(t)

	// Start a draft.
	rec, envelope := doJSON(t, e, http.MethodPost, "/drafts", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	draft := decodeDraft(t, envelope)

	// Cart mutation.
	rec, envelope = doJSON(t, e, http.MethodPost, "/drafts/"+draft.ID.String()+"/items",
		`{"product_id":"lanche-x-burguer","additions":["Bacon"]}`)
	require.Equal(t, http.StatusOK, rec.Code, "body: %v", envelope)

	// Customer data and step walk.
	rec, _ = doJSON(t, e, http.MethodPatch, "/drafts/"+draft.ID.String()+"/customer",
		`{"name":"Maria","phone":"11 99999-0000","payment_method":"DINHEIRO"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, e, http.MethodPost, "/drafts/"+draft.ID.String()+"/advance", "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = doJSON(t, e, http.MethodPost, "/drafts/"+draft.ID.String()+"/advance", "")
	require.Equal(t, http.StatusOK, rec.Code)

	// Finalize and check the history.
	rec, envelope = doJSON(t, e, http.MethodPost, "/drafts/"+draft.ID.String()+"/finalize", "")
	require.Equal(t, http.StatusCreated, rec.Code, "body: %v", envelope)

	rec, envelope = doJSON(t, e, http.MethodGet, "/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)
	orders, ok := envelope.Data.([]any)
	require.True(t, ok)
	assert.Len(t, orders, 1)

	// The draft is gone.
	rec, envelope = doJSON(t, e, http.MethodGet, "/drafts/"+draft.ID.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "DRAFT_NOT_FOUND", envelope.Error.Code)
}

func TestRouter_AdvanceEmptyCartIsRejected(t *testing.T) {
	e := newTestServer(t)

	rec, envelope := doJSON(t, e, http.MethodPost, "/drafts", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	draft := decodeDraft(t, envelope)

	rec, envelope = doJSON(t, e, http.MethodPost, "/drafts/"+draft.ID.String()+"/advance", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "EMPTY_CART", envelope.Error.Code)
}

func TestRouter_InvalidIDGetsBadRequest(t *testing.T) {
	e := newTestServer(t)

	rec, envelope := doJSON(t, e, http.MethodGet, "/drafts/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "INVALID_ID", envelope.Error.Code)
}

func TestRouter_AddItemValidatesBody(t *testing.T) {
	e := newTestServer(t)

	rec, envelope := doJSON(t, e, http.MethodPost, "/drafts", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	draft := decodeDraft(t, envelope)

	// product_id is required.
	rec, envelope = doJSON(t, e, http.MethodPost, "/drafts/"+draft.ID.String()+"/items", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
}

func decodeDraft(t *testing.T, envelope response.Response) *entity.OrderDraft {
	t.Helper()

	raw, err := json.Marshal(envelope.Data)
	require.NoError(t, err)

	var draft entity.OrderDraft
	require.NoError(t, json.Unmarshal(raw, &draft))

	return &draft
}

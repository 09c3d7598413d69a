// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"comanda/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler *handler.CatalogHandler
	DraftHandler   *handler.DraftHandler
	OrderHandler   *handler.OrderHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler *handler.CatalogHandler
	draftHandler   *handler.DraftHandler
	orderHandler   *handler.OrderHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler: params.CatalogHandler,
		draftHandler:   params.DraftHandler,
		orderHandler:   params.OrderHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Read-only menu
	catalogGroup := e.Group("/catalog")
	{
		catalogGroup.GET("/categories", r.catalogHandler.ListCategories)
		catalogGroup.GET("/products", r.catalogHandler.ListProducts)
		catalogGroup.GET("/products/:id", r.catalogHandler.GetProduct)
	}

	// Draft lifecycle
	draftGroup := e.Group("/drafts")
	{
		draftGroup.POST("", r.draftHandler.StartDraft)
		draftGroup.GET("", r.draftHandler.ListDrafts)
		draftGroup.GET("/:id", r.draftHandler.GetDraft)
		draftGroup.DELETE("/:id", r.draftHandler.DeleteDraft)
		draftGroup.POST("/:id/items", r.draftHandler.AddItem)
		draftGroup.POST("/:id/items/manual", r.draftHandler.AddManualItem)
		draftGroup.DELETE("/:id/items/:cartId", r.draftHandler.RemoveItem)
		draftGroup.PATCH("/:id/customer", r.draftHandler.UpdateCustomer)
		draftGroup.POST("/:id/advance", r.draftHandler.AdvanceStep)
		draftGroup.POST("/:id/retreat", r.draftHandler.RetreatStep)
		draftGroup.POST("/:id/finalize", r.orderHandler.Finalize)
	}

	// Order history
	orderGroup := e.Group("/orders")
	{
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.GET("/:id/receipt", r.orderHandler.GetReceipt)
		orderGroup.POST("/:id/print", r.orderHandler.Print)
		orderGroup.POST("/:id/reopen", r.orderHandler.Reopen)
	}
}

// Package usecase declares the application use case interfaces and their
// input/output types.
package usecase

import (
	"context"

	"comanda/internal/domain/entity"
	"comanda/internal/domain/rules"
)

// ProductDetail pairs a product with the customization choices its category
// offers, ready for the selection dialog.
type ProductDetail struct {
	Product *entity.Product   `json:"product"`
	Choices *rules.ChoiceMenu `json:"choices"`
}

// CatalogUsecase exposes the read-only menu.
type CatalogUsecase interface {
	// ListCategories returns the categories in menu order.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// ListProducts returns products, optionally filtered by category and/or
	// a case-insensitive name search.
	ListProducts(ctx context.Context, categoryID, query string) ([]*entity.Product, error)

	// GetProduct returns a product together with its offered choices.
	GetProduct(ctx context.Context, id string) (*ProductDetail, error)
}

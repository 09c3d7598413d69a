// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"comanda/internal/domain/entity"
	"comanda/internal/errors"
)

// ErrProductNotFound is returned when a product id is not in the catalog.
var ErrProductNotFound = errors.New("product not found")

// CatalogRepository is the read-only registry of categories and products.
// There are no mutation operations; the only error path is "not found".
type CatalogRepository interface {
	// ListCategories returns every category in menu order.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// ListProducts returns products filtered by category id and/or a
	// case-insensitive name query. Empty filters match everything.
	ListProducts(ctx context.Context, categoryID, query string) ([]*entity.Product, error)

	// FindProduct retrieves a product by id.
	// Returns ErrProductNotFound when the id is unknown.
	FindProduct(ctx context.Context, id string) (*entity.Product, error)
}

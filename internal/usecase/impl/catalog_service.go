// Package impl provides the concrete use case implementations. Repository
// sentinel errors are translated into application errors here, so handlers
// only ever see AppError values.
package impl

import (
	"context"

	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/domain/entity"
	"comanda/internal/domain/repository"
	"comanda/internal/domain/rules"
	"comanda/internal/errors"
	"comanda/internal/usecase"

	"go.uber.org/fx"
)

// CatalogParams defines the parameters required for the catalog use case.
type CatalogParams struct {
	fx.In

	Catalog  repository.CatalogRepository
	Registry *rules.Registry
}

type catalogService struct {
	catalog  repository.CatalogRepository
	registry *rules.Registry
}

// NewCatalogService creates the catalog use case.
func NewCatalogService(params CatalogParams) usecase.CatalogUsecase {
	return &catalogService{
		catalog:  params.Catalog,
		registry: params.Registry,
	}
}

func (s *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	return s.catalog.ListCategories(ctx)
}

func (s *catalogService) ListProducts(ctx context.Context, categoryID, query string) ([]*entity.Product, error) {
	return s.catalog.ListProducts(ctx, categoryID, query)
}

func (s *catalogService) GetProduct(ctx context.Context, id string) (*usecase.ProductDetail, error) {
	product, err := s.catalog.FindProduct(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WithDetails(id)
		}

		return nil, err
	}

	return &usecase.ProductDetail{
		Product: product,
		Choices: s.registry.For(product.CategoryID).OfferedChoices(product),
	}, nil
}

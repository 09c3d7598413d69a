package catalog

import (
	"context"
	"testing"

	"comanda/config"
	"comanda/internal/domain/entity"
	"comanda/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultMenu(t *testing.T) {
	repo := New(&config.Config{})
	ctx := context.Background()

	categories, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 5)
	assert.Equal(t, entity.CategoryLanches, categories[0].ID)

	products, err := repo.ListProducts(ctx, "", "")
	require.NoError(t, err)
	assert.NotEmpty(t, products)
}

func TestListProducts_Filters(t *testing.T) {
	repo := New(&config.Config{})
	ctx := context.Background()

	franguinhos, err := repo.ListProducts(ctx, entity.CategoryFranguinho, "")
	require.NoError(t, err)
	require.Len(t, franguinhos, 2)
	assert.Equal(t, 2, franguinhos[0].MaxSides)
	assert.Equal(t, 3, franguinhos[1].MaxSides)

	// Query is case-insensitive and combines with the category filter.
	matches, err := repo.ListProducts(ctx, entity.CategoryBebidas, "COCA")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Coca-Cola Lata", matches[0].Name)

	none, err := repo.ListProducts(ctx, entity.CategoryBebidas, "picanha")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFindProduct(t *testing.T) {
	repo := New(&config.Config{})
	ctx := context.Background()

	product, err := repo.FindProduct(ctx, "lanche-x-burguer")
	require.NoError(t, err)
	assert.True(t, product.Price.Equal(decimal.NewFromFloat(18.00)))
	assert.Contains(t, product.Ingredients, "Milho")

	_, err = repo.FindProduct(ctx, "nope")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestNew_ConfigOverridesMenu(t *testing.T) {
	cfg := &config.Config{}
	cfg.Catalog = &config.CatalogConfig{
		Categories: []config.CategoryConfig{{ID: "doces", Name: "Doces", Icon: "🍬"}},
		Products: []config.ProductConfig{
			{ID: "doce-pudim", Name: "Pudim", Price: 8.50, CategoryID: "doces"},
		},
	}

	repo := New(cfg)
	ctx := context.Background()

	categories, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "doces", categories[0].ID)

	product, err := repo.FindProduct(ctx, "doce-pudim")
	require.NoError(t, err)
	assert.True(t, product.Price.Equal(decimal.NewFromFloat(8.50)))

	_, err = repo.FindProduct(ctx, "lanche-x-burguer")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

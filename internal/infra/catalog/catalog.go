// Package catalog provides the static in-process product catalog.
// The menu changes rarely enough that it ships compiled in; swapping it for a
// database-backed implementation only means satisfying the same interface.
package catalog

import (
	"context"
	"strings"

	"comanda/config"
	"comanda/internal/domain/entity"
	"comanda/internal/domain/repository"

	"github.com/shopspring/decimal"
)

// Repository implements repository.CatalogRepository over fixed slices.
type Repository struct {
	categories []*entity.Category
	products   []*entity.Product
}

// New builds the catalog. The built-in menu is used unless the config carries
// a catalog section, which then replaces it wholesale.
func New(cfg *config.Config) repository.CatalogRepository {
	if cfg != nil && cfg.Catalog != nil {
		return &Repository{
			categories: categoriesFromConfig(cfg.Catalog.Categories),
			products:   productsFromConfig(cfg.Catalog.Products),
		}
	}

	return &Repository{
		categories: defaultCategories(),
		products:   defaultProducts(),
	}
}

func categoriesFromConfig(entries []config.CategoryConfig) []*entity.Category {
	out := make([]*entity.Category, 0, len(entries))
	for _, e := range entries {
		out = append(out, &entity.Category{ID: e.ID, Name: e.Name, Icon: e.Icon})
	}

	return out
}

func productsFromConfig(entries []config.ProductConfig) []*entity.Product {
	out := make([]*entity.Product, 0, len(entries))
	for _, e := range entries {
		out = append(out, &entity.Product{
			ID:          e.ID,
			Name:        e.Name,
			Price:       decimal.NewFromFloat(e.Price),
			CategoryID:  e.CategoryID,
			Description: e.Description,
			Ingredients: e.Ingredients,
			MaxSides:    e.MaxSides,
		})
	}

	return out
}

// ListCategories implements repository.CatalogRepository.
func (r *Repository) ListCategories(_ context.Context) ([]*entity.Category, error) {
	out := make([]*entity.Category, len(r.categories))
	copy(out, r.categories)

	return out, nil
}

// ListProducts implements repository.CatalogRepository. Both filters are
// optional; the query matches product names case-insensitively.
func (r *Repository) ListProducts(_ context.Context, categoryID, query string) ([]*entity.Product, error) {
	needle := strings.ToLower(strings.TrimSpace(query))

	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		if categoryID != "" && p.CategoryID != categoryID {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		out = append(out, p)
	}

	return out, nil
}

// FindProduct implements repository.CatalogRepository.
func (r *Repository) FindProduct(_ context.Context, id string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}

	return nil, repository.ErrProductNotFound
}

func defaultCategories() []*entity.Category {
	return []*entity.Category{
		{ID: entity.CategoryLanches, Name: "Lanches", Icon: "🍔"},
		{ID: entity.CategoryBebidas, Name: "Bebidas", Icon: "🥤"},
		{ID: entity.CategoryFranguinho, Name: "Franguinho", Icon: "🍗"},
		{ID: entity.CategoryAcai, Name: "Açaí", Icon: "🍧"},
		{ID: entity.CategoryPorcoes, Name: "Porções", Icon: "🍟"},
	}
}

func defaultProducts() []*entity.Product {
	price := decimal.NewFromFloat

	burgerBase := []string{"Pão", "Hambúrguer", "Queijo", "Presunto", "Alface", "Tomate", "Milho", "Batata Palha"}

	return []*entity.Product{
		{
			ID: "lanche-x-burguer", Name: "X-Burguer", Price: price(18.00),
			CategoryID: entity.CategoryLanches, Ingredients: burgerBase,
		},
		{
			ID: "lanche-x-salada", Name: "X-Salada", Price: price(22.00),
			CategoryID: entity.CategoryLanches, Ingredients: burgerBase,
		},
		{
			ID: "lanche-x-bacon", Name: "X-Bacon", Price: price(25.00),
			CategoryID: entity.CategoryLanches,
			Ingredients: append(append([]string{}, burgerBase...), "Bacon"),
		},
		{
			ID: "lanche-x-tudo", Name: "X-Tudo", Price: price(28.00),
			CategoryID: entity.CategoryLanches,
			Ingredients: append(append([]string{}, burgerBase...), "Bacon", "Ovo", "Calabresa"),
		},

		{ID: "bebida-coca-lata", Name: "Coca-Cola Lata", Price: price(6.00), CategoryID: entity.CategoryBebidas},
		{ID: "bebida-guarana-lata", Name: "Guaraná Lata", Price: price(6.00), CategoryID: entity.CategoryBebidas},
		{ID: "bebida-suco-laranja", Name: "Suco de Laranja", Price: price(10.00), CategoryID: entity.CategoryBebidas},
		{ID: "bebida-uai-natural", Name: "Uai Natural", Price: price(8.00), CategoryID: entity.CategoryBebidas},

		{
			ID: "franguinho-p", Name: "Franguinho P", Price: price(25.00),
			CategoryID:  entity.CategoryFranguinho,
			Description: "Frango frito com 2 acompanhamentos", MaxSides: 2,
		},
		{
			ID: "franguinho-g", Name: "Franguinho G", Price: price(35.00),
			CategoryID:  entity.CategoryFranguinho,
			Description: "Frango frito com 3 acompanhamentos", MaxSides: 3,
		},

		{ID: "acai-300", Name: "Açaí 300ml", Price: price(12.00), CategoryID: entity.CategoryAcai},
		{ID: "acai-500", Name: "Açaí 500ml", Price: price(16.00), CategoryID: entity.CategoryAcai},

		{ID: "porcao-batata-p", Name: "Batata Frita P", Price: price(15.00), CategoryID: entity.CategoryPorcoes},
		{ID: "porcao-batata-g", Name: "Batata Frita G", Price: price(25.00), CategoryID: entity.CategoryPorcoes},
	}
}

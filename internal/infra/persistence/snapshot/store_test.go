package snapshot

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"comanda/internal/domain/entity"
	"comanda/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	ctx := context.Background()

	store := New(path, testLogger())
	drafts := NewDraftRepository(store)
	orders := NewOrderRepository(store)

	draft := entity.NewOrderDraft()
	draft.Customer.Name = "Maria"
	draft.AddItem(entity.CartItem{
		ID: "lanche-x-burguer", CartID: uuid.New(), Name: "X-Burguer",
		Price: decimal.NewFromFloat(18.00), CategoryID: entity.CategoryLanches, Quantity: 1,
	})
	require.NoError(t, drafts.SaveDraft(ctx, draft))

	order := &entity.Order{
		ID:        uuid.New(),
		Customer:  entity.CustomerInfo{Name: "João", Phone: "11 99999-0000", OrderType: entity.OrderTypeCounter, PaymentMethod: entity.PaymentPix},
		Items:     draft.Cart,
		Total:     decimal.NewFromFloat(18.00),
		CreatedAt: time.Now(),
		Status:    entity.OrderStatusPending,
	}
	require.NoError(t, orders.PrependOrder(ctx, order))

	// A second store over the same file must see everything.
	reopened := New(path, testLogger())

	gotDraft, err := NewDraftRepository(reopened).FindDraftByID(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria", gotDraft.Customer.Name)
	require.Len(t, gotDraft.Cart, 1)
	assert.True(t, gotDraft.Cart[0].Price.Equal(decimal.NewFromFloat(18.00)))

	gotOrder, err := NewOrderRepository(reopened).FindOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, gotOrder.Total.Equal(decimal.NewFromFloat(18.00)))
	assert.Equal(t, entity.OrderStatusPending, gotOrder.Status)
}

func TestStore_CorruptSnapshotStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := New(path, testLogger())

	got, err := NewDraftRepository(store).ListDrafts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_MissingSnapshotStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never-written.json")

	store := New(path, testLogger())

	got, err := NewOrderRepository(store).ListOrders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDraftRepository_ListOrdersByRecency(t *testing.T) {
	ctx := context.Background()
	drafts := NewDraftRepository(New("", testLogger()))

	older := entity.NewOrderDraft()
	older.UpdatedAt = time.Now().Add(-time.Hour)
	newer := entity.NewOrderDraft()

	require.NoError(t, drafts.SaveDraft(ctx, older))
	require.NoError(t, drafts.SaveDraft(ctx, newer))

	got, err := drafts.ListDrafts(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, newer.ID, got[0].ID)
	assert.Equal(t, older.ID, got[1].ID)
}

func TestDraftRepository_SaveReplacesByID(t *testing.T) {
	ctx := context.Background()
	drafts := NewDraftRepository(New("", testLogger()))

	draft := entity.NewOrderDraft()
	require.NoError(t, drafts.SaveDraft(ctx, draft))

	draft.Customer.Name = "Ana"
	draft.Touch()
	require.NoError(t, drafts.SaveDraft(ctx, draft))

	got, err := drafts.ListDrafts(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Ana", got[0].Customer.Name)
}

func TestDraftRepository_FetchedDraftIsIsolated(t *testing.T) {
	ctx := context.Background()
	drafts := NewDraftRepository(New("", testLogger()))

	draft := entity.NewOrderDraft()
	burguer := entity.CartItem{
		ID: "lanche-x-burguer", CartID: uuid.New(), Name: "X-Burguer",
		Price: decimal.NewFromFloat(18.00), CategoryID: entity.CategoryLanches, Quantity: 1,
	}
	salada := entity.CartItem{
		ID: "lanche-x-salada", CartID: uuid.New(), Name: "X-Salada",
		Price: decimal.NewFromFloat(22.00), CategoryID: entity.CategoryLanches, Quantity: 1,
	}
	draft.AddItem(burguer)
	draft.AddItem(salada)
	require.NoError(t, drafts.SaveDraft(ctx, draft))

	// Removing a line from a fetched copy must not leak into the stored
	// draft until the copy is saved back.
	fetched, err := drafts.FindDraftByID(ctx, draft.ID)
	require.NoError(t, err)
	require.True(t, fetched.RemoveItem(burguer.CartID))

	stored, err := drafts.FindDraftByID(ctx, draft.ID)
	require.NoError(t, err)
	require.Len(t, stored.Cart, 2)
	assert.Equal(t, "X-Burguer", stored.Cart[0].Name)
	assert.Equal(t, "X-Salada", stored.Cart[1].Name)

	// Mutating the caller's draft after a save must not leak either.
	draft.Cart[0].Name = "changed"
	stored, err = drafts.FindDraftByID(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "X-Burguer", stored.Cart[0].Name)
}

func TestOrderRepository_FetchedOrderIsIsolated(t *testing.T) {
	ctx := context.Background()
	orders := NewOrderRepository(New("", testLogger()))

	order := &entity.Order{
		ID: uuid.New(),
		Items: []entity.CartItem{{
			ID: "lanche-x-burguer", CartID: uuid.New(), Name: "X-Burguer",
			Price: decimal.NewFromFloat(20.00), Quantity: 1, Additions: []string{"Bacon"},
		}},
		Total:     decimal.NewFromFloat(20.00),
		CreatedAt: time.Now(),
		Status:    entity.OrderStatusPending,
	}
	require.NoError(t, orders.PrependOrder(ctx, order))

	fetched, err := orders.FindOrderByID(ctx, order.ID)
	require.NoError(t, err)
	fetched.Items[0].Additions[0] = "Ovo"
	fetched.Items = fetched.Items[:0]

	stored, err := orders.FindOrderByID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, []string{"Bacon"}, stored.Items[0].Additions)
}

func TestOrderRepository_PrependKeepsMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	orders := NewOrderRepository(New("", testLogger()))

	first := &entity.Order{ID: uuid.New(), Total: decimal.NewFromInt(10), CreatedAt: time.Now(), Status: entity.OrderStatusPending}
	second := &entity.Order{ID: uuid.New(), Total: decimal.NewFromInt(20), CreatedAt: time.Now(), Status: entity.OrderStatusPending}

	require.NoError(t, orders.PrependOrder(ctx, first))
	require.NoError(t, orders.PrependOrder(ctx, second))

	got, err := orders.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, second.ID, got[0].ID)
}

func TestRepositories_NotFound(t *testing.T) {
	ctx := context.Background()
	store := New("", testLogger())

	_, err := NewDraftRepository(store).FindDraftByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrDraftNotFound)

	err = NewDraftRepository(store).DeleteDraft(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrDraftNotFound)

	_, err = NewOrderRepository(store).FindOrderByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)

	err = NewOrderRepository(store).DeleteOrder(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/inventory-service/pkg/logger"
	"github.com/ghuser/inventory-service/services/inventory/domain"
	"github.com/ghuser/inventory-service/services/inventory/domain/models"
	"github.com/ghuser/inventory-service/services/inventory/domain/repositories"
	"github.com/ghuser/inventory-service/services/inventory/infrastructure/persistence/memory"
)

// failingRepo fails every call with err and counts how often it was reached.
type failingRepo struct {
	repositories.ItemRepository
	err   error
	calls int
}

func (f *failingRepo) Create(context.Context, models.NewItemInput) (*models.Item, error) {
	f.calls++
	return nil, f.err
}

func (f *failingRepo) Update(context.Context, int64, models.ItemPatch) (*models.Item, error) {
	f.calls++
	return nil, f.err
}

func (f *failingRepo) ListByCategory(context.Context, string) ([]*models.Item, error) {
	f.calls++
	return nil, f.err
}

func newService(repo repositories.ItemRepository) *ItemService {
	return NewItemService(repo, logger.NewWithWriter(io.Discard, "error"))
}

func input(name, category string, qty int, price string) models.NewItemInput {
	return models.NewItemInput{Name: name, Category: category, Quantity: qty, UnitPrice: decimal.RequireFromString(price)}
}

func TestCreate_TrimsAndRoundTrips(t *testing.T) {
	ctx := context.Background()
	svc := newService(memory.NewItemRepository())

	created, err := svc.Create(ctx, input("  Widget ", " Tools ", 10, "2.50"))
	require.NoError(t, err)
	assert.Equal(t, "Widget", created.Name)
	assert.Equal(t, "Tools", created.Category)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCreate_ValidationFailsBeforeStorage(t *testing.T) {
	repo := &failingRepo{err: errors.New("must not be reached")}
	svc := newService(repo)

	_, err := svc.Create(context.Background(), input("", "Tools", -1, "0"))

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Violations, 3)
	assert.Zero(t, repo.calls)
}

func TestUpdate_EmptyPatch(t *testing.T) {
	repo := &failingRepo{err: errors.New("must not be reached")}
	_, err := newService(repo).Update(context.Background(), 1, models.ItemPatch{})

	assert.ErrorIs(t, err, domain.ErrEmptyUpdate)
	assert.Zero(t, repo.calls)
}

func TestUpdate_PartialPatch(t *testing.T) {
	ctx := context.Background()
	svc := newService(memory.NewItemRepository())
	created, err := svc.Create(ctx, input("Widget", "Tools", 10, "2.50"))
	require.NoError(t, err)

	price := decimal.RequireFromString("3.75")
	updated, err := svc.Update(ctx, created.ID, models.ItemPatch{UnitPrice: &price})
	require.NoError(t, err)

	assert.True(t, updated.UnitPrice.Equal(price))
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Quantity, updated.Quantity)
}

func TestUpdate_NotFoundIsWrapped(t *testing.T) {
	name := "Widget"
	_, err := newService(memory.NewItemRepository()).Update(context.Background(), 77, models.ItemPatch{Name: &name})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestDelete_ThenGetFails(t *testing.T) {
	ctx := context.Background()
	svc := newService(memory.NewItemRepository())
	created, err := svc.Create(ctx, input("Widget", "Tools", 10, "2.50"))
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget", deleted.Name)

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestListByCategory_EmptyIsNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newService(memory.NewItemRepository())
	_, err := svc.Create(ctx, input("Hammer", "Tools", 1, "9.99"))
	require.NoError(t, err)

	items, err := svc.ListByCategory(ctx, "TOOLS")
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = svc.ListByCategory(ctx, "Toys")
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestListByCategory_StorageErrorPassesThrough(t *testing.T) {
	storageErr := fmt.Errorf("%w: boom", domain.ErrStorage)
	_, err := newService(&failingRepo{err: storageErr}).ListByCategory(context.Background(), "Tools")

	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.NotErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestLowStock_EmptyIsNotAnError(t *testing.T) {
	items, err := newService(memory.NewItemRepository()).LowStock(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestValuations(t *testing.T) {
	ctx := context.Background()
	svc := newService(memory.NewItemRepository())
	_, err := svc.Create(ctx, input("A", "X", 10, "2.00"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, input("B", "X", 5, "3.00"))
	require.NoError(t, err)

	total, err := svc.TotalValue(ctx)
	require.NoError(t, err)
	assert.True(t, total.TotalValue.Equal(decimal.RequireFromString("35")))
	assert.True(t, total.AveragePrice.Equal(decimal.RequireFromString("2.5")))

	groups, err := svc.ValueByCategory(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, int64(15), groups[0].TotalUnits)

	n, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/inventory-service/services/inventory/domain"
	"github.com/ghuser/inventory-service/services/inventory/domain/models"
)

func newInput(name, category string, qty int, price string) models.NewItemInput {
	return models.NewItemInput{
		Name:      name,
		Category:  category,
		Quantity:  qty,
		UnitPrice: decimal.RequireFromString(price),
	}
}

func fixedClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	t := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Second)
		return t
	}
}

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository()

	created, err := repo.Create(ctx, newInput("Widget", "Tools", 10, "2.50"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCreate_AssignsIncreasingIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository()

	a, err := repo.Create(ctx, newInput("A", "X", 1, "1"))
	require.NoError(t, err)
	b, err := repo.Create(ctx, newInput("B", "X", 1, "1"))
	require.NoError(t, err)
	_, err = repo.Delete(ctx, b.ID)
	require.NoError(t, err)
	c, err := repo.Create(ctx, newInput("C", "X", 1, "1"))
	require.NoError(t, err)

	assert.Less(t, a.ID, b.ID)
	assert.Less(t, b.ID, c.ID, "ids are never reused")
}

func TestCreate_RejectsInvalidRecord(t *testing.T) {
	repo := NewItemRepository()
	_, err := repo.Create(context.Background(), newInput("Widget", "Tools", -1, "2.50"))

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	n, _ := repo.Count(context.Background())
	assert.Zero(t, n)
}

func TestGetByID_NotFound(t *testing.T) {
	_, err := NewItemRepository().GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestReturnedItemsDoNotAliasStorage(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository()
	created, err := repo.Create(ctx, newInput("Widget", "Tools", 10, "2.50"))
	require.NoError(t, err)

	created.Name = "mutated"
	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget", got.Name)
}

func TestUpdate_MergesAndRefreshesTimestamp(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository(WithClock(fixedClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))))
	created, err := repo.Create(ctx, newInput("Widget", "Tools", 10, "2.50"))
	require.NoError(t, err)

	qty := 3
	updated, err := repo.Update(ctx, created.ID, models.ItemPatch{Quantity: &qty})
	require.NoError(t, err)

	assert.Equal(t, 3, updated.Quantity)
	assert.Equal(t, "Widget", updated.Name)
	assert.Equal(t, "Tools", updated.Category)
	assert.True(t, updated.UnitPrice.Equal(created.UnitPrice))
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestUpdate_NotFound(t *testing.T) {
	name := "x"
	_, err := NewItemRepository().Update(context.Background(), 9, models.ItemPatch{Name: &name})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestUpdate_InvalidMergeLeavesRecordUntouched(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository()
	created, err := repo.Create(ctx, newInput("Widget", "Tools", 10, "2.50"))
	require.NoError(t, err)

	zero := decimal.Zero
	_, err = repo.Update(ctx, created.ID, models.ItemPatch{UnitPrice: &zero})
	assert.ErrorIs(t, err, domain.ErrInvalidItem)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository()
	created, err := repo.Create(ctx, newInput("Widget", "Tools", 10, "2.50"))
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, &models.DeletedItem{ID: created.ID, Name: "Widget"}, deleted)

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	_, err = repo.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func names(items []*models.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func seed(t *testing.T, repo *ItemRepository, inputs ...models.NewItemInput) {
	t.Helper()
	for _, in := range inputs {
		_, err := repo.Create(context.Background(), in)
		require.NoError(t, err)
	}
}

func TestListAll_OrderedByID(t *testing.T) {
	repo := NewItemRepository()
	seed(t, repo,
		newInput("Zeta", "X", 1, "1"),
		newInput("Alpha", "X", 1, "1"),
		newInput("Mid", "Y", 1, "1"),
	)

	items, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Zeta", "Alpha", "Mid"}, names(items))
}

func TestListAll_EmptyIsNotNil(t *testing.T) {
	items, err := NewItemRepository().ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestListByCategory_CaseInsensitive(t *testing.T) {
	repo := NewItemRepository()
	seed(t, repo,
		newInput("Hammer", "Tools", 1, "1"),
		newInput("Drill", "TOOLS", 1, "1"),
		newInput("Apple", "Food", 1, "1"),
		newInput("Axe", "tools", 1, "1"),
	)

	items, err := repo.ListByCategory(context.Background(), "tOoLs")
	require.NoError(t, err)
	assert.Equal(t, []string{"Axe", "Drill", "Hammer"}, names(items))

	none, err := repo.ListByCategory(context.Background(), "toys")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListByMaxQuantity(t *testing.T) {
	repo := NewItemRepository()
	seed(t, repo,
		newInput("B", "X", 5, "1"),
		newInput("A", "X", 5, "1"),
		newInput("C", "X", 0, "1"),
		newInput("D", "X", 6, "1"),
	)
	ctx := context.Background()

	items, err := repo.ListByMaxQuantity(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A", "B"}, names(items), "inclusive threshold, ordered by quantity then name")

	items, err = repo.ListByMaxQuantity(ctx, -1)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAggregateTotal(t *testing.T) {
	repo := NewItemRepository()
	ctx := context.Background()

	empty, err := repo.AggregateTotal(ctx)
	require.NoError(t, err)
	assert.Zero(t, empty.ItemCount)
	assert.True(t, empty.TotalValue.IsZero())
	assert.True(t, empty.AveragePrice.IsZero())

	seed(t, repo,
		newInput("A", "X", 10, "2.00"),
		newInput("B", "X", 5, "3.00"),
	)
	v, err := repo.AggregateTotal(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v.ItemCount)
	assert.Equal(t, int64(15), v.TotalUnits)
	assert.True(t, v.TotalValue.Equal(decimal.RequireFromString("35.00")), "got %s", v.TotalValue)
	assert.True(t, v.AveragePrice.Equal(decimal.RequireFromString("2.50")), "got %s", v.AveragePrice)
}

func TestAggregateByCategory_ExactKeys(t *testing.T) {
	repo := NewItemRepository()
	seed(t, repo,
		newInput("A", "Tools", 1, "10"),
		newInput("B", "tools", 3, "10"),
		newInput("C", "Tools", 1, "5"),
	)

	groups, err := repo.AggregateByCategory(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "tools", groups[0].Category)
	assert.True(t, groups[0].CategoryValue.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, "Tools", groups[1].Category)
	assert.Equal(t, int64(2), groups[1].ItemCount)
	assert.True(t, groups[1].CategoryValue.Equal(decimal.NewFromInt(15)))
}

func TestConcurrentUpdates_LastWriteWins(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository()
	created, err := repo.Create(ctx, newInput("Widget", "Tools", 0, "1"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(q int) {
			defer wg.Done()
			_, _ = repo.Update(ctx, created.ID, models.ItemPatch{Quantity: &q})
		}(i)
	}
	wg.Wait()

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, got.Quantity, 1)
	assert.LessOrEqual(t, got.Quantity, 50)
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := NewItemRepository()
	calls := map[string]func() error{
		"Create":  func() error { _, err := repo.Create(ctx, newInput("A", "X", 1, "1.00")); return err },
		"GetByID": func() error { _, err := repo.GetByID(ctx, 1); return err },
		"Update": func() error {
			qty := 2
			_, err := repo.Update(ctx, 1, models.ItemPatch{Quantity: &qty})
			return err
		},
		"Delete":         func() error { _, err := repo.Delete(ctx, 1); return err },
		"ListAll":        func() error { _, err := repo.ListAll(ctx); return err },
		"ListByCategory": func() error { _, err := repo.ListByCategory(ctx, "X"); return err },
		"AggregateTotal": func() error { _, err := repo.AggregateTotal(ctx); return err },
		"Count":          func() error { _, err := repo.Count(ctx); return err },
		"Ping":           func() error { return repo.Ping(ctx) },
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()
			assert.ErrorIs(t, err, context.Canceled)
			assert.ErrorIs(t, err, domain.ErrStorage, "cancellation must map to a storage failure")
		})
	}
}

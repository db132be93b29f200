// Package memory provides an in-process ItemRepository for local runs and
// handler tests. Data is lost when the process exits.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ghuser/inventory-service/services/inventory/domain"
	"github.com/ghuser/inventory-service/services/inventory/domain/models"
	domainsvcs "github.com/ghuser/inventory-service/services/inventory/domain/services"
)

// ItemRepository implements repositories.ItemRepository over a map guarded by
// a RWMutex. Every method returns copies, so callers never alias stored records.
type ItemRepository struct {
	mu     sync.RWMutex
	items  map[int64]models.Item
	nextID int64
	now    func() time.Time
}

// Option configures an ItemRepository.
type Option func(*ItemRepository)

// WithClock overrides the timestamp source. Tests use it to get stable times.
func WithClock(now func() time.Time) Option {
	return func(r *ItemRepository) { r.now = now }
}

// NewItemRepository returns an empty repository. Ids start at 1.
func NewItemRepository(opts ...Option) *ItemRepository {
	r := &ItemRepository{
		items:  make(map[int64]models.Item),
		nextID: 1,
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *ItemRepository) Create(ctx context.Context, in models.NewItemInput) (*models.Item, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	item := models.Item{
		Name:      in.Name,
		Category:  in.Category,
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice,
	}
	if err := domainsvcs.ValidateItem(&item); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ts := r.now()
	item.ID = r.nextID
	item.CreatedAt = ts
	item.UpdatedAt = ts
	r.items[item.ID] = item
	r.nextID++
	return &item, nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return &item, nil
}

// Update merges patch under the write lock, so concurrent updates serialize
// and the last one wins.
func (r *ItemRepository) Update(ctx context.Context, id int64, patch models.ItemPatch) (*models.Item, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	merged := domainsvcs.MergeItem(current, patch)
	if err := domainsvcs.ValidateItem(&merged); err != nil {
		return nil, err
	}
	merged.UpdatedAt = r.now()
	r.items[id] = merged
	return &merged, nil
}

func (r *ItemRepository) Delete(ctx context.Context, id int64) (*models.DeletedItem, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	delete(r.items, id)
	return &models.DeletedItem{ID: item.ID, Name: item.Name}, nil
}

func (r *ItemRepository) ListAll(ctx context.Context) ([]*models.Item, error) {
	items, err := r.filter(ctx, func(models.Item) bool { return true })
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(a, b int) bool { return items[a].ID < items[b].ID })
	return items, nil
}

// ListByCategory folds case the way PostgreSQL's lower() does for the
// comparison. Ties on name are broken by id.
func (r *ItemRepository) ListByCategory(ctx context.Context, category string) ([]*models.Item, error) {
	want := strings.ToLower(category)
	items, err := r.filter(ctx, func(it models.Item) bool {
		return strings.ToLower(it.Category) == want
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(a, b int) bool {
		if items[a].Name != items[b].Name {
			return items[a].Name < items[b].Name
		}
		return items[a].ID < items[b].ID
	})
	return items, nil
}

func (r *ItemRepository) ListByMaxQuantity(ctx context.Context, threshold int) ([]*models.Item, error) {
	items, err := r.filter(ctx, func(it models.Item) bool { return it.Quantity <= threshold })
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(a, b int) bool {
		x, y := items[a], items[b]
		switch {
		case x.Quantity != y.Quantity:
			return x.Quantity < y.Quantity
		case x.Name != y.Name:
			return x.Name < y.Name
		default:
			return x.ID < y.ID
		}
	})
	return items, nil
}

func (r *ItemRepository) AggregateTotal(ctx context.Context) (*models.Valuation, error) {
	items, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	v := domainsvcs.Valuate(items)
	return &v, nil
}

func (r *ItemRepository) AggregateByCategory(ctx context.Context) ([]models.CategoryValuation, error) {
	items, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return domainsvcs.ValuateByCategory(items), nil
}

func (r *ItemRepository) Count(ctx context.Context) (int64, error) {
	if err := ctxErr(ctx); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.items)), nil
}

// Ping always succeeds; it lets the repository stand in for a database in
// health checks.
func (r *ItemRepository) Ping(ctx context.Context) error {
	return ctxErr(ctx)
}

func (r *ItemRepository) filter(ctx context.Context, keep func(models.Item) bool) ([]*models.Item, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Item, 0, len(r.items))
	for _, it := range r.items {
		if keep(it) {
			item := it
			out = append(out, &item)
		}
	}
	return out, nil
}

// ctxErr reports a cancelled or expired context as a storage failure, the way
// the postgres driver surfaces an aborted query.
func ctxErr(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStorage, err)
	}
	return nil
}

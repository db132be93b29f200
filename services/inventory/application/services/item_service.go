package services

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/ghuser/inventory-service/pkg/logger"
	"github.com/ghuser/inventory-service/services/inventory/domain"
	"github.com/ghuser/inventory-service/services/inventory/domain/models"
	"github.com/ghuser/inventory-service/services/inventory/domain/repositories"
	domainsvcs "github.com/ghuser/inventory-service/services/inventory/domain/services"
)

const meterName = "github.com/ghuser/inventory-service/services/inventory"

// ItemService orchestrates validation and persistence of inventory items.
// It holds no mutable state of its own; the repository is the only shared resource.
type ItemService struct {
	repo      repositories.ItemRepository
	log       logger.Logger
	mutations metric.Int64Counter
}

// NewItemService returns an ItemService wired with the given repository.
// Successful writes are counted on inventory.items.mutations.
func NewItemService(repo repositories.ItemRepository, log logger.Logger) *ItemService {
	counter, err := otel.Meter(meterName).Int64Counter("inventory.items.mutations",
		metric.WithDescription("Successful inventory writes, by operation"),
		metric.WithUnit("{mutation}"),
	)
	if err != nil {
		counter = noop.Int64Counter{}
	}
	return &ItemService{repo: repo, log: log, mutations: counter}
}

// List returns every item ordered by id.
func (s *ItemService) List(ctx context.Context) ([]*models.Item, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Get returns the item with id. Returns ErrItemNotFound if it does not exist.
func (s *ItemService) Get(ctx context.Context, id int64) (*models.Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item %d: %w", id, err)
	}
	return item, nil
}

// Create validates in and persists it. Name and category are stored trimmed.
func (s *ItemService) Create(ctx context.Context, in models.NewItemInput) (*models.Item, error) {
	in, err := domainsvcs.ValidateNewItem(in)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	s.record(ctx, "create")
	s.log.InfoContext(ctx, "item created", "item_id", item.ID, "category", item.Category)
	return item, nil
}

// Update validates the fields present in patch and merges them into the
// stored item. An empty patch fails with ErrEmptyUpdate before storage is touched.
func (s *ItemService) Update(ctx context.Context, id int64, patch models.ItemPatch) (*models.Item, error) {
	patch, err := domainsvcs.ValidatePatch(patch)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update item %d: %w", id, err)
	}

	s.record(ctx, "update")
	s.log.InfoContext(ctx, "item updated", "item_id", id, "fields", patch.Fields())
	return item, nil
}

// Delete removes the item with id and returns its id and name.
func (s *ItemService) Delete(ctx context.Context, id int64) (*models.DeletedItem, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete item %d: %w", id, err)
	}

	s.record(ctx, "delete")
	s.log.InfoContext(ctx, "item deleted", "item_id", id)
	return deleted, nil
}

// ListByCategory returns the items whose category matches ignoring case.
// A category with no items fails with ErrCategoryNotFound.
func (s *ItemService) ListByCategory(ctx context.Context, category string) ([]*models.Item, error) {
	category = strings.TrimSpace(category)
	items, err := s.repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list category %q: %w", category, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: %q", domain.ErrCategoryNotFound, category)
	}
	return items, nil
}

// LowStock returns the items with quantity <= threshold. An empty result is
// not an error.
func (s *ItemService) LowStock(ctx context.Context, threshold int) ([]*models.Item, error) {
	items, err := s.repo.ListByMaxQuantity(ctx, threshold)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	return items, nil
}

// TotalValue returns the inventory-wide valuation.
func (s *ItemService) TotalValue(ctx context.Context) (*models.Valuation, error) {
	v, err := s.repo.AggregateTotal(ctx)
	if err != nil {
		return nil, fmt.Errorf("aggregate total: %w", err)
	}
	return v, nil
}

// ValueByCategory returns one valuation per stored category string.
func (s *ItemService) ValueByCategory(ctx context.Context) ([]models.CategoryValuation, error) {
	groups, err := s.repo.AggregateByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("aggregate by category: %w", err)
	}
	return groups, nil
}

// Count returns the number of stored items. The health endpoint uses it.
func (s *ItemService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *ItemService) record(ctx context.Context, op string) {
	s.mutations.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", op)))
}

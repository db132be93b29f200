package repositories

import (
	"context"

	"github.com/ghuser/inventory-service/services/inventory/domain/models"
)

// ItemRepository is the persistence interface for the Item aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// Implementations return domain.ErrItemNotFound for missing ids, a
// *domain.ValidationError for storage-enforced constraint violations and an
// error wrapping domain.ErrStorage for everything else. Writes are atomic.
type ItemRepository interface {
	Create(ctx context.Context, in models.NewItemInput) (*models.Item, error)
	GetByID(ctx context.Context, id int64) (*models.Item, error)

	// Update merges patch into the stored item, refreshes UpdatedAt and
	// returns the full record.
	Update(ctx context.Context, id int64, patch models.ItemPatch) (*models.Item, error)

	// Delete removes the item and returns its id and name.
	Delete(ctx context.Context, id int64) (*models.DeletedItem, error)

	// ListAll returns every item ordered by ascending id.
	ListAll(ctx context.Context) ([]*models.Item, error)

	// ListByCategory matches category case-insensitively, ordered by name.
	// An empty result is not an error at this layer.
	ListByCategory(ctx context.Context, category string) ([]*models.Item, error)

	// ListByMaxQuantity returns items with quantity <= threshold ordered by
	// quantity, then name.
	ListByMaxQuantity(ctx context.Context, threshold int) ([]*models.Item, error)

	AggregateTotal(ctx context.Context) (*models.Valuation, error)

	// AggregateByCategory groups by the stored category string, ordered by
	// descending category value.
	AggregateByCategory(ctx context.Context) ([]models.CategoryValuation, error)

	// Count returns the number of stored items.
	Count(ctx context.Context) (int64, error)
}

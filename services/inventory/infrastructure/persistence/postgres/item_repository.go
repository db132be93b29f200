package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/inventory-service/pkg/database"
	"github.com/ghuser/inventory-service/services/inventory/domain"
	"github.com/ghuser/inventory-service/services/inventory/domain/models"
	domainsvcs "github.com/ghuser/inventory-service/services/inventory/domain/services"
	"github.com/ghuser/inventory-service/services/inventory/infrastructure/persistence/postgres/db"
)

// PostgreSQL error codes mapped to domain validation failures.
const (
	pgCheckViolation    = "23514"
	pgNotNullViolation  = "23502"
	pgNumericOutOfRange = "22003"
	pgStringTooLong     = "22001"
)

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
type ItemRepository struct {
	db *database.Database
}

// NewItemRepository returns an ItemRepository backed by the given connection pool.
func NewItemRepository(database *database.Database) *ItemRepository {
	return &ItemRepository{db: database}
}

// Create inserts a new item in its own transaction and returns the stored row.
func (r *ItemRepository) Create(ctx context.Context, in models.NewItemInput) (*models.Item, error) {
	var item *models.Item
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		row, err := db.New(tx).InsertItem(ctx, db.InsertItemParams{
			Name:      in.Name,
			Category:  in.Category,
			Quantity:  int32(in.Quantity), //nolint:gosec // bounded by ValidateNewItem
			UnitPrice: in.UnitPrice,
		})
		if err != nil {
			return mapError("insert item", err)
		}
		item = rowToItem(row)
		return nil
	})
	if err != nil {
		return nil, txError(err)
	}
	return item, nil
}

// GetByID retrieves an item by id. Returns ErrItemNotFound if not found.
func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	row, err := db.New(r.db.DB()).GetItemByID(ctx, id)
	if err != nil {
		return nil, mapError("query item", err)
	}
	return rowToItem(row), nil
}

// Update locks the row, merges patch into it, re-validates the result and
// writes every column back in one transaction. updated_at is refreshed by the
// query. Returns ErrItemNotFound if no row has the id.
func (r *ItemRepository) Update(ctx context.Context, id int64, patch models.ItemPatch) (*models.Item, error) {
	var item *models.Item
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		current, err := q.GetItemByIDForUpdate(ctx, id)
		if err != nil {
			return mapError("lock item", err)
		}

		merged := domainsvcs.MergeItem(*rowToItem(current), patch)
		if err := domainsvcs.ValidateItem(&merged); err != nil {
			return err
		}

		row, err := q.UpdateItem(ctx, db.UpdateItemParams{
			ID:        id,
			Name:      merged.Name,
			Category:  merged.Category,
			Quantity:  int32(merged.Quantity), //nolint:gosec // bounded by ValidateItem
			UnitPrice: merged.UnitPrice,
		})
		if err != nil {
			return mapError("update item", err)
		}
		item = rowToItem(row)
		return nil
	})
	if err != nil {
		return nil, txError(err)
	}
	return item, nil
}

// Delete removes an item and returns its id and name. Returns ErrItemNotFound
// if no row has the id.
func (r *ItemRepository) Delete(ctx context.Context, id int64) (*models.DeletedItem, error) {
	var deleted *models.DeletedItem
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		row, err := db.New(tx).DeleteItem(ctx, id)
		if err != nil {
			return mapError("delete item", err)
		}
		deleted = &models.DeletedItem{ID: row.ID, Name: row.Name}
		return nil
	})
	if err != nil {
		return nil, txError(err)
	}
	return deleted, nil
}

// ListAll returns every item ordered by id.
func (r *ItemRepository) ListAll(ctx context.Context) ([]*models.Item, error) {
	rows, err := db.New(r.db.DB()).ListItems(ctx)
	if err != nil {
		return nil, mapError("query items", err)
	}
	return rowsToItems(rows), nil
}

// ListByCategory returns items whose category equals category ignoring case.
func (r *ItemRepository) ListByCategory(ctx context.Context, category string) ([]*models.Item, error) {
	rows, err := db.New(r.db.DB()).ListItemsByCategory(ctx, category)
	if err != nil {
		return nil, mapError("query items by category", err)
	}
	return rowsToItems(rows), nil
}

// ListByMaxQuantity returns items with quantity <= threshold.
func (r *ItemRepository) ListByMaxQuantity(ctx context.Context, threshold int) ([]*models.Item, error) {
	if threshold < 0 {
		// quantity >= 0 is enforced by the table, nothing can match.
		return []*models.Item{}, nil
	}
	if threshold > domainsvcs.MaxQuantity {
		threshold = domainsvcs.MaxQuantity
	}
	rows, err := db.New(r.db.DB()).ListItemsByMaxQuantity(ctx, int32(threshold)) //nolint:gosec // clamped above
	if err != nil {
		return nil, mapError("query low stock items", err)
	}
	return rowsToItems(rows), nil
}

// AggregateTotal computes the inventory-wide sums in SQL. COALESCE turns the
// NULL sums of an empty table into zeros. The mean is taken in Go from the
// exact price sum rather than with AVG, matching services.Valuate.
func (r *ItemRepository) AggregateTotal(ctx context.Context) (*models.Valuation, error) {
	row, err := db.New(r.db.DB()).AggregateTotal(ctx)
	if err != nil {
		return nil, mapError("aggregate total", err)
	}
	return &models.Valuation{
		ItemCount:    row.ItemCount,
		TotalUnits:   row.TotalUnits,
		TotalValue:   row.TotalValue,
		AveragePrice: domainsvcs.MeanPrice(row.PriceSum, row.ItemCount),
	}, nil
}

// AggregateByCategory computes per-category valuations in SQL, grouped by the
// stored category string.
func (r *ItemRepository) AggregateByCategory(ctx context.Context) ([]models.CategoryValuation, error) {
	rows, err := db.New(r.db.DB()).AggregateByCategory(ctx)
	if err != nil {
		return nil, mapError("aggregate by category", err)
	}
	out := make([]models.CategoryValuation, len(rows))
	for i, row := range rows {
		out[i] = models.CategoryValuation{
			Category:      row.Category,
			ItemCount:     row.ItemCount,
			TotalUnits:    row.TotalUnits,
			CategoryValue: row.CategoryValue,
		}
	}
	return out, nil
}

// Count returns the number of stored items.
func (r *ItemRepository) Count(ctx context.Context) (int64, error) {
	n, err := db.New(r.db.DB()).CountItems(ctx)
	if err != nil {
		return 0, mapError("count items", err)
	}
	return n, nil
}

// mapError translates driver errors into the domain taxonomy.
func mapError(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrItemNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgCheckViolation, pgNotNullViolation, pgNumericOutOfRange, pgStringTooLong:
			v := &domain.ValidationError{}
			v.Add(columnField(pgErr.ColumnName, pgErr.ConstraintName), "storage:"+pgErr.Code, nil, pgErr.Message)
			return v
		}
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrStorage, op, err)
}

// txError classifies failures raised by WithTx itself (begin, commit) as
// storage errors. Errors already mapped inside the transaction pass through.
func txError(err error) error {
	switch {
	case errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrInvalidItem),
		errors.Is(err, domain.ErrStorage):
		return err
	default:
		return fmt.Errorf("%w: %w", domain.ErrStorage, err)
	}
}

// columnField names the payload field a column or constraint belongs to.
func columnField(column, constraint string) string {
	switch {
	case column == "unit_price" || constraint == "inventory_items_unit_price_check":
		return "unitPrice"
	case column == "quantity" || constraint == "inventory_items_quantity_check":
		return "quantity"
	case column != "":
		return column
	default:
		return "item"
	}
}

// rowToItem maps a db.InventoryItem to a domain models.Item.
func rowToItem(row db.InventoryItem) *models.Item {
	return &models.Item{
		ID:        row.ID,
		Name:      row.Name,
		Category:  row.Category,
		Quantity:  int(row.Quantity),
		UnitPrice: row.UnitPrice,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func rowsToItems(rows []db.InventoryItem) []*models.Item {
	items := make([]*models.Item, len(rows))
	for i, row := range rows {
		items[i] = rowToItem(row)
	}
	return items
}

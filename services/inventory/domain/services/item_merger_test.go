package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/inventory-service/services/inventory/domain/models"
)

func TestMergeItem(t *testing.T) {
	created := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	stored := models.Item{
		ID:        7,
		Name:      "Keyboard",
		Category:  "Tech",
		Quantity:  35,
		UnitPrice: decimal.RequireFromString("89.99"),
		CreatedAt: created,
		UpdatedAt: created,
	}

	t.Run("single field changes only that field", func(t *testing.T) {
		qty := 3
		got := MergeItem(stored, models.ItemPatch{Quantity: &qty})

		if got.Quantity != 3 {
			t.Fatalf("Quantity = %d, want 3", got.Quantity)
		}
		if got.Name != stored.Name || got.Category != stored.Category || !got.UnitPrice.Equal(stored.UnitPrice) {
			t.Fatalf("untouched fields changed: %+v", got)
		}
	})

	t.Run("all fields overwrite", func(t *testing.T) {
		name, category, qty := "Mouse", "Peripherals", 0
		price := decimal.RequireFromString("19.50")
		got := MergeItem(stored, models.ItemPatch{Name: &name, Category: &category, Quantity: &qty, UnitPrice: &price})

		if got.Name != name || got.Category != category || got.Quantity != qty || !got.UnitPrice.Equal(price) {
			t.Fatalf("unexpected merge: %+v", got)
		}
	})

	t.Run("identity and timestamps are preserved", func(t *testing.T) {
		name := "Renamed"
		got := MergeItem(stored, models.ItemPatch{Name: &name})

		if got.ID != stored.ID {
			t.Fatalf("ID changed: %d", got.ID)
		}
		if !got.CreatedAt.Equal(created) || !got.UpdatedAt.Equal(created) {
			t.Fatalf("timestamps changed: %v / %v", got.CreatedAt, got.UpdatedAt)
		}
	})

	t.Run("empty patch is a copy", func(t *testing.T) {
		got := MergeItem(stored, models.ItemPatch{})
		if got.Name != stored.Name || got.Quantity != stored.Quantity || !got.UnitPrice.Equal(stored.UnitPrice) {
			t.Fatalf("expected unchanged item, got %+v", got)
		}
	})
}

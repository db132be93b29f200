package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ghuser/inventory-service/services/inventory/domain/models"
)

func item(category string, qty int, price string) *models.Item {
	return &models.Item{Category: category, Quantity: qty, UnitPrice: decimal.RequireFromString(price)}
}

func TestValuate(t *testing.T) {
	t.Run("empty snapshot yields zeros", func(t *testing.T) {
		got := Valuate(nil)
		if got.ItemCount != 0 || got.TotalUnits != 0 || !got.TotalValue.IsZero() || !got.AveragePrice.IsZero() {
			t.Fatalf("expected zero valuation, got %+v", got)
		}
	})

	t.Run("two items in one category", func(t *testing.T) {
		got := Valuate([]*models.Item{item("X", 10, "2.00"), item("X", 5, "3.00")})

		if got.ItemCount != 2 || got.TotalUnits != 15 {
			t.Fatalf("unexpected counts: %+v", got)
		}
		if !got.TotalValue.Equal(decimal.RequireFromString("35.00")) {
			t.Fatalf("TotalValue = %s, want 35.00", got.TotalValue)
		}
		if !got.AveragePrice.Equal(decimal.RequireFromString("2.50")) {
			t.Fatalf("AveragePrice = %s, want 2.50", got.AveragePrice)
		}
	})

	t.Run("average is not weighted by quantity", func(t *testing.T) {
		got := Valuate([]*models.Item{item("X", 1000, "1.00"), item("Y", 1, "9.00")})
		if !got.AveragePrice.Equal(decimal.RequireFromString("5")) {
			t.Fatalf("AveragePrice = %s, want 5", got.AveragePrice)
		}
	})

	t.Run("average keeps full precision", func(t *testing.T) {
		got := Valuate([]*models.Item{item("A", 1, "1.00"), item("B", 1, "1.00"), item("C", 1, "2.00")})
		want := decimal.NewFromInt(4).Div(decimal.NewFromInt(3))
		if !got.AveragePrice.Equal(want) {
			t.Fatalf("AveragePrice = %s, want %s", got.AveragePrice, want)
		}
		if got.AveragePrice.Equal(got.AveragePrice.Round(2)) {
			t.Fatalf("AveragePrice = %s was rounded", got.AveragePrice)
		}
	})

	t.Run("cent sums are exact", func(t *testing.T) {
		var items []*models.Item
		for range 10 {
			items = append(items, item("X", 1, "0.10"))
		}
		if got := Valuate(items); !got.TotalValue.Equal(decimal.RequireFromString("1")) {
			t.Fatalf("TotalValue = %s, want 1", got.TotalValue)
		}
	})
}

func TestValuateByCategory(t *testing.T) {
	t.Run("empty snapshot yields no groups", func(t *testing.T) {
		if got := ValuateByCategory(nil); len(got) != 0 {
			t.Fatalf("expected no groups, got %+v", got)
		}
	})

	t.Run("groups by exact category and orders by value", func(t *testing.T) {
		got := ValuateByCategory([]*models.Item{
			item("Tech", 2, "100.00"),
			item("tech", 1, "1.00"),
			item("Home", 10, "50.00"),
			item("Tech", 1, "50.00"),
		})

		if len(got) != 3 {
			t.Fatalf("expected 3 groups (case is significant), got %+v", got)
		}
		wantOrder := []string{"Home", "Tech", "tech"}
		for i, c := range wantOrder {
			if got[i].Category != c {
				t.Fatalf("group %d = %q, want %q (%+v)", i, got[i].Category, c, got)
			}
		}
		tech := got[1]
		if tech.ItemCount != 2 || tech.TotalUnits != 3 || !tech.CategoryValue.Equal(decimal.RequireFromString("250")) {
			t.Fatalf("unexpected Tech group: %+v", tech)
		}
	})

	t.Run("ties break on category name", func(t *testing.T) {
		got := ValuateByCategory([]*models.Item{item("B", 1, "1.00"), item("A", 1, "1.00")})
		if got[0].Category != "A" || got[1].Category != "B" {
			t.Fatalf("unexpected order: %+v", got)
		}
	})
}

func TestMeanPrice(t *testing.T) {
	if got := MeanPrice(decimal.Zero, 0); !got.IsZero() {
		t.Fatalf("MeanPrice(0, 0) = %s, want 0", got)
	}
	if got := MeanPrice(decimal.RequireFromString("5.00"), 2); !got.Equal(decimal.RequireFromString("2.5")) {
		t.Fatalf("MeanPrice(5.00, 2) = %s, want 2.5", got)
	}
}

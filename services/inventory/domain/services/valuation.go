package services

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ghuser/inventory-service/services/inventory/domain/models"
)

// Valuate computes the inventory-wide valuation over a snapshot of items.
// TotalValue is the exact sum of quantity × unit price; AveragePrice is the
// plain mean of unit prices. An empty snapshot yields zeros.
func Valuate(items []*models.Item) models.Valuation {
	out := models.Valuation{
		TotalValue:   decimal.Zero,
		AveragePrice: decimal.Zero,
	}
	if len(items) == 0 {
		return out
	}

	priceSum := decimal.Zero
	for _, item := range items {
		out.ItemCount++
		out.TotalUnits += int64(item.Quantity)
		out.TotalValue = out.TotalValue.Add(item.Value())
		priceSum = priceSum.Add(item.UnitPrice)
	}
	out.AveragePrice = MeanPrice(priceSum, out.ItemCount)
	return out
}

// MeanPrice divides a unit price sum by the item count. Both storage drivers
// derive averagePrice through it, so their results agree to the last digit.
// A zero count yields zero.
func MeanPrice(sum decimal.Decimal, count int64) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(count))
}

// ValuateByCategory groups items by their stored category string (exact match,
// no case folding) and orders the groups by descending value, then category.
func ValuateByCategory(items []*models.Item) []models.CategoryValuation {
	index := make(map[string]int)
	var out []models.CategoryValuation

	for _, item := range items {
		i, ok := index[item.Category]
		if !ok {
			i = len(out)
			index[item.Category] = i
			out = append(out, models.CategoryValuation{
				Category:      item.Category,
				CategoryValue: decimal.Zero,
			})
		}
		out[i].ItemCount++
		out[i].TotalUnits += int64(item.Quantity)
		out[i].CategoryValue = out[i].CategoryValue.Add(item.Value())
	}

	sort.SliceStable(out, func(a, b int) bool {
		if c := out[a].CategoryValue.Cmp(out[b].CategoryValue); c != 0 {
			return c > 0
		}
		return out[a].Category < out[b].Category
	})
	return out
}

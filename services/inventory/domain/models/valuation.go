package models

import "github.com/shopspring/decimal"

// Valuation is the monetary summary over the whole inventory.
type Valuation struct {
	ItemCount    int64
	TotalUnits   int64
	TotalValue   decimal.Decimal
	AveragePrice decimal.Decimal // mean unit price, not weighted by quantity
}

// CategoryValuation is the monetary summary for one stored category string.
type CategoryValuation struct {
	Category      string
	ItemCount     int64
	TotalUnits    int64
	CategoryValue decimal.Decimal
}

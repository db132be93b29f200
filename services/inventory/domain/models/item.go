package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is the inventory record, the only aggregate in this bounded context.
type Item struct {
	ID        int64
	Name      string
	Category  string // compared case-insensitively on lookup, grouped as stored
	Quantity  int
	UnitPrice decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewItemInput carries the fields a caller supplies on create. Storage assigns
// the ID and timestamps.
type NewItemInput struct {
	Name      string
	Category  string
	Quantity  int
	UnitPrice decimal.Decimal
}

// DeletedItem summarizes a removed record.
type DeletedItem struct {
	ID   int64
	Name string
}

// Value returns quantity × unit price.
func (i Item) Value() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

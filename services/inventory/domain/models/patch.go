package models

import "github.com/shopspring/decimal"

// ItemPatch is a merge-patch for an Item: nil fields are left untouched.
type ItemPatch struct {
	Name      *string
	Category  *string
	Quantity  *int
	UnitPrice *decimal.Decimal
}

// IsEmpty reports whether the patch sets no field.
func (p ItemPatch) IsEmpty() bool {
	return p.Name == nil && p.Category == nil && p.Quantity == nil && p.UnitPrice == nil
}

// Fields returns the names of the fields the patch sets, in declaration order.
func (p ItemPatch) Fields() []string {
	var fields []string
	if p.Name != nil {
		fields = append(fields, "name")
	}
	if p.Category != nil {
		fields = append(fields, "category")
	}
	if p.Quantity != nil {
		fields = append(fields, "quantity")
	}
	if p.UnitPrice != nil {
		fields = append(fields, "unitPrice")
	}
	return fields
}

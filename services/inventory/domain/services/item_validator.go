// Package services contains stateless domain services for the inventory bounded context.
// Domain services enforce business rules that operate purely on domain types
// and have no dependencies beyond the domain layer and shopspring/decimal.
package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/ghuser/inventory-service/services/inventory/domain"
	"github.com/ghuser/inventory-service/services/inventory/domain/models"
)

// Field bounds shared with the table definition.
const (
	MaxNameLength     = 255
	MaxCategoryLength = 100
	MaxQuantity       = 2147483647 // INTEGER
	PriceScale        = 2          // NUMERIC(10,2)
)

// MaxUnitPrice is the largest price NUMERIC(10,2) can hold.
var MaxUnitPrice = decimal.RequireFromString("99999999.99")

// ValidateNewItem checks a create payload. All four fields are required.
// It returns the input with name and category trimmed, or a *domain.ValidationError
// naming every offending field.
func ValidateNewItem(in models.NewItemInput) (models.NewItemInput, error) {
	v := &domain.ValidationError{}

	in.Name = checkText(v, "name", in.Name, MaxNameLength)
	in.Category = checkText(v, "category", in.Category, MaxCategoryLength)
	checkQuantity(v, in.Quantity)
	checkUnitPrice(v, in.UnitPrice)

	return in, v.OrNil()
}

// ValidatePatch checks every field present in patch against the same rule used
// on create; absent fields are not evaluated. A patch with no fields fails
// with domain.ErrEmptyUpdate.
func ValidatePatch(patch models.ItemPatch) (models.ItemPatch, error) {
	if patch.IsEmpty() {
		return patch, domain.ErrEmptyUpdate
	}

	v := &domain.ValidationError{}
	out := patch

	if patch.Name != nil {
		name := checkText(v, "name", *patch.Name, MaxNameLength)
		out.Name = &name
	}
	if patch.Category != nil {
		category := checkText(v, "category", *patch.Category, MaxCategoryLength)
		out.Category = &category
	}
	if patch.Quantity != nil {
		checkQuantity(v, *patch.Quantity)
	}
	if patch.UnitPrice != nil {
		checkUnitPrice(v, *patch.UnitPrice)
	}

	return out, v.OrNil()
}

// ValidateItem re-checks the stored invariants on a complete record, typically
// the result of MergeItem, before it is written.
func ValidateItem(item *models.Item) error {
	if item == nil {
		return fmt.Errorf("item cannot be nil")
	}

	v := &domain.ValidationError{}
	checkText(v, "name", item.Name, MaxNameLength)
	checkText(v, "category", item.Category, MaxCategoryLength)
	checkQuantity(v, item.Quantity)
	checkUnitPrice(v, item.UnitPrice)
	return v.OrNil()
}

// checkText trims s and records a violation if it is blank, too long or
// contains a NUL character. Length is counted in characters, not bytes.
func checkText(v *domain.ValidationError, field, s string, maxLen int) string {
	trimmed := strings.TrimSpace(s)

	if trimmed == "" {
		v.Add(field, "required", s, "must not be blank")
		return trimmed
	}
	if n := utf8.RuneCountInString(trimmed); n > maxLen {
		v.Add(field, fmt.Sprintf("max=%d", maxLen), s, fmt.Sprintf("must not exceed %d characters (got %d)", maxLen, n))
		return trimmed
	}
	// PostgreSQL text cannot hold NUL; other control characters are stored as sent.
	if strings.ContainsRune(trimmed, 0) {
		v.Add(field, "excludesrune=0x00", s, "must not contain NUL characters")
	}
	return trimmed
}

func checkQuantity(v *domain.ValidationError, q int) {
	switch {
	case q < 0:
		v.Add("quantity", "gte=0", q, "must be greater than or equal to 0")
	case q > MaxQuantity:
		v.Add("quantity", fmt.Sprintf("lte=%d", MaxQuantity), q, fmt.Sprintf("must be less than or equal to %d", MaxQuantity))
	}
}

func checkUnitPrice(v *domain.ValidationError, p decimal.Decimal) {
	switch {
	case !p.IsPositive():
		v.Add("unitPrice", "gt=0", p.String(), "must be greater than 0")
	case p.GreaterThan(MaxUnitPrice):
		v.Add("unitPrice", "lte="+MaxUnitPrice.String(), p.String(), "must be less than or equal to "+MaxUnitPrice.String())
	case !p.Equal(p.Round(PriceScale)):
		v.Add("unitPrice", fmt.Sprintf("scale=%d", PriceScale), p.String(), fmt.Sprintf("must have at most %d decimal places", PriceScale))
	}
}

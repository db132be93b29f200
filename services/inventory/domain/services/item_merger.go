package services

import "github.com/ghuser/inventory-service/services/inventory/domain/models"

// MergeItem applies a validated patch to the stored item and returns the
// record to persist. Present fields overwrite, absent fields keep their stored
// value. ID, CreatedAt and UpdatedAt are copied unchanged; storage refreshes
// UpdatedAt when it writes the result.
func MergeItem(current models.Item, patch models.ItemPatch) models.Item {
	merged := current
	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.Category != nil {
		merged.Category = *patch.Category
	}
	if patch.Quantity != nil {
		merged.Quantity = *patch.Quantity
	}
	if patch.UnitPrice != nil {
		merged.UnitPrice = *patch.UnitPrice
	}
	return merged
}

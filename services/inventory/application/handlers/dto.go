package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/ghuser/inventory-service/pkg/errhttp"
	"github.com/ghuser/inventory-service/pkg/httpx"
	appsvcs "github.com/ghuser/inventory-service/services/inventory/application/services"
	"github.com/ghuser/inventory-service/services/inventory/domain/models"
)

// ItemResponse is the JSON shape of an inventory item.
type ItemResponse struct {
	ID        int64     `json:"id"        example:"1"`
	Name      string    `json:"name"      example:"Cordless Drill"`
	Category  string    `json:"category"  example:"Tools"`
	Quantity  int       `json:"quantity"  example:"12"`
	UnitPrice float64   `json:"unitPrice" example:"89.99"`
	CreatedAt time.Time `json:"createdAt" example:"2024-01-15T10:30:00Z"`
	UpdatedAt time.Time `json:"updatedAt" example:"2024-01-15T10:30:00Z"`
} // @name ItemResponse

// CreateItemRequest is the request body for POST /api/inventory.
// Field lengths, ranges and price scale are checked by the domain validator.
type CreateItemRequest struct {
	Name      string           `json:"name"      validate:"required,notblank" example:"Cordless Drill"`
	Category  string           `json:"category"  validate:"required,notblank" example:"Tools"`
	Quantity  *int             `json:"quantity"  validate:"required,gte=0"    example:"12"`
	UnitPrice *decimal.Decimal `json:"unitPrice" validate:"required"          swaggertype:"number" example:"89.99"`
} // @name CreateItemRequest

// UpdateItemRequest is the request body for PUT and PATCH /api/inventory/{id}.
// Omitted or null fields keep their stored value; at least one field is required.
type UpdateItemRequest struct {
	Name      *string          `json:"name,omitempty"      example:"Cordless Drill"`
	Category  *string          `json:"category,omitempty"  example:"Tools"`
	Quantity  *int             `json:"quantity,omitempty"  validate:"omitempty,gte=0" example:"3"`
	UnitPrice *decimal.Decimal `json:"unitPrice,omitempty" swaggertype:"number" example:"79.99"`
} // @name UpdateItemRequest

// DeleteItemResponse confirms a deletion.
type DeleteItemResponse struct {
	Message string `json:"message" example:"Item deleted successfully"`
	ID      int64  `json:"id"      example:"1"`
	Name    string `json:"name"    example:"Cordless Drill"`
} // @name DeleteItemResponse

// ValuationResponse is the inventory-wide valuation.
type ValuationResponse struct {
	ItemCount    int64   `json:"itemCount"    example:"2"`
	TotalUnits   int64   `json:"totalUnits"   example:"15"`
	TotalValue   float64 `json:"totalValue"   example:"35"`
	AveragePrice float64 `json:"averagePrice" example:"2.5"`
} // @name ValuationResponse

// CategoryValuationResponse is the valuation of one stored category.
type CategoryValuationResponse struct {
	Category      string  `json:"category"      example:"Tools"`
	ItemCount     int64   `json:"itemCount"     example:"2"`
	TotalUnits    int64   `json:"totalUnits"    example:"15"`
	CategoryValue float64 `json:"categoryValue" example:"35"`
} // @name CategoryValuationResponse

// ErrorResponse is returned on all non-validation error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"item not found"`
} // @name ErrorResponse

func toItemResponse(item *models.Item) ItemResponse {
	return ItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		Category:  item.Category,
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice.InexactFloat64(),
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

func toItemResponses(items []*models.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, item := range items {
		out[i] = toItemResponse(item)
	}
	return out
}

func toValuationResponse(v *models.Valuation) ValuationResponse {
	return ValuationResponse{
		ItemCount:    v.ItemCount,
		TotalUnits:   v.TotalUnits,
		TotalValue:   v.TotalValue.InexactFloat64(),
		AveragePrice: v.AveragePrice.InexactFloat64(),
	}
}

func (req *UpdateItemRequest) toPatch() models.ItemPatch {
	return models.ItemPatch{
		Name:      req.Name,
		Category:  req.Category,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
	}
}

func (req *CreateItemRequest) toInput() models.NewItemInput {
	return models.NewItemInput{
		Name:      req.Name,
		Category:  req.Category,
		Quantity:  *req.Quantity,
		UnitPrice: *req.UnitPrice,
	}
}

// base carries what every inventory handler needs.
type base struct {
	svc  *appsvcs.Services
	errs *errhttp.Writer
}

// pathInt parses the named chi URL parameter as a base-10 integer. On failure
// it writes a 400 response and returns false.
func pathInt(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid "+name+": must be an integer")
		return 0, false
	}
	return n, true
}

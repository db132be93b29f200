package handlers

import (
	"net/http"

	"github.com/ghuser/inventory-service/pkg/errhttp"
	"github.com/ghuser/inventory-service/pkg/httpx"
	appsvcs "github.com/ghuser/inventory-service/services/inventory/application/services"
)

// TotalValueHandler handles GET /api/inventory/stats/total-value requests.
type TotalValueHandler struct{ base }

// NewTotalValueHandler returns a TotalValueHandler backed by the given services.
func NewTotalValueHandler(svc *appsvcs.Services, errs *errhttp.Writer) *TotalValueHandler {
	return &TotalValueHandler{base{svc: svc, errs: errs}}
}

// Execute reports the inventory-wide valuation.
//
//	@Summary		Total inventory value
//	@Description	averagePrice is the unweighted mean unit price. An empty inventory reports zeros.
//	@Tags			stats
//	@Produce		json
//	@Success		200	{object}	ValuationResponse
//	@Failure		503	{object}	ErrorResponse
//	@Router			/api/inventory/stats/total-value [get]
func (h *TotalValueHandler) Execute(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.Item.TotalValue(r.Context())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toValuationResponse(v))
}

// ValueByCategoryHandler handles GET /api/inventory/stats/by-category requests.
type ValueByCategoryHandler struct{ base }

// NewValueByCategoryHandler returns a ValueByCategoryHandler backed by the given services.
func NewValueByCategoryHandler(svc *appsvcs.Services, errs *errhttp.Writer) *ValueByCategoryHandler {
	return &ValueByCategoryHandler{base{svc: svc, errs: errs}}
}

// Execute reports one valuation per stored category.
//
//	@Summary		Value by category
//	@Description	Groups by the stored category string, highest value first
//	@Tags			stats
//	@Produce		json
//	@Success		200	{array}		CategoryValuationResponse
//	@Failure		503	{object}	ErrorResponse
//	@Router			/api/inventory/stats/by-category [get]
func (h *ValueByCategoryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	groups, err := h.svc.Item.ValueByCategory(r.Context())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	out := make([]CategoryValuationResponse, len(groups))
	for i, g := range groups {
		out[i] = CategoryValuationResponse{
			Category:      g.Category,
			ItemCount:     g.ItemCount,
			TotalUnits:    g.TotalUnits,
			CategoryValue: g.CategoryValue.InexactFloat64(),
		}
	}
	httpx.JSON(w, http.StatusOK, out)
}

package handlers

import (
	"net/http"

	"github.com/ghuser/inventory-service/pkg/errhttp"
	"github.com/ghuser/inventory-service/pkg/httpx"
	appsvcs "github.com/ghuser/inventory-service/services/inventory/application/services"
)

// LowStockHandler handles GET /api/inventory/low-stock/{threshold} requests.
type LowStockHandler struct{ base }

// NewLowStockHandler returns a LowStockHandler backed by the given services.
func NewLowStockHandler(svc *appsvcs.Services, errs *errhttp.Writer) *LowStockHandler {
	return &LowStockHandler{base{svc: svc, errs: errs}}
}

// Execute lists items at or below a stock threshold.
//
//	@Summary		List low stock items
//	@Description	Items with quantity <= threshold, ordered by quantity then name. May be empty.
//	@Tags			inventory
//	@Produce		json
//	@Param			threshold	path		int	true	"Inclusive quantity threshold"
//	@Success		200			{array}		ItemResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/api/inventory/low-stock/{threshold} [get]
func (h *LowStockHandler) Execute(w http.ResponseWriter, r *http.Request) {
	threshold, ok := pathInt(w, r, "threshold")
	if !ok {
		return
	}

	items, err := h.svc.Item.LowStock(r.Context(), int(threshold))
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toItemResponses(items))
}

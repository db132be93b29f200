package handlers

import (
	"net/http"

	"github.com/ghuser/inventory-service/pkg/errhttp"
	"github.com/ghuser/inventory-service/pkg/httpx"
	appsvcs "github.com/ghuser/inventory-service/services/inventory/application/services"
)

// GetItemHandler handles GET /api/inventory/{id} requests.
type GetItemHandler struct{ base }

// NewGetItemHandler returns a GetItemHandler backed by the given services.
func NewGetItemHandler(svc *appsvcs.Services, errs *errhttp.Writer) *GetItemHandler {
	return &GetItemHandler{base{svc: svc, errs: errs}}
}

// Execute fetches one item.
//
//	@Summary		Get item
//	@Tags			inventory
//	@Produce		json
//	@Param			id	path		int	true	"Item id"
//	@Success		200	{object}	ItemResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/inventory/{id} [get]
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	item, err := h.svc.Item.Get(r.Context(), id)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}

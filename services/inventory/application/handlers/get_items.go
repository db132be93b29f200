package handlers

import (
	"net/http"

	"github.com/ghuser/inventory-service/pkg/errhttp"
	"github.com/ghuser/inventory-service/pkg/httpx"
	appsvcs "github.com/ghuser/inventory-service/services/inventory/application/services"
)

// ListItemsHandler handles GET /api/inventory requests.
type ListItemsHandler struct{ base }

// NewListItemsHandler returns a ListItemsHandler backed by the given services.
func NewListItemsHandler(svc *appsvcs.Services, errs *errhttp.Writer) *ListItemsHandler {
	return &ListItemsHandler{base{svc: svc, errs: errs}}
}

// Execute lists every item.
//
//	@Summary		List items
//	@Description	Returns every inventory item ordered by id
//	@Tags			inventory
//	@Produce		json
//	@Success		200	{array}		ItemResponse
//	@Failure		503	{object}	ErrorResponse
//	@Router			/api/inventory [get]
func (h *ListItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Item.List(r.Context())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toItemResponses(items))
}

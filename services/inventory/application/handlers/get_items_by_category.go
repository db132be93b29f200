package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/inventory-service/pkg/errhttp"
	"github.com/ghuser/inventory-service/pkg/httpx"
	appsvcs "github.com/ghuser/inventory-service/services/inventory/application/services"
)

// ListByCategoryHandler handles GET /api/inventory/category/{category} requests.
type ListByCategoryHandler struct{ base }

// NewListByCategoryHandler returns a ListByCategoryHandler backed by the given services.
func NewListByCategoryHandler(svc *appsvcs.Services, errs *errhttp.Writer) *ListByCategoryHandler {
	return &ListByCategoryHandler{base{svc: svc, errs: errs}}
}

// Execute lists the items in a category, matched ignoring case.
//
//	@Summary		List items by category
//	@Description	Case-insensitive category match ordered by name. 404 when nothing matches.
//	@Tags			inventory
//	@Produce		json
//	@Param			category	path		string	true	"Category"
//	@Success		200			{array}		ItemResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/api/inventory/category/{category} [get]
func (h *ListByCategoryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Item.ListByCategory(r.Context(), chi.URLParam(r, "category"))
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toItemResponses(items))
}

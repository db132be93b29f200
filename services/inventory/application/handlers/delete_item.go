package handlers

import (
	"net/http"

	"github.com/ghuser/inventory-service/pkg/errhttp"
	"github.com/ghuser/inventory-service/pkg/httpx"
	appsvcs "github.com/ghuser/inventory-service/services/inventory/application/services"
)

// DeleteItemHandler handles DELETE /api/inventory/{id} requests.
type DeleteItemHandler struct{ base }

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services, errs *errhttp.Writer) *DeleteItemHandler {
	return &DeleteItemHandler{base{svc: svc, errs: errs}}
}

// Execute removes an item.
//
//	@Summary		Delete item
//	@Tags			inventory
//	@Produce		json
//	@Param			id	path		int	true	"Item id"
//	@Success		200	{object}	DeleteItemResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/inventory/{id} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	deleted, err := h.svc.Item.Delete(r.Context(), id)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, DeleteItemResponse{
		Message: "Item deleted successfully",
		ID:      deleted.ID,
		Name:    deleted.Name,
	})
}

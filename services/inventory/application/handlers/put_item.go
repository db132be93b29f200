package handlers

import (
	"net/http"

	"github.com/ghuser/inventory-service/pkg/errhttp"
	"github.com/ghuser/inventory-service/pkg/httpx"
	pkgvalidator "github.com/ghuser/inventory-service/pkg/validator"
	appsvcs "github.com/ghuser/inventory-service/services/inventory/application/services"
)

// UpdateItemHandler handles PUT and PATCH /api/inventory/{id} requests.
// Both methods have merge semantics.
type UpdateItemHandler struct{ base }

// NewUpdateItemHandler returns an UpdateItemHandler backed by the given services.
func NewUpdateItemHandler(svc *appsvcs.Services, errs *errhttp.Writer) *UpdateItemHandler {
	return &UpdateItemHandler{base{svc: svc, errs: errs}}
}

// Execute merges the supplied fields into an existing item.
//
//	@Summary		Update item
//	@Description	Overwrites the supplied fields and keeps the rest
//	@Tags			inventory
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Item id"
//	@Param			request	body		UpdateItemRequest	true	"Fields to change"
//	@Success		200		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	pkgvalidator.ValidationErrorResponse
//	@Failure		503		{object}	ErrorResponse
//	@Router			/api/inventory/{id} [put]
//	@Router			/api/inventory/{id} [patch]
func (h *UpdateItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[UpdateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.Update(r.Context(), id, req.toPatch())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}

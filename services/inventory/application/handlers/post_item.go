package handlers

import (
	"net/http"

	"github.com/ghuser/inventory-service/pkg/errhttp"
	"github.com/ghuser/inventory-service/pkg/httpx"
	pkgvalidator "github.com/ghuser/inventory-service/pkg/validator"
	appsvcs "github.com/ghuser/inventory-service/services/inventory/application/services"
)

// PostItemHandler handles POST /api/inventory requests.
type PostItemHandler struct{ base }

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services, errs *errhttp.Writer) *PostItemHandler {
	return &PostItemHandler{base{svc: svc, errs: errs}}
}

// Execute creates a new item.
//
//	@Summary		Create item
//	@Description	Creates an inventory item. Name and category are stored trimmed.
//	@Tags			inventory
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateItemRequest	true	"Item creation request"
//	@Success		201		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		413		{object}	ErrorResponse
//	@Failure		422		{object}	pkgvalidator.ValidationErrorResponse
//	@Failure		503		{object}	ErrorResponse
//	@Router			/api/inventory [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.Create(r.Context(), req.toInput())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toItemResponse(item))
}

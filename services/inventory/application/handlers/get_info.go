package handlers

import (
	"net/http"

	"github.com/ghuser/inventory-service/pkg/httpx"
)

// InfoResponse describes the service and its routes.
type InfoResponse struct {
	Service   string            `json:"service"   example:"inventory-service"`
	Version   string            `json:"version"   example:"1.0.0"`
	Entity    string            `json:"entity"    example:"inventory item"`
	Endpoints map[string]string `json:"endpoints"`
} // @name InfoResponse

// InfoHandler handles GET / requests.
type InfoHandler struct {
	resp InfoResponse
}

// NewInfoHandler returns an InfoHandler reporting the given service name and version.
func NewInfoHandler(service, version string) *InfoHandler {
	return &InfoHandler{resp: InfoResponse{
		Service: service,
		Version: version,
		Entity:  "inventory item",
		Endpoints: map[string]string{
			"health":          "GET /health",
			"metrics":         "GET /metrics",
			"docs":            "GET /swagger/index.html",
			"list":            "GET /api/inventory",
			"get":             "GET /api/inventory/{id}",
			"create":          "POST /api/inventory",
			"update":          "PUT|PATCH /api/inventory/{id}",
			"delete":          "DELETE /api/inventory/{id}",
			"byCategory":      "GET /api/inventory/category/{category}",
			"lowStock":        "GET /api/inventory/low-stock/{threshold}",
			"totalValue":      "GET /api/inventory/stats/total-value",
			"valueByCategory": "GET /api/inventory/stats/by-category",
		},
	}}
}

// Execute describes the service.
//
//	@Summary	Service info
//	@Tags		meta
//	@Produce	json
//	@Success	200	{object}	InfoResponse
//	@Router		/ [get]
func (h *InfoHandler) Execute(w http.ResponseWriter, _ *http.Request) {
	httpx.JSON(w, http.StatusOK, h.resp)
}

package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/inventory-service/pkg/app"
	"github.com/ghuser/inventory-service/services/inventory/application/handlers"
	appsvcs "github.com/ghuser/inventory-service/services/inventory/application/services"
)

// InventoryRoutes registers inventory endpoints on the provided chi router.
// Static segments (category, low-stock, stats) take precedence over {id}.
func InventoryRoutes(r chi.Router, a *app.Application, svcs *appsvcs.Services) {
	errs := a.Errors
	r.Route("/api/inventory", func(r chi.Router) {
		r.Get("/", handlers.NewListItemsHandler(svcs, errs).Execute)
		r.Post("/", handlers.NewPostItemHandler(svcs, errs).Execute)

		r.Get("/category/{category}", handlers.NewListByCategoryHandler(svcs, errs).Execute)
		r.Get("/low-stock/{threshold}", handlers.NewLowStockHandler(svcs, errs).Execute)

		r.Route("/stats", func(r chi.Router) {
			r.Get("/total-value", handlers.NewTotalValueHandler(svcs, errs).Execute)
			r.Get("/by-category", handlers.NewValueByCategoryHandler(svcs, errs).Execute)
		})

		r.Route("/{id}", func(r chi.Router) {
			update := handlers.NewUpdateItemHandler(svcs, errs).Execute
			r.Get("/", handlers.NewGetItemHandler(svcs, errs).Execute)
			r.Put("/", update)
			r.Patch("/", update)
			r.Delete("/", handlers.NewDeleteItemHandler(svcs, errs).Execute)
		})
	})
}

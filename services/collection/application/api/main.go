package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/boxjoy/pkg/config"
	"github.com/ghuser/boxjoy/services/collection/application/handlers"
	appsvcs "github.com/ghuser/boxjoy/services/collection/application/services"
)

// CollectionRoutes registers series, item, stats, reset and classify endpoints on
// the provided chi router.
func CollectionRoutes(r chi.Router, cfg *config.Config, svcs *appsvcs.Services) {
	production := cfg.Environment == config.EnvProduction

	series := handlers.NewSeriesHandler(svcs, production)
	items := handlers.NewItemsHandler(svcs, production)
	stats := handlers.NewStatsHandler(svcs, production)

	r.Group(func(r chi.Router) {
		r.Route("/series", func(r chi.Router) {
			r.Get("/", series.List)
			r.Post("/", series.Create)
			r.Get("/{id}", series.Get)
			r.Put("/{id}", series.Update)
			r.Delete("/{id}", series.Delete)
			r.Get("/{id}/slots", series.Slots)
		})
		r.Route("/items", func(r chi.Router) {
			r.Get("/", items.List)
			r.Post("/", items.Create)
			r.Get("/{id}", items.Get)
			r.Put("/{id}", items.Update)
			r.Delete("/{id}", items.Delete)
		})
		r.Get("/stats", stats.Get)
		r.Get("/stats/snapshot", stats.Snapshot)
		r.Post("/reset", handlers.NewResetHandler(svcs, production).Execute)
		r.Post("/classify", handlers.NewClassifyHandler(svcs, production).Execute)
	})
}

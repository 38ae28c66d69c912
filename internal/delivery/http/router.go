package http

import (
	"net/http"

	"pagewindow/internal/delivery/http/controllers"

	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter initializes the HTTP router with all application routes.
// metrics serves the Prometheus exposition format on /metrics.
func NewRouter(catalog *controllers.CatalogController, health *controllers.HealthController, metrics http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	// Catalog
	mux.HandleFunc("GET /items", catalog.ListItemsPage)
	mux.HandleFunc("GET /api/items", catalog.ListItems)

	// Operations
	mux.HandleFunc("GET /health", health.Health)
	mux.Handle("GET /metrics", metrics)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

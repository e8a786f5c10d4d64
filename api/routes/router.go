package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/smoralesdev/franchise-backend/api/controllers"
	"github.com/smoralesdev/franchise-backend/api/middleware"
	"github.com/smoralesdev/franchise-backend/internal/branches"
	"github.com/smoralesdev/franchise-backend/internal/franchises"
	"github.com/smoralesdev/franchise-backend/internal/products"
	"github.com/smoralesdev/franchise-backend/pkg/config"
	"github.com/smoralesdev/franchise-backend/pkg/db"
	"github.com/smoralesdev/franchise-backend/pkg/logger"
	"github.com/smoralesdev/franchise-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	franchiseService franchises.Service,
	branchService branches.Service,
	productService products.Service,
	httpMetrics *metrics.HTTPMetrics,
	metricsHandler http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})

	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/franchises", func(r chi.Router) {
			r.Post("/", controllers.FranchiseCreate(franchiseService, logg))
			r.Patch("/{franchiseId}/name", controllers.FranchiseUpdateName(franchiseService, logg))
			r.Get("/{franchiseId}/top-stock-products", controllers.ProductTopStock(productService, logg))
		})

		r.Route("/branches", func(r chi.Router) {
			r.Post("/", controllers.BranchCreate(branchService, logg))
			r.Patch("/{branchId}/name", controllers.BranchUpdateName(branchService, logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.Post("/", controllers.ProductCreate(productService, logg))
			r.Delete("/{productId}", controllers.ProductDelete(productService, logg))
			r.Patch("/{productId}/stock", controllers.ProductUpdateStock(productService, logg))
			r.Patch("/{productId}/name", controllers.ProductUpdateName(productService, logg))
		})
	})

	return r
}

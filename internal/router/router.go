package router

import (
	"net/http"

	"mini-shop/internal/handler"
	"mini-shop/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

// New creates the HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	diagnosticsHandler *handler.DiagnosticsHandler,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CorrelationID)
	r.Use(middleware.Logging(logger))

	// Fully open CORS: the API fronts demo storefronts served from
	// arbitrary origins.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", handler.Root)
	r.Get("/api/health", handler.Health)
	r.Get("/api/products", productHandler.List)
	r.Post("/api/orders", orderHandler.Create)
	r.Get("/test", diagnosticsHandler.Check)

	return r
}

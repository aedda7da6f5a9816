// Package subtrack предоставляет маршруты для основного приложения.
package subtrack

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/mrivera-hn/subtrack/internal/http/handlers/subscription/create"
	"github.com/mrivera-hn/subtrack/internal/http/handlers/subscription/health"
	"github.com/mrivera-hn/subtrack/internal/http/handlers/subscription/list"
	"github.com/mrivera-hn/subtrack/internal/http/handlers/subscription/read"
	"github.com/mrivera-hn/subtrack/internal/http/handlers/subscription/remove"
	"github.com/mrivera-hn/subtrack/internal/http/handlers/subscription/update"
	subservice "github.com/mrivera-hn/subtrack/internal/services/subscription"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, subscriptionService *subservice.SubscriptionService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)
	// Фронтенд живёт на другом origin, API открыт для браузерных запросов.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/subscriptions", list.New(logger, subscriptionService).ServeHTTP)
		r.Post("/subscriptions", create.New(logger, subscriptionService).ServeHTTP)
		r.Get("/subscriptions/{id}", read.New(logger, subscriptionService).ServeHTTP)
		r.Put("/subscriptions/{id}", update.New(logger, subscriptionService).ServeHTTP)
		r.Delete("/subscriptions/{id}", remove.New(logger, subscriptionService).ServeHTTP)

		r.Get("/health", health.New(logger).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}

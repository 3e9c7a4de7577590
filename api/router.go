package api

import (
	"net/http"
	"storefront_server/api/cart"
	"storefront_server/api/checkout"
	"storefront_server/api/health"
	"storefront_server/api/middleware"
	"storefront_server/api/pages"
	"storefront_server/api/products"
	"storefront_server/config"
	"storefront_server/services"
	"storefront_server/storage"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	chiware "github.com/go-chi/chi/v5/middleware"
)

func App(store storage.CartStore) chi.Router {
	r := chi.NewRouter()

	// create loggers
	logLevel := gecho.ParseLogLevel(config.GetLogLevel())
	mwLogger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(false), gecho.WithLogLevel(logLevel)))
	standardLogger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(true), gecho.WithLogLevel(logLevel)))

	// config
	cfg := config.GetConfig()

	// services
	sm := services.NewServiceManager(standardLogger, cfg, store)

	// Rate limiting needs a counter backend; only the redis store provides one.
	var limiter middleware.Limiter
	if rs, ok := store.(*storage.RedisStore); ok {
		limiter = rs
	}

	// Initialize middleware
	mw := middleware.NewMiddleware(cfg, mwLogger, limiter)

	// Core infra
	r.Use(chiware.RequestID)
	r.Use(chiware.RealIP)
	r.Use(chiware.Recoverer)

	// Limits & security
	r.Use(mw.BodyLimit(1 * 1024 * 1024))
	r.Use(mw.SecurityHeaders())

	// Observability
	r.Use(mw.SetupLoggerMiddleware())
	r.Use(middleware.MetricsMiddleware)

	// CORS (must come before rate limiting so preflights stay cheap)
	r.Use(mw.SetupCORS().Handler)

	r.Use(mw.RateLimitMiddleware())

	// Register all routes
	NewRouterManager(
		products.NewProductRoutesManager(standardLogger, sm.CatalogService),
		cart.NewCartRoutesManager(standardLogger, cfg, sm.CartService, sm.CatalogService),
		checkout.NewCheckoutRoutesManager(standardLogger, cfg, sm.CheckoutService),
		pages.NewPagesRoutesManager(standardLogger, cfg, sm.EmailService),
		health.NewHealthRoutesManager(sm.HealthService),
	).RegisterRoutes(r)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		gecho.Success(w,
			gecho.WithMessage("Welcome to the Storefront API"),
			gecho.Send(),
		)
	})

	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		gecho.NotFound(w,
			gecho.Send(),
		)
	})

	return r
}

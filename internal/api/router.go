package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/storefront/catalog-api/internal/api/handler"
	"github.com/storefront/catalog-api/internal/core/ports"
)

// RouterConfig carries the settings the HTTP pipeline needs.
type RouterConfig struct {
	Env     string
	Version string
	// RateLimit is the per-IP request budget per minute. 0 disables the limiter.
	RateLimit float64
	// BodyLimit caps request body size (Echo's human-readable format, e.g. "10M").
	BodyLimit string
}

type rootResponse struct {
	Message     string `json:"message"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
	Timestamp   string `json:"timestamp"`
}

// NewRouter builds the Echo instance with all middleware and routes registered.
// Readiness checks are forwarded to the health handler; with none given the
// service always reports ready.
func NewRouter(cfg RouterConfig, log zerolog.Logger, users ports.UserService, products ports.ProductService, checks ...handler.ReadinessCheck) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.Env)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Secure())
	e.Use(echomiddleware.CORS())
	if cfg.BodyLimit != "" {
		e.Use(echomiddleware.BodyLimit(cfg.BodyLimit))
	}
	if cfg.RateLimit > 0 {
		e.Use(echomiddleware.RateLimiter(
			echomiddleware.NewRateLimiterMemoryStore(rate.Limit(cfg.RateLimit / 60))))
	}
	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus:    true,
		LogMethod:    true,
		LogURI:       true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	}))
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Handlers ---
	userHandler := handler.NewUserHandler(users)
	productHandler := handler.NewProductHandler(products)
	healthHandler := handler.NewHealthHandler(cfg.Env, cfg.Version, checks...)

	// --- Root and operational endpoints ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, rootResponse{
			Message:     "Welcome to Catalog API",
			Version:     cfg.Version,
			Environment: cfg.Env,
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
		})
	})
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes ---
	e.GET("/api/health", healthHandler.Basic)
	e.GET("/api/health/detailed", healthHandler.Detailed)
	e.GET("/api/health/ready", healthHandler.Ready)
	e.GET("/api/health/live", healthHandler.Live)

	// --- Users ---
	e.GET("/api/users", userHandler.List)
	e.GET("/api/users/:id", userHandler.Get)
	e.POST("/api/users", userHandler.Create)
	e.PUT("/api/users/:id", userHandler.Update)
	e.DELETE("/api/users/:id", userHandler.Delete)

	// --- Products ---
	e.GET("/api/products", productHandler.List)
	// Registered before the parameterised id route on purpose: Echo resolves
	// static segments first, but keeping the order explicit mirrors the API docs.
	e.GET("/api/products/category/:category", productHandler.ByCategory)
	e.GET("/api/products/:id", productHandler.Get)
	e.POST("/api/products", productHandler.Create)
	e.PUT("/api/products/:id", productHandler.Update)
	e.DELETE("/api/products/:id", productHandler.Delete)

	return e
}

package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

type AppConfig struct {
	CORSOrigins    string
	RateLimitRPS   float64
	RateLimitBurst int
	RequireAccess  bool
	StaticDir      string
}

// NewApp assembles the fiber app: middleware, API routes, optional static
// frontend and the JSON not-found fallback.
func NewApp(handler *Handler, config AppConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "liftlog",
		DisableStartupMessage: true,
		ErrorHandler:          handler.errorHandler,
	})

	origins := strings.TrimSpace(config.CORSOrigins)
	if origins == "" {
		origins = "*"
	}

	metrics := newHTTPMetrics()

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: requestIDKey,
	}))
	app.Use(handler.RequestLogger)
	app.Use(metrics.middleware)
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(compress.New())
	if config.RateLimitRPS > 0 {
		app.Use(newIPRateLimiter(config.RateLimitRPS, config.RateLimitBurst).middleware)
	}

	app.Get("/metrics", metrics.handler())
	RegisterRoutes(app, handler, config.RequireAccess)

	if dir := strings.TrimSpace(config.StaticDir); dir != "" {
		app.Static("/", dir)
	}
	app.Use(handler.NotFound)
	return app
}

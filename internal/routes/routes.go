package routes

import (
	"time"

	"github.com/docuplain/docuplain-backend/internal/config"
	"github.com/docuplain/docuplain-backend/internal/handlers"
	"github.com/docuplain/docuplain-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	fileHandler *handlers.FileHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Protected routes (JWT required) - apply middleware per route so the
	// public auth routes above stay unguarded.
	api.Get("/auth/profile", middleware.JWTProtected(cfg), authHandler.GetProfile)
	api.Put("/auth/update-profile", middleware.JWTProtected(cfg), authHandler.UpdateProfile)
	api.Delete("/auth/profile", middleware.JWTProtected(cfg), authHandler.DeactivateAccount)

	files := api.Group("/files", middleware.JWTProtected(cfg))
	files.Post("/upload", fileHandler.Upload)
	files.Get("/stats", fileHandler.Stats)
	files.Get("/uploads", fileHandler.ListUploads)
}

package routes

import (
	"time"

	"github.com/agrocare/agrocare-backend/internal/apps"
	"github.com/agrocare/agrocare-backend/internal/config"
	"github.com/agrocare/agrocare-backend/internal/handlers"
	"github.com/agrocare/agrocare-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	profileHandler *handlers.ProfileHandler,
	notificationHandler *handlers.NotificationHandler,
	healthHandler *handlers.HealthHandler,
	plugins []apps.Plugin,
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

	// Auth — public, with a stricter 10 req/min limit
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	api.Get("/me", middleware.JWTProtected(cfg), authHandler.Me)
	api.Put("/profile/:role/:user_id", middleware.JWTProtected(cfg), profileHandler.Update)

	// Protected group for plugin routes and shared user-scoped resources.
	protected := api.Group("/p", middleware.JWTProtected(cfg))
	protected.Get("/notifications", notificationHandler.List)
	protected.Put("/notifications/:id/read", notificationHandler.MarkRead)
	protected.Put("/notifications/read-all", notificationHandler.MarkAllRead)
	protected.Get("/activity", notificationHandler.Activity)

	// Admin group: user approval plus whatever the plugins expose.
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Get("/users", userHandler.List)
	admin.Put("/users/:id/approve", userHandler.Approve)

	// Unauthenticated domain routes (public complaints).
	public := api.Group("/public")

	for _, p := range plugins {
		p.RegisterRoutes(protected, db, cfg)
		if ap, ok := p.(apps.AdminPlugin); ok {
			ap.RegisterAdminRoutes(admin, db, cfg)
		}
		if pp, ok := p.(apps.PublicPlugin); ok {
			pp.RegisterPublicRoutes(public, db, cfg)
		}
	}
}

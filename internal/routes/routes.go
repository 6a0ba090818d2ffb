package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rdsimon13/sif-backend/internal/config"
	"github.com/rdsimon13/sif-backend/internal/handlers"
	"github.com/rdsimon13/sif-backend/internal/middleware"
	"github.com/rdsimon13/sif-backend/internal/moderator"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	roster *moderator.Roster,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	safetyHandler *handlers.SafetyHandler,
	moderationHandler *handlers.ModerationHandler,
	feedHandler *handlers.FeedHandler,
	legalHandler *handlers.LegalHandler,
	configHandler *handlers.ClientConfigHandler,
) {
	// Prometheus scrape endpoint (outside the rate-limited API group)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Remote config (public)
	api.Get("/config", configHandler.GetConfig)

	// Legal pages
	api.Get("/legal/privacy", legalHandler.PrivacyPolicy)
	api.Get("/legal/terms", legalHandler.TermsOfService)
	api.Get("/legal/guidelines", legalHandler.CommunityGuidelines)

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
	auth.Post("/refresh", authHandler.Refresh)
	auth.Post("/apple", authHandler.AppleSignIn)

	// Protected routes (JWT required) - apply middleware to individual routes
	// so the public routes above stay public
	jwt := middleware.JWTProtected(cfg)
	api.Post("/auth/logout", jwt, authHandler.Logout)
	api.Delete("/auth/account", jwt, authHandler.DeleteAccount)

	// Messages and feeds
	api.Post("/messages", jwt, feedHandler.CreateMessage)
	api.Get("/feed", jwt, feedHandler.GetFeed)
	api.Get("/users/:id/messages", jwt, feedHandler.GetUserMessages)

	// Safety — user endpoints
	api.Post("/reports", jwt, safetyHandler.SubmitReport)
	api.Post("/blocks", jwt, safetyHandler.BlockUser)
	api.Delete("/blocks/:id", jwt, safetyHandler.UnblockUser)
	api.Get("/blocks", jwt, safetyHandler.ListBlockedUsers)
	api.Get("/blocks/info", jwt, safetyHandler.BlockingInfo)
	api.Get("/blocks/:id", jwt, safetyHandler.BlockStatus)

	// Moderator panel (JWT + moderator role)
	mod := api.Group("/mod", jwt, middleware.ModeratorRequired(db, cfg, roster))
	mod.Get("/reports", moderationHandler.ListReports)
	mod.Get("/reports/pending", moderationHandler.PendingQueue)
	mod.Get("/reports/stats", moderationHandler.ContentStats)
	mod.Put("/reports/:id/review", moderationHandler.StartReview)
	mod.Put("/reports/:id/resolve", moderationHandler.ResolveReport)
	mod.Put("/reports/:id/dismiss", moderationHandler.DismissReport)

	// Moderator config management
	mod.Put("/config/:key", configHandler.SetConfigKey)
	mod.Delete("/config/:key", configHandler.DeleteConfigKey)
}

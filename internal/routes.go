package internal

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/karloscodes/cartridge"
	cartridgemiddleware "github.com/karloscodes/cartridge/middleware"

	v1 "ttig/api/v1"
	"ttig/internal/config"
	"ttig/internal/engagement"
	"ttig/internal/http"
	"ttig/internal/places"
)

// publicCORSConfig returns the standard CORS configuration for public endpoints.
// All public endpoints share this permissive CORS setup for cross-origin access.
var publicCORSConfig = &cors.Config{
	AllowOrigins: "*",
	AllowMethods: "POST,GET,OPTIONS",
	AllowHeaders: "Origin, Content-Type, Accept, Authorization, Referrer, User-Agent",
}

// SetupSession configures session management on the server.
func SetupSession(srv *cartridge.Server) {
	cfg := config.GetConfig()
	sessionMgr := cartridge.NewSessionManager(cartridge.SessionConfig{
		CookieName: cfg.AppName + "_session",
		Secret:     cfg.GetSessionSecret(),
		TTL:        time.Duration(cfg.GetLoginSessionTimeout()) * time.Second,
		Secure:     cfg.IsProduction(),
		LoginPath:  "/login",
	})
	srv.SetSession(sessionMgr)
}

// MountAppRoutes mounts all application routes using cartridge's route API
func MountAppRoutes(srv *cartridge.Server, store *places.Store) {
	SetupSession(srv)

	cfg := config.GetConfig()
	sessionMgr := srv.Session()

	// Helper to conditionally apply rate limiting (only in production)
	// In development/test, rate limiting would interfere with testing
	conditionalRateLimiter := func(limiter fiber.Handler) fiber.Handler {
		return func(c *fiber.Ctx) error {
			if cfg.IsProduction() {
				return limiter(c)
			}
			return c.Next()
		}
	}

	// Rate limiter for the public API (70 requests per minute per IP)
	publicRateLimiter := conditionalRateLimiter(cartridgemiddleware.RateLimiter(
		cartridgemiddleware.WithMax(70),
		cartridgemiddleware.WithDuration(time.Minute),
	))

	// Stricter rate limiter for auth endpoints (10 requests per minute)
	// Prevents brute force login attempts
	authRateLimiter := conditionalRateLimiter(cartridgemiddleware.RateLimiter(
		cartridgemiddleware.WithMax(10),
		cartridgemiddleware.WithDuration(time.Minute),
	))

	// Public API config: rate limiting + permissive CORS, the tracking
	// snippet and catalog are fetched cross-origin from the marketing pages.
	// No Sec-Fetch-Site: these endpoints are called cross-site by design and
	// by clients that never send the header.
	publicAPIConfig := &cartridge.RouteConfig{
		EnableCORS:         true,
		WriteConcurrency:   false,
		CustomMiddleware:   []fiber.Handler{publicRateLimiter},
		CORSConfig:         publicCORSConfig,
		EnableSecFetchSite: cartridge.Bool(false),
	}

	loginConfig := &cartridge.RouteConfig{
		CustomMiddleware: []fiber.Handler{authRateLimiter},
	}

	adminAPIConfig := &cartridge.RouteConfig{
		CustomMiddleware: []fiber.Handler{sessionMgr.Middleware()},
	}

	preflight := func(ctx *cartridge.Context) error {
		return ctx.SendStatus(fiber.StatusNoContent)
	}

	// === HEALTH ===
	srv.Get("/_health", http.HealthIndexAction)
	srv.Head("/_health", http.HealthIndexAction)

	// === PUBLIC ANALYTICS ===
	srv.Get("/api/analytics/track", v1.TrackPageViewHandler, publicAPIConfig)
	srv.Options("/api/analytics/track", preflight, publicAPIConfig)

	// === PUBLIC CATALOG ===
	srv.Get("/api/places", v1.ListPlacesHandler(store), publicAPIConfig)
	srv.Get("/api/places/:slug", v1.GetPlaceHandler(store), publicAPIConfig)

	// === CONTACT ===
	srv.Post("/api/contact", v1.CreateInquiryHandler, publicAPIConfig)
	srv.Options("/api/contact", preflight, publicAPIConfig)

	// === ENGAGEMENT ===
	srv.Post("/api/spaces/:id/view", v1.RecordEngagementHandler(store, engagement.KindView), publicAPIConfig)
	srv.Post("/api/spaces/:id/keep", v1.RecordEngagementHandler(store, engagement.KindKeep), publicAPIConfig)
	srv.Post("/api/spaces/:id/share", v1.RecordEngagementHandler(store, engagement.KindShare), publicAPIConfig)
	srv.Options("/api/spaces/:id/view", preflight, publicAPIConfig)
	srv.Options("/api/spaces/:id/keep", preflight, publicAPIConfig)
	srv.Options("/api/spaces/:id/share", preflight, publicAPIConfig)

	// === AUTHENTICATION ===
	srv.Post("/login", http.ProcessLoginAction, loginConfig)
	srv.Post("/logout", http.LogoutAction)
	srv.Get("/api/auth/session", http.SessionInfoAction)

	// === PROTECTED ADMIN API ===
	srv.Get("/admin/api/analytics", http.AdminAnalyticsAction, adminAPIConfig)
	srv.Get("/admin/api/engagement", http.AdminEngagementAction, adminAPIConfig)
	srv.Get("/admin/api/inquiries", http.AdminInquiriesAction, adminAPIConfig)
	srv.Post("/admin/api/places", http.PlaceCreateAction(store), adminAPIConfig)
	srv.Post("/admin/api/places/:id", http.PlaceUpdateAction(store), adminAPIConfig)
	srv.Delete("/admin/api/places/:id", http.PlaceDeleteAction(store), adminAPIConfig)
}

package v1

import (
	"net/http"
	"time"

	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/karloscodes/cartridge"

	"ttig/internal/analytics"
	"ttig/internal/config"
	"ttig/internal/pkg/useragent"
	"ttig/internal/visitors"
)

const errBotDetected = "Bot detected"

// TrackPageViewHandler ingests one page view. Bots are rejected without any
// writes; everything else resolves a visitor identity, classifies the traffic
// source, and bumps the daily counters. An aggregator failure still answers
// success with zeroed counters: the tracking pixel must never break the page
// that embeds it.
func TrackPageViewHandler(ctx *cartridge.Context) error {
	userAgentHeader := ctx.Get("User-Agent")
	if forwardedUA := ctx.Get("X-Forwarded-User-Agent"); forwardedUA != "" {
		userAgentHeader = forwardedUA
	}

	if useragent.IsBot(userAgentHeader) {
		ctx.Logger.Debug("Rejected bot page view",
			slog.String("userAgent", userAgentHeader),
			slog.String("ip", clientIP(ctx.Ctx)))
		return ctx.Status(http.StatusOK).JSON(fiber.Map{
			"success": false,
			"error":   errBotDetected,
		})
	}

	cfg := ctx.Config.(*config.Config)

	identity := visitors.Resolve(ctx.Cookies(visitors.CookieName))
	source := analytics.ClassifySource(
		ctx.Query("utm_source"),
		ctx.Query("utm_medium"),
		ctx.Get("Referer"),
		cfg.SiteHost,
	)

	if identity.New {
		ctx.Cookie(&fiber.Cookie{
			Name:     visitors.CookieName,
			Value:    identity.ID,
			Path:     "/",
			MaxAge:   int(visitors.IdentityTTL.Seconds()),
			Secure:   cfg.IsProduction(),
			HTTPOnly: true,
			SameSite: "Lax",
		})
	}

	response := fiber.Map{
		"success":        true,
		"isNewVisitor":   identity.New,
		"visitors":       0,
		"pageViews":      0,
		"trafficSource":  source,
		"trafficSources": (&analytics.DailyStat{}).TrafficSources(),
	}

	stat, err := analytics.RecordPageView(ctx.DB(), ctx.Logger, time.Now().UTC(), identity.New, source)
	if err != nil {
		// Fail soft: the visit goes uncounted but the response stays green.
		ctx.Logger.Error("Failed to record page view", slog.Any("error", err))
		return ctx.Status(http.StatusOK).JSON(response)
	}

	response["visitors"] = stat.Visitors
	response["pageViews"] = stat.PageViews
	response["trafficSources"] = stat.TrafficSources()

	ctx.Logger.Debug("Tracked page view",
		slog.String("ip", clientIP(ctx.Ctx)),
		slog.String("source", string(source)),
		slog.Bool("newVisitor", identity.New))

	return ctx.Status(http.StatusOK).JSON(response)
}

package http

import (
	nethttp "net/http"

	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/karloscodes/cartridge"

	"ttig/internal/analytics"
	"ttig/internal/engagement"
)

// dashboardDays is the window the admin dashboard charts.
const dashboardDays = 7

type dailyStatResponse struct {
	Date           string                          `json:"date"`
	Visitors       int                             `json:"visitors"`
	PageViews      int                             `json:"pageViews"`
	TrafficSources map[analytics.TrafficSource]int `json:"trafficSources"`
}

// AdminAnalyticsAction returns the last week of daily counters for the admin
// dashboard, ascending by date.
func AdminAnalyticsAction(ctx *cartridge.Context) error {
	stats, err := analytics.StatsSince(ctx.DB(), dashboardDays)
	if err != nil {
		ctx.Logger.Error("Failed to load daily stats", slog.Any("error", err))
		return ctx.Status(nethttp.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load analytics",
		})
	}

	days := make([]dailyStatResponse, 0, len(stats))
	for i := range stats {
		days = append(days, dailyStatResponse{
			Date:           stats[i].Date,
			Visitors:       stats[i].Visitors,
			PageViews:      stats[i].PageViews,
			TrafficSources: stats[i].TrafficSources(),
		})
	}

	return ctx.Status(nethttp.StatusOK).JSON(fiber.Map{"days": days})
}

// AdminEngagementAction returns the per-listing engagement counters.
func AdminEngagementAction(ctx *cartridge.Context) error {
	stats, err := engagement.ListAll(ctx.DB())
	if err != nil {
		ctx.Logger.Error("Failed to load engagement stats", slog.Any("error", err))
		return ctx.Status(nethttp.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load engagement",
		})
	}
	if stats == nil {
		stats = []engagement.EngagementStat{}
	}

	return ctx.Status(nethttp.StatusOK).JSON(fiber.Map{"engagement": stats})
}

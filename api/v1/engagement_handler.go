package v1

import (
	"net/http"

	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/karloscodes/cartridge"

	"ttig/internal/engagement"
	"ttig/internal/places"
)

// RecordEngagementHandler returns a handler that counts one engagement action
// for the listing in the :id path segment (place ID or slug). Counting
// failures are logged and swallowed; these endpoints sit behind visitor
// interactions and must never surface errors.
func RecordEngagementHandler(store *places.Store, kind engagement.Kind) func(*cartridge.Context) error {
	return func(ctx *cartridge.Context) error {
		key := ctx.Params("id")
		if key == "" {
			return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   errInvalidRequest,
			})
		}

		if err := engagement.Increment(ctx.DB(), ctx.Logger, store, key, kind); err != nil {
			ctx.Logger.Error("Failed to record engagement",
				slog.String("key", key),
				slog.String("kind", string(kind)),
				slog.Any("error", err))
		}

		response := fiber.Map{"success": true}
		if kind == engagement.KindKeep {
			response["isKept"] = true
		}
		return ctx.Status(http.StatusOK).JSON(response)
	}
}

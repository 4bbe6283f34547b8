package http

import (
	nethttp "net/http"

	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/karloscodes/cartridge"

	"ttig/internal/places"
)

// PlaceCreateAction returns a handler that adds a listing to the catalog.
// New listings are prepended so they lead the public site.
func PlaceCreateAction(store *places.Store) func(*cartridge.Context) error {
	return func(ctx *cartridge.Context) error {
		var place places.Place
		if err := ctx.BodyParser(&place); err != nil {
			return ctx.Status(nethttp.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid request",
			})
		}

		if place.Title == "" || place.Category == "" || place.District == "" {
			return ctx.Status(nethttp.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Title, category, and district are required",
			})
		}

		if place.ID == "" {
			place.ID = uuid.New().String()
		}
		if place.Slug == "" {
			place.Slug = places.BuildSlug(place.District, place.Category, place.Title)
		}

		if err := store.Add(place); err != nil {
			ctx.Logger.Error("Failed to add place", slog.Any("error", err))
			return ctx.Status(nethttp.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"error":   "Failed to save place",
			})
		}

		ctx.Logger.Info("Added place", slog.String("id", place.ID), slog.String("slug", place.Slug))
		return ctx.Status(nethttp.StatusOK).JSON(fiber.Map{
			"success": true,
			"place":   place,
		})
	}
}

// PlaceUpdateAction returns a handler that replaces the listing at :id.
func PlaceUpdateAction(store *places.Store) func(*cartridge.Context) error {
	return func(ctx *cartridge.Context) error {
		var place places.Place
		if err := ctx.BodyParser(&place); err != nil {
			return ctx.Status(nethttp.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid request",
			})
		}

		place.ID = ctx.Params("id")
		if place.Slug == "" {
			place.Slug = places.BuildSlug(place.District, place.Category, place.Title)
		}

		if err := store.Update(place); err != nil {
			if places.IsNotFound(err) {
				return ctx.Status(nethttp.StatusNotFound).JSON(fiber.Map{
					"success": false,
					"error":   "Place not found",
				})
			}
			ctx.Logger.Error("Failed to update place", slog.String("id", place.ID), slog.Any("error", err))
			return ctx.Status(nethttp.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"error":   "Failed to save place",
			})
		}

		return ctx.Status(nethttp.StatusOK).JSON(fiber.Map{
			"success": true,
			"place":   place,
		})
	}
}

// PlaceDeleteAction returns a handler that removes the listing at :id.
func PlaceDeleteAction(store *places.Store) func(*cartridge.Context) error {
	return func(ctx *cartridge.Context) error {
		id := ctx.Params("id")

		if err := store.Remove(id); err != nil {
			ctx.Logger.Error("Failed to remove place", slog.String("id", id), slog.Any("error", err))
			return ctx.Status(nethttp.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"error":   "Failed to remove place",
			})
		}

		return ctx.Status(nethttp.StatusOK).JSON(fiber.Map{"success": true})
	}
}

package v1

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/karloscodes/cartridge"

	"ttig/internal/places"
)

// ListPlacesHandler returns the public catalog, optionally filtered by
// category.
func ListPlacesHandler(store *places.Store) func(*cartridge.Context) error {
	return func(ctx *cartridge.Context) error {
		category := ctx.Query("category")

		var all []places.Place
		if category != "" {
			all = store.ByCategory(category)
		} else {
			all = store.All()
		}
		if all == nil {
			all = []places.Place{}
		}

		return ctx.Status(http.StatusOK).JSON(fiber.Map{"places": all})
	}
}

// GetPlaceHandler returns one listing by slug.
func GetPlaceHandler(store *places.Store) func(*cartridge.Context) error {
	return func(ctx *cartridge.Context) error {
		slug := ctx.Params("slug")

		place, err := store.FindBySlug(slug)
		if err != nil {
			return ctx.Status(http.StatusNotFound).JSON(fiber.Map{
				"error": "Place not found",
			})
		}

		return ctx.Status(http.StatusOK).JSON(place)
	}
}

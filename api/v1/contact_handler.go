package v1

import (
	"errors"
	"net/http"

	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/karloscodes/cartridge"

	"ttig/internal/inquiries"
)

const errInvalidRequest = "Invalid request"

type createInquiryParams struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// CreateInquiryHandler handles contact form submissions.
func CreateInquiryHandler(ctx *cartridge.Context) error {
	var params createInquiryParams
	if err := ctx.BodyParser(&params); err != nil {
		ctx.Logger.Debug("Failed to parse inquiry request", slog.Any("error", err))
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   errInvalidRequest,
		})
	}

	_, err := inquiries.Create(ctx.DB(), ctx.Logger, params.Name, params.Email, params.Message)
	if err != nil {
		var invalid *inquiries.InvalidInquiryError
		if errors.As(err, &invalid) {
			return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   invalid.Error(),
			})
		}

		ctx.Logger.Error("Failed to store inquiry", slog.Any("error", err))
		return ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to store inquiry",
		})
	}

	return ctx.Status(http.StatusOK).JSON(fiber.Map{"success": true})
}

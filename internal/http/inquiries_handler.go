package http

import (
	nethttp "net/http"

	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/karloscodes/cartridge"

	"ttig/internal/inquiries"
)

const inquiriesPageSize = 50

// AdminInquiriesAction lists recent contact inquiries, newest first.
func AdminInquiriesAction(ctx *cartridge.Context) error {
	all, err := inquiries.ListRecent(ctx.DB(), inquiriesPageSize)
	if err != nil {
		ctx.Logger.Error("Failed to load inquiries", slog.Any("error", err))
		return ctx.Status(nethttp.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load inquiries",
		})
	}
	if all == nil {
		all = []inquiries.Inquiry{}
	}

	return ctx.Status(nethttp.StatusOK).JSON(fiber.Map{"inquiries": all})
}

// Package http holds the admin and auth handlers.
package http

import (
	"errors"
	nethttp "net/http"

	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/karloscodes/cartridge"

	"ttig/internal/users"
)

type loginParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProcessLoginAction handles the admin login submission.
func ProcessLoginAction(ctx *cartridge.Context) error {
	email := ctx.FormValue("email")
	password := ctx.FormValue("password")

	// JSON body from the admin frontend
	if email == "" && password == "" {
		var params loginParams
		if err := ctx.BodyParser(&params); err == nil {
			email = params.Email
			password = params.Password
		}
	}

	if email == "" || password == "" {
		return ctx.Status(nethttp.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Email and password are required",
		})
	}

	user, err := users.Authenticate(ctx.DB(), email, password)
	if err != nil {
		if !errors.Is(err, users.ErrUserNotFound) {
			ctx.Logger.Error("Login lookup failed", slog.Any("error", err))
		}
		// Generic error message - don't reveal whether email exists
		return ctx.Status(nethttp.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid email or password",
		})
	}

	if err := ctx.Session.SetSession(ctx.Ctx, user.ID); err != nil {
		ctx.Logger.Error("Failed to set session", slog.Any("error", err))
		return ctx.Status(nethttp.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Login failed",
		})
	}

	ctx.Logger.Debug("Login successful",
		slog.String("email", email),
		slog.Int("userId", int(user.ID)))

	return ctx.Status(nethttp.StatusOK).JSON(fiber.Map{
		"success": true,
		"email":   user.Email,
	})
}

// LogoutAction clears the admin session.
func LogoutAction(ctx *cartridge.Context) error {
	ctx.Session.ClearSession(ctx.Ctx)
	return ctx.Status(nethttp.StatusOK).JSON(fiber.Map{"success": true})
}

// SessionInfoAction reports whether the request carries a valid admin session.
func SessionInfoAction(ctx *cartridge.Context) error {
	userID, authenticated := ctx.Session.GetUserID(ctx.Ctx)
	if !authenticated {
		return ctx.Status(nethttp.StatusOK).JSON(fiber.Map{"authenticated": false})
	}

	user, err := users.FindByID(ctx.DB(), userID)
	if err != nil {
		ctx.Logger.Warn("Session references missing user", slog.Uint64("userID", uint64(userID)))
		return ctx.Status(nethttp.StatusOK).JSON(fiber.Map{"authenticated": false})
	}

	return ctx.Status(nethttp.StatusOK).JSON(fiber.Map{
		"authenticated": true,
		"email":         user.Email,
	})
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"fashionfuel/internal/auth"
	applog "fashionfuel/internal/log"
)

func RequireAdmin(authSvc *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := authSvc.Current(c.Cookies("sid"))
		if !sess.IsAuthenticated || sess.Role != "admin" {
			applog.Security(c, "access.denied.admin", map[string]any{"path": c.Path()})
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "access denied"})
		}
		c.Locals("session", sess)
		return c.Next()
	}
}

func RequireUser(authSvc *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := authSvc.Current(c.Cookies("sid"))
		if !sess.IsAuthenticated {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "login required"})
		}
		c.Locals("session", sess)
		return c.Next()
	}
}

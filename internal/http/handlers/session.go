package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ensureSID returns the session id cookie, minting one on first contact.
func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false, // enable true behind TLS
		})
	}
	return sid
}

package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"fashionfuel/internal/auth"
	applog "fashionfuel/internal/log"
	"fashionfuel/internal/validate"
)

type AuthHandler struct {
	Auth *auth.Service
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	email, ok := validate.Email(body.Email)
	if !ok || !validate.Password(body.Password) {
		applog.Security(c, "auth.login.fail", map[string]any{"email": body.Email, "reason": "bad_format"})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid email or password"})
	}

	sid := ensureSID(c)
	sess, err := h.Auth.Login(sid, email, body.Password)
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid email or password"})
	}

	applog.Audit(c, "auth.login.success", map[string]any{"email": email, "role": sess.Role})
	return c.JSON(sess)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := c.Cookies("sid")
	if sid != "" {
		_ = h.Auth.Logout(sid)
	}
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	applog.Audit(c, "auth.logout", nil)
	return c.JSON(fiber.Map{"ok": true})
}

// Session reports the current AuthSession so the client can restore login
// state across reloads.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	return c.JSON(h.Auth.Current(c.Cookies("sid")))
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "fashionfuel/internal/log"
	"fashionfuel/internal/validate"
	"fashionfuel/internal/webhook"
)

type ContactHandler struct {
	Hook *webhook.Notifier
}

// Submit forwards the contact form to the configured webhook. Delivery is
// best-effort; the user always sees success once validation passes.
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var body struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	name, ok1 := validate.Required(body.Name)
	email, ok2 := validate.Email(body.Email)
	msg, ok3 := validate.Required(body.Message)
	if !ok1 || !ok2 || !ok3 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name, email and message are required"})
	}

	h.Hook.Notify(c.Context(), fiber.Map{
		"name":    name,
		"email":   email,
		"subject": body.Subject,
		"message": msg,
	})
	applog.Info(c, "contact.submit", map[string]any{"email": email})
	return c.JSON(fiber.Map{"ok": true})
}

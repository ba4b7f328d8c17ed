package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"fashionfuel/internal/catalog"
	"fashionfuel/internal/chat"
	applog "fashionfuel/internal/log"
)

type ChatHandler struct {
	Chat    *chat.Service
	Catalog *catalog.Slice
}

// Message answers one chat turn. The reply text may embed [PRODUCT:<id>]
// tokens; the response carries both the raw text and the parsed segments
// so the client can inline product cards in order of appearance.
func (h *ChatHandler) Message(c *fiber.Ctx) error {
	var body struct {
		Message string `json:"message"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	msg := strings.TrimSpace(body.Message)
	if msg == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "message is required"})
	}

	// The prompt and token resolution both need the catalog; a failed
	// refresh degrades recommendations, not the chat itself.
	if len(h.Catalog.Items()) == 0 {
		if err := h.Catalog.FetchProducts(c.Context()); err != nil {
			applog.NonFatal(c, "chat.catalog.fail", err, nil)
		}
	}

	sid := ensureSID(c)
	reply := h.Chat.Reply(c.Context(), sid, msg)
	return c.JSON(fiber.Map{
		"reply":    reply,
		"segments": h.Chat.Segments(reply),
	})
}

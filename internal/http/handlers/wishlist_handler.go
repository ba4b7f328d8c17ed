package handlers

import (
	"github.com/gofiber/fiber/v2"

	"fashionfuel/internal/catalog"
	applog "fashionfuel/internal/log"
	"fashionfuel/internal/storage"
	"fashionfuel/internal/validate"
	"fashionfuel/internal/wishlist"
)

type WishlistHandler struct {
	Store   storage.Store
	Catalog *catalog.Slice
}

func (h *WishlistHandler) List(c *fiber.Ctx) error {
	s := wishlist.Load(h.Store, ensureSID(c))
	return c.JSON(fiber.Map{"items": s.Items()})
}

func (h *WishlistHandler) Toggle(c *fiber.Ctx) error {
	var body struct {
		ProductID string `json:"productId"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	id, ok := validate.ID(body.ProductID)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing productId"})
	}

	p, found := h.Catalog.Lookup(id)
	if !found {
		var err error
		p, err = h.Catalog.FetchProductByID(c.Context(), id)
		if err != nil {
			applog.Error(c, "wishlist.toggle.fail", err, map[string]any{"product": id})
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
		}
	}

	s := wishlist.Load(h.Store, ensureSID(c))
	saved := s.Toggle(p)
	applog.Audit(c, "wishlist.toggle", map[string]any{"product": id, "saved": saved})
	return c.JSON(fiber.Map{"saved": saved, "items": s.Items()})
}

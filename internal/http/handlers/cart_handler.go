package handlers

import (
	"github.com/gofiber/fiber/v2"

	"fashionfuel/internal/cart"
	"fashionfuel/internal/catalog"
	applog "fashionfuel/internal/log"
	"fashionfuel/internal/prefs"
	"fashionfuel/internal/storage"
	"fashionfuel/internal/validate"
)

type CartHandler struct {
	Store   storage.Store
	Catalog *catalog.Slice
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	s := cart.Load(h.Store, ensureSID(c))
	return c.JSON(cartJSON(s))
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
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
			applog.Error(c, "cart.add.fail", err, map[string]any{"product": id})
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
		}
	}

	sid := ensureSID(c)
	s := cart.Load(h.Store, sid)
	s.Add(p)
	prefs.Load(h.Store, sid).TrackAddToCart(p.ID, p.Category)

	applog.Audit(c, "cart.add", map[string]any{"product": p.ID})
	return c.JSON(cartJSON(s))
}

func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	var body struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	id, ok := validate.ID(body.ProductID)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing productId"})
	}
	s := cart.Load(h.Store, ensureSID(c))
	s.UpdateQuantity(id, body.Quantity)
	return c.JSON(cartJSON(s))
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
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
	s := cart.Load(h.Store, ensureSID(c))
	s.Remove(id)
	return c.JSON(cartJSON(s))
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	s := cart.Load(h.Store, ensureSID(c))
	s.Clear()
	return c.JSON(cartJSON(s))
}

func cartJSON(s *cart.Slice) fiber.Map {
	subtotal, tax, total := s.Totals(cart.TaxRate)
	return fiber.Map{
		"items":    s.Lines(),
		"count":    s.Count(),
		"subtotal": subtotal,
		"tax":      tax,
		"total":    total,
	}
}

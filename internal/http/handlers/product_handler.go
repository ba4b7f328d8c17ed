package handlers

import (
	"github.com/gofiber/fiber/v2"

	"fashionfuel/internal/catalog"
	applog "fashionfuel/internal/log"
	"fashionfuel/internal/prefs"
	"fashionfuel/internal/storage"
	"fashionfuel/internal/validate"
)

type ProductHandler struct {
	Catalog *catalog.Slice
	Store   storage.Store
}

// List fetches the catalog and applies the session's category filter and
// search query, in that order (searching narrows within the category).
// Browse state is per session, so concurrent callers cannot disturb each
// other's view.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	if err := h.Catalog.FetchProducts(c.Context()); err != nil {
		applog.Error(c, "products.fetch.fail", err, nil)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "could not load products"})
	}

	b := catalog.LoadBrowse(h.Store, ensureSID(c))
	if cat := c.Query("category"); cat != "" {
		b.FilterByCategory(cat)
	}
	if rawQ := c.Query("q"); rawQ != "" {
		q, ok := validate.Q(rawQ)
		if !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "q"})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "enter a valid keyword (letters/numbers only)"})
		}
		b.SetSearchQuery(q)
	}

	items := b.Apply(h.Catalog.Items())
	return c.JSON(fiber.Map{
		"items":    items,
		"count":    len(items),
		"category": b.Category(),
		"q":        b.Query(),
	})
}

// Detail fetches one product and records the view for personalization.
func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	p, err := h.Catalog.FetchProductByID(c.Context(), id)
	if err != nil {
		applog.Error(c, "product.fetch.fail", err, map[string]any{"product": id})
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "this item is no longer available"})
	}

	sid := ensureSID(c)
	prefs.Load(h.Store, sid).TrackProductView(p.ID, p.Category)

	return c.JSON(p)
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"fashionfuel/internal/catalog"
	"fashionfuel/internal/domain"
	applog "fashionfuel/internal/log"
	"fashionfuel/internal/prefs"
	"fashionfuel/internal/storage"
)

type PrefsHandler struct {
	Store   storage.Store
	Catalog *catalog.Slice
}

const recommendationLimit = 8

// Recommendations returns catalog items from the session's top-weighted
// category, excluding anything already recently viewed.
func (h *PrefsHandler) Recommendations(c *fiber.Ctx) error {
	if len(h.Catalog.Items()) == 0 {
		if err := h.Catalog.FetchProducts(c.Context()); err != nil {
			applog.NonFatal(c, "recommendations.catalog.fail", err, nil)
			return c.JSON(fiber.Map{"items": []domain.Product{}})
		}
	}
	t := prefs.Load(h.Store, ensureSID(c))
	items := t.RecommendedFrom(h.Catalog.Items(), recommendationLimit)
	if items == nil {
		items = []domain.Product{}
	}
	return c.JSON(fiber.Map{"items": items, "category": t.TopCategory()})
}

// RecentlyViewed resolves the session's recently-viewed ids against the
// catalog, most recent first; ids no longer in the catalog are skipped.
func (h *PrefsHandler) RecentlyViewed(c *fiber.Ctx) error {
	t := prefs.Load(h.Store, ensureSID(c))
	items := []domain.Product{}
	for _, id := range t.RecentlyViewed() {
		if p, ok := h.Catalog.Lookup(id); ok {
			items = append(items, p)
		}
	}
	return c.JSON(fiber.Map{"items": items})
}

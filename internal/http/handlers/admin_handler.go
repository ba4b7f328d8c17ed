package handlers

import (
	"github.com/gofiber/fiber/v2"

	"fashionfuel/internal/domain"
	applog "fashionfuel/internal/log"
	"fashionfuel/internal/shopapi"
	"fashionfuel/internal/validate"
)

// AdminHandler proxies product/order management through the remote API,
// which stays the authoritative store.
type AdminHandler struct {
	API *shopapi.Client
}

// Stats reduces the fetched product and order arrays into dashboard
// counters; revenue is the sum of order totals.
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	products, err := h.API.Products(c.Context())
	if err != nil {
		applog.Error(c, "admin.stats.fail", err, nil)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "could not load stats"})
	}
	orders, err := h.API.Orders(c.Context())
	if err != nil {
		applog.Error(c, "admin.stats.fail", err, nil)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "could not load stats"})
	}
	revenue := 0.0
	for _, o := range orders {
		revenue += o.TotalAmount
	}
	return c.JSON(fiber.Map{
		"totalProducts": len(products),
		"totalOrders":   len(orders),
		"totalRevenue":  revenue,
	})
}

func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	var p domain.Product
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if _, ok := validate.Required(p.Title); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "title is required"})
	}
	created, err := h.API.CreateProduct(c.Context(), p)
	if err != nil {
		applog.Error(c, "admin.product.create.fail", err, nil)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "could not create product"})
	}
	applog.Audit(c, "admin.product.create", map[string]any{"product": created.ID})
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *AdminHandler) UpdateProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	var p domain.Product
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	updated, err := h.API.UpdateProduct(c.Context(), id, p)
	if err != nil {
		applog.Error(c, "admin.product.update.fail", err, map[string]any{"product": id})
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "could not update product"})
	}
	applog.Audit(c, "admin.product.update", map[string]any{"product": id})
	return c.JSON(updated)
}

func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	if err := h.API.DeleteProduct(c.Context(), id); err != nil {
		applog.Error(c, "admin.product.delete.fail", err, map[string]any{"product": id})
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "could not delete product"})
	}
	applog.Audit(c, "admin.product.delete", map[string]any{"product": id})
	return c.JSON(fiber.Map{"ok": true})
}

func (h *AdminHandler) Orders(c *fiber.Ctx) error {
	orders, err := h.API.Orders(c.Context())
	if err != nil {
		applog.Error(c, "admin.orders.list.fail", err, nil)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "could not load orders"})
	}
	return c.JSON(fiber.Map{"orders": orders})
}

// UpdateOrderStatus round-trips the order through the remote API with the
// new status.
func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid order id"})
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	status, ok := validate.Required(body.Status)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "status is required"})
	}

	o, err := h.API.Order(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "order not found"})
	}
	o.Status = status
	updated, err := h.API.UpdateOrder(c.Context(), id, o)
	if err != nil {
		applog.Error(c, "admin.orders.update.fail", err, map[string]any{"order_id": id})
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "could not update status"})
	}
	applog.Audit(c, "admin.orders.update", map[string]any{"order_id": id, "status": status})
	return c.JSON(updated)
}

package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"fashionfuel/internal/cart"
	"fashionfuel/internal/domain"
	applog "fashionfuel/internal/log"
	"fashionfuel/internal/shopapi"
	"fashionfuel/internal/storage"
	"fashionfuel/internal/validate"
	"fashionfuel/internal/webhook"
)

type OrderHandler struct {
	Store storage.Store
	API   *shopapi.Client
	Hook  *webhook.Notifier
}

type checkoutRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Zip       string `json:"zip"`
}

// Place submits the cart as an order against the remote API, fires the
// confirmation webhook, and clears the cart. The webhook is best-effort:
// the order already exists, so its failure never blocks the user.
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	var req checkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	email, ok := validate.Email(req.Email)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "email"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid email"})
	}
	first, ok1 := validate.Required(req.FirstName)
	last, ok2 := validate.Required(req.LastName)
	addr, ok3 := validate.Required(req.Address)
	city, ok4 := validate.Required(req.City)
	zip, ok5 := validate.Required(req.Zip)
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
		applog.Security(c, "validation.fail", map[string]any{"field": "shipping"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "all shipping fields are required"})
	}

	sid := ensureSID(c)
	s := cart.Load(h.Store, sid)
	lines := s.Lines()
	if len(lines) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cart is empty"})
	}

	items := make([]domain.OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, domain.OrderItem{
			ProductID: l.ID,
			Title:     l.Title,
			Price:     l.Price,
			Quantity:  l.Quantity,
		})
	}
	_, _, total := s.Totals(cart.TaxRate)

	order := domain.Order{
		CustomerName:    strings.TrimSpace(first + " " + last),
		CustomerEmail:   email,
		ShippingAddress: addr + ", " + city + ", " + zip,
		Items:           items,
		TotalAmount:     total,
		Status:          "Pending",
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
	}

	created, err := h.API.CreateOrder(c.Context(), order)
	if err != nil {
		applog.Error(c, "order.place.fail", err, nil)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "there was an error placing your order, please try again"})
	}

	h.Hook.Notify(c.Context(), created)
	s.Clear()

	applog.Audit(c, "order.place", map[string]any{"order_id": created.ID, "total": created.TotalAmount})
	return c.Status(fiber.StatusCreated).JSON(created)
}

// View re-fetches a single order from the remote API; there is no local
// authoritative copy.
func (h *OrderHandler) View(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid order id"})
	}
	o, err := h.API.Order(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "order not found"})
	}
	return c.JSON(o)
}

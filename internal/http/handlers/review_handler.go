package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"fashionfuel/internal/domain"
	applog "fashionfuel/internal/log"
	"fashionfuel/internal/shopapi"
	"fashionfuel/internal/validate"
)

type ReviewHandler struct {
	API *shopapi.Client
}

func (h *ReviewHandler) List(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	reviews, err := h.API.Reviews(c.Context(), id)
	if err != nil {
		applog.Error(c, "reviews.list.fail", err, map[string]any{"product": id})
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "could not load reviews"})
	}
	return c.JSON(fiber.Map{"reviews": reviews})
}

func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	var body struct {
		Name    string `json:"name"`
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	name, ok1 := validate.Required(body.Name)
	comment, ok2 := validate.Required(body.Comment)
	if !ok1 || !ok2 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name and comment are required"})
	}
	created, err := h.API.CreateReview(c.Context(), domain.Review{
		ProductID: id,
		Name:      name,
		Rating:    validate.Rating(body.Rating),
		Comment:   comment,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		applog.Error(c, "reviews.create.fail", err, map[string]any{"product": id})
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "could not save review"})
	}
	applog.Audit(c, "reviews.create", map[string]any{"product": id})
	return c.Status(fiber.StatusCreated).JSON(created)
}

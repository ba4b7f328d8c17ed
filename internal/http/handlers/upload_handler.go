package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "fashionfuel/internal/log"
	"fashionfuel/internal/upload"
)

type UploadHandler struct {
	Uploader *upload.Uploader
}

// Image accepts a single multipart file and returns the hosted URL.
func (h *UploadHandler) Image(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "no file provided"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not read file"})
	}
	defer f.Close()

	url, err := h.Uploader.Upload(c.Context(), fh.Filename, f)
	if err != nil {
		if errors.Is(err, upload.ErrDisabled) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "image upload is not configured"})
		}
		applog.Error(c, "upload.fail", err, map[string]any{"file": fh.Filename})
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "could not upload image"})
	}
	applog.Audit(c, "upload.image", map[string]any{"file": fh.Filename})
	return c.JSON(fiber.Map{"url": url})
}

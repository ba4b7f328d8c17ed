package main

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"fashionfuel/internal/auth"
	"fashionfuel/internal/catalog"
	"fashionfuel/internal/chat"
	"fashionfuel/internal/config"
	"fashionfuel/internal/http/handlers"
	applog "fashionfuel/internal/log"
	"fashionfuel/internal/shopapi"
	"fashionfuel/internal/storage"
	"fashionfuel/internal/upload"
	"fashionfuel/internal/webhook"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	store, err := storage.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	api := shopapi.New(cfg.ShopAPIBaseURL)
	cat := catalog.New(api)

	// Warm the catalog cache; a failed fetch is retried lazily by the
	// first request that needs it.
	if err := cat.FetchProducts(context.Background()); err != nil {
		log.Printf("[warn] initial catalog fetch failed: %v", err)
	}

	authSvc := auth.NewService(store, []auth.Credential{
		{Email: cfg.AdminEmail, Password: cfg.AdminPassword, Role: "admin"},
		{Email: cfg.UserEmail, Password: cfg.UserPassword, Role: "user"},
	})

	chatSvc, err := chat.NewService(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, cat)
	if err != nil {
		log.Fatal(err)
	}
	defer chatSvc.Close()

	orderHook := webhook.New("order-confirmation", cfg.OrderWebhook)
	contactHook := webhook.New("contact-form", cfg.ContactWebhook)
	uploader := upload.New(cfg.CloudName, cfg.UploadPreset)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			// Avoid leaking internals
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Something went wrong. Please try again.",
			})
		},
	})
	// Global body size guard; the upload route carries images.
	app.Server().MaxRequestBodySize = 8 << 20

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))

	authH := &handlers.AuthHandler{Auth: authSvc}
	deps := handlers.NewDeps(store, api, cat, authSvc, chatSvc, orderHook, contactHook, uploader)

	// Storefront
	app.Get("/api/products", deps.ProductHandler.List)
	app.Get("/api/products/:id", deps.ProductHandler.Detail)
	app.Get("/api/products/:id/reviews", deps.ReviewHandler.List)
	app.Post("/api/products/:id/reviews", deps.ReviewHandler.Create)

	// Cart
	app.Get("/api/cart", deps.CartHandler.View)
	app.Post("/api/cart", deps.CartHandler.Add)
	app.Post("/api/cart/quantity", deps.CartHandler.UpdateQuantity)
	app.Post("/api/cart/remove", deps.CartHandler.Remove)
	app.Post("/api/cart/clear", deps.CartHandler.Clear)

	// Checkout & orders
	app.Post("/api/checkout", deps.OrderHandler.Place)
	app.Get("/api/orders/:id", deps.OrderHandler.View)

	// Wishlist & personalization
	app.Get("/api/wishlist", deps.WishlistHandler.List)
	app.Post("/api/wishlist/toggle", deps.WishlistHandler.Toggle)
	app.Get("/api/recommendations", deps.PrefsHandler.Recommendations)
	app.Get("/api/recently-viewed", deps.PrefsHandler.RecentlyViewed)

	// Chat widget (throttled: each turn is an upstream model call)
	app.Post("/api/chat", limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.chat.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	}), deps.ChatHandler.Message)

	// Contact form
	app.Post("/api/contact", deps.ContactHandler.Submit)

	// Auth (login throttled)
	app.Post("/api/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many attempts, please try again later"})
		},
	}), authH.Login)
	app.Post("/api/logout", authH.Logout)
	app.Get("/api/session", authH.Session)

	// Admin
	admin := app.Group("/api/admin", handlers.RequireAdmin(authSvc))
	admin.Get("/stats", deps.AdminHandler.Stats)
	admin.Get("/orders", deps.AdminHandler.Orders)
	admin.Post("/orders/:id/status", deps.AdminHandler.UpdateOrderStatus)
	admin.Post("/products", deps.AdminHandler.CreateProduct)
	admin.Put("/products/:id", deps.AdminHandler.UpdateProduct)
	admin.Delete("/products/:id", deps.AdminHandler.DeleteProduct)
	admin.Post("/upload", deps.UploadHandler.Image)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}

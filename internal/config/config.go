package config

import (
	"log"
	"os"
)

type Config struct {
	Port           string
	DBDSN          string
	ShopAPIBaseURL string
	GeminiAPIKey   string
	GeminiModel    string
	OrderWebhook   string
	ContactWebhook string
	CloudName      string
	UploadPreset   string
	AdminEmail     string
	AdminPassword  string
	UserEmail      string
	UserPassword   string
	LogFile        string
}

func Load() Config {
	cfg := Config{
		Port:           getenv("PORT", "8080"),
		DBDSN:          getenv("DB_DSN", "fashionfuel.db"), // sqlite snapshot store in project root
		ShopAPIBaseURL: getenv("SHOP_API_BASE_URL", "https://69528ac13b3c518fca12fccd.mockapi.io/api/v1"),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel:    getenv("GEMINI_MODEL", "gemini-1.5-flash"),
		OrderWebhook:   os.Getenv("ORDER_WEBHOOK_URL"),
		ContactWebhook: os.Getenv("CONTACT_WEBHOOK_URL"),
		CloudName:      os.Getenv("CLOUDINARY_CLOUD_NAME"),
		UploadPreset:   getenv("CLOUDINARY_UPLOAD_PRESET", "fashion_hub_preset"),
		AdminEmail:     getenv("ADMIN_EMAIL", "admin@fashionfuel.com"),
		AdminPassword:  getenv("ADMIN_PASSWORD", "password123"),
		UserEmail:      getenv("USER_EMAIL", "user@fashionfuel.com"),
		UserPassword:   getenv("USER_PASSWORD", "fashion123"),
		LogFile:        getenv("LOG_FILE", "./fashionfuel.log"),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s SHOP_API=%s GEMINI_MODEL=%s LOG_FILE=%s",
		cfg.Port, cfg.DBDSN, cfg.ShopAPIBaseURL, cfg.GeminiModel, cfg.LogFile)
	if cfg.GeminiAPIKey == "" {
		log.Printf("[config] GEMINI_API_KEY is not set; chat runs in offline mode")
	}
	if cfg.CloudName == "" {
		log.Printf("[config] CLOUDINARY_CLOUD_NAME is not set; image upload disabled")
	}
	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

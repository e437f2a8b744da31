package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	ebayProductionURL = "https://api.ebay.com"
	ebaySandboxURL    = "https://api.sandbox.ebay.com"
)

// Config holds everything the server reads from the environment. A .env
// file in the working directory is loaded first if present.
type Config struct {
	Port               string
	DBPath             string
	EbayClientID       string
	EbayClientSecret   string
	EbayEnvironment    string // "sandbox" or "production"
	CORSAllowedOrigins []string
}

func Load() *Config {
	// Missing .env is fine; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		DBPath:           getEnv("DB_PATH", "./cardfolio.db"),
		EbayClientID:     os.Getenv("EBAY_CLIENT_ID"),
		EbayClientSecret: os.Getenv("EBAY_CLIENT_SECRET"),
		EbayEnvironment:  getEnv("EBAY_ENVIRONMENT", "sandbox"),
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.CORSAllowedOrigins = strings.Split(origins, ",")
	} else {
		cfg.CORSAllowedOrigins = []string{"http://localhost:5173", "http://localhost:3000"}
	}

	return cfg
}

// EbayBaseURL returns the API host for the configured environment.
// Anything other than "production" stays on the sandbox.
func (c *Config) EbayBaseURL() string {
	if c.EbayEnvironment == "production" {
		return ebayProductionURL
	}
	return ebaySandboxURL
}

// APIConfigured reports whether marketplace credentials are present. When
// false the listing client serves synthetic data only.
func (c *Config) APIConfigured() bool {
	return c.EbayClientID != "" && c.EbayClientSecret != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

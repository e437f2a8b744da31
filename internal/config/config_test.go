package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("EBAY_CLIENT_ID", "")
	t.Setenv("EBAY_CLIENT_SECRET", "")
	t.Setenv("EBAY_ENVIRONMENT", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("default port = %q, want 8080", cfg.Port)
	}
	if cfg.EbayEnvironment != "sandbox" {
		t.Errorf("default environment = %q, want sandbox", cfg.EbayEnvironment)
	}
	if cfg.APIConfigured() {
		t.Error("config without credentials should not report as configured")
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Errorf("expected 2 default CORS origins, got %d", len(cfg.CORSAllowedOrigins))
	}
}

func TestEbayBaseURL(t *testing.T) {
	tests := []struct {
		environment string
		want        string
	}{
		{"production", "https://api.ebay.com"},
		{"sandbox", "https://api.sandbox.ebay.com"},
		{"", "https://api.sandbox.ebay.com"},
		{"staging", "https://api.sandbox.ebay.com"},
	}

	for _, tt := range tests {
		cfg := &Config{EbayEnvironment: tt.environment}
		if got := cfg.EbayBaseURL(); got != tt.want {
			t.Errorf("EbayBaseURL(%q) = %q, want %q", tt.environment, got, tt.want)
		}
	}
}

func TestAPIConfigured(t *testing.T) {
	cfg := &Config{EbayClientID: "id", EbayClientSecret: "secret"}
	if !cfg.APIConfigured() {
		t.Error("expected configured")
	}

	cfg = &Config{EbayClientID: "id"}
	if cfg.APIConfigured() {
		t.Error("missing secret should not count as configured")
	}
}

func TestCORSOriginsFromEnv(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")

	cfg := Load()
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[0] != "https://a.example.com" {
		t.Errorf("unexpected origins: %v", cfg.CORSAllowedOrigins)
	}
}

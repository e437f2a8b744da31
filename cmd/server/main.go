package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cardfolio/cardfolio/internal/api"
	"github.com/cardfolio/cardfolio/internal/config"
	"github.com/cardfolio/cardfolio/internal/database"
	"github.com/cardfolio/cardfolio/internal/services"
)

func main() {
	cfg := config.Load()

	// Initialize database
	if err := database.Initialize(cfg.DBPath); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize services
	tokenService := services.NewTokenService(cfg.EbayClientID, cfg.EbayClientSecret, cfg.EbayBaseURL())
	ebayService := services.NewEbayService(tokenService, cfg.EbayBaseURL())
	analysisService := services.NewAnalysisService(ebayService, database.GetDB())

	if !cfg.APIConfigured() {
		log.Println("Warning: eBay API credentials not configured. Using mock data.")
		log.Println("Set EBAY_CLIENT_ID and EBAY_CLIENT_SECRET for real API access.")
	} else {
		log.Printf("eBay API configured for %s environment", cfg.EbayEnvironment)
	}

	// Setup router
	router := api.SetupRouter(cfg, ebayService, analysisService)

	// Create HTTP server for graceful shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests a deadline to complete
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

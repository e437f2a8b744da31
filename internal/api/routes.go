package api

import (
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cardfolio/cardfolio/internal/api/handlers"
	"github.com/cardfolio/cardfolio/internal/config"
	"github.com/cardfolio/cardfolio/internal/metrics"
	"github.com/cardfolio/cardfolio/internal/services"
)

func SetupRouter(cfg *config.Config, ebayService *services.EbayService, analysisService *services.AnalysisService) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsConfig.AllowCredentials = false // Explicitly set
	router.Use(cors.New(corsConfig))

	router.Use(metricsMiddleware())

	// Initialize handlers
	inventoryHandler := handlers.NewInventoryHandler()
	ebayHandler := handlers.NewEbayHandler(ebayService)
	analysisHandler := handlers.NewAnalysisHandler(analysisService)

	// API routes
	api := router.Group("/api")
	{
		inventory := api.Group("/inventory")
		{
			inventory.GET("", inventoryHandler.GetInventory)
			inventory.POST("", inventoryHandler.AddCard)
			inventory.PUT("/:id", inventoryHandler.UpdateCard)
			inventory.DELETE("/:id", inventoryHandler.DeleteCard)
			inventory.POST("/import", inventoryHandler.ImportCards)
		}

		ebay := api.Group("/ebay")
		{
			ebay.GET("/search", ebayHandler.Search)
			ebay.GET("/item/:itemId", ebayHandler.GetItem)
			ebay.GET("/item/:itemId/prices", ebayHandler.GetItemPrices)
			ebay.POST("/prices/batch", ebayHandler.BatchPrices)
		}

		analysis := api.Group("/analysis")
		{
			analysis.POST("/compare", analysisHandler.Compare)
			analysis.GET("/recommendations", analysisHandler.Recommendations)
		}

		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":        "ok",
				"environment":   cfg.EbayEnvironment,
				"apiConfigured": cfg.APIConfigured(),
			})
		})
	}

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

func metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

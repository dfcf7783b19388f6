package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"content-ops-platform/internal/ai"
	"content-ops-platform/internal/config"
	"content-ops-platform/internal/logger"
	"content-ops-platform/internal/sheet"
	"content-ops-platform/internal/store"
	"content-ops-platform/internal/telemetry"
	"content-ops-platform/middleware"
	"content-ops-platform/routes"
	"content-ops-platform/services"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger.InitLogger(cfg)

	// Tracing is opt-in; without a collector the exporter just spams errors
	if cfg.TracingEnabled {
		shutdownTracer, err := telemetry.InitTracer("content-ops-platform", cfg.OTLPEndpoint)
		if err != nil {
			logger.Warn("Tracer init failed, continuing without tracing", "error", err)
		} else {
			defer shutdownTracer()
		}
	}

	metrics, err := telemetry.InitMetrics()
	if err != nil {
		logger.Warn("Metrics init failed, continuing without metrics", "error", err)
	}

	// Redis backs the AI result cache and rate limiting; both fail open
	// without it
	var rdb *redis.Client
	if client, err := config.NewRedisClient(cfg); err != nil {
		logger.Warn("Redis unavailable, caching and rate limiting disabled", "error", err)
	} else {
		rdb = client
		defer rdb.Close()
	}

	// Content ingestion
	contentStore := store.NewContentStore()
	refresher := services.NewRefreshService(sheet.NewClient(), contentStore, cfg, metrics)
	if err := refresher.Start(); err != nil {
		log.Fatal("Failed to start sheet refresher:", err)
	}
	defer refresher.Stop()

	// AI assistant; a missing API key leaves the endpoints answering
	// SERVICE_UNAVAILABLE instead of killing the server
	var generator ai.TextGenerator
	if cfg.GeminiAPIKey != "" {
		geminiClient, err := ai.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTier)
		if err != nil {
			logger.Warn("Gemini client init failed, assistant disabled", "error", err)
		} else {
			generator = geminiClient
			defer geminiClient.Close()
		}
	} else {
		logger.Warn("GEMINI_API_KEY not set, assistant disabled")
	}

	assistant := services.NewAssistantService(generator, metrics)
	resultCache := services.NewResultCache(rdb, time.Duration(cfg.CacheTTL)*time.Second, metrics)

	// Initialize Gin router
	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	if cfg.TracingEnabled {
		router.Use(middleware.TracingMiddleware())
		router.Use(middleware.EnrichTrace())
	}
	router.Use(middleware.MetricsMiddleware(metrics))
	router.Use(middleware.RateLimitMiddleware(rdb, cfg))

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", "X-Request-ID"}
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "timestamp": time.Now()})
	})

	// Setup routes
	routes.SetupContentRoutes(router, contentStore, refresher)
	routes.SetupAssistantRoutes(router, assistant, contentStore, resultCache)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logger.Info("Server exited")
}

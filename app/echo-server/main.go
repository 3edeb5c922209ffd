package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/silverkeytech/Teddy-recommendation-system/app/echo-server/router"
	"github.com/silverkeytech/Teddy-recommendation-system/business/ctr"
	"github.com/silverkeytech/Teddy-recommendation-system/business/recommender"
	"github.com/silverkeytech/Teddy-recommendation-system/internal/middleware"
	psqlRepo "github.com/silverkeytech/Teddy-recommendation-system/internal/repository/postgres"
	redisRepo "github.com/silverkeytech/Teddy-recommendation-system/internal/repository/redis"
	"github.com/silverkeytech/Teddy-recommendation-system/internal/rest"
	"github.com/silverkeytech/Teddy-recommendation-system/pkg/config"
	"github.com/silverkeytech/Teddy-recommendation-system/pkg/database"
	redisdb "github.com/silverkeytech/Teddy-recommendation-system/pkg/database/redis"
	"github.com/silverkeytech/Teddy-recommendation-system/pkg/logger"
	"github.com/silverkeytech/Teddy-recommendation-system/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Teddy Recommendation API", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	metrics.Init()

	// Init repos
	productRepo := psqlRepo.NewProductRepository(db)
	vectorRepo := psqlRepo.NewVectorRepository(db)
	interactionRepo := psqlRepo.NewInteractionRepository(db)
	exposureRepo := psqlRepo.NewExposureRepository(db)

	// Redis result cache is optional; serving works without it
	var cache rest.ResultCache
	if client, err := redisdb.NewRedisClient(cfg); err != nil {
		logger.Warn("Redis unavailable, result caching disabled", "error", err)
	} else {
		cache = redisRepo.NewRecommendationCache(
			client,
			time.Duration(cfg.Recommender.CacheTTLSeconds)*time.Second,
		)
		defer func() { _ = redisdb.CloseRedisClient(client) }()
	}

	// Init core
	ledger := ctr.NewLedger()

	recoCfg := recommender.DefaultConfig()
	recoCfg.TopN = cfg.Recommender.DefaultN
	recoCfg.RelevanceThreshold = cfg.Recommender.RelevanceThreshold
	recoCfg.CTRLogging = cfg.Recommender.CTRLoggingEnabled

	recoService := recommender.NewService(
		productRepo,
		vectorRepo,
		interactionRepo,
		exposureRepo,
		ledger,
		recoCfg,
	)

	// initial snapshot; the rebuild endpoint swaps later ones
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	if err := recoService.RebuildSnapshot(ctx); err != nil {
		cancel()
		logger.Fatal("Failed to build initial snapshot", "error", err)
	}
	cancel()

	// Init handler
	recoHandler := rest.NewRecommendationHandler(recoService, cache)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Setup routes
	authRequired := middleware.AuthMiddleware()
	adminOnly := middleware.AdminOnly()

	api := e.Group("/api/v1")
	router.SetupRecommendationRoutes(api, recoHandler, authRequired, adminOnly)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}

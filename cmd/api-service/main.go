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

	"golang-portfolio-tracker/internal/server/config"
	delivery "golang-portfolio-tracker/internal/server/delivery/http"
	_ "golang-portfolio-tracker/internal/server/docs"
	"golang-portfolio-tracker/internal/server/repository"
	"golang-portfolio-tracker/internal/server/service"
	"golang-portfolio-tracker/pkg/common"
	"golang-portfolio-tracker/pkg/logger"
	"golang-portfolio-tracker/pkg/postgres"
	"golang-portfolio-tracker/pkg/quotes"
	"golang-portfolio-tracker/pkg/redis"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the portfolio API service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Portfolio API Service", logger.Field("name", cfg.App.Name))

	// Initialize database
	postgresCfg := postgres.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}
	db, err := postgres.NewDB(postgresCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	// Initialize Redis
	redisCfg := redis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	}
	redisClient, err := redis.NewClient(redisCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
	}
	defer redisClient.Close()

	// Initialize repositories
	holdingRepo := repository.NewHoldingRepository(db.DB)
	bondRepo := repository.NewBondRepository(db.DB)
	priceRepo := repository.NewFundPriceRepository(db.DB)
	historyRepo := repository.NewPortfolioHistoryRepository(db.DB)
	runRepo := repository.NewRefreshRunRepository(db.DB)

	// Initialize quote provider
	var provider quotes.Provider
	switch cfg.Market.Provider {
	case common.QuoteProviderHTTP:
		provider = quotes.NewHTTPProvider(quotes.HTTPConfig{
			BaseURL:             cfg.Market.BaseURL,
			MaxRequestPerMinute: cfg.Market.MaxRequestPerMinute,
		})
	default:
		provider = quotes.NewSyntheticProvider()
	}

	// Initialize services
	historySvc := service.NewHistoryService(holdingRepo, historyRepo, appLogger)
	holdingSvc := service.NewHoldingService(holdingRepo, priceRepo, provider, historySvc, appLogger)
	portfolioSvc := service.NewPortfolioService(holdingRepo, appLogger)
	returnsSvc := service.NewReturnsService(priceRepo, appLogger)
	synthetic := service.NewSyntheticDataGenerator()
	fundSvc := service.NewFundService(holdingRepo, returnsSvc, synthetic, appLogger)
	bondSvc := service.NewBondService(bondRepo, holdingRepo, appLogger)
	marketSvc := service.NewMarketService(provider, redisClient, cfg.Market.QuoteCacheTTL, appLogger)

	pollingInterval, err := time.ParseDuration(cfg.Scheduler.PollingInterval)
	if err != nil {
		appLogger.Fatal("Invalid polling interval", logger.ErrorField(err))
	}
	schedulerSvc := service.NewSchedulerService(holdingSvc, historySvc, runRepo, appLogger, pollingInterval, cfg)

	// Start the background refresh loop
	go schedulerSvc.Start(ctx)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Initialize handlers and routes
	apiV1 := e.Group("/api/v1")

	holdingHandler := delivery.NewHoldingHandler(holdingSvc, historySvc, appLogger)
	holdingHandler.RegisterRoutes(apiV1.Group("/holdings"))

	portfolioHandler := delivery.NewPortfolioHandler(portfolioSvc, historySvc, appLogger)
	portfolioHandler.RegisterRoutes(apiV1.Group("/portfolio"))

	bondHandler := delivery.NewBondHandler(bondSvc, appLogger)
	bondHandler.RegisterRoutes(apiV1.Group("/bonds"))

	fundHandler := delivery.NewFundHandler(fundSvc, appLogger)
	fundHandler.RegisterRoutes(apiV1.Group("/funds"))

	marketHandler := delivery.NewMarketHandler(marketSvc, appLogger)
	marketHandler.RegisterRoutes(apiV1.Group("/market"))

	runHandler := delivery.NewRefreshRunHandler(schedulerSvc, appLogger)
	runHandler.RegisterRoutes(apiV1.Group("/refresh-runs"))

	e.GET("/swagger/*", swagger.WrapHandler)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	// Gracefully shutdown the server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title Portfolio Tracker API
// @version 1.0
// @description REST API for tracking investment holdings, bonds, funds and portfolio performance.
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "api-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-api.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing api-service CLI: %s\n", err)
		os.Exit(1)
	}
}

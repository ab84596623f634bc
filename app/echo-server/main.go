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

	"offerLens/app/echo-server/router"
	"offerLens/business/decision"
	"offerLens/internal/middleware"
	offersRepo "offerLens/internal/repository/offers"
	"offerLens/internal/rest"
	"offerLens/pkg/config"
	"offerLens/pkg/logger"
	"offerLens/pkg/metrics"

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
	logger.Info("Starting OfferLens", "version", cfg.App.Version)

	metrics.Init()

	// Init repo
	engineRepo := offersRepo.NewOffersRepository(offersRepo.OffersConfig{
		BaseURL:        cfg.Offers.BaseURL,
		TimeoutSeconds: cfg.Offers.TimeoutSeconds,
	})

	// Init service
	decisionService := decision.NewDecisionService(engineRepo)

	// Init handler
	decisionHandler := rest.NewDecisionHandler(decisionService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceMiddleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth middleware is optional; the dashboard runs open in local demos.
	var routeMiddleware []echo.MiddlewareFunc
	if cfg.JWT.SecretKey != "" {
		routeMiddleware = append(routeMiddleware, middleware.AuthMiddleware(cfg.JWT.SecretKey))
	}

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupDecisionRoutes(api, decisionHandler, routeMiddleware...)

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

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}

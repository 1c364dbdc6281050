package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	httpapi "forecast-board/internal/api/http"
	"forecast-board/internal/board"
	"forecast-board/internal/config"
	"forecast-board/internal/forecast"
	"forecast-board/internal/forecast/providers"
	"forecast-board/internal/scheduler"
	"forecast-board/internal/state"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config", zap.Error(err))
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// The state store with bounded dispatch history.
	store := state.NewStore(cfg.StoreMaxHistory)

	// Providers are tried in this order on every refresh.
	var provs []forecast.Provider
	if cfg.OpenWeatherAPIKey != "" {
		provs = append(provs, providers.NewOpenWeatherProvider(httpClient, cfg.OpenWeatherAPIKey, cfg.Units))
	}
	if cfg.WeatherAPIKey != "" {
		provs = append(provs, providers.NewWeatherAPIProvider(httpClient, cfg.WeatherAPIKey, cfg.Units, 5))
	}
	if cfg.GeocoderAPIKey != "" {
		// Open-Meteo needs no key of its own, but its coordinate lookup does.
		provs = append(provs, providers.NewOpenMeteoProvider(httpClient, cfg.GeocoderAPIKey, cfg.Units))
	}
	if len(provs) == 0 {
		log.Warn("no provider API keys configured; location updates will fail")
	}

	service := board.NewService(store, provs, log)

	// Seed the board so the chart is populated before the first request.
	if cfg.DefaultLocation != "" {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPTimeout+5*time.Second)
		if _, err := service.Refresh(ctx, cfg.DefaultLocation); err != nil {
			log.Warn("failed to fetch default location",
				zap.String("location", cfg.DefaultLocation),
				zap.Error(err),
			)
		}
		cancel()
	}

	// Background refresh of the tracked location.
	sched := scheduler.New(cfg.FetchInterval, service, log)
	if err := sched.Start(); err != nil {
		log.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "forecast-board",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "forecast-board",
		})
	})

	httpapi.RegisterRoutes(app, service)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Error("fiber server stopped", zap.Error(err))
		}
	}()
	log.Info("listening", zap.String("port", cfg.Port))

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error("error during shutdown", zap.Error(err))
	}
}

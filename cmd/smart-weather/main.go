package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	httpapi "github.com/i474232898/smart-weather/internal/api/http"
	"github.com/i474232898/smart-weather/internal/cache"
	"github.com/i474232898/smart-weather/internal/config"
	"github.com/i474232898/smart-weather/internal/geo"
	"github.com/i474232898/smart-weather/internal/scheduler"
	"github.com/i474232898/smart-weather/internal/weather"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound probe calls.
	httpClient := &http.Client{
		Timeout: cfg.ProbeTimeout,
	}

	// External lookup probes, in trust order.
	var probes []geo.Probe
	if cfg.ProbesEnabled {
		probes = append(probes,
			geo.NewHeWeatherSearchProbe(httpClient),
			geo.NewQWeatherGeoProbe(httpClient),
			geo.NewItboyWeatherProbe(httpClient),
		)
		if cfg.GeocoderAPIKey != "" {
			probes = append(probes, geo.NewGeocoderProbe(cfg.GeocoderAPIKey))
		}
	}

	// Resolution and forecast caches with configured lifetimes.
	cityCache := cache.New[geo.Resolution](cfg.CityCacheTTL)
	forecastCache := cache.New[weather.ForecastBundle](cfg.WeatherCacheTTL)

	resolver := geo.NewResolver(cityCache, probes, cfg.ProbeTimeout)
	generator := weather.NewGenerator()
	service := weather.NewService(resolver, generator, forecastCache)

	// Background refresh for tracked destinations.
	sched := scheduler.New(cfg.TrackedDestinations, cfg.RefreshInterval, cfg.ForecastDays, service)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "smart-weather",
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

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "smart-weather",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}

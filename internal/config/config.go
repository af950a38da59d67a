package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port string

	// External probe behaviour.
	ProbesEnabled  bool
	ProbeTimeout   time.Duration
	GeocoderAPIKey string

	// Cache lifetimes.
	CityCacheTTL    time.Duration
	WeatherCacheTTL time.Duration

	// Default forecast length in days.
	ForecastDays int

	// Destinations kept warm by the background refresh job.
	TrackedDestinations []string
	RefreshInterval     time.Duration
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "8080")
	cfg.ProbesEnabled = getenvBool("PROBES_ENABLED", true)
	cfg.GeocoderAPIKey = os.Getenv("GEOCODER_API_KEY")

	probeTimeout, err := getenvDuration("PROBE_TIMEOUT", "3s")
	if err != nil {
		return nil, err
	}
	cfg.ProbeTimeout = probeTimeout

	cityTTL, err := getenvDuration("CITY_CACHE_TTL", "24h")
	if err != nil {
		return nil, err
	}
	cfg.CityCacheTTL = cityTTL

	weatherTTL, err := getenvDuration("WEATHER_CACHE_TTL", "1h")
	if err != nil {
		return nil, err
	}
	cfg.WeatherCacheTTL = weatherTTL

	cfg.ForecastDays = getenvInt("FORECAST_DAYS", 7)
	if cfg.ForecastDays < 1 || cfg.ForecastDays > 30 {
		return nil, fmt.Errorf("FORECAST_DAYS must be between 1 and 30, got %d", cfg.ForecastDays)
	}

	refresh, err := getenvDuration("REFRESH_INTERVAL", "1h")
	if err != nil {
		return nil, err
	}
	cfg.RefreshInterval = refresh

	if tracked := os.Getenv("TRACKED_DESTINATIONS"); tracked != "" {
		for _, dest := range strings.Split(tracked, ",") {
			if dest = strings.TrimSpace(dest); dest != "" {
				cfg.TrackedDestinations = append(cfg.TrackedDestinations, dest)
			}
		}
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	v := getenvDefault(key, def)
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

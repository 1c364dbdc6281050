package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds everything read from the environment at startup.
type AppConfig struct {
	OpenWeatherAPIKey string
	WeatherAPIKey     string
	GeocoderAPIKey    string

	// Units is the measurement system passed to providers ("metric" or
	// "imperial").
	Units string

	// DefaultLocation, when set, is fetched once at startup so the board is
	// populated before the first request.
	DefaultLocation string

	// FetchInterval controls how often the tracked location is re-fetched.
	// Zero disables the background refresh.
	FetchInterval time.Duration

	// HTTPTimeout applies to outbound provider calls.
	HTTPTimeout time.Duration

	// StoreMaxHistory caps the number of retained dispatch history entries.
	StoreMaxHistory int

	Port string
}

// Load reads configuration from the environment with sensible defaults.
// A .env file is honored when present.
func Load() (*AppConfig, error) {
	_ = godotenv.Load()

	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	cfg.WeatherAPIKey = os.Getenv("WEATHERAPI_API_KEY")
	cfg.GeocoderAPIKey = os.Getenv("GEOCODER_API_KEY")
	cfg.DefaultLocation = os.Getenv("DEFAULT_LOCATION")

	cfg.Units = getenvDefault("UNITS", "metric")
	if cfg.Units != "metric" && cfg.Units != "imperial" {
		return nil, fmt.Errorf("invalid UNITS %q: must be metric or imperial", cfg.Units)
	}

	intervalStr := getenvDefault("FETCH_INTERVAL", "15m")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid FETCH_INTERVAL: %w", err)
	}
	cfg.FetchInterval = interval

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.StoreMaxHistory = getenvInt("STORE_MAX_HISTORY", 100)
	cfg.Port = getenvDefault("PORT", "8080")

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

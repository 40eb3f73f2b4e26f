package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration for the calendar service.
type Config struct {
	// ListenAddr is the HTTP listen address, e.g. ":8080".
	ListenAddr string

	// DataAPIURL is the base URL of the portal data API
	// (the service exposing /api/events, /api/tasks, ...).
	DataAPIURL string

	// DataAPIToken, if set, is forwarded as a bearer token on every
	// upstream request. The token is opaque to this service.
	DataAPIToken string

	// RefreshCron is the cron schedule for background snapshot refreshes.
	RefreshCron string

	// Timezone is the IANA timezone used for all calendar-day math.
	Timezone string
	Location *time.Location

	// HourStart / HourEnd bound the hourly grid of the day and week views,
	// both inclusive.
	HourStart int
	HourEnd   int
}

var AppConfig *Config

// Load reads configuration from the environment into AppConfig.
// A .env file in the working directory is honored when present.
func Load() {
	// Missing .env is fine; environment variables still apply.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	cfg := &Config{
		ListenAddr:   getenv("LISTEN_ADDR", ":8080"),
		DataAPIURL:   getenv("DATA_API_URL", "http://localhost:3000"),
		DataAPIToken: os.Getenv("DATA_API_TOKEN"),
		RefreshCron:  getenv("REFRESH_CRON", "*/5 * * * *"),
		Timezone:     getenv("TIMEZONE", "America/Sao_Paulo"),
		HourStart:    getenvInt("HOUR_START", 8),
		HourEnd:      getenvInt("HOUR_END", 18),
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Printf("Warning: failed to load timezone %q, falling back to UTC: %v", cfg.Timezone, err)
		loc = time.UTC
	}
	cfg.Location = loc

	if cfg.HourStart < 0 || cfg.HourEnd > 23 || cfg.HourStart > cfg.HourEnd {
		log.Printf("Warning: invalid hour range %d-%d, using 8-18", cfg.HourStart, cfg.HourEnd)
		cfg.HourStart, cfg.HourEnd = 8, 18
	}

	AppConfig = cfg
	log.Printf("Configuration loaded (data API: %s, timezone: %s)", cfg.DataAPIURL, cfg.Timezone)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Warning: %s=%q is not a number, using %d", key, v, fallback)
		return fallback
	}
	return n
}

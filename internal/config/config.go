package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config contains runtime configuration required by the service.
type Config struct {
	// DBURL points at the Postgres instance holding the trips and
	// leakage_alerts tables.
	DBURL string

	// HTTPAddr is the dashboard API listen address.
	HTTPAddr string

	// IngressAddr is the webhook listen address for the external detector.
	// Bound on all interfaces so the detector can reach it from outside.
	IngressAddr string

	// AlertFile is the durable latest-alert document, overwritten on each
	// webhook receipt.
	AlertFile string

	// AlertsLimit caps the recent-alert feed.
	AlertsLimit int

	// RefreshInterval is the alert-feed polling cadence.
	RefreshInterval time.Duration
}

// Load reads required values from environment variables.
func Load() (Config, error) {
	dbURL := strings.TrimSpace(os.Getenv("DB_URL"))
	if dbURL == "" {
		return Config{}, errors.New("DB_URL required")
	}

	return Config{
		DBURL:           dbURL,
		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		IngressAddr:     getEnv("INGRESS_ADDR", ":8506"),
		AlertFile:       getEnv("ALERT_FILE", "latest_alert.json"),
		AlertsLimit:     getEnvInt("ALERTS_LIMIT", 10),
		RefreshInterval: time.Duration(getEnvInt("REFRESH_INTERVAL_SECONDS", 10)) * time.Second,
	}, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

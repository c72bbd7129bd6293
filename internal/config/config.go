package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings. Attribution tunables (session gap, search
// window) are explicit here so tests and deployments can exercise boundary
// values instead of relying on hidden defaults.
type Config struct {
	PostgresDSN string
	ListenAddr  string

	// SessionGap is the maximum idle time before a new activity starts a
	// new session instead of extending the current one.
	SessionGap time.Duration
	// SearchWindow bounds the session search around an activity's event
	// time, tolerating moderately out-of-order delivery.
	SearchWindow time.Duration

	// LogCity controls whether the city from geo enrichment is stored on
	// activities. Region and country are always stored when available.
	LogCity bool
}

const (
	defaultListenAddr   = ":8080"
	defaultSessionGap   = 900 * time.Second
	defaultSearchWindow = time.Hour
)

// Load reads configuration from the environment, with an optional .env file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := &Config{
		PostgresDSN:  os.Getenv("POSTGRES_DSN"),
		ListenAddr:   defaultListenAddr,
		SessionGap:   defaultSessionGap,
		SearchWindow: defaultSearchWindow,
	}

	if addr := os.Getenv("LISTEN_ADDR"); addr != "" {
		cfg.ListenAddr = addr
	}
	if v := os.Getenv("SESSION_GAP_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			log.Printf("ignoring invalid SESSION_GAP_SECONDS=%q", v)
		} else {
			cfg.SessionGap = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("SESSION_SEARCH_WINDOW_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			log.Printf("ignoring invalid SESSION_SEARCH_WINDOW_SECONDS=%q", v)
		} else {
			cfg.SearchWindow = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("LOG_CITY"); v != "" {
		cfg.LogCity, _ = strconv.ParseBool(v)
	}

	return cfg, nil
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/galleypress/galley/internal/layout"
	"github.com/galleypress/galley/internal/paginator"
)

// DefaultShareSecret signs share tokens when GALLEY_SHARE_SECRET is not
// set. Fine for local use; the server logs a warning when it is in play.
const DefaultShareSecret = "galley-dev-share-secret"

type Config struct {
	Port string

	// Auth. Empty disables authentication.
	APIKey string

	// Share link signing
	ShareSecret string

	// Preset storage. Empty means ~/.galley/presets.toml.
	PresetsPath string

	// Upload limits
	MaxUploadBytes int64

	// Batch import fan-out
	ImportWorkers int

	// Latency stats window
	StatsWindow time.Duration

	// Layout defaults
	DefaultFormat    string
	DefaultSoftLimit int

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8080"),

		APIKey: os.Getenv("GALLEY_API_KEY"),

		ShareSecret: envOr("GALLEY_SHARE_SECRET", DefaultShareSecret),

		PresetsPath: os.Getenv("GALLEY_PRESETS_PATH"),

		MaxUploadBytes: envInt64("GALLEY_MAX_UPLOAD_BYTES", 52428800), // 50MB

		ImportWorkers: envInt("GALLEY_IMPORT_WORKERS", 4),

		StatsWindow: envDuration("GALLEY_STATS_WINDOW", 1*time.Hour),

		DefaultFormat:    envOr("GALLEY_DEFAULT_FORMAT", string(layout.DefaultFormat)),
		DefaultSoftLimit: envInt("GALLEY_DEFAULT_SOFT_LIMIT", paginator.DefaultSoftLimit),

		PDFFallbackPdftotext: envBool("GALLEY_PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.ImportWorkers <= 0 {
		cfg.ImportWorkers = 4
	}
	if cfg.StatsWindow <= 0 {
		cfg.StatsWindow = 1 * time.Hour
	}
	if cfg.DefaultSoftLimit <= 0 {
		cfg.DefaultSoftLimit = paginator.DefaultSoftLimit
	}

	return cfg
}

func (c Config) Validate() error {
	if _, ok := layout.Parse(c.DefaultFormat); !ok {
		return fmt.Errorf("GALLEY_DEFAULT_FORMAT: unknown format %q", c.DefaultFormat)
	}
	if c.ShareSecret == "" {
		return fmt.Errorf("GALLEY_SHARE_SECRET must not be empty")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

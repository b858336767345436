package config

import (
	"testing"
	"time"
)

// clearEnv blanks every variable Load reads so ambient environment
// cannot leak into assertions.
func clearEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"PORT",
		"GALLEY_API_KEY",
		"GALLEY_SHARE_SECRET",
		"GALLEY_PRESETS_PATH",
		"GALLEY_MAX_UPLOAD_BYTES",
		"GALLEY_IMPORT_WORKERS",
		"GALLEY_STATS_WINDOW",
		"GALLEY_DEFAULT_FORMAT",
		"GALLEY_DEFAULT_SOFT_LIMIT",
		"GALLEY_PDF_FALLBACK_PDFTOTEXT",
	}
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.APIKey != "" {
		t.Errorf("expected auth disabled by default, got key %q", cfg.APIKey)
	}
	if cfg.ShareSecret != DefaultShareSecret {
		t.Errorf("expected default share secret, got %q", cfg.ShareSecret)
	}
	if cfg.DefaultFormat != "book" {
		t.Errorf("expected default format book, got %q", cfg.DefaultFormat)
	}
	if cfg.DefaultSoftLimit != 1200 {
		t.Errorf("expected default soft limit 1200, got %d", cfg.DefaultSoftLimit)
	}
	if cfg.ImportWorkers != 4 {
		t.Errorf("expected 4 import workers, got %d", cfg.ImportWorkers)
	}
	if cfg.MaxUploadBytes != 52428800 {
		t.Errorf("expected 50MB upload cap, got %d", cfg.MaxUploadBytes)
	}
	if cfg.StatsWindow != time.Hour {
		t.Errorf("expected 1h stats window, got %s", cfg.StatsWindow)
	}
	if !cfg.PDFFallbackPdftotext {
		t.Error("expected pdftotext fallback enabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected default config to validate, got %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9999")
	t.Setenv("GALLEY_API_KEY", "sekrit")
	t.Setenv("GALLEY_DEFAULT_FORMAT", "zine")
	t.Setenv("GALLEY_DEFAULT_SOFT_LIMIT", "600")
	t.Setenv("GALLEY_IMPORT_WORKERS", "8")
	t.Setenv("GALLEY_STATS_WINDOW", "30m")
	t.Setenv("GALLEY_MAX_UPLOAD_BYTES", "1048576")
	t.Setenv("GALLEY_PDF_FALLBACK_PDFTOTEXT", "false")

	cfg := Load()
	if cfg.Port != "9999" {
		t.Errorf("expected port 9999, got %q", cfg.Port)
	}
	if cfg.APIKey != "sekrit" {
		t.Errorf("expected api key override, got %q", cfg.APIKey)
	}
	if cfg.DefaultFormat != "zine" {
		t.Errorf("expected format zine, got %q", cfg.DefaultFormat)
	}
	if cfg.DefaultSoftLimit != 600 {
		t.Errorf("expected soft limit 600, got %d", cfg.DefaultSoftLimit)
	}
	if cfg.ImportWorkers != 8 {
		t.Errorf("expected 8 workers, got %d", cfg.ImportWorkers)
	}
	if cfg.StatsWindow != 30*time.Minute {
		t.Errorf("expected 30m window, got %s", cfg.StatsWindow)
	}
	if cfg.MaxUploadBytes != 1048576 {
		t.Errorf("expected 1MB cap, got %d", cfg.MaxUploadBytes)
	}
	if cfg.PDFFallbackPdftotext {
		t.Error("expected pdftotext fallback disabled")
	}
}

func TestLoadClampsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("GALLEY_IMPORT_WORKERS", "-2")
	t.Setenv("GALLEY_DEFAULT_SOFT_LIMIT", "0")
	t.Setenv("GALLEY_STATS_WINDOW", "-5m")
	t.Setenv("GALLEY_MAX_UPLOAD_BYTES", "-1")

	cfg := Load()
	if cfg.ImportWorkers != 4 {
		t.Errorf("expected workers clamped to 4, got %d", cfg.ImportWorkers)
	}
	if cfg.DefaultSoftLimit != 1200 {
		t.Errorf("expected soft limit clamped to 1200, got %d", cfg.DefaultSoftLimit)
	}
	if cfg.StatsWindow != time.Hour {
		t.Errorf("expected window clamped to 1h, got %s", cfg.StatsWindow)
	}
	if cfg.MaxUploadBytes != 52428800 {
		t.Errorf("expected upload cap clamped to 50MB, got %d", cfg.MaxUploadBytes)
	}
}

func TestValidateRejectsUnknownFormat(t *testing.T) {
	clearEnv(t)
	cfg := Load()
	cfg.DefaultFormat = "poster"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown format")
	}
}

package config

import (
	"testing"
	"time"

	apperrors "blackbox/internal/errors"
)

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	if err == nil {
		t.Fatal("Expected error when DATABASE_URL is unset")
	}
	if !apperrors.HasCode(err, apperrors.CodeConfigInvalid) {
		t.Errorf("Expected CONFIG_INVALID, got %s", apperrors.GetCode(err))
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/blackbox")
	t.Setenv("PORT", "")
	t.Setenv("STRICT_RUN_TRANSITIONS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Server.Port != "8000" {
		t.Errorf("Expected default port 8000, got %s", cfg.Server.Port)
	}
	if cfg.Runs.StrictTransitions {
		t.Error("Expected strict transitions off by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/blackbox")
	t.Setenv("PORT", "9000")
	t.Setenv("STRICT_RUN_TRANSITIONS", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Server.Port != "9000" {
		t.Errorf("Expected port 9000, got %s", cfg.Server.Port)
	}
	if !cfg.Runs.StrictTransitions {
		t.Error("Expected strict transitions on")
	}
}

func TestLoadClient_Defaults(t *testing.T) {
	t.Setenv("BLACKBOX_API_URL", "")
	t.Setenv("BLACKBOX_API_TIMEOUT", "")

	cfg := LoadClient()
	if cfg.APIBaseURL != "http://127.0.0.1:8000" {
		t.Errorf("Unexpected base URL %s", cfg.APIBaseURL)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("Unexpected timeout %s", cfg.Timeout)
	}
}

func TestLoadClient_BadTimeoutFallsBack(t *testing.T) {
	t.Setenv("BLACKBOX_API_TIMEOUT", "soon")

	cfg := LoadClient()
	if cfg.Timeout != 10*time.Second {
		t.Errorf("Expected fallback timeout, got %s", cfg.Timeout)
	}
}

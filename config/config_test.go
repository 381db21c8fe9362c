package config

import (
	"os"
	"testing"
	"time"
)

// unset clears a variable for the test while keeping t.Setenv's restore.
func unset(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("GAME_SESSION_TTL", "90m")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("port = %q", cfg.Port)
	}
	if !cfg.IsProduction() || cfg.IsDevelopment() {
		t.Error("environment flags wrong for production")
	}
	if cfg.GameSessionTTL != 90*time.Minute {
		t.Errorf("game session ttl = %v", cfg.GameSessionTTL)
	}
	if cfg.OriginsCSV() != "https://a.example,https://b.example" {
		t.Errorf("origins csv = %q", cfg.OriginsCSV())
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"ENVIRONMENT", "GAME_SESSION_TTL", "ACCOUNT_SESSION_TTL", "ALLOWED_ORIGINS"} {
		unset(t, key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.IsDevelopment() {
		t.Error("default environment should be development")
	}
	if cfg.GameSessionTTL != 2*time.Hour {
		t.Errorf("game session ttl = %v, want 2h", cfg.GameSessionTTL)
	}
	if cfg.AccountSessionTTL != 7*24*time.Hour {
		t.Errorf("account session ttl = %v, want 168h", cfg.AccountSessionTTL)
	}
	if len(cfg.AllowedOrigins) == 0 {
		t.Fatal("default origin allowlist empty")
	}

	found := false
	for _, origin := range cfg.AllowedOrigins {
		if origin == "https://quizmo.fun" {
			found = true
		}
	}
	if !found {
		t.Error("default origins should include the game domains")
	}
}

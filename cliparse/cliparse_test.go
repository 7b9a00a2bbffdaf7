// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
)

// clearConfigEnv unsets every variable ParseFlags reads for the duration of the test
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DATABASE_URL", "DATABASE_TYPE", "FIRESTORE_PROJECT",
		"POLL_MODE", "APP_ENV", "CORS_ORIGINS", "CONFIG_FILE",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3318 {
		t.Errorf("expected default port 3318, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabaseSQLite {
		t.Errorf("expected sqlite by default, got %q", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "aipartner.db" {
		t.Errorf("expected default sqlite file, got %q", cfg.DatabaseURL)
	}
	if cfg.PollMode != PollModeLedger {
		t.Errorf("expected ledger mode, got %q", cfg.PollMode)
	}
	if cfg.Env != "local" {
		t.Errorf("expected local env, got %q", cfg.Env)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "*" {
		t.Errorf("expected wildcard origin, got %v", cfg.AllowedOrigins)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("POLL_MODE", "counter")
	t.Setenv("CORS_ORIGINS", "http://localhost:5173, https://example.com")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabasePostgres {
		t.Errorf("expected postgres, got %q", cfg.DatabaseType)
	}
	if cfg.PollMode != PollModeCounter {
		t.Errorf("expected counter mode, got %q", cfg.PollMode)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://example.com" {
		t.Errorf("unexpected origins: %v", cfg.AllowedOrigins)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_TYPE", "postgres")

	cfg, err := ParseFlags([]string{"-p", "8080", "-t", "memory"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabaseMemory {
		t.Errorf("CLI should override env: expected memory, got %q", cfg.DatabaseType)
	}
}

func TestParseFlags_ConfigFile(t *testing.T) {
	clearConfigEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
port: 4000
env: production
database:
  type: firestore
  firestore_project: ai-partner-dev
poll:
  mode: counter
cors:
  origins:
    - https://partner.example.com
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	// Env beats the file
	t.Setenv("PORT", "5000")

	cfg, err := ParseFlags([]string{"-c", path})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 5000 {
		t.Errorf("env should override file: expected 5000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabaseFirestore || cfg.FirestoreProject != "ai-partner-dev" {
		t.Errorf("unexpected database config: %q %q", cfg.DatabaseType, cfg.FirestoreProject)
	}
	if cfg.PollMode != PollModeCounter {
		t.Errorf("expected counter mode from file, got %q", cfg.PollMode)
	}
	if cfg.Env != "production" {
		t.Errorf("expected production env from file, got %q", cfg.Env)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "https://partner.example.com" {
		t.Errorf("unexpected origins: %v", cfg.AllowedOrigins)
	}
}

func TestParseFlags_Validation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"postgres without url", []string{"-t", "postgres"}},
		{"firestore without project", []string{"-t", "firestore"}},
		{"unknown database type", []string{"-t", "mysql"}},
		{"unknown poll mode", []string{"-mode", "ranked"}},
		{"port out of range", []string{"-p", "70000"}},
		{"missing config file", []string{"-c", "/nonexistent/config.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestParseFlags_InvalidPortEnv(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PORT", "not-a-number")

	if _, err := ParseFlags([]string{}); err == nil {
		t.Error("expected error for invalid PORT")
	}
}

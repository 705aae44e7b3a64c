package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/carelink/carelink/internal/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// Ensure environment does not interfere
	_ = os.Unsetenv("CARELINK_ADDR")
	_ = os.Unsetenv("CARELINK_DATABASE_PATH")

	cfg, err := config.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig returned error for empty path: %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Fatalf("unexpected Addr: got %q want %q", cfg.Addr, ":8080")
	}
	if cfg.DatabasePath != "carelink.db" {
		t.Fatalf("unexpected DatabasePath: got %q want %q", cfg.DatabasePath, "carelink.db")
	}
	if cfg.APITimeout != 15*time.Second {
		t.Fatalf("unexpected APITimeout: got %v want %v", cfg.APITimeout, 15*time.Second)
	}
}

func TestLoadConfig_Env(t *testing.T) {
	os.Setenv("CARELINK_ADDR", ":9191")
	os.Setenv("CARELINK_DATABASE_PATH", "env.db")
	defer os.Unsetenv("CARELINK_ADDR")
	defer os.Unsetenv("CARELINK_DATABASE_PATH")

	cfg, err := config.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Addr != ":9191" {
		t.Fatalf("unexpected Addr: got %q want %q", cfg.Addr, ":9191")
	}
	if cfg.DatabasePath != "env.db" {
		t.Fatalf("unexpected DatabasePath: got %q want %q", cfg.DatabasePath, "env.db")
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	f, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer os.Remove(f.Name())
	f.Close()

	content := []byte("addr: \":9090\"\ntimeout: \"30s\"\ndatabase_path: \"test.db\"\n")
	if err := os.WriteFile(f.Name(), content, 0o600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := config.LoadConfig(f.Name())
	if err != nil {
		t.Fatalf("LoadConfig returned error for file: %v", err)
	}

	if cfg.Addr != ":9090" {
		t.Fatalf("unexpected Addr: got %q want %q", cfg.Addr, ":9090")
	}
	if cfg.DatabasePath != "test.db" {
		t.Fatalf("unexpected DatabasePath: got %q want %q", cfg.DatabasePath, "test.db")
	}
	if cfg.APITimeout != 30*time.Second {
		t.Fatalf("unexpected APITimeout: got %v want %v", cfg.APITimeout, 30*time.Second)
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	_ = os.Unsetenv("CARELINK_ADDR")
	_ = os.Unsetenv("CARELINK_DATABASE_PATH")

	f, err := os.CreateTemp("", "partial-*.yaml")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer os.Remove(f.Name())
	f.Close()

	if err := os.WriteFile(f.Name(), []byte("addr: \":7070\"\n"), 0o600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := config.LoadConfig(f.Name())
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Addr != ":7070" {
		t.Fatalf("unexpected Addr: got %q want %q", cfg.Addr, ":7070")
	}
	if cfg.APITimeout != 15*time.Second {
		t.Fatalf("unexpected APITimeout: got %v want %v", cfg.APITimeout, 15*time.Second)
	}
	if cfg.DatabasePath != "carelink.db" {
		t.Fatalf("unexpected DatabasePath: got %q want %q", cfg.DatabasePath, "carelink.db")
	}
}

func TestLoadConfig_BadTimeout(t *testing.T) {
	f, err := os.CreateTemp("", "badtimeout-*.yaml")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer os.Remove(f.Name())
	f.Close()

	if err := os.WriteFile(f.Name(), []byte("timeout: \"soon\"\n"), 0o600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	if _, err := config.LoadConfig(f.Name()); err == nil {
		t.Fatalf("expected error for unparseable timeout")
	}
}

func TestLoadConfig_BadPath(t *testing.T) {
	if _, err := config.LoadConfig("/path/that/does/not/exist.yaml"); err == nil {
		t.Fatalf("expected error for nonexistent path, got nil")
	}
}

func TestLoadConfig_BadYAML(t *testing.T) {
	f, err := os.CreateTemp("", "bad-*.yaml")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer os.Remove(f.Name())
	f.Close()

	if err := os.WriteFile(f.Name(), []byte("::: not yaml :::"), 0o600); err != nil {
		t.Fatalf("failed to write bad yaml: %v", err)
	}

	if _, err := config.LoadConfig(f.Name()); err == nil {
		t.Fatalf("expected YAML decode error, got nil")
	}
}

func TestValidate(t *testing.T) {
	cfg := &config.Config{Addr: ":8080", APITimeout: 15 * time.Second, DatabasePath: "carelink.db"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed unexpectedly: %v", err)
	}

	bad := &config.Config{Addr: "", APITimeout: 15 * time.Second, DatabasePath: "carelink.db"}
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected Validate to fail for empty addr")
	}

	bad = &config.Config{Addr: ":8080", APITimeout: 0, DatabasePath: "carelink.db"}
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected Validate to fail for zero timeout")
	}

	bad = &config.Config{Addr: ":8080", APITimeout: 15 * time.Second, DatabasePath: ""}
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected Validate to fail for empty database path")
	}
}

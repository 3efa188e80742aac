package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type envTestConfig struct {
	Addr    string        `env:"FARMHOUSE_ADMIN_TEST_ADDR" envDefault:":8082"`
	TTL     time.Duration `env:"FARMHOUSE_ADMIN_TEST_TTL" envDefault:"24h"`
	Retries int           `env:"FARMHOUSE_ADMIN_TEST_RETRIES" envDefault:"3"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Addr != ":8082" {
		t.Fatalf("addr = %q, want %q", cfg.Addr, ":8082")
	}
	if cfg.TTL != 24*time.Hour {
		t.Fatalf("ttl = %v, want 24h", cfg.TTL)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("FARMHOUSE_ADMIN_TEST_RETRIES", "three")
	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadDotEnvSkipsMissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("load dotenv: %v", err)
	}
}

func TestLoadDotEnvKeepsExistingValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	content := "FARMHOUSE_ADMIN_TEST_ADDR=:9999\nFARMHOUSE_ADMIN_TEST_FROM_FILE=yes\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}
	t.Setenv("FARMHOUSE_ADMIN_TEST_ADDR", ":7000")
	t.Setenv("FARMHOUSE_ADMIN_TEST_FROM_FILE", "")
	os.Unsetenv("FARMHOUSE_ADMIN_TEST_FROM_FILE")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("load dotenv: %v", err)
	}
	if got := os.Getenv("FARMHOUSE_ADMIN_TEST_ADDR"); got != ":7000" {
		t.Fatalf("addr = %q, want existing value", got)
	}
	if got := os.Getenv("FARMHOUSE_ADMIN_TEST_FROM_FILE"); got != "yes" {
		t.Fatalf("from file = %q, want %q", got, "yes")
	}
}

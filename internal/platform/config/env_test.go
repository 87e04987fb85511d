package config

import (
	"strings"
	"testing"
	"time"
)

type prefixedTestConfig struct {
	Addr string        `env:"TEST_ADDR" envDefault:"localhost:1"`
	Wait time.Duration `env:"TEST_WAIT" envDefault:"2s"`
}

func TestParseEnvWithPrefixDefaults(t *testing.T) {
	var cfg prefixedTestConfig
	if err := ParseEnvWithPrefix(&cfg, EnvPrefix); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Addr != "localhost:1" || cfg.Wait != 2*time.Second {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}

func TestParseEnvWithPrefixReadsPrefixedNames(t *testing.T) {
	t.Setenv(EnvPrefix+"TEST_ADDR", "127.0.0.1:9000")
	t.Setenv("TEST_WAIT", "9s")

	var cfg prefixedTestConfig
	if err := ParseEnvWithPrefix(&cfg, EnvPrefix); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Addr != "127.0.0.1:9000" {
		t.Fatalf("Addr = %q, want %q", cfg.Addr, "127.0.0.1:9000")
	}
	if cfg.Wait != 2*time.Second {
		t.Fatalf("Wait = %v, want unprefixed variable to be ignored", cfg.Wait)
	}
}

func TestParseEnvWithPrefixError(t *testing.T) {
	t.Setenv(EnvPrefix+"TEST_WAIT", "soon")

	var cfg prefixedTestConfig
	err := ParseEnvWithPrefix(&cfg, EnvPrefix)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"kvmesh/config"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != config.Default() {
		t.Fatalf("Load(missing) = %+v, want Default() = %+v", cfg, config.Default())
	}
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != config.Default() {
		t.Fatalf("Load(\"\") = %+v, want Default()", cfg)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manager.yaml")
	contents := "listen: \":9999\"\nworkers: 4\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Listen != ":9999" {
		t.Errorf("Listen = %q, want :9999", cfg.Listen)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	// Fields absent from the file keep their Default() values.
	if cfg.ProbeInterval != config.Default().ProbeInterval {
		t.Errorf("ProbeInterval = %s, want default %s", cfg.ProbeInterval, config.Default().ProbeInterval)
	}
}

func TestValidateRejectsEmptyListen(t *testing.T) {
	cfg := config.Default()
	cfg.Listen = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate: expected error for empty listen address")
	}
}

func TestValidateRejectsNonPositiveWorkers(t *testing.T) {
	cfg := config.Default()
	cfg.Workers = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate: expected error for zero workers")
	}
}

func TestValidateRejectsNonPositiveProbeInterval(t *testing.T) {
	cfg := config.Default()
	cfg.ProbeInterval = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate: expected error for zero probe interval")
	}
}

func TestValidateAcceptsDefault(t *testing.T) {
	if err := config.Default().Validate(); err != nil {
		t.Fatalf("Validate(Default()) = %v, want nil", err)
	}
}

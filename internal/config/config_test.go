package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want default", cfg)
	}
}

func TestLoadParsesBackendAndPrecision(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".arrlang.yaml")
	if err := os.WriteFile(path, []byte("backend: nested\nfloatPrecision: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Backend != "nested" || cfg.FloatPrecision != 4 {
		t.Errorf("cfg = %+v, want backend=nested floatPrecision=4", cfg)
	}
}

func TestLoadDefaultsEmptyBackendToDense(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".arrlang.yaml")
	if err := os.WriteFile(path, []byte("floatPrecision: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Backend != "dense" {
		t.Errorf("backend = %q, want dense", cfg.Backend)
	}
}

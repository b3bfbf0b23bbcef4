package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg != defaultConfig() {
		t.Errorf("loadConfig(missing) = %+v, want defaults %+v", cfg, defaultConfig())
	}
}

func TestLoadConfigOverlaysFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hexascan.yaml")
	yaml := "solr_url: http://example.invalid/solr\nlog_level: debug\nworkers: 4\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.SolrURL != "http://example.invalid/solr" || cfg.LogLevel != "debug" || cfg.Workers != 4 {
		t.Errorf("loadConfig() = %+v, want overlaid values", cfg)
	}
}

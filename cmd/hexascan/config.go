package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/boxesandglue/hexascan"
)

// config holds the optional hexascan.yaml settings: where Solr lives, how
// chatty logging should be, how many workers the scan/tei subcommands fan
// Analyze calls out over, and the scansion engine's short-as-long fallback
// cost.
type config struct {
	SolrURL           string `yaml:"solr_url"`
	LogLevel          string `yaml:"log_level"`
	Workers           int    `yaml:"workers"`
	ShortFallbackCost int    `yaml:"short_fallback_cost"`
}

func defaultConfig() config {
	return config{
		SolrURL:           "http://localhost:8983/solr/hexameter",
		LogLevel:          "info",
		Workers:           0, // 0 means runtime.GOMAXPROCS(0)
		ShortFallbackCost: hexascan.DefaultFallbackCost,
	}
}

// loadConfig reads path if it exists, overlaying its fields onto the
// defaults. A missing file is not an error: hexascan runs fine unconfigured.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("hexascan: read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("hexascan: parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Package config loads and saves the spendo.yaml configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/spendo-dev/spendo/internal/detect"
	"github.com/spendo-dev/spendo/internal/insights"
	"github.com/spendo-dev/spendo/internal/lifecycle"
)

// Config represents the top-level spendo.yaml configuration.
type Config struct {
	DataDir    string            `yaml:"data_dir,omitempty"`
	Firestore  FirestoreConfig   `yaml:"firestore,omitempty"`
	Thresholds detect.Thresholds `yaml:"thresholds"`
	Insights   insights.Options  `yaml:"insights"`
	SnoozeDays int               `yaml:"snooze_days"`
}

// FirestoreConfig selects the durable record store. Leaving Project empty
// keeps everything local.
type FirestoreConfig struct {
	Project string `yaml:"project,omitempty"`
}

// Load reads a spendo.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with the standard detector thresholds and local
// storage under the user's home directory.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		c.DataDir = filepath.Join(home, ".spendo")
	}
	if c.Thresholds == (detect.Thresholds{}) {
		c.Thresholds = detect.DefaultThresholds()
	}
	if c.Insights == (insights.Options{}) {
		c.Insights = insights.DefaultOptions()
	}
	if c.SnoozeDays <= 0 {
		c.SnoozeDays = lifecycle.DefaultSnoozeDays
	}
}

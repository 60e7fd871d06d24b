// Package config loads and saves the splitledger.yaml project file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/splitledger-dev/splitledger/internal/normalize"
)

// FileName is the default config file name.
const FileName = "splitledger.yaml"

// Config represents the top-level splitledger.yaml configuration.
type Config struct {
	Store   StoreConfig   `yaml:"store"`
	Files   FilesConfig   `yaml:"files"`
	Ingest  IngestConfig  `yaml:"ingest"`
	Logging LoggingConfig `yaml:"logging"`
}

// StoreConfig locates the SQLite database.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// FilesConfig locates the inbox/archive root.
type FilesConfig struct {
	Root string `yaml:"root"`
}

// IngestConfig controls ingestion behavior.
type IngestConfig struct {
	// HistoryBoundary is the YYYY-MM-DD date before which outflows are
	// auto-resolved (they predate the split arrangement).
	HistoryBoundary string `yaml:"history_boundary"`
	// DefaultUser owns files whose names carry no user prefix.
	DefaultUser string `yaml:"default_user"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Load reads a splitledger.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
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

// Default returns a Config with sensible defaults for a new project.
func Default(defaultUser string) *Config {
	return &Config{
		Store:  StoreConfig{Path: "splitledger.db"},
		Files:  FilesConfig{Root: "files"},
		Ingest: IngestConfig{HistoryBoundary: "2024-09-01", DefaultUser: defaultUser},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// HistoryBoundary parses the configured boundary date.
func (c *Config) HistoryBoundary() (time.Time, error) {
	t, err := time.Parse(normalize.ISODate, c.Ingest.HistoryBoundary)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing history_boundary %q: %w", c.Ingest.HistoryBoundary, err)
	}
	return t, nil
}

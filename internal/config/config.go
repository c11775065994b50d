package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file
const (
	EnvDataDir  = "BIKESHARE_DATA_DIR"
	EnvLogLevel = "BIKESHARE_LOG_LEVEL"
)

// Config holds the application configuration
type Config struct {
	DataDir  string `yaml:"data_dir,omitempty"`  // Directory holding the city CSV files (default: ".")
	LogLevel string `yaml:"log_level,omitempty"` // debug, info, warn or error (default: "warn")
	PageSize int    `yaml:"page_size,omitempty"` // Raw trips shown per page (default: 5)
}

// Load reads the config file and applies environment overrides
func Load(configPath string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	case os.IsNotExist(err):
		// Missing config file means defaults
	default:
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if v := os.Getenv(EnvDataDir); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}

	return &cfg, nil
}

// Save writes the config to file
func Save(configPath string, cfg *Config) error {
	// Ensure directory exists
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// DefaultConfigPath returns the default config file path (local directory)
func DefaultConfigPath() string {
	return "config.yaml"
}

// GetDataDir returns the data directory, defaulting to the working directory
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return "."
	}
	return c.DataDir
}

// GetLogLevel returns the log level with a default of "warn"
func (c *Config) GetLogLevel() string {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		return c.LogLevel
	default:
		return "warn"
	}
}

// GetPageSize returns the raw trip page size with a default of 5
func (c *Config) GetPageSize() int {
	if c.PageSize <= 0 {
		return 5
	}
	return c.PageSize
}

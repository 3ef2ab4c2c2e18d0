package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the application-level settings persisted under the user's
// home directory. Per-series matching rules live next to the media instead,
// see SeriesConfig.
type Config struct {
	EnableLogging       bool     `yaml:"enable_logging"`
	LogRetentionDays    int      `yaml:"log_retention_days"`
	ProbeTimeoutSeconds int      `yaml:"probe_timeout_seconds"`
	Probers             []string `yaml:"probers"`
}

// DefaultConfig returns the default application configuration.
func DefaultConfig() *Config {
	return &Config{
		EnableLogging:       true,
		LogRetentionDays:    30,
		ProbeTimeoutSeconds: 30,
		Probers:             []string{"mkvinfo", "ffprobe"},
	}
}

// ConfigPath returns the path to the config file.
func ConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".seriestidy", "config.yaml"), nil
}

// Load reads the configuration from disk. A missing file yields the
// defaults; fields absent from the file keep their default values because
// the document is unmarshaled over a default-initialized struct.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to disk, creating the directory if needed.
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	appDir = "pastel"

	yamlFile = "config.yaml"
	tomlFile = "config.toml"

	// EnvAPIURL overrides API.BaseURL when set.
	EnvAPIURL = "PASTEL_API_URL"
	// EnvTimeoutMS overrides API.TimeoutMS when set.
	EnvTimeoutMS = "PASTEL_TIMEOUT_MS"

	DefaultBaseURL   = "http://localhost:3001"
	DefaultTimeoutMS = 10000
	DefaultLogLevel  = "info"
)

// ErrInvalidEnv is returned when an environment override cannot be parsed.
var ErrInvalidEnv = errors.New("invalid environment override")

// Config represents the application configuration
type Config struct {
	API         APIConfig   `yaml:"api" toml:"api"`
	Log         LogConfig   `yaml:"log" toml:"log"`
	KeyMappings KeyMappings `yaml:"key_mappings" toml:"key_mappings"`
	Theme       Theme       `yaml:"theme" toml:"theme"`
}

// APIConfig points the stores at the todo backend.
type APIConfig struct {
	BaseURL   string `yaml:"base_url" toml:"base_url"`
	TimeoutMS int    `yaml:"timeout_ms" toml:"timeout_ms"`
}

// LogConfig controls the slog file handler.
type LogConfig struct {
	Level string `yaml:"level" toml:"level"`
	Dir   string `yaml:"dir,omitempty" toml:"dir,omitempty"`
}

// Default returns a config with every value filled in.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads config from the user's config directory.
// config.yaml wins over config.toml; with neither present the defaults are used.
// Environment overrides are applied last.
func Load() (*Config, error) {
	dir, err := getConfigDir()
	if err != nil {
		// Return default config if we can't determine config path
		cfg := Default()
		if err := cfg.applyEnv(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	var cfg Config
	switch {
	case fileExists(filepath.Join(dir, yamlFile)):
		data, err := os.ReadFile(filepath.Join(dir, yamlFile))
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", yamlFile, err)
		}
	case fileExists(filepath.Join(dir, tomlFile)):
		if _, err := toml.DecodeFile(filepath.Join(dir, tomlFile), &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", tomlFile, err)
		}
	}

	// Fill in any missing values with defaults
	cfg.applyDefaults()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save saves the config as YAML to the user's config directory
func (c *Config) Save() error {
	dir, err := getConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, yamlFile), data, 0o644)
}

// Path returns the YAML config path Save writes to.
func Path() (string, error) {
	dir, err := getConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, yamlFile), nil
}

// getConfigDir returns the directory holding the config files
func getConfigDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appDir), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", appDir), nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// applyEnv applies PASTEL_* overrides on top of file values.
func (c *Config) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv(EnvAPIURL)); v != "" {
		c.API.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTimeoutMS)); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms <= 0 {
			return fmt.Errorf("%w: %s=%q", ErrInvalidEnv, EnvTimeoutMS, v)
		}
		c.API.TimeoutMS = ms
	}
	return nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.TimeoutMS <= 0 {
		c.API.TimeoutMS = DefaultTimeoutMS
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	c.KeyMappings.applyDefaults()
	c.Theme.ApplyDefaults()
}

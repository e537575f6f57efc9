// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration values for maresia.
type Config struct {
	APIURL         string `mapstructure:"api_url" yaml:"api_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	DefaultGuests  int    `mapstructure:"default_guests" yaml:"default_guests"`
	RoomType       string `mapstructure:"room_type" yaml:"room_type"`
	ReceiptDir     string `mapstructure:"receipt_dir" yaml:"receipt_dir"`
	LogLevel       string `mapstructure:"log_level" yaml:"log_level"`
	LogFile        string `mapstructure:"log_file" yaml:"log_file"`
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("maresia")

	v.SetDefault("api_url", "http://localhost:3001/api")
	v.SetDefault("timeout_seconds", 10)
	v.SetDefault("default_guests", 2)
	v.SetDefault("room_type", "")
	v.SetDefault("receipt_dir", "receipts")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")

	// Setup ENV binding with MARESIA_ prefix
	v.SetEnvPrefix("MARESIA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Explicit ENV bindings for better int parsing
	if err := v.BindEnv("api_url", "MARESIA_API_URL"); err != nil {
		return nil, fmt.Errorf("binding api_url env: %w", err)
	}
	if err := v.BindEnv("timeout_seconds", "MARESIA_TIMEOUT_SECONDS"); err != nil {
		return nil, fmt.Errorf("binding timeout_seconds env: %w", err)
	}
	if err := v.BindEnv("default_guests", "MARESIA_DEFAULT_GUESTS"); err != nil {
		return nil, fmt.Errorf("binding default_guests env: %w", err)
	}
	if err := v.BindEnv("room_type", "MARESIA_ROOM_TYPE"); err != nil {
		return nil, fmt.Errorf("binding room_type env: %w", err)
	}
	if err := v.BindEnv("receipt_dir", "MARESIA_RECEIPT_DIR"); err != nil {
		return nil, fmt.Errorf("binding receipt_dir env: %w", err)
	}
	if err := v.BindEnv("log_level", "MARESIA_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("binding log_level env: %w", err)
	}
	if err := v.BindEnv("log_file", "MARESIA_LOG_FILE"); err != nil {
		return nil, fmt.Errorf("binding log_file env: %w", err)
	}

	// Load global config first (if exists)
	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	// Merge project config on top (if exists)
	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/maresia/maresia.yml or $XDG_CONFIG_HOME/maresia/maresia.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "maresia", "maresia.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "maresia", "maresia.yml")
}

// ProjectPath returns the project-local config path.
// Returns ./maresia.yml in the current working directory.
func ProjectPath() string {
	return "maresia.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(ProjectPath(), data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Load loads the configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".racebot"))
		}

		// Check /etc
		v.AddConfigPath("/etc/racebot/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Race room defaults
	v.SetDefault("race.time_limit", 24)
	v.SetDefault("race.auto_start", true)
	v.SetDefault("race.allow_comments", true)
	v.SetDefault("race.allow_midrace_chat", true)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Racetime.ClientID == "" {
		return fmt.Errorf("racetime.client_id is required")
	}

	if cfg.Racetime.ClientSecret == "" || cfg.Racetime.ClientSecret == "your-client-secret-here" {
		return fmt.Errorf("racetime.client_secret must be set to a valid client secret")
	}

	if len(cfg.Racetime.Categories) == 0 {
		return fmt.Errorf("racetime.categories must list at least one category")
	}

	if cfg.Race.Goal == "" {
		return fmt.Errorf("race.goal is required")
	}

	if cfg.Race.StartDelay < 0 || cfg.Race.TimeLimit < 0 || cfg.Race.ChatMessageDelay < 0 {
		return fmt.Errorf("race delays and time limit must not be negative")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}

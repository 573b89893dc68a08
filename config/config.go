package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/s0up4200/holidayapi/holidayapi"
)

// EnvPrefix prefixes environment overrides, e.g. HOLIDAYAPI_API_KEY
const EnvPrefix = "HOLIDAYAPI"

// Load loads the configuration from file and environment. A missing config
// file is only an error when configPath is set explicitly.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// api.key has no default, so bind it for Unmarshal to see the env value
	if err := v.BindEnv("api.key"); err != nil {
		return nil, fmt.Errorf("error binding environment: %w", err)
	}

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
			v.AddConfigPath(filepath.Join(home, ".holidayapi"))
		}

		// Check /etc
		v.AddConfigPath("/etc/holidayapi/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
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
	// API defaults
	v.SetDefault("api.version", holidayapi.DefaultVersion)
	v.SetDefault("api.root", holidayapi.DefaultAPIRoot)
	v.SetDefault("api.timeout", holidayapi.DefaultTimeout)
	v.SetDefault("api.user_agent", "holidayapi-cli")

	// Output defaults
	v.SetDefault("output.format", "table")
	v.SetDefault("output.color", true)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)

	v.SetDefault("update.repository", "s0up4200/holidayapi")
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.API.Key == "" {
		return fmt.Errorf("api.key is required (or set %s_API_KEY)", EnvPrefix)
	}
	if err := holidayapi.ValidateKey(cfg.API.Key); err != nil {
		return fmt.Errorf("api.key: %w", err)
	}
	if err := holidayapi.ValidateVersion(cfg.API.Version); err != nil {
		return fmt.Errorf("api.version: %w", err)
	}
	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive, got %s", cfg.API.Timeout)
	}

	// Validate logging level
	validLevels := map[string]bool{
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

	if cfg.Output.Format != "table" && cfg.Output.Format != "json" {
		return fmt.Errorf("invalid output.format: %s (must be 'table' or 'json')", cfg.Output.Format)
	}

	return nil
}

package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
	Update  UpdateConfig  `mapstructure:"update"`
	Filter  FilterConfig  `mapstructure:"filter"`
}

// APIConfig holds Holiday API connection details
type APIConfig struct {
	Key       string        `mapstructure:"key"`
	Version   int           `mapstructure:"version"`
	Root      string        `mapstructure:"root"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// OutputConfig controls how results are printed
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// UpdateConfig points the self-updater at a GitHub repository
type UpdateConfig struct {
	Repository string `mapstructure:"repository"`
}

// FilterConfig maps preset names to filter expressions. Viper lowercases
// the names.
type FilterConfig map[string]string

package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Webservice WebserviceConfig `mapstructure:"webservice"`
	Language   LanguageConfig   `mapstructure:"language"`
	Fetch      FetchConfig      `mapstructure:"fetch"`
	Filter     FilterConfig     `mapstructure:"filter"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// WebserviceConfig holds the shop connection details
type WebserviceConfig struct {
	URL  string `mapstructure:"url"`
	Key  string `mapstructure:"key"`
	Root string `mapstructure:"root"`
}

// LanguageConfig maps ISO codes to shop language ids and selects the
// active one
type LanguageConfig struct {
	Default string         `mapstructure:"default"`
	Map     map[string]int `mapstructure:"map"`
}

// FetchConfig tunes the HTTP transport
type FetchConfig struct {
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// FilterConfig contains named filter expressions
type FilterConfig map[string]string

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

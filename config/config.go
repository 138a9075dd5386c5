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
			v.AddConfigPath(filepath.Join(home, ".prestactl"))
		}

		// Check /etc
		v.AddConfigPath("/etc/prestactl/")
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
	// Webservice defaults
	v.SetDefault("webservice.url", "http://localhost")
	v.SetDefault("webservice.root", "/api")

	// Language defaults
	v.SetDefault("language.default", "en")
	v.SetDefault("language.map", map[string]int{"en": 1})

	// Fetch defaults
	v.SetDefault("fetch.timeout", "30s")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Webservice.URL == "" {
		return fmt.Errorf("webservice.url is required")
	}

	if cfg.Webservice.Key == "" || cfg.Webservice.Key == "your-webservice-key-here" {
		return fmt.Errorf("webservice.key must be set to a valid webservice key")
	}

	if len(cfg.Language.Map) == 0 {
		return fmt.Errorf("language.map must declare at least one language")
	}
	for iso, id := range cfg.Language.Map {
		if id < 1 {
			return fmt.Errorf("language.map entry %q has invalid id %d", iso, id)
		}
	}
	if _, ok := cfg.Language.Map[cfg.Language.Default]; !ok {
		return fmt.Errorf("language.default %q is not in language.map", cfg.Language.Default)
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

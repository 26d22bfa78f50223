// Package config provides configuration management for the company manager.
// It loads configuration from environment variables and .env files.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the application configuration.
type Config struct {
	Profile ProfileConfig
	Debug   bool
}

// ProfileConfig represents profile storage configuration.
type ProfileConfig struct {
	// Dir is the directory holding the profile files.
	Dir string
	// DBPath overrides the export-history database location.
	DBPath string
	// ExportsDir overrides where generated exports are written.
	ExportsDir string
}

// Load loads configuration from environment variables.
// It automatically loads .env file from the current directory if available.
// You can optionally specify a custom .env file path.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Try to load .env from current directory (ignore error if not found)
		_ = godotenv.Load()
	}

	viper.SetDefault("COMPANY_DETAILS_DIR", "./company-details")
	viper.SetDefault("COMPANY_DETAILS_DB_PATH", "")
	viper.SetDefault("COMPANY_DETAILS_EXPORTS_DIR", "")
	viper.SetDefault("DEBUG", false)
	viper.AutomaticEnv()

	config := &Config{
		Profile: ProfileConfig{
			Dir:        viper.GetString("COMPANY_DETAILS_DIR"),
			DBPath:     viper.GetString("COMPANY_DETAILS_DB_PATH"),
			ExportsDir: viper.GetString("COMPANY_DETAILS_EXPORTS_DIR"),
		},
		Debug: viper.GetBool("DEBUG"),
	}

	return config, nil
}

// Validate validates the configuration.
// It checks if all required fields are set.
func (c *Config) Validate() error {
	var missing []string

	if c.Profile.Dir == "" {
		missing = append(missing, "COMPANY_DETAILS_DIR")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %v\nPlease check your .env file or environment variables", missing)
	}

	return nil
}

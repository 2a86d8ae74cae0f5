// Package config loads gqlweave's project configuration from gqlweave.yml.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the gqlweave project configuration
type Config struct {
	// Schema lists the schema files or directories to load, in order.
	Schema []string `mapstructure:"schema"`
	// Documents lists operation-document files or directories. Optional.
	Documents []string `mapstructure:"documents"`
	// Output is where the generated template context is written.
	Output string `mapstructure:"output"`
}

// Load loads the configuration from gqlweave.yml or gqlweave.yaml in the
// working directory, falling back to defaults when no file exists.
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("schema", []string{"schema.graphql"})
	v.SetDefault("documents", []string{})
	v.SetDefault("output", "generated/context.json")

	v.SetConfigName("gqlweave")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Enable environment variable support (GQLWEAVE_OUTPUT etc.)
	v.SetEnvPrefix("gqlweave")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	if len(config.Schema) == 0 {
		return fmt.Errorf("config error: at least one schema path is required")
	}
	if config.Output == "" {
		return fmt.Errorf("config error: output path cannot be empty")
	}
	return nil
}

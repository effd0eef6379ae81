package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the doclint configuration
type Config struct {
	Root    string       `mapstructure:"root"`
	System  string       `mapstructure:"system"`
	Strict  bool         `mapstructure:"strict"`
	NoColor bool         `mapstructure:"no_color"`
	Matrix  MatrixConfig `mapstructure:"matrix"`
}

// MatrixConfig represents traceability matrix output configuration
type MatrixConfig struct {
	// Output is the artifact path relative to the system subtree. Empty
	// means the conventional 27-traceability/matrix.md location.
	Output string `mapstructure:"output"`
}

// Load loads the configuration from .doclint.yml or .doclint.yaml in the
// working directory. A missing file just means defaults; flags override
// whatever the file sets.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("root", "docs")
	v.SetDefault("strict", false)
	v.SetDefault("no_color", false)

	v.SetConfigName(".doclint")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("DOCLINT")
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

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if cfg.Root == "" {
		return fmt.Errorf("root must not be empty")
	}
	if strings.HasPrefix(cfg.Matrix.Output, "/") {
		return fmt.Errorf("matrix.output must be relative to the system subtree, got: %s", cfg.Matrix.Output)
	}
	return nil
}

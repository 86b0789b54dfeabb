// Package configs loads and validates the application configuration.
// Values are layered the usual way: defaults, then config file, then
// MIXCHECK_* environment variables, then flags.
package configs

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/RyanBlaney/mixcheck/pkg/audio/analysis"
)

// Config represents the application configuration.
type Config struct {
	// Application settings
	Verbose      bool   `mapstructure:"verbose"`
	LogLevel     string `mapstructure:"log_level"`
	OutputFormat string `mapstructure:"output_format"`

	// Analysis frame parameters
	Analysis analysis.Config `mapstructure:"analysis"`

	// Output configuration
	Output OutputConfig `mapstructure:"output"`
}

// OutputConfig contains output formatting settings.
type OutputConfig struct {
	Precision       int  `mapstructure:"precision"`
	IncludeMetadata bool `mapstructure:"include_metadata"`
	Pretty          bool `mapstructure:"pretty"`
}

// LoadConfig loads configuration from viper.
func LoadConfig() (*Config, error) {
	config := &Config{}

	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %w", err)
	}

	return config, nil
}

// Validate checks the configuration for values the analyzer cannot
// work with.
func (c *Config) Validate() error {
	if c.Analysis.FrameLength <= 0 {
		return fmt.Errorf("analysis frame length must be positive")
	}
	if c.Analysis.HopLength <= 0 {
		return fmt.Errorf("analysis hop length must be positive")
	}
	if c.Analysis.HopLength > c.Analysis.FrameLength {
		return fmt.Errorf("analysis hop length cannot exceed frame length")
	}
	if c.Analysis.CentroidWindow <= 0 || c.Analysis.CentroidHop <= 0 {
		return fmt.Errorf("centroid window and hop must be positive")
	}

	switch c.OutputFormat {
	case "json", "yaml", "table":
	default:
		return fmt.Errorf("unsupported output format: %s", c.OutputFormat)
	}

	return nil
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config represents the application configuration. It covers only the
// presentation side of the tool; the estimation constants are compiled
// into the engine.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Display DisplayConfig `yaml:"display"`
}

// OutputConfig represents report output configuration
type OutputConfig struct {
	OutputDir    string `yaml:"output_dir"`
	SaveJSON     bool   `yaml:"save_json"`
	SaveMarkdown bool   `yaml:"save_markdown"`
}

// DisplayConfig represents console display configuration
type DisplayConfig struct {
	CurrencySymbol string `yaml:"currency_symbol"`
}

// Default returns the configuration used when no config file is present
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			OutputDir:    "output",
			SaveJSON:     true,
			SaveMarkdown: true,
		},
		Display: DisplayConfig{
			CurrencySymbol: "$",
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Output.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}

	if c.Display.CurrencySymbol == "" {
		return fmt.Errorf("currency symbol is required")
	}

	return nil
}

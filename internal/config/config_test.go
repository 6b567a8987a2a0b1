package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "output", cfg.Output.OutputDir)
	assert.True(t, cfg.Output.SaveJSON)
	assert.True(t, cfg.Output.SaveMarkdown)
	assert.Equal(t, "$", cfg.Display.CurrencySymbol)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
output:
  output_dir: reports
  save_json: true
  save_markdown: false
display:
  currency_symbol: "€"
`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "reports", cfg.Output.OutputDir)
	assert.True(t, cfg.Output.SaveJSON)
	assert.False(t, cfg.Output.SaveMarkdown)
	assert.Equal(t, "€", cfg.Display.CurrencySymbol)
}

func TestLoadConfigKeepsDefaultsForMissingKeys(t *testing.T) {
	path := writeConfig(t, `
output:
  output_dir: reports
`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "reports", cfg.Output.OutputDir)
	assert.Equal(t, "$", cfg.Display.CurrencySymbol)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := writeConfig(t, "output: [not: a: mapping")

	_, err := LoadConfig(path)

	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "empty output dir", mutate: func(c *Config) { c.Output.OutputDir = "" }, wantErr: true},
		{name: "empty currency symbol", mutate: func(c *Config) { c.Display.CurrencySymbol = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

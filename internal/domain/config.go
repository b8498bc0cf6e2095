package domain

import (
	"fmt"
	"strings"
)

// DefaultCurrency prefixes prices when no currency is configured.
const DefaultCurrency = "$"

// ValidLogLevels enumerates the accepted log.level values.
var ValidLogLevels = []string{"debug", "info", "warn", "warning", "error"}

// ValidLogFormats enumerates the accepted log.format values.
var ValidLogFormats = []string{"text", "json"}

// Config holds session configuration loaded from .stockroom.yaml.
type Config struct {
	Currency       string    `yaml:"currency"         json:"currency,omitempty"`
	MaxInputLength int       `yaml:"max_input_length" json:"max_input_length,omitempty"`
	ClearScreen    bool      `yaml:"clear_screen"     json:"clear_screen,omitempty"`
	Pause          bool      `yaml:"pause"            json:"pause,omitempty"`
	Log            LogConfig `yaml:"log"              json:"log,omitempty"`
}

// LogConfig controls the diagnostic logger, which writes to stderr.
type LogConfig struct {
	Level  string `yaml:"level"  json:"level,omitempty"`
	Format string `yaml:"format" json:"format,omitempty"`
}

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() Config {
	return Config{
		Currency:       DefaultCurrency,
		MaxInputLength: DefaultMaxLength,
		Log:            LogConfig{Level: "warn", Format: "text"},
	}
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c Config) Validate() error {
	if c.MaxInputLength < 0 {
		return fmt.Errorf("max_input_length must be positive, got %d", c.MaxInputLength)
	}
	if c.Log.Level != "" && !contains(ValidLogLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("unknown log level %q (valid: %s)", c.Log.Level, strings.Join(ValidLogLevels, ", "))
	}
	if c.Log.Format != "" && !contains(ValidLogFormats, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("unknown log format %q (valid: %s)", c.Log.Format, strings.Join(ValidLogFormats, ", "))
	}
	return nil
}

// Merge overlays the explicit (non-zero) values of override on c.
func (c Config) Merge(override Config) Config {
	result := c
	if override.Currency != "" {
		result.Currency = override.Currency
	}
	if override.MaxInputLength > 0 {
		result.MaxInputLength = override.MaxInputLength
	}
	if override.ClearScreen {
		result.ClearScreen = true
	}
	if override.Pause {
		result.Pause = true
	}
	if override.Log.Level != "" {
		result.Log.Level = strings.ToLower(override.Log.Level)
	}
	if override.Log.Format != "" {
		result.Log.Format = strings.ToLower(override.Log.Format)
	}
	return result
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

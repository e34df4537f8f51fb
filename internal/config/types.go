// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"slices"
)

const (
	LogFormatText   LogFormat = "text"
	LogFormatJSON   LogFormat = "json"
	LogFormatLogfmt LogFormat = "logfmt"
)

var (
	// ErrInvalidConfig is the sentinel wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid configuration")

	logLevels  = []string{"debug", "info", "warn", "error", "fatal"}
	logFormats = []LogFormat{LogFormatText, LogFormatJSON, LogFormatLogfmt}
)

type (
	// LogFormat selects the charmbracelet/log formatter.
	LogFormat string

	// Config is the effective launcher configuration.
	Config struct {
		// LogLevel is the minimum level written to stderr.
		LogLevel string `json:"log_level" toml:"log_level" mapstructure:"log_level"`
		// LogFormat is one of text, json or logfmt.
		LogFormat LogFormat `json:"log_format" toml:"log_format" mapstructure:"log_format"`
		// DryRun prints the planned interpreter command line instead of
		// replacing the process.
		DryRun bool `json:"dry_run" toml:"dry_run" mapstructure:"dry_run"`
		// Verbose adds the full error chain to failure reports.
		Verbose bool `json:"verbose" toml:"verbose" mapstructure:"verbose"`
	}

	// InvalidConfigError reports a field with an unsupported value.
	InvalidConfigError struct {
		Field string
		Value string
	}
)

// DefaultConfig returns the configuration used when nothing is set. Warn level
// keeps a successful launch silent.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "warn",
		LogFormat: LogFormatText,
	}
}

// Validate checks values that may arrive unchecked through the environment.
func (c *Config) Validate() error {
	if !slices.Contains(logLevels, c.LogLevel) {
		return &InvalidConfigError{Field: "log_level", Value: c.LogLevel}
	}
	if !slices.Contains(logFormats, c.LogFormat) {
		return &InvalidConfigError{Field: "log_format", Value: string(c.LogFormat)}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

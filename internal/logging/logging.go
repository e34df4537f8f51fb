// SPDX-License-Identifier: MPL-2.0

// Package logging builds the charmbracelet/log logger used by both binaries
// and installs it as the log/slog default handler, so library packages log
// through slog without knowing the backend.
package logging

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/log"

	"github.com/openstenoproject/plover-launcher/internal/config"
)

// Options selects level, format and prefix for New.
type Options struct {
	Level  string
	Format config.LogFormat
	Prefix string
}

// FromConfig derives logger options from the effective configuration.
func FromConfig(cfg *config.Config, prefix string) Options {
	return Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Prefix: prefix,
	}
}

// New builds a logger writing to w.
func New(w io.Writer, opts Options) (*log.Logger, error) {
	level, err := log.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	formatter, err := formatterFor(opts.Format)
	if err != nil {
		return nil, err
	}

	return log.NewWithOptions(w, log.Options{
		Level:     level,
		Prefix:    opts.Prefix,
		Formatter: formatter,
	}), nil
}

// Install builds a logger and makes it the slog default.
func Install(w io.Writer, opts Options) (*log.Logger, error) {
	logger, err := New(w, opts)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(slog.New(logger))
	return logger, nil
}

func formatterFor(f config.LogFormat) (log.Formatter, error) {
	switch f {
	case config.LogFormatText, "":
		return log.TextFormatter, nil
	case config.LogFormatJSON:
		return log.JSONFormatter, nil
	case config.LogFormatLogfmt:
		return log.LogfmtFormatter, nil
	default:
		return 0, fmt.Errorf("unknown log format %q", f)
	}
}

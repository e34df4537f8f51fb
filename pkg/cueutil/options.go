// SPDX-License-Identifier: MPL-2.0

package cueutil

// DefaultMaxFileSize bounds the size of a CUE document accepted by
// ParseAndDecode. Layout and config documents are a few hundred bytes.
const DefaultMaxFileSize int64 = 1 << 20

type (
	// Option customizes ParseAndDecode.
	Option func(*options)

	options struct {
		filename    string
		maxFileSize int64
		concrete    bool
	}
)

func defaultOptions() options {
	return options{
		maxFileSize: DefaultMaxFileSize,
		concrete:    true,
	}
}

// WithFilename sets the name used in error messages.
func WithFilename(name string) Option {
	return func(o *options) { o.filename = name }
}

// WithMaxFileSize overrides DefaultMaxFileSize.
func WithMaxFileSize(n int64) Option {
	return func(o *options) { o.maxFileSize = n }
}

// WithConcrete controls whether every field must resolve to a concrete value.
// Partial documents such as config files pass false.
func WithConcrete(concrete bool) Option {
	return func(o *options) { o.concrete = concrete }
}

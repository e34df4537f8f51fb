// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

var (
	// ErrInvalidFilesystemPath is the sentinel error wrapped by InvalidFilesystemPathError.
	ErrInvalidFilesystemPath = errors.New("invalid filesystem path")

	// ErrInvalidRelativePath is the sentinel error wrapped by InvalidRelativePathError.
	ErrInvalidRelativePath = errors.New("invalid relative path")
)

type (
	// FilesystemPath represents an absolute or relative filesystem path.
	// A valid path must be non-empty and not whitespace-only.
	FilesystemPath string

	// InvalidFilesystemPathError is returned when a FilesystemPath value is
	// empty or whitespace-only.
	InvalidFilesystemPathError struct {
		Value FilesystemPath
	}

	// RelativePath is a slash-separated path that stays below the directory it
	// is joined to. Bundle layouts use it for locations inside the bundle.
	RelativePath string

	// InvalidRelativePathError is returned when a RelativePath is empty,
	// absolute, or escapes its base with "..".
	InvalidRelativePathError struct {
		Value  RelativePath
		Reason string
	}
)

// String returns the string representation of the FilesystemPath.
func (p FilesystemPath) String() string { return string(p) }

// Validate returns an error if the path is empty or whitespace-only.
func (p FilesystemPath) Validate() error {
	if strings.TrimSpace(string(p)) == "" {
		return &InvalidFilesystemPathError{Value: p}
	}
	return nil
}

// Error implements the error interface for InvalidFilesystemPathError.
func (e *InvalidFilesystemPathError) Error() string {
	return fmt.Sprintf("invalid filesystem path %q: must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidFilesystemPath for errors.Is() compatibility.
func (e *InvalidFilesystemPathError) Unwrap() error { return ErrInvalidFilesystemPath }

// String returns the string representation of the RelativePath.
func (p RelativePath) String() string { return string(p) }

// Validate returns an error unless the path is a non-empty, slash-separated,
// relative path that does not climb out of its base directory.
func (p RelativePath) Validate() error {
	s := string(p)
	switch {
	case strings.TrimSpace(s) == "":
		return &InvalidRelativePathError{Value: p, Reason: "must be non-empty"}
	case strings.HasPrefix(s, "/"):
		return &InvalidRelativePathError{Value: p, Reason: "must be relative"}
	case strings.Contains(s, `\`):
		return &InvalidRelativePathError{Value: p, Reason: "must use forward slashes"}
	}
	clean := path.Clean(s)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return &InvalidRelativePathError{Value: p, Reason: "must stay inside its base directory"}
	}
	return nil
}

// Error implements the error interface for InvalidRelativePathError.
func (e *InvalidRelativePathError) Error() string {
	return fmt.Sprintf("invalid relative path %q: %s", e.Value, e.Reason)
}

// Unwrap returns ErrInvalidRelativePath for errors.Is() compatibility.
func (e *InvalidRelativePathError) Unwrap() error { return ErrInvalidRelativePath }

// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/openstenoproject/plover-launcher/pkg/types"
)

var (
	// ErrPathTooShallow is returned when the launcher path has fewer
	// components than the layout strips.
	ErrPathTooShallow = errors.New("path has fewer components than the layout depth")

	// ErrInvalidDepth is returned for a depth below one.
	ErrInvalidDepth = errors.New("depth must be at least 1")

	// ErrExecUnsupported is returned on hosts without process replacement.
	ErrExecUnsupported = errors.New("process replacement is not supported on this platform")

	// ErrEmptyArgv is returned when Launch is handed a request without argv.
	ErrEmptyArgv = errors.New("empty argument vector")
)

type (
	// PathResolutionError reports that the launcher's own path could not be
	// determined or canonicalized. Nothing has been executed.
	PathResolutionError struct {
		Path string
		Err  error
	}

	// LaunchError reports that replacing the process with the interpreter
	// failed. Err is the operating system error, unchanged.
	LaunchError struct {
		Path string
		Err  error
	}
)

// Error implements the error interface.
func (e *PathResolutionError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("cannot determine launcher path: %v", e.Err)
	}
	return fmt.Sprintf("cannot resolve launcher path %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *PathResolutionError) Unwrap() error { return e.Err }

// ExitCode is the status the launcher exits with for this error.
func (e *PathResolutionError) ExitCode() types.ExitCode { return types.ExitFailure }

// Error implements the error interface.
func (e *LaunchError) Error() string {
	return fmt.Sprintf("cannot execute %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *LaunchError) Unwrap() error { return e.Err }

// ExitCode maps the OS error to shell conventions: 127 when the interpreter
// does not exist, 126 when it exists but cannot be executed, 1 otherwise.
func (e *LaunchError) ExitCode() types.ExitCode {
	switch {
	case errors.Is(e.Err, fs.ErrNotExist):
		return types.ExitNotFound
	case errors.Is(e.Err, fs.ErrPermission), isExecFormatError(e.Err):
		return types.ExitCannotExecute
	default:
		return types.ExitFailure
	}
}

// ExitCodeOf returns the exit status for any error produced by this package,
// or ExitFailure for foreign errors. A nil error maps to ExitSuccess.
func ExitCodeOf(err error) types.ExitCode {
	if err == nil {
		return types.ExitSuccess
	}
	var coder interface{ ExitCode() types.ExitCode }
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return types.ExitFailure
}

// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"github.com/openstenoproject/plover-launcher/internal/issue"
	"github.com/openstenoproject/plover-launcher/internal/launcher"
	"github.com/openstenoproject/plover-launcher/pkg/types"
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// launchFailure converts a launcher error into an ExitError carrying the
// launcher's own exit status. Verbose mode prints suggestions and the cause
// chain first.
func (app *App) launchFailure(err error) error {
	explained := launcher.Explain(err)
	if app.verbose {
		fmt.Fprintln(app.stderr, issue.Describe(explained, true))
	}
	return &ExitError{Code: launcher.ExitCodeOf(err), Err: explained}
}

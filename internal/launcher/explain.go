// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"errors"
	"io/fs"

	"github.com/openstenoproject/plover-launcher/internal/issue"
)

// Explain attaches remediation hints to a launch failure. The returned error
// still unwraps to the original *PathResolutionError or *LaunchError, so
// ExitCodeOf keeps working on it. Other errors are returned unchanged.
func Explain(err error) error {
	var pathErr *PathResolutionError
	var launchErr *LaunchError

	switch {
	case errors.As(err, &pathErr):
		return issue.NewErrorContext().
			WithOperation("resolve launcher path").
			WithSuggestion("Make sure the application was not moved or deleted while starting").
			WithIssue(issue.ExecutableUnresolvedId).
			Wrap(err).
			BuildError()

	case errors.As(err, &launchErr):
		ctx := issue.NewErrorContext().
			WithOperation("start interpreter").
			Wrap(err)
		switch {
		case errors.Is(launchErr.Err, fs.ErrNotExist):
			ctx.WithSuggestion("The bundle is incomplete or uses another layout; reinstall the application").
				WithSuggestion("Run 'plover-bundle doctor <launcher path>' to inspect the bundle").
				WithIssue(issue.InterpreterNotFoundId)
		case errors.Is(launchErr.Err, fs.ErrPermission), isExecFormatError(launchErr.Err):
			ctx.WithSuggestion("Check the interpreter's execute bit and CPU architecture").
				WithIssue(issue.InterpreterNotExecutableId)
		default:
			ctx.WithIssue(issue.LaunchFailedId)
		}
		return ctx.BuildError()
	}

	return err
}

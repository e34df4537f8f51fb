// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/openstenoproject/plover-launcher/internal/issue"
	"github.com/openstenoproject/plover-launcher/internal/launcher"
	"github.com/openstenoproject/plover-launcher/internal/layout"
	"github.com/openstenoproject/plover-launcher/pkg/platform"
	"github.com/openstenoproject/plover-launcher/pkg/types"
)

type (
	checkStatus int

	// check is one doctor finding. Code is the status the launcher itself
	// would exit with for a failed check.
	check struct {
		Name   string
		Status checkStatus
		Detail string
		Issue  issue.Id
		Code   types.ExitCode
	}
)

const (
	statusPass checkStatus = iota
	statusWarn
	statusFail
)

func newDoctorCommand(app *App) *cobra.Command {
	var layoutName, style string

	cmd := &cobra.Command{
		Use:   "doctor <launcher-path>",
		Short: "Check that a bundle can be launched",
		Long: `Check that the bundle around <launcher-path> has an interpreter the
launcher can execute. Exits with the status the launcher would exit with.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := resolveLayout(layoutName)
			if err != nil {
				return err
			}
			return app.reportChecks(diagnose(l, args[0], runtime.GOOS), style)
		},
	}
	cmd.Flags().StringVarP(&layoutName, "layout", "l", "", "bundle layout (default is the build's layout)")
	cmd.Flags().StringVar(&style, "style", "auto", "glamour style for issue details (auto, dark, light, notty)")

	return cmd
}

// diagnose runs the checks in order and stops at the first failure; later
// checks depend on earlier ones.
func diagnose(l layout.Layout, launcherPath, goos string) []check {
	var checks []check

	if platform.IsDarwin(goos) {
		checks = append(checks, check{Name: "host", Status: statusPass, Detail: goos})
	} else {
		checks = append(checks, check{
			Name:   "host",
			Status: statusWarn,
			Detail: goos + " has no application bundles",
			Issue:  issue.HostNotSupportedId,
		})
	}

	req, err := launcher.New(l).PrepareFrom(launcherPath, nil)
	if err != nil {
		return append(checks, check{
			Name:   "launcher path",
			Status: statusFail,
			Detail: err.Error(),
			Issue:  issue.ExecutableUnresolvedId,
			Code:   launcher.ExitCodeOf(err),
		})
	}
	checks = append(checks,
		check{Name: "launcher path", Status: statusPass, Detail: req.ExecutablePath},
		check{Name: "bundle root", Status: statusPass, Detail: req.BundleRoot},
	)

	return append(checks, checkInterpreter(req.InterpreterPath))
}

func checkInterpreter(path string) check {
	c := check{Name: "interpreter", Detail: path}

	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		c.Status, c.Issue, c.Code = statusFail, issue.InterpreterNotFoundId, types.ExitNotFound
		c.Detail = path + " does not exist"
	case err != nil:
		c.Status, c.Issue, c.Code = statusFail, issue.InterpreterNotExecutableId, types.ExitCannotExecute
		c.Detail = err.Error()
	case !info.Mode().IsRegular():
		c.Status, c.Issue, c.Code = statusFail, issue.InterpreterNotExecutableId, types.ExitCannotExecute
		c.Detail = path + " is not a regular file"
	case info.Mode().Perm()&0o111 == 0:
		c.Status, c.Issue, c.Code = statusFail, issue.InterpreterNotExecutableId, types.ExitCannotExecute
		c.Detail = fmt.Sprintf("%s is not executable (mode %s)", path, info.Mode().Perm())
	default:
		c.Status = statusPass
	}
	return c
}

func (app *App) reportChecks(checks []check, style string) error {
	var failed *check
	for i := range checks {
		c := &checks[i]
		fmt.Fprintf(app.stdout, "%s %s %s\n", statusMark(c.Status), TitleStyle.Render(c.Name+":"), c.Detail)
		if c.Status != statusPass && c.Issue != 0 {
			app.renderIssue(c.Issue, style)
		}
		if c.Status == statusFail {
			failed = c
		}
	}

	if failed == nil {
		fmt.Fprintln(app.stdout, SuccessStyle.Render("Bundle looks launchable."))
		return nil
	}
	return &ExitError{Code: failed.Code, Err: fmt.Errorf("%s check failed", failed.Name)}
}

func (app *App) renderIssue(id issue.Id, style string) {
	rendered, err := issue.Get(id).Render(style)
	if err != nil {
		// Fall back to the raw Markdown.
		rendered = issue.Get(id).Markdown()
	}
	fmt.Fprint(app.stdout, rendered)
}

func statusMark(s checkStatus) string {
	switch s {
	case statusPass:
		return SuccessStyle.Render(markPass)
	case statusWarn:
		return WarningStyle.Render(markWarn)
	default:
		return ErrorStyle.Render(markFail)
	}
}

// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openstenoproject/plover-launcher/internal/issue"
	"github.com/openstenoproject/plover-launcher/internal/launcher"
	"github.com/openstenoproject/plover-launcher/internal/layout"
)

// formatShell prints only the quoted command line.
const formatShell outputFormat = "shell"

func newPlanCommand(app *App) *cobra.Command {
	var layoutName, format string

	cmd := &cobra.Command{
		Use:   "plan <launcher-path> [--] [args...]",
		Short: "Show the command line a launcher would execute",
		Long: `Show the command line a launcher at <launcher-path> would execute.

The path is resolved exactly as the launcher resolves its own location, so
symlinks are followed. Arguments after the path are forwarded as-is; a
single "--" directly after the path is dropped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseOutputFormat(format, formatShell)
			if err != nil {
				return err
			}
			l, err := resolveLayout(layoutName)
			if err != nil {
				return err
			}
			req, err := launcher.New(l).PrepareFrom(args[0], forwardedArgs(args))
			if err != nil {
				return app.launchFailure(err)
			}
			return app.printPlan(req, f)
		},
	}
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVarP(&layoutName, "layout", "l", "", "bundle layout (default is the build's layout)")
	cmd.Flags().StringVarP(&format, "format", "o", string(formatText), "output format: text, shell, json or toml")

	return cmd
}

func (app *App) printPlan(req *launcher.Request, f outputFormat) error {
	switch f {
	case formatText, formatShell:
		line, err := req.ShellCommand()
		if err != nil {
			return err
		}
		if f == formatShell {
			fmt.Fprintln(app.stdout, line)
			return nil
		}
		printField(app, "Layout", req.Layout)
		printField(app, "Launcher", req.ExecutablePath)
		printField(app, "Bundle root", req.BundleRoot)
		printField(app, "Interpreter", req.InterpreterPath)
		printField(app, "Command", line)
		return nil
	default:
		return writeStructured(app.stdout, f, req)
	}
}

func printField(app *App, key, value string) {
	fmt.Fprintf(app.stdout, "%s %s\n", SubtitleStyle.Render(fmt.Sprintf("%-12s", key+":")), CmdStyle.Render(value))
}

// forwardedArgs returns the arguments after the launcher path. With
// interspersed flags off, pflag keeps a "--" that follows the first
// positional, so one leading "--" is dropped here.
func forwardedArgs(args []string) []string {
	rest := args[1:]
	if len(rest) > 0 && rest[0] == "--" {
		rest = rest[1:]
	}
	return rest
}

// resolveLayout looks up a layout by name; empty selects the build's layout.
func resolveLayout(name string) (layout.Layout, error) {
	catalog, err := layout.Load()
	if err != nil {
		return layout.Layout{}, err
	}
	l, err := catalog.Resolve(name)
	if err != nil {
		return layout.Layout{}, issue.NewErrorContext().
			WithOperation("select bundle layout").
			WithResource(name).
			WithSuggestion("Run 'plover-bundle layouts' to list known layouts").
			WithIssue(issue.UnknownLayoutId).
			Wrap(err).
			BuildError()
	}
	return l, nil
}

// SPDX-License-Identifier: MPL-2.0

// Command plover-launcher is the native executable placed inside Plover.app.
// It locates the bundled Python interpreter relative to its own resolved path
// and replaces itself with "python -s -m <entry point> <args...>".
//
// The launcher takes no flags of its own: every argument is forwarded to the
// interpreter verbatim. Behavior can be tuned through PLOVER_LAUNCHER_*
// environment variables or a CUE file named by PLOVER_LAUNCHER_CONFIG.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/openstenoproject/plover-launcher/internal/config"
	"github.com/openstenoproject/plover-launcher/internal/issue"
	"github.com/openstenoproject/plover-launcher/internal/launcher"
	"github.com/openstenoproject/plover-launcher/internal/layout"
	"github.com/openstenoproject/plover-launcher/internal/logging"
	"github.com/openstenoproject/plover-launcher/pkg/types"
)

func main() {
	// On success run does not return: the process becomes the interpreter.
	os.Exit(int(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)))
}

// run performs one launch. opts are appended to the launcher's defaults.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, opts ...launcher.Option) types.ExitCode {
	cfg, cfgErr := config.Load(ctx, config.LoadOptions{})
	if cfgErr != nil {
		// A broken override must not keep the application from starting.
		cfg = config.DefaultConfig()
	}

	if _, err := logging.Install(stderr, logging.FromConfig(cfg, config.AppName)); err != nil {
		fmt.Fprintln(stderr, err)
		return types.ExitFailure
	}
	if cfgErr != nil {
		slog.Warn("ignoring configuration", "error", cfgErr)
	}

	l, err := layout.Current()
	if err != nil {
		return report(stderr, issue.NewErrorContext().
			WithOperation("select bundle layout").
			WithResource(layout.Selected).
			WithSuggestion("Rebuild the launcher with a layout listed by 'plover-bundle layouts'").
			WithIssue(issue.UnknownLayoutId).
			Wrap(err).
			BuildError(), cfg.Verbose)
	}

	ln := launcher.New(l, opts...)

	req, err := ln.Prepare(args)
	if err != nil {
		return report(stderr, err, cfg.Verbose)
	}

	if cfg.DryRun {
		line, err := req.ShellCommand()
		if err != nil {
			return report(stderr, err, cfg.Verbose)
		}
		fmt.Fprintln(stdout, line)
		return types.ExitSuccess
	}

	if err := ln.Launch(req); err != nil {
		return report(stderr, err, cfg.Verbose)
	}
	return types.ExitSuccess
}

func report(stderr io.Writer, err error, verbose bool) types.ExitCode {
	fmt.Fprintf(stderr, "%s: %s\n", config.AppName, issue.Describe(launcher.Explain(err), verbose))
	return launcher.ExitCodeOf(err)
}

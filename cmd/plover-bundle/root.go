// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/openstenoproject/plover-launcher/internal/config"
	"github.com/openstenoproject/plover-launcher/internal/issue"
	"github.com/openstenoproject/plover-launcher/internal/launcher"
	"github.com/openstenoproject/plover-launcher/internal/logging"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

type (
	// App carries the dependencies shared by every subcommand.
	App struct {
		Config config.Provider
		Exec   launcher.ExecFunc
		stdout io.Writer
		stderr io.Writer

		// set by the root command before any subcommand runs
		cfg     *config.Config
		verbose bool
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults.
	Dependencies struct {
		Config config.Provider
		Exec   launcher.ExecFunc
		Stdout io.Writer
		Stderr io.Writer
	}

	rootOptions struct {
		configPath string
		verbose    bool
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Exec == nil {
		deps.Exec = launcher.SystemExec
	}
	return &App{
		Config: deps.Config,
		Exec:   deps.Exec,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
		cfg:    config.DefaultConfig(),
	}
}

func newRootCommand(app *App) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "plover-bundle",
		Short: "Inspect Plover application bundles",
		Long: TitleStyle.Render("plover-bundle") + SubtitleStyle.Render(" - inspect Plover application bundles") + `

plover-bundle shows what the Plover launcher stub does for a given bundle:
where it finds the bundle root, which Python interpreter it starts and with
which arguments.

` + SubtitleStyle.Render("Examples:") + `
  plover-bundle layouts                                   List known bundle layouts
  plover-bundle plan Plover.app/Contents/MacOS/Plover     Show the interpreter command line
  plover-bundle doctor Plover.app/Contents/MacOS/Plover   Check the bundle is complete`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			app.configure(cmd.Context(), opts)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default is $"+config.ConfigFileEnv+")")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")

	root.AddCommand(
		newLayoutsCommand(app),
		newPlanCommand(app),
		newDoctorCommand(app),
		newExecCommand(app),
		newConfigCommand(app, opts),
	)

	return root
}

// configure loads configuration and installs the logger. A broken config
// file is reported and the defaults are used.
func (app *App) configure(ctx context.Context, opts *rootOptions) {
	cfg, err := app.Config.Load(ctx, config.LoadOptions{ConfigFilePath: opts.configPath})
	if err != nil {
		fmt.Fprintln(app.stderr, WarningStyle.Render("Warning: ")+issue.Describe(err, opts.verbose))
		cfg = config.DefaultConfig()
	}
	app.cfg = cfg
	app.verbose = opts.verbose || cfg.Verbose

	if _, err := logging.Install(app.stderr, logging.FromConfig(cfg, "plover-bundle")); err != nil {
		fmt.Fprintln(app.stderr, WarningStyle.Render("Warning: ")+err.Error())
	}
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command and exits with its status.
func Execute() {
	app := NewApp(Dependencies{})
	if err := fang.Execute(
		context.Background(),
		newRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openstenoproject/plover-launcher/internal/config"
)

// newConfigCommand creates the `plover-bundle config` command tree.
func newConfigCommand(app *App, root *rootOptions) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect launcher configuration",
		Long: `Inspect launcher configuration.

The launcher reads PLOVER_LAUNCHER_* environment variables and, when
` + config.ConfigFileEnv + ` names one, a CUE configuration file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	var format string
	show := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseOutputFormat(format)
			if err != nil {
				return err
			}
			cfg, source, err := app.Config.LoadWithSource(cmd.Context(), config.LoadOptions{ConfigFilePath: root.configPath})
			if err != nil {
				return err
			}
			if f != formatText {
				return writeStructured(app.stdout, f, cfg)
			}
			app.showConfig(cfg, source)
			return nil
		},
	}
	show.Flags().StringVarP(&format, "format", "o", string(formatText), "output format: text, json or toml")
	cfgCmd.AddCommand(show)

	return cfgCmd
}

func (app *App) showConfig(cfg *config.Config, source string) {
	fmt.Fprintln(app.stdout, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(app.stdout)

	if source != "" {
		fmt.Fprintf(app.stdout, "%s: %s\n", CmdStyle.Render("Config file"), source)
	} else {
		fmt.Fprintf(app.stdout, "%s: %s\n", CmdStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(app.stdout)

	fmt.Fprintf(app.stdout, "%s: %s\n", CmdStyle.Render("log_level"), SuccessStyle.Render(cfg.LogLevel))
	fmt.Fprintf(app.stdout, "%s: %s\n", CmdStyle.Render("log_format"), SuccessStyle.Render(string(cfg.LogFormat)))
	fmt.Fprintf(app.stdout, "%s: %s\n", CmdStyle.Render("dry_run"), SuccessStyle.Render(fmt.Sprintf("%v", cfg.DryRun)))
	fmt.Fprintf(app.stdout, "%s: %s\n", CmdStyle.Render("verbose"), SuccessStyle.Render(fmt.Sprintf("%v", cfg.Verbose)))
}

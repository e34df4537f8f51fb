// SPDX-License-Identifier: MPL-2.0

package main

import (
	"github.com/spf13/cobra"

	"github.com/openstenoproject/plover-launcher/internal/launcher"
)

func newExecCommand(app *App) *cobra.Command {
	var layoutName string

	cmd := &cobra.Command{
		Use:   "exec <launcher-path> [--] [args...]",
		Short: "Launch a bundle as its launcher would",
		Long: `Replace this process with the interpreter the launcher at <launcher-path>
would start. Useful for trying a bundle without a built launcher stub.

Arguments after the path are forwarded as-is; a single "--" directly after
the path is dropped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := resolveLayout(layoutName)
			if err != nil {
				return err
			}
			ln := launcher.New(l, launcher.WithExecFunc(app.Exec))
			req, err := ln.PrepareFrom(args[0], forwardedArgs(args))
			if err == nil {
				err = ln.Launch(req)
			}
			if err != nil {
				return app.launchFailure(err)
			}
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVarP(&layoutName, "layout", "l", "", "bundle layout (default is the build's layout)")

	return cmd
}

// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openstenoproject/plover-launcher/internal/layout"
)

// layoutList is the structured form of the layouts command; TOML needs a
// table at the top level.
type layoutList struct {
	Selected string          `json:"selected" toml:"selected"`
	Layouts  []layout.Layout `json:"layouts" toml:"layouts"`
}

func newLayoutsCommand(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "layouts",
		Short: "List the bundle layouts this build knows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseOutputFormat(format)
			if err != nil {
				return err
			}
			catalog, err := layout.Load()
			if err != nil {
				return err
			}
			current, err := catalog.Resolve("")
			if err != nil {
				return err
			}
			if f != formatText {
				return writeStructured(app.stdout, f, layoutList{Selected: current.Name, Layouts: catalog.Layouts})
			}
			app.printLayouts(catalog.Layouts, current.Name)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "o", string(formatText), "output format: text, json or toml")

	return cmd
}

func (app *App) printLayouts(layouts []layout.Layout, selected string) {
	for i, l := range layouts {
		if i > 0 {
			fmt.Fprintln(app.stdout)
		}
		name := TitleStyle.Render(l.Name)
		if l.Name == selected {
			name += " " + SuccessStyle.Render("(selected)")
		}
		fmt.Fprintln(app.stdout, name)
		if l.Description != "" {
			fmt.Fprintln(app.stdout, "  "+SubtitleStyle.Render(l.Description))
		}
		fmt.Fprintf(app.stdout, "  depth:       %d\n", l.Depth)
		fmt.Fprintf(app.stdout, "  interpreter: %s\n", CmdStyle.Render(string(l.Interpreter)))
		fmt.Fprintf(app.stdout, "  entry point: %s\n", CmdStyle.Render(l.EntryPoint))
	}
}

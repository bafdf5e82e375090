// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package tool

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kovidgoyal/seti-icons/tools/cli"
)

var _ = fmt.Print

func list_entry_point(root *cobra.Command, opts *GlobalOptions) {
	var check, keys bool
	cmd := cli.CreateCommand(&cobra.Command{
		Use:   "list [options]",
		Short: "Print statistics about the icon data",
		Args:  cobra.NoArgs,
	})
	cmd.Flags().BoolVar(&check, "check", false, "Print the icon keys used by rules that have no markup and exit with a non-zero code if there are any.")
	cmd.Flags().BoolVar(&keys, "keys", false, "Print the icon keys that have markup, one per line.")
	cmd.RunE = opts.with_setup(func(cmd *cobra.Command, args []string) error {
		p, err := opts.provider()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if keys {
			_, err = fmt.Fprintln(out, strings.Join(p.Icons().Keys(), "\n"))
			return err
		}
		files, extensions, partials := p.Rules().Counts()
		fmt.Fprintln(out, "File names:", files)
		fmt.Fprintln(out, "Extensions:", extensions)
		fmt.Fprintln(out, "Partials:  ", partials)
		fmt.Fprintln(out, "Icons:     ", p.Icons().Len())
		fmt.Fprintln(out, "Default:   ", p.Rules().Default())
		if check {
			if missing := p.Check(); len(missing) > 0 {
				return &cli.ExitError{Code: 1, Msg: color.RedString("Icons with no markup") + ": " + strings.Join(missing, ", ")}
			}
			fmt.Fprintln(out, color.GreenString("All icons have markup"))
		}
		return nil
	})
	root.AddCommand(cmd)
}

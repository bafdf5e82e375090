// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package tool

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kovidgoyal/seti-icons/tools/cli"
)

var _ = fmt.Print

type resolved struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

func base_name(path string) string {
	if path == "" {
		return path
	}
	return filepath.Base(path)
}

func resolve_entry_point(root *cobra.Command, opts *GlobalOptions) {
	cmd := cli.CreateCommand(&cobra.Command{
		Use:   "resolve [options] file names...",
		Short: "Print the icon and color key for file names",
		Long: "Print the icon key and color key for each file name, one per line. " +
			"Paths are reduced to their last component before matching.",
		Args: cobra.MinimumNArgs(1),
	})
	format := cli.Choices(cmd, "format", "How to output the results. :code:`json` is an array of objects with name, icon and color keys.", "text", "json")
	cmd.RunE = opts.with_setup(func(cmd *cobra.Command, args []string) error {
		p, err := opts.provider()
		if err != nil {
			return err
		}
		ans := make([]resolved, len(args))
		for i, name := range args {
			q := p.Resolve(base_name(name))
			ans[i] = resolved{Name: name, Icon: q.Icon, Color: q.Color}
		}
		out := cmd.OutOrStdout()
		if *format == "json" {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(ans)
		}
		for _, r := range ans {
			if _, err = fmt.Fprintln(out, r.Name, r.Icon, r.Color); err != nil {
				return err
			}
		}
		return nil
	})
	root.AddCommand(cmd)
}

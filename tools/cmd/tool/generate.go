// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package tool

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kovidgoyal/seti-icons/tools/cli"
	"github.com/kovidgoyal/seti-icons/tools/setigen"
)

var _ = fmt.Print

func generate_entry_point(root *cobra.Command, opts *GlobalOptions) {
	var rules, icons_dir, output string
	var compress bool
	var workers int
	cmd := cli.CreateCommand(&cobra.Command{
		Use:   "generate [options]",
		Short: "Build the icon data from Seti UI sources",
		Long: "Read the icon rules from a :file:`mapping.less` file and the SVG icons they use from a directory, " +
			"then write :file:`definitions.json` and :file:`icons.json` to the output directory. Icons that cannot be found are skipped with a warning.",
		Args: cobra.NoArgs,
	})
	cmd.Flags().StringVar(&rules, "rules", "", "The mapping.less file containing the icon rules.")
	cmd.Flags().StringVar(&icons_dir, "icons", "", "The directory containing the SVG icons.")
	cmd.Flags().StringVar(&output, "output", "", "The directory to write the data files to.")
	cmd.Flags().BoolVar(&compress, "compress", false, "Write zstd compressed files with a .zst extension.")
	cmd.Flags().IntVar(&workers, "workers", 0, "The number of icons to read in parallel. Defaults to the number of CPUs.")
	for _, name := range []string{"rules", "icons", "output"} {
		cmd.MarkFlagRequired(name)
	}
	cmd.RunE = opts.with_setup(func(cmd *cobra.Command, args []string) error {
		return setigen.Generate(cmd.Context(), rules, icons_dir, output, compress, setigen.Options{Workers: workers, Logger: log.Logger})
	})
	root.AddCommand(cmd)
}

// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package tool

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kovidgoyal/seti-icons/tools/cli"
	"github.com/kovidgoyal/seti-icons/tools/config"
	"github.com/kovidgoyal/seti-icons/tools/icons"
	"github.com/kovidgoyal/seti-icons/tools/utils"
	"github.com/kovidgoyal/seti-icons/tools/utils/style"
)

var _ = fmt.Print

type render_options struct {
	theme_file string
	colors     []string
	swatch     bool
}

func load_theme(opts *GlobalOptions, ropts *render_options) (icons.ColorTheme, error) {
	var paths []string
	switch {
	case ropts.theme_file != "":
		paths = []string{ropts.theme_file}
	case opts.Theme != "":
		paths = []string{opts.Theme}
	}
	theme, err := config.LoadColorThemeWithOverrides(paths, ropts.colors)
	if err != nil {
		return nil, fmt.Errorf("Failed to load color theme: %w", err)
	}
	if len(paths) == 0 {
		paths = []string{filepath.Join(utils.ConfigDir(), config.ThemeFileName)}
	}
	log.Debug().Strs("files", paths).Int("colors", len(theme)).Msg("Loaded color theme")
	return theme, nil
}

func write_swatch(out io.Writer, ctx *style.Context, name string, r icons.Result) error {
	c, err := style.ParseColor(r.Color)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, ctx.Swatch(c, 2), ctx.ForegroundFunc(c)(name), r.Pair.Icon, r.Pair.Color, ctx.Label(c, c.AsRGBSharp()))
	return err
}

func render_entry_point(root *cobra.Command, opts *GlobalOptions) {
	ropts := render_options{}
	cmd := cli.CreateCommand(&cobra.Command{
		Use:   "render [options] file names...",
		Short: "Print the themed SVG icon for file names",
		Long: "Print the SVG markup for the icon of each file name, one per line, along with the color it should be drawn in. " +
			"The color theme is read from :option:`seti-icons render --theme`, :envvar:`SETI_ICONS_THEME` or :file:`theme.conf` in the config directory (:envvar:`SETI_ICONS_CONFIG_DIRECTORY`), " +
			"falling back to a builtin Solarized theme. A theme file has lines of the form :code:`color-key color-value`.",
		Args: cobra.MinimumNArgs(1),
	})
	cmd.Flags().StringVar(&ropts.theme_file, "theme", "", "Path to a color theme file. Overrides :envvar:`SETI_ICONS_THEME`.")
	cmd.Flags().StringArrayVar(&ropts.colors, "color", nil, "Override a single theme color, for example: :code:`--color blue=#519aba`. Can be specified multiple times.")
	cmd.Flags().BoolVar(&ropts.swatch, "swatch", false, "Instead of markup, print a swatch of the color in the terminal followed by the icon and color.")
	cmd.RunE = opts.with_setup(func(cmd *cobra.Command, args []string) error {
		p, err := opts.provider()
		if err != nil {
			return err
		}
		theme, err := load_theme(opts, &ropts)
		if err != nil {
			return err
		}
		render := p.Theme(theme)
		out := cmd.OutOrStdout()
		ctx := style.Context{AllowEscapeCodes: cli.StdoutIsTerminal()}
		for _, name := range args {
			r, err := render(base_name(name))
			if err != nil {
				return fmt.Errorf("Could not render %s: %w", name, err)
			}
			if ropts.swatch {
				err = write_swatch(out, &ctx, name, r)
			} else {
				_, err = fmt.Fprintf(out, "%s\t%s\t%s\n", name, r.Color, r.SVG)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
	root.AddCommand(cmd)
}

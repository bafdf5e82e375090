// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package tool

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	seti "github.com/kovidgoyal/seti-icons"
	"github.com/kovidgoyal/seti-icons/tools/cli"
	"github.com/kovidgoyal/seti-icons/tools/icons"
)

var _ = fmt.Print

// Environment is the configuration read from environment variables. The
// command line flags take precedence.
type Environment struct {
	Data     string `env:"SETI_ICONS_DATA"`
	Theme    string `env:"SETI_ICONS_THEME"`
	LogLevel string `env:"SETI_ICONS_LOG_LEVEL" envDefault:"info"`
	// Where theme.conf is looked for, see utils.ConfigDir()
	ConfigDir string `env:"SETI_ICONS_CONFIG_DIRECTORY"`
}

type GlobalOptions struct {
	Environment
	Debug bool
}

func (self *GlobalOptions) setup(cmd *cobra.Command) error {
	data := self.Data
	var e Environment
	if err := env.Parse(&e); err != nil {
		return fmt.Errorf("Invalid environment: %w", err)
	}
	self.Environment = e
	if f := cmd.Flags().Lookup("data"); f != nil && f.Changed {
		self.Data = data
	}
	level, err := zerolog.ParseLevel(self.LogLevel)
	if err != nil {
		return fmt.Errorf("Invalid log level in SETI_ICONS_LOG_LEVEL: %w", err)
	}
	if self.Debug {
		level = zerolog.DebugLevel
	}
	stderr := cmd.ErrOrStderr()
	no_color := true
	if f, ok := stderr.(*os.File); ok {
		no_color = !isatty.IsTerminal(f.Fd())
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: stderr, NoColor: no_color}).Level(level)
	log.Debug().Interface("environment", self.Environment).Msg("Configured")
	return nil
}

// provider loads the tables from the data directory, if one was specified,
// otherwise the builtin ones are used.
func (self *GlobalOptions) provider() (*icons.Provider, error) {
	if self.Data == "" {
		return seti.LoadDefault()
	}
	dir, err := filepath.Abs(self.Data)
	if err != nil {
		return nil, err
	}
	p, err := icons.LoadFS(os.DirFS(dir))
	if err != nil {
		return nil, fmt.Errorf("Failed to load icon data from %s: %w", dir, err)
	}
	log.Debug().Str("dir", dir).Msg("Loaded icon data")
	return p, nil
}

// with_setup wraps a command implementation so that logging and the
// environment are configured before it runs.
func (self *GlobalOptions) with_setup(f func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := self.setup(cmd); err != nil {
			return err
		}
		return f(cmd, args)
	}
}

func NewRootCommand() *cobra.Command {
	root := cli.CreateCommand(&cobra.Command{
		Use:   "seti-icons command [command options] [command args]",
		Short: "Find the Seti UI icon and color for file names",
		Long: "Find the Seti UI icon and color for file names and render them with a color theme.\n\n" +
			"Icon data is compiled into the program, use :option:`seti-icons --data` or :envvar:`SETI_ICONS_DATA` " +
			"to load it from a directory created with :code:`seti-icons generate` instead.",
	})
	cli.Init(root)
	opts := &GlobalOptions{}
	root.PersistentFlags().StringVar(&opts.Data, "data", "", "A directory containing definitions.json and icons.json, optionally zstd compressed. Overrides :envvar:`SETI_ICONS_DATA`.")
	root.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "Log debug messages to STDERR.")
	EntryPoints(root, opts)
	return root
}

func EntryPoints(root *cobra.Command, opts *GlobalOptions) {
	// resolve
	resolve_entry_point(root, opts)
	// render
	render_entry_point(root, opts)
	// list
	list_entry_point(root, opts)
	// generate
	generate_entry_point(root, opts)
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"slices"
	"strings"
	"unicode"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	runewidth "github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sys/unix"

	seti "github.com/kovidgoyal/seti-icons"
)

var RootCmd *cobra.Command

func GetTTYSize() (*unix.Winsize, error) {
	if stdout_is_terminal {
		return unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	}
	return nil, fmt.Errorf("STDOUT is not a TTY")
}

// Choices adds a string flag that must be one of choices, the first being
// the default. The value is checked before the command runs.
func Choices(cmd *cobra.Command, name string, usage string, choices ...string) *string {
	cmd.Annotations["choices-"+name] = strings.Join(choices, "\000")
	return cmd.Flags().String(name, choices[0], usage)
}

func ValidateChoices(cmd *cobra.Command, args []string) error {
	for key, val := range cmd.Annotations {
		if strings.HasPrefix(key, "choices-") {
			allowed := strings.Split(val, "\000")
			name := key[len("choices-"):]
			if cval, err := cmd.Flags().GetString(name); err == nil && !slices.Contains(allowed, cval) {
				return fmt.Errorf("%s: Invalid value: %s. Allowed values are: %s", color.YellowString("--"+name), color.RedString(cval), strings.Join(allowed, ", "))
			}
		}
	}
	return nil
}

var stdout_is_terminal = false
var title_fmt = color.New(color.FgBlue, color.Bold).SprintFunc()
var exe_fmt = color.New(color.FgYellow, color.Bold).SprintFunc()
var opt_fmt = color.New(color.FgGreen).SprintFunc()
var italic_fmt = color.New(color.Italic).SprintFunc()
var err_fmt = color.New(color.FgHiRed).SprintFunc()
var bold_fmt = color.New(color.Bold).SprintFunc()
var code_fmt = color.New(color.FgCyan).SprintFunc()
var yellow_fmt = color.New(color.FgYellow).SprintFunc()
var green_fmt = color.New(color.FgGreen).SprintFunc()

func StdoutIsTerminal() bool { return stdout_is_terminal }

func format_line_with_indent(output io.Writer, text string, indent string, screen_width int) {
	x := len(indent)
	fmt.Fprint(output, indent)
	in_escape := 0
	var current_word strings.Builder
	var escapes strings.Builder

	print_word := func(r rune) {
		w := runewidth.StringWidth(current_word.String())
		if x+w > screen_width {
			fmt.Fprintln(output)
			fmt.Fprint(output, indent)
			x = len(indent)
			s := strings.TrimSpace(current_word.String())
			current_word.Reset()
			current_word.WriteString(s)
		}
		if escapes.Len() > 0 {
			io.WriteString(output, escapes.String())
			escapes.Reset()
		}
		if current_word.Len() > 0 {
			io.WriteString(output, current_word.String())
			current_word.Reset()
		}
		if r > 0 {
			current_word.WriteRune(r)
		}
		x += w
	}

	for i, r := range text {
		if in_escape > 0 {
			if in_escape == 1 && (r == ']' || r == '[') {
				in_escape = 2
				if r == ']' {
					in_escape = 3
				}
			}
			if (in_escape == 2 && r == 'm') || (in_escape == 3 && r == '\\' && text[i-1] == 0x1b) {
				in_escape = 0
			}
			escapes.WriteRune(r)
			continue
		}
		if r == 0x1b {
			in_escape = 1
			if current_word.Len() != 0 {
				print_word(0)
			}
			escapes.WriteRune(r)
			continue
		}
		if current_word.Len() != 0 && r != 0xa0 && unicode.IsSpace(r) {
			print_word(r)
		} else {
			current_word.WriteRune(r)
		}
	}
	if current_word.Len() != 0 || escapes.Len() != 0 {
		print_word(0)
	}
	if len(text) > 0 {
		fmt.Fprintln(output)
	}
}

var prettify_pat = regexp.MustCompile(":([a-z]+):`([^`]+)`")

// prettify styles roles of the form :role:`text` in help text
func prettify(text string) string {
	return prettify_pat.ReplaceAllStringFunc(text, func(m string) string {
		groups := prettify_pat.FindStringSubmatch(m)
		val := groups[2]
		switch groups[1] {
		case "file", "env", "envvar", "emph":
			return italic_fmt(val)
		case "code":
			return code_fmt(val)
		case "option":
			if idx := strings.LastIndex(val, "--"); idx > -1 {
				val = val[idx:]
			}
			return bold_fmt(val)
		case "opt":
			return bold_fmt(val)
		case "yellow":
			return yellow_fmt(val)
		case "green":
			return green_fmt(val)
		default:
			return val
		}
	})
}

func format_with_indent(output io.Writer, text string, indent string, screen_width int) {
	for _, line := range strings.Split(prettify(text), "\n") {
		format_line_with_indent(output, line, indent, screen_width)
	}
}

func full_command_name(cmd *cobra.Command) string {
	var parent_names []string
	cmd.VisitParents(func(p *cobra.Command) {
		parent_names = append([]string{p.Name()}, parent_names...)
	})
	parent_names = append(parent_names, cmd.Name())
	return strings.Join(parent_names, " ")
}

func show_usage(cmd *cobra.Command) error {
	var output strings.Builder
	screen_width := 80
	if ws, err := GetTTYSize(); err == nil && ws.Col < 80 {
		screen_width = int(ws.Col)
	}
	use := cmd.Use
	if _, rest, found := strings.Cut(use, " "); found {
		use = rest
	} else {
		use = ""
	}
	fmt.Fprintln(&output, title_fmt("Usage")+":", exe_fmt(full_command_name(cmd)), use)
	fmt.Fprintln(&output)
	if len(cmd.Long) > 0 {
		format_with_indent(&output, cmd.Long, "", screen_width)
	} else if len(cmd.Short) > 0 {
		format_with_indent(&output, cmd.Short, "", screen_width)
	}
	if cmd.HasAvailableSubCommands() {
		fmt.Fprintln(&output)
		fmt.Fprintln(&output, title_fmt("Commands")+":")
		for _, child := range cmd.Commands() {
			if child.Hidden {
				continue
			}
			fmt.Fprintln(&output, " ", opt_fmt(child.Name()))
			format_with_indent(&output, child.Short, "    ", screen_width)
		}
		fmt.Fprintln(&output)
		format_with_indent(&output, "Get help for an individual command by running:", "", screen_width)
		fmt.Fprintln(&output, "   ", full_command_name(cmd), italic_fmt("command"), "-h")
	}
	show_flags := func(title string, flag_set *pflag.FlagSet) {
		if !flag_set.HasAvailableFlags() {
			return
		}
		fmt.Fprintln(&output)
		fmt.Fprintln(&output, title_fmt(title)+":")
		flag_set.VisitAll(func(flag *pflag.Flag) {
			if flag.Hidden {
				return
			}
			fmt.Fprint(&output, opt_fmt("  --"+flag.Name))
			if flag.Shorthand != "" {
				fmt.Fprint(&output, ", ", opt_fmt("-"+flag.Shorthand))
			}
			switch flag.Value.Type() {
			case "bool", "count":
			default:
				if flag.DefValue != "" {
					fmt.Fprint(&output, " ", fmt.Sprintf("[=%s]", italic_fmt(flag.DefValue)))
				}
			}
			fmt.Fprintln(&output)
			msg := flag.Usage
			switch flag.Name {
			case "help":
				msg = "Print this help message"
			case "version":
				msg = "Print the version of " + RootCmd.Name() + ": " + italic_fmt(RootCmd.Version)
			}
			format_with_indent(&output, msg, "    ", screen_width)
			if cmd.Annotations["choices-"+flag.Name] != "" {
				fmt.Fprintln(&output, "    Choices:", strings.Join(strings.Split(cmd.Annotations["choices-"+flag.Name], "\000"), ", "))
			}
			fmt.Fprintln(&output)
		})
	}
	options_title := cmd.Annotations["options_title"]
	if len(options_title) == 0 {
		options_title = "Options"
	}
	show_flags(options_title, cmd.LocalFlags())
	show_flags("Global options", cmd.InheritedFlags())
	fmt.Fprintln(&output, italic_fmt(RootCmd.Name()), opt_fmt(seti.VersionString), "created by", title_fmt("Kovid Goyal"))
	_, err := io.WriteString(cmd.OutOrStdout(), output.String())
	return err
}

func CreateCommand(cmd *cobra.Command) *cobra.Command {
	cmd.Annotations = make(map[string]string)
	if cmd.Run == nil && cmd.RunE == nil {
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			if len(cmd.Commands()) > 0 {
				if len(args) == 0 {
					return fmt.Errorf("%s. Use %s -h to get a list of available sub-commands", err_fmt("No sub-command specified"), full_command_name(cmd))
				}
				return fmt.Errorf("Not a valid subcommand: %s. Use %s -h to get a list of available sub-commands", err_fmt(args[0]), full_command_name(cmd))
			}
			return nil
		}
	}
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	orig_pre_run := cmd.PersistentPreRunE
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		err := ValidateChoices(cmd, args)
		if err != nil || orig_pre_run == nil {
			return err
		}
		return orig_pre_run(cmd, args)
	}

	cmd.PersistentFlags().SortFlags = false
	cmd.Flags().SortFlags = false
	return cmd
}

func show_help(cmd *cobra.Command, args []string) {
	show_usage(cmd)
}

func Init(root *cobra.Command) {
	vs := seti.VersionString
	if seti.VCSRevision != "" {
		vs = vs + " (" + seti.VCSRevision + ")"
	}
	stdout_is_terminal = isatty.IsTerminal(os.Stdout.Fd())
	RootCmd = root
	root.Version = vs
	root.SetUsageFunc(show_usage)
	root.SetHelpFunc(show_help)
	root.SetHelpCommand(&cobra.Command{Hidden: true})
	root.CompletionOptions.DisableDefaultCmd = true
}

// Execute runs root, printing any error to stderr, and returns the exit code.
func Execute(ctx context.Context, root *cobra.Command, args []string) int {
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		var ee *ExitError
		if errors.As(err, &ee) {
			if ee.Msg != "" {
				fmt.Fprintln(root.ErrOrStderr(), ee.Msg)
			}
			return ee.Code
		}
		fmt.Fprintln(root.ErrOrStderr(), color.RedString("Error")+":", err)
		return 1
	}
	return 0
}

// ExitError is returned by commands that want a specific exit code without
// an error message being printed in red.
type ExitError struct {
	Code int
	Msg  string
}

func (self *ExitError) Error() string {
	return fmt.Sprintf("exit code %d: %s", self.Code, self.Msg)
}

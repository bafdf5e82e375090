// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kovidgoyal/seti-icons/tools/icons"
	"github.com/kovidgoyal/seti-icons/tools/utils/style"
)

var _ = fmt.Print

const ThemeFileName = "theme.conf"

var ErrBadTheme = errors.New("invalid color theme")

// SolarizedTheme is the theme used when no theme file is present. Every
// color name used by the builtin rules is present.
func SolarizedTheme() icons.ColorTheme {
	return icons.ColorTheme{
		"blue":       "#268bd2",
		"grey":       "#657b83",
		"grey-light": "#839496",
		"green":      "#859900",
		"orange":     "#cb4b16",
		"pink":       "#d33682",
		"purple":     "#6c71c4",
		"red":        "#dc322f",
		"white":      "#fdf6e3",
		"yellow":     "#b58900",
		"ignore":     "#586e75",
	}
}

func theme_line_handler(theme icons.ColorTheme) func(key, val string) error {
	return func(key, val string) error {
		c, err := style.ParseColor(val)
		if err != nil {
			return fmt.Errorf("%#v is not a valid color for %s: %w", val, key, err)
		}
		theme[key] = c.AsRGBSharp()
		return nil
	}
}

func bad_lines_error(bad_lines []ConfigLine) error {
	if len(bad_lines) == 0 {
		return nil
	}
	lines := make([]string, len(bad_lines))
	for i, bl := range bad_lines {
		lines[i] = bl.String()
	}
	return fmt.Errorf("%w:\n%s", ErrBadTheme, strings.Join(lines, "\n"))
}

// LoadColorTheme reads "name color" lines from paths, or from theme.conf in
// the config directory when no paths are given. Names are case sensitive,
// colors are normalized to #rrggbb. Later lines override earlier ones. A
// missing path is an error, a missing theme.conf is not. When nothing is
// found the solarized theme is returned.
func LoadColorTheme(paths ...string) (icons.ColorTheme, error) {
	return LoadColorThemeWithOverrides(paths, nil)
}

// LoadColorThemeWithOverrides is LoadColorTheme with name=color overrides
// applied last.
func LoadColorThemeWithOverrides(paths, overrides []string) (icons.ColorTheme, error) {
	theme := icons.ColorTheme{}
	p := ConfigParser{LineHandler: theme_line_handler(theme)}
	if err := p.LoadConfig(ThemeFileName, paths, nil); err != nil {
		return nil, err
	}
	if len(theme) == 0 && len(p.BadLines()) == 0 {
		theme = SolarizedTheme()
		p.LineHandler = theme_line_handler(theme)
	}
	if len(overrides) > 0 {
		if err := p.ParseOverrides(overrides...); err != nil {
			return nil, err
		}
	}
	if err := bad_lines_error(p.BadLines()); err != nil {
		return nil, err
	}
	return theme, nil
}

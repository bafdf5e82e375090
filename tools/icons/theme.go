// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package icons

import (
	"errors"
	"fmt"

	"golang.org/x/exp/maps"
)

var _ = fmt.Print

var ErrMissingIcon = errors.New("no markup for icon")
var ErrMissingColor = errors.New("no value for color")

// The color key used when a theme has no entry for the resolved color.
const FallbackColor = "white"

// ColorTheme maps color keys such as blue or grey-light to color values
// such as #268bd2.
type ColorTheme map[string]string

type Result struct {
	SVG, Color string
	Pair       Pair
}

// Provider renders file names into themed icons. It holds only immutable
// data and is safe for concurrent use.
type Provider struct {
	rules *RuleTable
	icons *IconTable
}

func NewProvider(rules *RuleTable, icons *IconTable) *Provider {
	return &Provider{rules: rules, icons: icons}
}

func (self *Provider) Rules() *RuleTable { return self.rules }
func (self *Provider) Icons() *IconTable { return self.icons }

func (self *Provider) Resolve(file_name string) Pair { return self.rules.Resolve(file_name) }

// Render looks up the markup and color value for an already resolved pair.
// A missing icon fails with ErrMissingIcon. A color missing from theme is
// replaced by the theme's white, failing with ErrMissingColor when that is
// absent too.
func (self *Provider) Render(p Pair, theme ColorTheme) (Result, error) {
	svg, found := self.icons.Get(p.Icon)
	if !found {
		return Result{}, fmt.Errorf("%w: %#v", ErrMissingIcon, p.Icon)
	}
	color, found := theme[p.Color]
	if !found {
		if color, found = theme[FallbackColor]; !found {
			return Result{}, fmt.Errorf("%w: %#v and the theme has no %s", ErrMissingColor, p.Color, FallbackColor)
		}
	}
	return Result{SVG: svg, Color: color, Pair: p}, nil
}

// Theme binds a copy of theme and returns a function rendering file names
// with it.
func (self *Provider) Theme(theme ColorTheme) func(file_name string) (Result, error) {
	bound := ColorTheme(maps.Clone(theme))
	return func(file_name string) (Result, error) {
		return self.Render(self.rules.Resolve(file_name), bound)
	}
}

// Check returns the icon keys the rules can resolve to that have no markup.
// Empty when the two tables are consistent.
func (self *Provider) Check() (missing []string) {
	for _, key := range self.rules.IconKeys() {
		if _, found := self.icons.Get(key); !found {
			missing = append(missing, key)
		}
	}
	return
}

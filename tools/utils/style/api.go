// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package style

import (
	"fmt"
	"strings"
)

type Context struct {
	AllowEscapeCodes bool
}

func (self *Context) wrap(prefix, suffix string, args ...any) string {
	body := fmt.Sprint(args...)
	if !self.AllowEscapeCodes {
		return body
	}
	b := strings.Builder{}
	b.Grow(len(prefix) + len(body) + len(suffix))
	b.WriteString(prefix)
	b.WriteString(body)
	b.WriteString(suffix)
	return b.String()
}

// ForegroundFunc returns a function that formats its arguments in the
// specified truecolor foreground.
func (self *Context) ForegroundFunc(c RGBA) func(args ...any) string {
	p := fmt.Sprintf("\x1b[38:2:%d:%d:%dm", c.Red, c.Green, c.Blue)
	return func(args ...any) string { return self.wrap(p, "\x1b[39m", args...) }
}

// BackgroundFunc is ForegroundFunc for the background color.
func (self *Context) BackgroundFunc(c RGBA) func(args ...any) string {
	p := fmt.Sprintf("\x1b[48:2:%d:%d:%dm", c.Red, c.Green, c.Blue)
	return func(args ...any) string { return self.wrap(p, "\x1b[49m", args...) }
}

// Swatch is a block of width cells filled with the color c.
func (self *Context) Swatch(c RGBA, width int) string {
	return self.BackgroundFunc(c)(strings.Repeat(" ", max(0, width)))
}

// Label is text drawn on the background c, in black or white, whichever is
// readable.
func (self *Context) Label(c RGBA, text string) string {
	fg := RGBA{}
	if c.IsDark() {
		fg = RGBA{Red: 255, Green: 255, Blue: 255}
	}
	return self.BackgroundFunc(c)(self.ForegroundFunc(fg)(text))
}

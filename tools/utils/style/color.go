// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package style

import (
	"fmt"
	"strconv"
	"strings"
)

var _ = fmt.Print

type RGBA struct {
	Red, Green, Blue, Inverse_alpha uint8
}

func (self RGBA) AsRGBSharp() string {
	return fmt.Sprintf("#%02x%02x%02x", self.Red, self.Green, self.Blue)
}

func (self *RGBA) parse_rgb_strings(r string, g string, b string) bool {
	var rv, gv, bv uint64
	var err error
	if len(r) == 1 {
		r += r
		g += g
		b += b
	}
	if rv, err = strconv.ParseUint(r[:min(len(r), 2)], 16, 8); err != nil {
		return false
	}
	if gv, err = strconv.ParseUint(g[:min(len(g), 2)], 16, 8); err != nil {
		return false
	}
	if bv, err = strconv.ParseUint(b[:min(len(b), 2)], 16, 8); err != nil {
		return false
	}
	self.Red, self.Green, self.Blue = uint8(rv), uint8(gv), uint8(bv)
	return true
}

func fas_uint8(x float64) uint8 {
	x = max(0, min(x, 1))
	return uint8(x * 255)
}

func (self *RGBA) parse_rgb_intensities(r string, g string, b string) bool {
	var rv, gv, bv float64
	var err error
	if rv, err = strconv.ParseFloat(r, 64); err != nil {
		return false
	}
	if gv, err = strconv.ParseFloat(g, 64); err != nil {
		return false
	}
	if bv, err = strconv.ParseFloat(b, 64); err != nil {
		return false
	}
	self.Red, self.Green, self.Blue = fas_uint8(rv), fas_uint8(gv), fas_uint8(bv)
	return true
}

func (self *RGBA) IsDark() bool {
	return self.Red < 155 && self.Green < 155 && self.Blue < 155
}

func parse_sharp(color string) (ans RGBA, err error) {
	if len(color)%3 != 0 || len(color) == 0 {
		return RGBA{}, fmt.Errorf("length not a multiple of 3")
	}
	part_size := len(color) / 3
	r, g, b := color[:part_size], color[part_size:2*part_size], color[part_size*2:part_size*3]
	if !ans.parse_rgb_strings(r, g, b) {
		err = fmt.Errorf("invalid rgb numbers")
	}
	return
}

func parse_rgb(color string) (ans RGBA, err error) {
	colors := strings.Split(color, "/")
	if len(colors) != 3 || colors[0] == "" || colors[1] == "" || colors[2] == "" {
		return RGBA{}, fmt.Errorf("not three components")
	}
	if ans.parse_rgb_strings(colors[0], colors[1], colors[2]) {
		return
	}
	err = fmt.Errorf("invalid rgb numbers")
	return
}

func parse_rgbi(color string) (ans RGBA, err error) {
	colors := strings.Split(color, "/")
	if len(colors) != 3 {
		return RGBA{}, fmt.Errorf("not three components")
	}
	if ans.parse_rgb_intensities(colors[0], colors[1], colors[2]) {
		return
	}
	err = fmt.Errorf("invalid rgb numbers")
	return
}

// ParseColor parses #rgb, #rrggbb, rgb:r/g/b, rgbi:r/g/b and the basic CSS
// color names. Anything after whitespace following a hex color is treated as
// an inline comment.
func ParseColor(color string) (ans RGBA, err error) {
	color = strings.TrimSpace(color)
	if strings.HasPrefix(color, "#") {
		if parts := strings.Fields(color); len(parts) > 0 {
			color = parts[0]
		}
	} else if idx := strings.Index(color, "#"); idx >= 0 {
		color = strings.TrimSpace(color[:idx])
	}

	raw := strings.ToLower(color)
	if val, ok := ColorNames[raw]; ok {
		return val, nil
	}
	if len(raw) < 4 {
		return RGBA{}, fmt.Errorf("not a valid color name: %#v", color)
	}
	var parser func(string) (RGBA, error)
	switch raw[0] {
	case '#':
		parser = parse_sharp
		raw = raw[1:]
	case 'r':
		if len(raw) > 4 && strings.HasPrefix(raw, "rgb") {
			raw = raw[3:]
			switch raw[0] {
			case ':':
				parser, raw = parse_rgb, raw[1:]
			case 'i':
				if strings.HasPrefix(raw, "i:") {
					parser, raw = parse_rgbi, raw[2:]
				}
			}
		}
	}
	if parser == nil {
		err = fmt.Errorf("not a valid color name: %#v", color)
	} else {
		if ans, err = parser(raw); err != nil {
			err = fmt.Errorf("not a valid color name: %#v %w", color, err)
		}
	}
	return
}

var ColorNames = map[string]RGBA{
	"black":   {Red: 0x00, Green: 0x00, Blue: 0x00},
	"silver":  {Red: 0xc0, Green: 0xc0, Blue: 0xc0},
	"gray":    {Red: 0x80, Green: 0x80, Blue: 0x80},
	"grey":    {Red: 0x80, Green: 0x80, Blue: 0x80},
	"white":   {Red: 0xff, Green: 0xff, Blue: 0xff},
	"maroon":  {Red: 0x80, Green: 0x00, Blue: 0x00},
	"red":     {Red: 0xff, Green: 0x00, Blue: 0x00},
	"purple":  {Red: 0x80, Green: 0x00, Blue: 0x80},
	"fuchsia": {Red: 0xff, Green: 0x00, Blue: 0xff},
	"magenta": {Red: 0xff, Green: 0x00, Blue: 0xff},
	"pink":    {Red: 0xff, Green: 0xc0, Blue: 0xcb},
	"green":   {Red: 0x00, Green: 0x80, Blue: 0x00},
	"lime":    {Red: 0x00, Green: 0xff, Blue: 0x00},
	"olive":   {Red: 0x80, Green: 0x80, Blue: 0x00},
	"yellow":  {Red: 0xff, Green: 0xff, Blue: 0x00},
	"orange":  {Red: 0xff, Green: 0xa5, Blue: 0x00},
	"navy":    {Red: 0x00, Green: 0x00, Blue: 0x80},
	"blue":    {Red: 0x00, Green: 0x00, Blue: 0xff},
	"teal":    {Red: 0x00, Green: 0x80, Blue: 0x80},
	"aqua":    {Red: 0x00, Green: 0xff, Blue: 0xff},
	"cyan":    {Red: 0x00, Green: 0xff, Blue: 0xff},
	"brown":   {Red: 0xa5, Green: 0x2a, Blue: 0x2a},
}

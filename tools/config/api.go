// License: GPLv3 Copyright: 2023, Kovid Goyal, <kovid at kovidgoyal.net>

package config

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/kovidgoyal/seti-icons/tools/utils"
)

var _ = fmt.Print

type ConfigLine struct {
	Src_file, Line string
	Line_number    int
	Err            error
}

func (self ConfigLine) String() string {
	return fmt.Sprintf("%s:%d: %s", self.Src_file, self.Line_number, self.Err)
}

// ConfigParser reads files made of "key value" lines. Lines starting with #
// are comments, lines starting with a backslash continue the previous line.
// The include, globinclude and envinclude keys pull in other files.
type ConfigParser struct {
	LineHandler     func(key, val string) error
	CommentsHandler func(line string) error

	bad_lines     []ConfigLine
	seen_includes map[string]bool
	override_env  []string
}

type Scanner interface {
	Scan() bool
	Text() string
	Err() error
}

func (self *ConfigParser) BadLines() []ConfigLine {
	return self.bad_lines
}

var key_pat = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`([a-zA-Z][a-zA-Z0-9_-]*)\s+(.+)$`)
})

func (self *ConfigParser) add_bad_line(name, line string, lnum int, err error) {
	self.bad_lines = append(self.bad_lines, ConfigLine{Src_file: name, Line: line, Line_number: lnum, Err: err})
}

func (self *ConfigParser) parse(scanner Scanner, name, base_path_for_includes string, depth int) error {
	if self.seen_includes[name] { // avoid include loops
		return nil
	}
	self.seen_includes[name] = true

	recurse := func(r io.Reader, nname, base_path_for_includes string) error {
		if depth > 32 {
			return fmt.Errorf("Too many nested include directives while processing config file: %s", name)
		}
		escanner := bufio.NewScanner(r)
		return self.parse(escanner, nname, base_path_for_includes, depth+1)
	}

	make_absolute := func(path string) (string, error) {
		if path == "" {
			return "", fmt.Errorf("Empty include paths not allowed")
		}
		path = utils.Expanduser(path)
		if !filepath.IsAbs(path) {
			path = filepath.Join(base_path_for_includes, path)
		}
		return path, nil
	}

	lnum := 0
	next_line_num := 0
	next_line := ""
	var line string

	for {
		if next_line != "" {
			line = next_line
		} else {
			if scanner.Scan() {
				line = strings.TrimLeft(scanner.Text(), " \t")
				next_line_num++
			} else {
				break
			}
			if line == "" {
				continue
			}
		}
		lnum = next_line_num
		if scanner.Scan() {
			next_line = strings.TrimLeft(scanner.Text(), " \t")
			next_line_num++

			for strings.HasPrefix(next_line, `\`) {
				line += next_line[1:]
				if scanner.Scan() {
					next_line = strings.TrimLeft(scanner.Text(), " \t")
					next_line_num++
				} else {
					next_line = ""
				}
			}
		} else {
			next_line = ""
		}

		if line[0] == '#' {
			if self.CommentsHandler != nil {
				if err := self.CommentsHandler(line); err != nil {
					self.add_bad_line(name, line, lnum, err)
				}
			}
			continue
		}
		m := key_pat().FindStringSubmatch(line)
		if len(m) < 3 {
			self.add_bad_line(name, line, lnum, fmt.Errorf("Invalid config line: %#v", line))
			continue
		}
		key, val := m[1], m[2]
		if i := strings.IndexAny(line, " \t"); i > -1 {
			key, val = line[:i], strings.TrimSpace(line[i+1:])
		}
		var includes []string
		switch key {
		default:
			if err := self.LineHandler(key, val); err != nil {
				self.add_bad_line(name, line, lnum, err)
			}
			continue
		case "include":
			if aval, err := make_absolute(val); err == nil {
				includes = []string{aval}
			} else {
				self.add_bad_line(name, line, lnum, err)
			}
		case "globinclude":
			if aval, err := make_absolute(val); err == nil {
				if matches, err := doublestar.FilepathGlob(aval); err == nil {
					includes = matches
				} else {
					self.add_bad_line(name, line, lnum, err)
				}
			} else {
				self.add_bad_line(name, line, lnum, err)
			}
		case "envinclude":
			env := self.override_env
			if env == nil {
				env = os.Environ()
			}
			for _, x := range env {
				key, eval, _ := strings.Cut(x, "=")
				if is_match, err := filepath.Match(val, key); is_match && err == nil {
					if err := recurse(strings.NewReader(eval), "<env var: "+key+">", base_path_for_includes); err != nil {
						return err
					}
				}
			}
		}
		for _, incpath := range includes {
			raw, err := os.ReadFile(incpath)
			if err == nil {
				if err := recurse(bytes.NewReader(raw), incpath, filepath.Dir(incpath)); err != nil {
					return err
				}
			} else if !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("Failed to process include %#v with error: %w", incpath, err)
			}
		}
	}
	return nil
}

func (self *ConfigParser) ParseFiles(paths ...string) error {
	for _, path := range paths {
		path = utils.Abspath(utils.Expanduser(path))
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		scanner := utils.NewLineScanner(utils.UnsafeBytesToString(raw))
		self.seen_includes = make(map[string]bool)
		if err = self.parse(scanner, path, filepath.Dir(path), 0); err != nil {
			return err
		}
	}
	return nil
}

type LinesScanner struct {
	lines []string
}

func (self *LinesScanner) Scan() bool {
	return len(self.lines) > 0
}

func (self *LinesScanner) Text() string {
	ans := self.lines[0]
	self.lines = self.lines[1:]
	return ans
}

func (self *LinesScanner) Err() error {
	return nil
}

// ParseOverrides parses "key=value" or "key value" strings, typically
// given on the command line, after any files.
func (self *ConfigParser) ParseOverrides(overrides ...string) error {
	lines := make([]string, len(overrides))
	for i, x := range overrides {
		lines[i] = strings.Replace(x, "=", " ", 1)
	}
	self.seen_includes = make(map[string]bool)
	return self.parse(&LinesScanner{lines: lines}, "<overrides>", utils.ConfigDir(), 0)
}

// LoadConfig parses the named file from the config directory, or the files
// in paths when specified, then the overrides. Only a missing file in the
// config directory is ignored, explicitly specified paths must exist.
func (self *ConfigParser) LoadConfig(name string, paths []string, overrides []string) (err error) {
	if len(paths) > 0 {
		if err = self.ParseFiles(paths...); err != nil {
			return err
		}
	} else {
		if err = self.ParseFiles(filepath.Join(utils.ConfigDir(), name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		err = nil
	}
	if len(overrides) > 0 {
		err = self.ParseOverrides(overrides...)
	}
	return
}

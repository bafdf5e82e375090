// License: GPLv3 Copyright: 2023, Kovid Goyal, <kovid at kovidgoyal.net>

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var _ = fmt.Print

func TestConfigParsing(t *testing.T) {
	tdir := t.TempDir()
	conf_file := filepath.Join(tdir, "a.conf")
	os.MkdirAll(filepath.Join(tdir, "sub", "deep"), 0o700)
	os.WriteFile(conf_file, []byte(`
# ignore me
a one
include sub/b.conf
b two
  \ three
include non-existent
globinclude sub/c?.conf
globinclude sub/**/d.conf
error bad
`), 0o600)
	os.WriteFile(filepath.Join(tdir, "sub/b.conf"), []byte("incb cool\ninclude ../a.conf"), 0o600)
	os.WriteFile(filepath.Join(tdir, "sub/c1.conf"), []byte("inc1 cool"), 0o600)
	os.WriteFile(filepath.Join(tdir, "sub/c2.conf"), []byte("inc2 cool\nenvinclude ENVINCLUDE"), 0o600)
	os.WriteFile(filepath.Join(tdir, "sub/c.conf"), []byte("inc notcool"), 0o600)
	os.WriteFile(filepath.Join(tdir, "sub/deep/d.conf"), []byte("deep cool"), 0o600)

	var parsed_lines, comments []string
	pl := func(key, val string) error {
		if key == "error" {
			return fmt.Errorf("%s", val)
		}
		parsed_lines = append(parsed_lines, key+" "+val)
		return nil
	}

	p := ConfigParser{
		LineHandler:     pl,
		CommentsHandler: func(line string) error { comments = append(comments, line); return nil },
		override_env:    []string{"ENVINCLUDE=env cool\ninclude c.conf"},
	}
	err := p.ParseFiles(conf_file)
	if err != nil {
		t.Fatal(err)
	}
	diff := cmp.Diff([]string{"a one", "incb cool", "b two three", "inc1 cool", "inc2 cool", "env cool", "inc notcool", "deep cool"}, parsed_lines)
	if diff != "" {
		t.Fatalf("Unexpected parsed config values:\n%s", diff)
	}
	if diff = cmp.Diff([]string{"# ignore me"}, comments); diff != "" {
		t.Fatalf("Unexpected comments:\n%s", diff)
	}
	if len(p.BadLines()) != 1 || p.BadLines()[0].Line_number != 10 || p.BadLines()[0].Err.Error() != "bad" {
		t.Fatalf("Unexpected bad lines: %v", p.BadLines())
	}
	parsed_lines = nil
	if err = p.ParseOverrides("x=1", "y 2"); err != nil {
		t.Fatal(err)
	}
	if diff = cmp.Diff([]string{"x 1", "y 2"}, parsed_lines); diff != "" {
		t.Fatalf("Unexpected parsed overrides:\n%s", diff)
	}
}

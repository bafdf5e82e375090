package seti

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kovidgoyal/seti-icons/tools/icons"
)

var _ = fmt.Print

func TestBuiltinTables(t *testing.T) {
	p := Default()
	if missing := p.Check(); len(missing) > 0 {
		t.Fatalf("Builtin icons missing for: %v", missing)
	}
	for name, expected := range map[string]icons.Pair{
		"Dockerfile":         {Icon: "docker", Color: "blue"},
		"docker-compose.yml": {Icon: "docker", Color: "pink"},
		"app.test.js":        {Icon: "javascript", Color: "yellow"},
		"random.unknownext":  {Icon: "default", Color: "white"},
		".gitignore":         {Icon: "git", Color: "ignore"},
		"main.go":            {Icon: "go2", Color: "blue"},
		"go.mod":             {Icon: "go", Color: "blue"},
		"hello.cr":           {Icon: "crystal", Color: "white"},
		"view.ecr":           {Icon: "crystal_embedded", Color: "white"},
		"my-Dockerfile":      {Icon: "docker", Color: "blue"},
		"GNUmakefile":        {Icon: "makefile", Color: "orange"},
		"qmakefile":          {Icon: "makefile", Color: "orange"},
		"readme.rst":         {Icon: "info", Color: "blue"},
		"CMakeLists.txt":     {Icon: "default", Color: "white"},
		"archive.tar.gz":     {Icon: "zip", Color: "grey-light"},
	} {
		if diff := cmp.Diff(expected, p.Resolve(name)); diff != "" {
			t.Fatalf("Unexpected resolution for %#v:\n%s", name, diff)
		}
	}
}

func TestBuiltinTablesHaveNoAlias(t *testing.T) {
	data := Default().Rules().Data()
	check := func(where string, p icons.Pair) {
		if p.Color == icons.PrimaryColorAlias {
			t.Fatalf("%s still uses %s", where, icons.PrimaryColorAlias)
		}
	}
	for k, p := range data.Files {
		check(k, p)
	}
	for k, p := range data.Extensions {
		check(k, p)
	}
	for _, p := range data.Partials {
		check(p.Pattern, p.Pair)
	}
}

func TestBuiltinRendering(t *testing.T) {
	render := Default().Theme(icons.ColorTheme{"blue": "#268bd2", "yellow": "#b58900", "white": "#fdf6e3"})
	r, err := render("main.js")
	if err != nil {
		t.Fatal(err)
	}
	if r.Color != "#b58900" || !strings.HasPrefix(r.SVG, "<svg") {
		t.Fatalf("Unexpected rendering of main.js: %#v", r)
	}
	// crystal markup is hand written and must survive verbatim
	r, err = render("hello.cr")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(r.SVG, `M13.244 20.697l-2.748-4.76-2.749-4.76h10.994l-2.749 4.76z`) {
		t.Fatalf("Crystal icon markup was altered: %s", r.SVG)
	}
	if Default() != Default() {
		t.Fatalf("Builtin tables loaded more than once")
	}
}

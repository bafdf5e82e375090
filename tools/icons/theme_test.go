// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package icons

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var _ = fmt.Print

func test_provider(t *testing.T) *Provider {
	t.Helper()
	p, err := Load([]byte(`{
		"files": {"Dockerfile": ["docker", "blue"], "broken": ["no-such-icon", "blue"]},
		"extensions": {".js": ["javascript", "yellow"], ".sql": ["db", "pink"]},
		"partials": [["TODO", ["todo", "white"]]],
		"default": ["default", "white"]
	}`), []byte(`{
		"docker": "<svg>docker</svg>",
		"javascript": "<svg>js</svg>",
		"db": "<svg>db</svg>",
		"todo": "<svg>todo</svg>",
		"default": "<svg>default</svg>"
	}`))
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestThemedRendering(t *testing.T) {
	p := test_provider(t)
	render := p.Theme(ColorTheme{"blue": "#268bd2", "yellow": "#b58900", "white": "#fdf6e3"})
	for name, expected := range map[string]Result{
		"Dockerfile":        {SVG: "<svg>docker</svg>", Color: "#268bd2", Pair: Pair{"docker", "blue"}},
		"main.js":           {SVG: "<svg>js</svg>", Color: "#b58900", Pair: Pair{"javascript", "yellow"}},
		"TODO.txt":          {SVG: "<svg>todo</svg>", Color: "#fdf6e3", Pair: Pair{"todo", "white"}},
		"random.unknownext": {SVG: "<svg>default</svg>", Color: "#fdf6e3", Pair: Pair{"default", "white"}},
		// pink is not in the theme so white is used
		"schema.sql": {SVG: "<svg>db</svg>", Color: "#fdf6e3", Pair: Pair{"db", "pink"}},
	} {
		r, err := render(name)
		if err != nil {
			t.Fatalf("Rendering %#v failed with error: %s", name, err)
		}
		if diff := cmp.Diff(expected, r); diff != "" {
			t.Fatalf("Unexpected rendering for %#v:\n%s", name, diff)
		}
	}
}

func TestRenderingMisses(t *testing.T) {
	p := test_provider(t)
	r, err := p.Theme(ColorTheme{"blue": "#268bd2", "white": "#fdf6e3"})("broken")
	if !errors.Is(err, ErrMissingIcon) {
		t.Fatalf("Missing icon did not fail with ErrMissingIcon: %v", err)
	}
	if diff := cmp.Diff(Result{}, r); diff != "" {
		t.Fatalf("Got a result for a missing icon:\n%s", diff)
	}
	// no white to fall back to
	render := p.Theme(ColorTheme{"blue": "#268bd2"})
	if _, err = render("main.js"); !errors.Is(err, ErrMissingColor) {
		t.Fatalf("Missing color did not fail with ErrMissingColor: %v", err)
	}
	if r, err = render("Dockerfile"); err != nil || r.Color != "#268bd2" {
		t.Fatalf("Rendering with a partial theme failed: %#v %v", r, err)
	}
	if _, err = p.Theme(nil)("Dockerfile"); !errors.Is(err, ErrMissingColor) {
		t.Fatalf("Rendering with no theme did not fail with ErrMissingColor: %v", err)
	}
}

func TestThemeIsBoundOnce(t *testing.T) {
	p := test_provider(t)
	theme := ColorTheme{"blue": "#268bd2", "white": "#fdf6e3"}
	render := p.Theme(theme)
	theme["blue"] = "#000000"
	delete(theme, "white")
	r, err := render("Dockerfile")
	if err != nil {
		t.Fatal(err)
	}
	if r.Color != "#268bd2" {
		t.Fatalf("Bound theme changed after binding: %s", r.Color)
	}
	if r, err = render("main.js"); err != nil || r.Color != "#fdf6e3" {
		t.Fatalf("Bound theme lost its white: %#v %v", r, err)
	}
}

func TestCheck(t *testing.T) {
	p := test_provider(t)
	if diff := cmp.Diff([]string{"no-such-icon"}, p.Check()); diff != "" {
		t.Fatalf("Unexpected missing icons:\n%s", diff)
	}
}

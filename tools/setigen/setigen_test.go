// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package setigen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/kovidgoyal/seti-icons/tools/icons"
)

var _ = fmt.Print

const test_rules = `
.icon-set(@extension, @icon, @color) {
  .icon-@{icon}:before { color: @color; }
}
.icon-set(".js", "javascript", @yellow);
.icon-set('go.mod', 'go', @seti-primary);
  .icon-set("Dockerfile", "docker", @blue);
.icon-partial("Dockerfile", "docker", @blue);
.icon-partial('docker-compose', "docker", @pink);
.icon-set(".js", "js2", @orange);
.icon-set("mixed', "bad", @red);
`

func TestParseRules(t *testing.T) {
	rt, keys, err := ParseRules(strings.NewReader(test_rules))
	if err != nil {
		t.Fatal(err)
	}
	expected := &icons.RuleTableData{
		Files:      map[string]icons.Pair{"go.mod": {Icon: "go", Color: "blue"}, "Dockerfile": {Icon: "docker", Color: "blue"}},
		Extensions: map[string]icons.Pair{".js": {Icon: "js2", Color: "orange"}},
		Partials: []icons.Partial{
			{Pattern: "docker-compose", Pair: icons.Pair{Icon: "docker", Color: "pink"}},
			{Pattern: "Dockerfile", Pair: icons.Pair{Icon: "docker", Color: "blue"}},
		},
		Default: &icons.DefaultPair,
	}
	if diff := cmp.Diff(expected, rt.Data()); diff != "" {
		t.Fatalf("Unexpected rules:\n%s", diff)
	}
	if diff := cmp.Diff([]string{"javascript", "go", "docker", "js2", "default"}, keys); diff != "" {
		t.Fatalf("Unexpected icon keys:\n%s", diff)
	}
	if _, _, err = ParseRules(strings.NewReader(`.icon-set(".", "x", @red);`)); !errors.Is(err, icons.ErrIntegrity) {
		t.Fatalf("Invalid extension did not fail with an integrity error: %v", err)
	}
}

func write_icons(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, data := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestCollectIcons(t *testing.T) {
	dir := t.TempDir()
	write_icons(t, dir, map[string]string{
		"javascript.svg":     "<svg>js</svg>\n",
		"default.svg":        "<svg>js</svg>",
		"nested/deep/go.svg": "<svg>go</svg>",
		"docker.svg":         "<svg><style>.st0{fill:#231f20}</style>docker</svg>",
		"elm.svg":            `<svg><style>.st0{fill:#231f20}</style><rect width="100%" height="100%"/>elm</svg>`,
		"docker2.svg":        `<svg><rect width="100%" height="100%"/>docker</svg>`,
		"crystal.svg":        "<svg>replaced</svg>",
		"blank.svg":          " \n",
	})
	var logs bytes.Buffer
	keys := []string{"javascript", "go", "docker", "js2", "default", "elm", "docker2", "crystal", "blank"}
	it, err := CollectIcons(context.Background(), dir, keys, Options{Workers: 3, Logger: zerolog.New(zerolog.SyncWriter(&logs))})
	if err != nil {
		t.Fatal(err)
	}
	expected := map[string]string{
		"javascript": "<svg>js</svg>",
		"default":    "<svg>js</svg>",
		"go":         "<svg>go</svg>",
		"docker":     "<svg>docker</svg>",
		"elm":        "<svg>elm</svg>",
		"docker2":    `<svg><rect width="100%" height="100%"/>docker</svg>`,
		"crystal":    CrystalSVG,
	}
	actual := map[string]string{}
	for _, k := range it.Keys() {
		actual[k], _ = it.Get(k)
	}
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Fatalf("Unexpected icons:\n%s", diff)
	}
	l := logs.String()
	for _, q := range []string{`"icon":"js2"`, `"icon":"blank"`, `"same_as":"javascript"`} {
		if !strings.Contains(l, q) {
			t.Fatalf("Log does not contain %s:\n%s", q, l)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err = CollectIcons(ctx, dir, keys, Options{Logger: zerolog.Nop()}); !errors.Is(err, context.Canceled) {
		t.Fatalf("Cancelled collection did not fail: %v", err)
	}
	for _, workers := range []int{0, 1, 64} {
		it, err := CollectIcons(context.Background(), dir, keys, Options{Workers: workers, Logger: zerolog.Nop()})
		if err != nil {
			t.Fatal(err)
		}
		actual := map[string]string{}
		for _, k := range it.Keys() {
			actual[k], _ = it.Get(k)
		}
		if diff := cmp.Diff(expected, actual); diff != "" {
			t.Fatalf("Unexpected icons with %d workers:\n%s", workers, diff)
		}
	}

	if err = os.Mkdir(filepath.Join(dir, "unreadable.svg"), 0o755); err != nil {
		t.Fatal(err)
	}
	if _, err = CollectIcons(context.Background(), dir, append(keys, "unreadable"), Options{Workers: 4, Logger: zerolog.Nop()}); err == nil || !strings.Contains(err.Error(), "unreadable") {
		t.Fatalf("Unreadable icon did not fail collection: %v", err)
	}
}

func TestTransform(t *testing.T) {
	if diff := cmp.Diff(CrystalEmbeddedSVG, Transform("crystal_embedded", "<svg/>")); diff != "" {
		t.Fatalf("Override not applied:\n%s", diff)
	}
	// only the first occurrence is removed
	s := `<svg><style>.st0{fill:#231f20}</style><style>.st0{fill:#231f20}</style></svg>`
	if diff := cmp.Diff(`<svg><style>.st0{fill:#231f20}</style></svg>`, Transform("python", s)); diff != "" {
		t.Fatalf("Unexpected transform:\n%s", diff)
	}
}

func TestWrite(t *testing.T) {
	rt, keys, err := ParseRules(strings.NewReader(test_rules))
	if err != nil {
		t.Fatal(err)
	}
	markup := map[string]string{}
	for _, k := range keys {
		markup[k] = fmt.Sprintf(`<svg class="%s">&</svg>`, k)
	}
	it, err := icons.NewIconTable(markup)
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	read := func(name string) string {
		t.Helper()
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		return string(raw)
	}
	if err = Write(dir, rt, it, false); err != nil {
		t.Fatal(err)
	}
	first := read(icons.IconsFileName)
	if !strings.Contains(first, `"js2":"<svg class=\"js2\">&</svg>"`) {
		t.Fatalf("Markup was escaped: %s", first)
	}
	if !strings.HasPrefix(read(icons.RulesFileName), `{"files":{"Dockerfile":["docker","blue"],"go.mod":["go","blue"]},`) {
		t.Fatalf("Unexpected rules: %s", read(icons.RulesFileName))
	}
	if err = Write(dir, rt, it, false); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(first, read(icons.IconsFileName)); diff != "" {
		t.Fatalf("Output is not deterministic:\n%s", diff)
	}

	if err = Write(dir, rt, it, true); err != nil {
		t.Fatal(err)
	}
	if _, err = os.Stat(filepath.Join(dir, icons.IconsFileName)); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Uncompressed icons left behind: %v", err)
	}
	p, err := icons.LoadFS(os.DirFS(dir))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(rt.Data(), p.Rules().Data()); diff != "" {
		t.Fatalf("Compressed rules differ:\n%s", diff)
	}
	if svg, _ := p.Icons().Get("go"); svg != markup["go"] {
		t.Fatalf("Compressed icons differ: %s", svg)
	}
}

func TestGenerateReproducesBuiltinData(t *testing.T) {
	data := filepath.Join("..", "..", "data")
	out := t.TempDir()
	if err := Generate(context.Background(), filepath.Join(data, "mapping.less"), filepath.Join(data, "icons"), out, false, Options{Logger: zerolog.Nop()}); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{icons.RulesFileName, icons.IconsFileName} {
		expected, err := os.ReadFile(filepath.Join(data, name))
		if err != nil {
			t.Fatal(err)
		}
		actual, err := os.ReadFile(filepath.Join(out, name))
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(string(expected), string(actual)); diff != "" {
			t.Fatalf("%s is out of date, run go generate:\n%s", name, diff)
		}
	}
}

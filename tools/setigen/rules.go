// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

// Package setigen builds the rule and icon tables from the Seti UI
// mapping.less file and its directory of SVG icons.
package setigen

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/dlclark/regexp2"

	"github.com/kovidgoyal/seti-icons/tools/icons"
)

var _ = fmt.Print

// The quote around each argument must match, hence the backreferences.
var rule_pat = sync.OnceValue(func() *regexp2.Regexp {
	return regexp2.MustCompile(`\.icon-(partial|set)\((["'])(.*)\2, (["'])(.*)\4, @(.*)\);`, regexp2.None)
})

type rule_line struct {
	kind, name, icon, color string
}

func parse_rule_line(line string) (ans rule_line, found bool, err error) {
	m, err := rule_pat().FindStringMatch(line)
	if err != nil || m == nil {
		return
	}
	g := func(i int) string { return m.GroupByNumber(i).String() }
	return rule_line{kind: g(1), name: g(3), icon: g(5), color: g(6)}, true, nil
}

// ParseRules reads the icon rules from a mapping.less style file. Lines that
// are not rule invocations are ignored. Partials are stored most recently
// declared first, later set rules replace earlier ones for the same name.
// The returned keys are the icons used, in the order they were first seen,
// followed by the default icon if no rule uses it.
func ParseRules(r io.Reader) (*icons.RuleTable, []string, error) {
	data := icons.RuleTableData{Files: map[string]icons.Pair{}, Extensions: map[string]icons.Pair{}, Partials: []icons.Partial{}}
	var icon_keys []string
	seen := map[string]bool{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lnum := 0
	for scanner.Scan() {
		lnum++
		rl, found, err := parse_rule_line(scanner.Text())
		if err != nil {
			return nil, nil, fmt.Errorf("Failed to match line %d: %w", lnum, err)
		}
		if !found {
			continue
		}
		if rl.color == icons.PrimaryColorAlias {
			rl.color = "blue"
		}
		if !seen[rl.icon] {
			seen[rl.icon] = true
			icon_keys = append(icon_keys, rl.icon)
		}
		p := icons.Pair{Icon: rl.icon, Color: rl.color}
		switch {
		case rl.kind == "partial":
			data.Partials = append([]icons.Partial{{Pattern: rl.name, Pair: p}}, data.Partials...)
		case strings.HasPrefix(rl.name, "."):
			data.Extensions[rl.name] = p
		default:
			data.Files[rl.name] = p
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	rt, err := icons.NewRuleTable(&data)
	if err != nil {
		return nil, nil, err
	}
	if d := rt.Default().Icon; !seen[d] {
		icon_keys = append(icon_keys, d)
	}
	return rt, icon_keys, nil
}

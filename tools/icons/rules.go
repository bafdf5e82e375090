// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package icons

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

var _ = fmt.Print

// ErrIntegrity is wrapped by every error caused by missing or malformed
// rule or icon data.
var ErrIntegrity = errors.New("icon data integrity error")

// The historical name of the blue accent color, only ever seen in raw rule
// sources.
const PrimaryColorAlias = "seti-primary"

var DefaultPair = Pair{Icon: "default", Color: "white"}

// Pair is the result of resolving a file name: which glyph to draw and
// which semantic color slot to draw it in. Serialized as ["icon", "color"].
type Pair struct {
	Icon, Color string
}

func (self Pair) String() string { return self.Icon + ":" + self.Color }

func (self Pair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{self.Icon, self.Color})
}

func (self *Pair) UnmarshalJSON(data []byte) error {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("a pair must be an array of two strings: %w", err)
	}
	if len(raw) != 2 {
		return fmt.Errorf("a pair must have exactly two entries, not %d", len(raw))
	}
	self.Icon, self.Color = raw[0], raw[1]
	return nil
}

func normalize_color(color string) string {
	if color == PrimaryColorAlias {
		return "blue"
	}
	return color
}

func (self Pair) validate() error {
	if self.Icon == "" || self.Color == "" {
		return fmt.Errorf("empty icon or color in pair: %#v", self)
	}
	return nil
}

// Partial is a substring rule. Serialized as ["pattern", ["icon", "color"]].
type Partial struct {
	Pattern string
	Pair
}

func (self Partial) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{self.Pattern, self.Pair})
}

func (self *Partial) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("a partial must be an array of [pattern, pair]: %w", err)
	}
	if len(raw) != 2 {
		return fmt.Errorf("a partial must have exactly two entries, not %d", len(raw))
	}
	if err := json.Unmarshal(raw[0], &self.Pattern); err != nil {
		return fmt.Errorf("the pattern of a partial must be a string: %w", err)
	}
	return json.Unmarshal(raw[1], &self.Pair)
}

// RuleTableData is the persisted shape of a rule table, as written by the
// generator into definitions.json. Partials are stored in the order they must
// be checked in.
type RuleTableData struct {
	Files      map[string]Pair `json:"files"`
	Extensions map[string]Pair `json:"extensions"`
	Partials   []Partial       `json:"partials"`
	Default    *Pair           `json:"default,omitempty"`
}

// RuleTable is the immutable form of RuleTableData used for resolution. It
// is safe for concurrent use.
type RuleTable struct {
	files        map[string]Pair
	extensions   map[string]Pair
	partials     []Partial
	default_pair Pair
}

func integrity_error(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrIntegrity, fmt.Sprintf(format, args...))
}

// NewRuleTable validates data and builds a table from a private copy of it,
// so later changes to data are not visible through the table.
func NewRuleTable(data *RuleTableData) (*RuleTable, error) {
	switch {
	case data == nil:
		return nil, integrity_error("no rule table")
	case data.Files == nil:
		return nil, integrity_error("the rule table has no files field")
	case data.Extensions == nil:
		return nil, integrity_error("the rule table has no extensions field")
	case data.Partials == nil:
		return nil, integrity_error("the rule table has no partials field")
	}
	ans := RuleTable{
		files:        make(map[string]Pair, len(data.Files)),
		extensions:   make(map[string]Pair, len(data.Extensions)),
		partials:     make([]Partial, 0, len(data.Partials)),
		default_pair: DefaultPair,
	}
	for name, p := range data.Files {
		if name == "" {
			return nil, integrity_error("empty file name in the files table")
		}
		if err := p.validate(); err != nil {
			return nil, integrity_error("file %#v: %s", name, err)
		}
		p.Color = normalize_color(p.Color)
		ans.files[name] = p
	}
	for ext, p := range data.Extensions {
		if len(ext) < 2 || ext[0] != '.' {
			return nil, integrity_error("extension %#v does not start with a dot", ext)
		}
		if err := p.validate(); err != nil {
			return nil, integrity_error("extension %#v: %s", ext, err)
		}
		p.Color = normalize_color(p.Color)
		ans.extensions[ext] = p
	}
	for i, p := range data.Partials {
		if p.Pattern == "" {
			return nil, integrity_error("partial number %d has an empty pattern", i)
		}
		if err := p.Pair.validate(); err != nil {
			return nil, integrity_error("partial %#v: %s", p.Pattern, err)
		}
		p.Color = normalize_color(p.Color)
		ans.partials = append(ans.partials, p)
	}
	if data.Default != nil {
		if err := data.Default.validate(); err != nil {
			return nil, integrity_error("default: %s", err)
		}
		ans.default_pair = *data.Default
		ans.default_pair.Color = normalize_color(ans.default_pair.Color)
	}
	return &ans, nil
}

// ParseRuleTable decodes the JSON form of a rule table, as stored in
// definitions.json.
func ParseRuleTable(raw []byte) (*RuleTable, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, integrity_error("the rule table is empty")
	}
	var data RuleTableData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%w: failed to parse the rule table: %w", ErrIntegrity, err)
	}
	return NewRuleTable(&data)
}

// Data returns a deep copy of the table in its persisted shape.
func (self *RuleTable) Data() *RuleTableData {
	d := self.default_pair
	return &RuleTableData{
		Files:      maps.Clone(self.files),
		Extensions: maps.Clone(self.extensions),
		Partials:   slices.Clone(self.partials),
		Default:    &d,
	}
}

func (self *RuleTable) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.Data())
}

func (self *RuleTable) Default() Pair { return self.default_pair }

func (self *RuleTable) Counts() (files, extensions, partials int) {
	return len(self.files), len(self.extensions), len(self.partials)
}

// Partials returns the substring rules in the order they are checked.
func (self *RuleTable) Partials() []Partial { return slices.Clone(self.partials) }

// IconKeys returns every icon key the table can resolve to, sorted.
func (self *RuleTable) IconKeys() []string {
	seen := map[string]bool{self.default_pair.Icon: true}
	for _, p := range self.files {
		seen[p.Icon] = true
	}
	for _, p := range self.extensions {
		seen[p.Icon] = true
	}
	for _, p := range self.partials {
		seen[p.Icon] = true
	}
	ans := maps.Keys(seen)
	slices.Sort(ans)
	return ans
}

// IconTable maps icon keys to literal SVG markup. Immutable.
type IconTable struct {
	markup map[string]string
}

func NewIconTable(markup map[string]string) (*IconTable, error) {
	if len(markup) == 0 {
		return nil, integrity_error("the icon table has no entries")
	}
	for key, svg := range markup {
		if key == "" {
			return nil, integrity_error("empty icon key in the icon table")
		}
		if strings.TrimSpace(svg) == "" {
			return nil, integrity_error("icon %#v has no markup", key)
		}
	}
	return &IconTable{markup: maps.Clone(markup)}, nil
}

// ParseIconTable decodes the JSON form of an icon table, as stored in
// icons.json.
func ParseIconTable(raw []byte) (*IconTable, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, integrity_error("the icon table is empty")
	}
	var markup map[string]string
	if err := json.Unmarshal(raw, &markup); err != nil {
		return nil, fmt.Errorf("%w: failed to parse the icon table: %w", ErrIntegrity, err)
	}
	return NewIconTable(markup)
}

func (self *IconTable) Get(key string) (svg string, found bool) {
	svg, found = self.markup[key]
	return
}

func (self *IconTable) Len() int { return len(self.markup) }

func (self *IconTable) Keys() []string {
	ans := maps.Keys(self.markup)
	slices.Sort(ans)
	return ans
}

// Markup is serialized without escaping <, > and &
func (self *IconTable) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(self.markup); err != nil {
		return nil, err
	}
	return bytes.TrimRight(b.Bytes(), "\n"), nil
}

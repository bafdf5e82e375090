// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package icons

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/kovidgoyal/seti-icons/tools/utils"
)

var _ = fmt.Print

const (
	RulesFileName    = "definitions.json"
	IconsFileName    = "icons.json"
	CompressedSuffix = ".zst"
)

// Load builds a provider from the JSON contents of definitions.json and
// icons.json.
func Load(rules_data, icons_data []byte) (*Provider, error) {
	rules, err := ParseRuleTable(rules_data)
	if err != nil {
		return nil, err
	}
	icons, err := ParseIconTable(icons_data)
	if err != nil {
		return nil, err
	}
	return NewProvider(rules, icons), nil
}

func read_artifact(fsys fs.FS, name string) ([]byte, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err == nil {
		return raw, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: failed to read %s: %w", ErrIntegrity, name, err)
	}
	compressed, cerr := fs.ReadFile(fsys, name+CompressedSuffix)
	if cerr != nil {
		if errors.Is(cerr, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: neither %s nor %s%s found", ErrIntegrity, name, name, CompressedSuffix)
		}
		return nil, fmt.Errorf("%w: failed to read %s%s: %w", ErrIntegrity, name, CompressedSuffix, cerr)
	}
	if raw, err = utils.Decompress(compressed); err != nil {
		return nil, fmt.Errorf("%w: %s%s: %w", ErrIntegrity, name, CompressedSuffix, err)
	}
	return raw, nil
}

// LoadFS loads definitions.json and icons.json from the root of fsys, falling
// back to their zstd compressed .zst forms when the plain files are absent.
func LoadFS(fsys fs.FS) (*Provider, error) {
	rules_data, err := read_artifact(fsys, RulesFileName)
	if err != nil {
		return nil, err
	}
	icons_data, err := read_artifact(fsys, IconsFileName)
	if err != nil {
		return nil, err
	}
	return Load(rules_data, icons_data)
}

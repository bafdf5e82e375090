// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package setigen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kovidgoyal/seti-icons/tools/icons"
	"github.com/kovidgoyal/seti-icons/tools/utils"
)

var _ = fmt.Print

func encode(x any) ([]byte, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	// SVG markup is stored as is, not with < escapes
	enc.SetEscapeHTML(false)
	if err := enc.Encode(x); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Write serializes both tables into dir as definitions.json and icons.json,
// or as zstd compressed .zst files. The output is deterministic. Any stale
// file in the other format is removed so it cannot shadow the new one.
func Write(dir string, rules *icons.RuleTable, it *icons.IconTable, compress bool) (err error) {
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for name, x := range map[string]any{icons.RulesFileName: rules, icons.IconsFileName: it} {
		data, err := encode(x)
		if err != nil {
			return fmt.Errorf("Failed to serialize %s: %w", name, err)
		}
		path, stale := filepath.Join(dir, name), filepath.Join(dir, name+icons.CompressedSuffix)
		if compress {
			if data, err = utils.Compress(data); err != nil {
				return err
			}
			path, stale = stale, path
		}
		if err = utils.AtomicWriteFile(path, data, 0o644); err != nil {
			return err
		}
		if err = os.Remove(stale); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// Generate parses the rules file, collects the icons it uses from icons_dir
// and writes both tables to output_dir.
func Generate(ctx context.Context, rules_path, icons_dir, output_dir string, compress bool, opts Options) error {
	f, err := os.Open(rules_path)
	if err != nil {
		return err
	}
	defer f.Close()
	rules, keys, err := ParseRules(f)
	if err != nil {
		return fmt.Errorf("Failed to parse rules from %s: %w", rules_path, err)
	}
	it, err := CollectIcons(ctx, icons_dir, keys, opts)
	if err != nil {
		return err
	}
	files, extensions, partials := rules.Counts()
	opts.Logger.Info().Int("files", files).Int("extensions", extensions).Int("partials", partials).Int("icons", it.Len()).Msg("Writing tables")
	return Write(output_dir, rules, it, compress)
}

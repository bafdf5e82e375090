// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package setigen

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/kovidgoyal/go-parallel"
	"github.com/rs/zerolog"
	"github.com/zeebo/xxh3"

	"github.com/kovidgoyal/seti-icons/tools/icons"
)

var _ = fmt.Print

// Hand edited markup, used instead of the files on disk.
const CrystalSVG = `<svg viewBox="0 0 32 32" xmlns="http://www.w3.org/2000/svg"><path fill-rule="evenodd" d="M16 3.851l-5.26 3.037-5.261 3.038v12.148l5.26 3.037L16 28.15l5.26-3.038 5.261-3.037V9.926l-5.26-3.038z M13.244 20.697l-2.748-4.76-2.749-4.76h10.994l-2.749 4.76z"></path></svg>`
const CrystalEmbeddedSVG = `<svg viewBox="0 0 32 32"><path fill-rule="evenodd" d="M16 3.851l-5.26 3.037-5.261 3.038v12.148l5.26 3.037L16 28.15l5.26-3.038 5.261-3.037V9.926l-5.26-3.038z M14.077 21.025l-5.646-4.758 5.646-4.75 1.307 1.324-4.155 3.41 4.155 3.45zm3.846-9.508l5.646 4.75-5.646 4.757-1.298-1.323 4.146-3.418-4.146-3.443z"/></svg>`

const st0_style = `<style>.st0{fill:#231f20}</style>`
const background_rect = `<rect width="100%" height="100%"/>`

var overrides = map[string]string{
	"crystal":          CrystalSVG,
	"crystal_embedded": CrystalEmbeddedSVG,
}

// Transform applies the fixed edits made to every icon before it is stored.
func Transform(key, svg string) string {
	if o, found := overrides[key]; found {
		svg = o
	}
	svg = strings.Replace(svg, st0_style, "", 1)
	switch key {
	case "elm", "twig":
		svg = strings.Replace(svg, background_rect, "", 1)
	}
	return strings.TrimSpace(svg)
}

type Options struct {
	// Number of goroutines used to read icons, <= 0 means one per CPU
	Workers int
	Logger  zerolog.Logger
}

func find_icon(dir, key string) (string, error) {
	path := filepath.Join(dir, key+".svg")
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	matches, err := doublestar.Glob(os.DirFS(dir), "**/"+key+".svg", doublestar.WithFilesOnly())
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", fs.ErrNotExist
	}
	return filepath.Join(dir, filepath.FromSlash(matches[0])), nil
}

// CollectIcons reads <dir>/<key>.svg for every key, looking in sub
// directories when it is not at the top level. Missing icons are logged and
// left out of the result.
func CollectIcons(ctx context.Context, dir string, keys []string, opts Options) (*icons.IconTable, error) {
	log := opts.Logger
	markup := make([]string, len(keys))
	err := parallel.Run_in_parallel_over_range_with_error(opts.Workers, func(start, limit int) error {
		for i := start; i < limit; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			key := keys[i]
			path, err := find_icon(dir, key)
			if err == nil {
				var raw []byte
				if raw, err = os.ReadFile(path); err == nil {
					if markup[i] = Transform(key, string(raw)); markup[i] == "" {
						log.Warn().Str("icon", key).Str("path", path).Msg("Skipping empty icon")
					}
					continue
				}
			}
			if !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("Failed to read icon %s: %w", key, err)
			}
			log.Warn().Str("icon", key).Msg("Skipping missing icon")
		}
		return nil
	}, 0, len(keys))
	if err != nil {
		return nil, err
	}
	ans := make(map[string]string, len(keys))
	digests := make(map[uint64]string, len(keys))
	for i, key := range keys {
		if markup[i] == "" {
			continue
		}
		ans[key] = markup[i]
		d := xxh3.HashString(markup[i])
		if prev, found := digests[d]; found && ans[prev] == markup[i] {
			log.Info().Str("icon", key).Str("same_as", prev).Msg("Duplicate icon")
		} else {
			digests[d] = key
		}
	}
	log.Debug().Int("read", len(ans)).Int("requested", len(keys)).Str("dir", dir).Msg("Collected icons")
	return icons.NewIconTable(ans)
}

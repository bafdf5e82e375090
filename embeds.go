package seti

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/kovidgoyal/seti-icons/tools/icons"
)

var _ = fmt.Print

//go:generate go run ./cmd/seti-icons generate --rules data/mapping.less --icons data/icons --output data

//go:embed data/definitions.json
var definitions_data []byte

//go:embed data/icons.json
var icons_data []byte

// LoadDefault builds a provider from the rule and icon tables compiled into
// the binary.
func LoadDefault() (*icons.Provider, error) {
	p, err := icons.Load(definitions_data, icons_data)
	if err != nil {
		return nil, fmt.Errorf("Failed to load the builtin icon tables with error: %w", err)
	}
	return p, nil
}

// Default is the provider for the builtin tables, loaded on first use and
// shared thereafter. The builtin tables ship with the binary so failing to
// load them is a build bug and panics.
var Default = sync.OnceValue(func() *icons.Provider {
	p, err := LoadDefault()
	if err != nil {
		panic(err)
	}
	return p
})

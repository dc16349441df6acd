// Package examples ships a small catalog of broken code snippets paired
// with the error message their runtime would produce. The catalog backs
// `faultline examples` and the --example flag on `faultline analyze`.
package examples

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
)

//go:embed examples.toml
var catalogTOML []byte

// Example is one snippet from the embedded catalog.
type Example struct {
	ID           string `toml:"-"`
	Description  string `toml:"description"`
	Language     string `toml:"language"`
	ErrorMessage string `toml:"error_message"`
	Code         string `toml:"code"`
}

type catalog struct {
	Examples map[string]Example `toml:"examples"`
}

func load() (map[string]Example, error) {
	var cfg catalog
	if err := toml.Unmarshal(catalogTOML, &cfg); err != nil {
		return nil, fmt.Errorf("decode embedded example catalog: %w", err)
	}
	for id, ex := range cfg.Examples {
		ex.ID = id
		cfg.Examples[id] = ex
	}
	return cfg.Examples, nil
}

// List returns every example sorted by ID.
func List() ([]Example, error) {
	all, err := load()
	if err != nil {
		return nil, err
	}
	out := make([]Example, 0, len(all))
	for _, ex := range all {
		out = append(out, ex)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Get returns the example with the given ID.
func Get(id string) (Example, error) {
	all, err := load()
	if err != nil {
		return Example{}, err
	}
	ex, ok := all[id]
	if !ok {
		return Example{}, fmt.Errorf("unknown example '%s'", id)
	}
	return ex, nil
}

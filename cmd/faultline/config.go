package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// fileConfig is the optional faultline.toml found by walking up from the
// working directory. Flags always win over config values.
type fileConfig struct {
	Defaults struct {
		Language     string `toml:"language"`
		ContextLines int    `toml:"context_lines"`
		MaxSolutions int    `toml:"max_solutions"`
		Jobs         int    `toml:"jobs"`
		Format       string `toml:"format"`
	} `toml:"defaults"`
}

// findConfigFile walks up from startDir to locate faultline.toml.
func findConfigFile(startDir string) (string, bool) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false
	}
	for {
		candidate := filepath.Join(dir, "faultline.toml")
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func loadConfig() (fileConfig, error) {
	var cfg fileConfig
	path, ok := findConfigFile(".")
	if !ok {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
